package enrich

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region priorities

// Selection priorities for questions generated by enrichment passes.
const (
	PriorityAuthenticity = 88
	PriorityLifeStage    = 87
	PriorityGeography    = 86
	PriorityArchaeology  = 85
)

// #endregion priorities

// #region pass

// Input bundles everything a pass may read. Passes never mutate it.
type Input struct {
	Catalog      *catalog.Catalog
	Responses    map[string]session.Response
	Insights     []session.Insight
	Profile      *Profile
	Interactions []Interaction
}

// Result is what a pass contributes back to the session.
type Result struct {
	Insights  []session.Insight
	Gaps      []session.Gap
	Questions []session.GeneratedQuestion
}

// Pass is one gated, best-effort enrichment step.
type Pass struct {
	Name         string
	MinResponses int
	NeedsProfile bool
	Run          func(Input) Result
}

// Passes returns the enrichment passes in their fixed execution order.
func Passes() []Pass {
	return []Pass{
		{Name: "motivation-archaeology", MinResponses: 4, Run: motivationArchaeology},
		{Name: "strength-validation", MinResponses: 5, Run: strengthValidation},
		{Name: "hidden-interest-prediction", MinResponses: 6, Run: hiddenInterestPrediction},
		{Name: "future-self-projection", MinResponses: 8, Run: futureSelfProjection},
		{Name: "life-stage", MinResponses: 3, NeedsProfile: true, Run: lifeStage},
		{Name: "geography", MinResponses: 3, NeedsProfile: true, Run: geography},
		{Name: "authenticity", MinResponses: 5, NeedsProfile: true, Run: authenticity},
	}
}

// #endregion pass

// #region helpers

func sortedIDs(responses map[string]session.Response) []string {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func text(r session.Response) string {
	return strings.Join(catalog.Strings(r.Value), " ")
}

func areaOf(in Input, questionID string) catalog.Area {
	if q, ok := in.Catalog.Get(questionID); ok {
		return q.Area
	}
	return catalog.AreaValues
}

// #endregion helpers

// #region motivation-archaeology

// motivationArchaeology digs under answers that carry deep-motivation wording:
// each match yields a "why" probe and a low-confidence motivation insight.
func motivationArchaeology(in Input) Result {
	motives := catalog.MotivationRules()
	var res Result

	for _, id := range sortedIDs(in.Responses) {
		r := in.Responses[id]
		themes := motives.All(text(r))
		if len(themes) == 0 {
			continue
		}
		area := areaOf(in, id)
		res.Questions = append(res.Questions, session.GeneratedQuestion{
			Source:   "motivation-archaeology",
			Priority: PriorityArchaeology,
			Question: catalog.Question{
				ID:    "archaeology-" + id,
				Area:  area,
				Type:  catalog.TypeOpenEnded,
				Depth: catalog.DepthDeep,
				Text:  "You mentioned something earlier that sounded important. What's underneath that answer - why does it matter so much?",
			},
		})
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightHiddenInterest,
			Area:       area,
			Text:       fmt.Sprintf("There is a deeper story behind your answer about %s worth unpacking", string(area)),
			Confidence: 0.45,
			BasedOn:    []string{id},
		})
	}
	return res
}

// #endregion motivation-archaeology

// #region strength-validation

// strengthValidation checks claimed strengths against accumulated evidence.
func strengthValidation(in Input) Result {
	var res Result
	for _, ins := range in.Insights {
		if ins.Type != session.InsightStrength {
			continue
		}
		if len(ins.BasedOn) >= 2 {
			res.Insights = append(res.Insights, session.Insight{
				Type:       session.InsightStrength,
				Area:       ins.Area,
				Text:       fmt.Sprintf("Validated: %s - it shows up across multiple answers, not just one", lowerFirst(ins.Text)),
				Confidence: session.Clamp(ins.Confidence + 0.15),
				BasedOn:    ins.BasedOn,
			})
			continue
		}
		res.Gaps = append(res.Gaps, session.Gap{
			Area:        ins.Area,
			Description: fmt.Sprintf("Only one answer supports %q - a concrete example would confirm or retire it", ins.Text),
			Importance:  "low",
		})
	}
	return res
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// #endregion strength-validation

// #region hidden-interest-prediction

// hiddenInterestPrediction spots signal bleeding into areas the user has not
// explored yet.
func hiddenInterestPrediction(in Input) Result {
	var res Result

	answered := make(map[catalog.Area]bool)
	for _, id := range sortedIDs(in.Responses) {
		answered[areaOf(in, id)] = true
	}

	signals := map[catalog.Area]catalog.RuleTable{
		catalog.AreaCreativity: {Name: "creative-bleed", Rules: []catalog.Rule{
			{Outcome: "creative", Keywords: []string{"design", "write", "wrote", "built", "making", "draw", "music", "invent"}},
		}},
		catalog.AreaPeople: {Name: "people-bleed", Rules: []catalog.Rule{
			{Outcome: "people", Keywords: []string{"mentor", "taught", "helping", "team", "coach", "explain"}},
		}},
		catalog.AreaLearning: {Name: "learning-bleed", Rules: []catalog.Rule{
			{Outcome: "learning", Keywords: []string{"learned", "course", "studied", "research", "curious", "read about"}},
		}},
	}
	areaOrder := []catalog.Area{catalog.AreaCreativity, catalog.AreaPeople, catalog.AreaLearning}

	for _, area := range areaOrder {
		if answered[area] {
			continue
		}
		table := signals[area]
		var evidence []string
		for _, id := range sortedIDs(in.Responses) {
			if len(table.All(text(in.Responses[id]))) > 0 {
				evidence = append(evidence, id)
			}
		}
		if len(evidence) < 2 {
			continue
		}
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightHiddenInterest,
			Area:       area,
			Text:       fmt.Sprintf("Your answers keep brushing against %s even though we haven't asked about it yet", string(area)),
			Confidence: 0.5,
			BasedOn:    evidence,
		})
		res.Gaps = append(res.Gaps, session.Gap{
			Area:        area,
			Description: fmt.Sprintf("The %s area looks live but unexplored", string(area)),
			Importance:  "medium",
		})
	}
	return res
}

// #endregion hidden-interest-prediction

// #region future-self-projection

// futureSelfProjection reads the five-year answer against the top value.
func futureSelfProjection(in Input) Result {
	var res Result
	future, ok := in.Responses["learning-five-years"]
	if !ok {
		res.Questions = append(res.Questions, session.GeneratedQuestion{
			Source:   "future-self-projection",
			Priority: PriorityArchaeology,
			Question: catalog.Question{
				ID:    "future-self-projection",
				Area:  catalog.AreaLearning,
				Type:  catalog.TypeOpenEnded,
				Depth: catalog.DepthDeep,
				Text:  "Picture yourself ten years from now, on a very good day at work. What are you actually doing that day?",
			},
		})
		return res
	}

	values := catalog.ValueRules()
	themes := values.All(text(future))
	if len(themes) > 0 {
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightGrowthArea,
			Area:       catalog.AreaLearning,
			Text:       fmt.Sprintf("Your future self is organized around %s - current plans should be audited against that", themes[0]),
			Confidence: 0.55,
			BasedOn:    []string{"learning-five-years"},
		})
	}
	if industry, ok := catalog.IndustryRules().First(text(future)); ok {
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightHiddenInterest,
			Area:       catalog.AreaLearning,
			Text:       fmt.Sprintf("Your five-year picture is already set in %s - worth naming that as a real option", industry),
			Confidence: 0.5,
			BasedOn:    []string{"learning-five-years"},
		})
	}
	return res
}

// #endregion future-self-projection

// #region life-stage

var lifeStageQuestions = map[string]catalog.Question{
	"student": {
		ID:   "life-stage-student",
		Area: catalog.AreaValues,
		Type: catalog.TypeMultipleChoice,
		Text: "You're still studying - is this search about a first direction, or testing a direction you already suspect?",
		Options: []string{
			"Finding a first direction", "Testing a suspicion", "Keeping options open on purpose",
		},
	},
	"early-career": {
		ID:   "life-stage-early",
		Area: catalog.AreaValues,
		Type: catalog.TypeMultipleChoice,
		Text: "A few years in - is the question 'am I on the right ladder' or 'am I climbing it the right way'?",
		Options: []string{
			"Wrong ladder entirely", "Right ladder, wrong rung or pace", "Honestly not sure which",
		},
	},
	"mid-career": {
		ID:   "life-stage-mid",
		Area: catalog.AreaValues,
		Type: catalog.TypeMultipleChoice,
		Text: "Mid-career changes carry real switching costs. What would make a change worth those costs?",
		Options: []string{
			"Meaning I can't get where I am", "Growth that has stalled", "An environment I need to leave", "Nothing - I'm optimizing, not escaping",
		},
	},
	"late-career": {
		ID:   "life-stage-late",
		Area: catalog.AreaValues,
		Type: catalog.TypeMultipleChoice,
		Text: "At this stage, what do you most want the next chapter to be about?",
		Options: []string{
			"Passing on what I know", "Finally doing the deferred thing", "Winding down on my terms", "One more big swing",
		},
	},
}

// lifeStage asks the stage-appropriate framing question and notes constraints.
func lifeStage(in Input) Result {
	var res Result
	q, ok := lifeStageQuestions[in.Profile.LifeStage]
	if !ok {
		return res
	}
	res.Questions = append(res.Questions, session.GeneratedQuestion{
		Source:   "life-stage",
		Priority: PriorityLifeStage,
		Question: q,
	})
	if in.Profile.Dependents {
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightPreference,
			Area:       catalog.AreaValues,
			Text:       "Dependents raise the floor on income stability - bold options need staging, not dismissal",
			Confidence: 0.6,
			BasedOn:    []string{"profile"},
		})
	}
	return res
}

// #endregion life-stage

// #region geography

// geography raises the location trade-off when a profile pins a place.
func geography(in Input) Result {
	var res Result
	if in.Profile.Location == "" {
		return res
	}
	if !in.Profile.WillingToRelocate {
		res.Questions = append(res.Questions, session.GeneratedQuestion{
			Source:   "geography",
			Priority: PriorityGeography,
			Question: catalog.Question{
				ID:   "geography-tradeoff",
				Area: catalog.AreaEnvironment,
				Type: catalog.TypeMultipleChoice,
				Text: fmt.Sprintf("Staying in %s narrows some paths. Which trade would you rather make?", in.Profile.Location),
				Options: []string{
					"Best available work here, even off-target",
					"Remote work for a distant employer",
					"Longer commute for closer-fit work",
					"I'd reconsider relocating for the right thing",
				},
			},
		})
		res.Gaps = append(res.Gaps, session.Gap{
			Area:        catalog.AreaEnvironment,
			Description: "How binding the stay-in-place constraint really is",
			Importance:  "medium",
			SuggestedQuestions: []string{"geography-tradeoff"},
		})
	}
	return res
}

// #endregion geography

// #region authenticity

// authenticity compares obligation language against desire language across
// the open-ended answers.
func authenticity(in Input) Result {
	obligation := catalog.ObligationRules()
	var res Result

	var shouldIDs, wantIDs []string
	for _, id := range sortedIDs(in.Responses) {
		for _, outcome := range obligation.All(text(in.Responses[id])) {
			switch outcome {
			case "should":
				shouldIDs = append(shouldIDs, id)
			case "want":
				wantIDs = append(wantIDs, id)
			}
		}
	}

	if len(shouldIDs) >= 2 && len(shouldIDs) > len(wantIDs) {
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightGrowthArea,
			Area:       catalog.AreaValues,
			Text:       "Your answers lean on obligation language - more 'should' than 'want'. Someone else's definition of success may be steering",
			Confidence: session.Clamp(0.45 + 0.05*float64(len(shouldIDs))),
			BasedOn:    shouldIDs,
		})
		res.Questions = append(res.Questions, session.GeneratedQuestion{
			Source:   "authenticity",
			Priority: PriorityAuthenticity,
			Question: catalog.Question{
				ID:    "authenticity-probe",
				Area:  catalog.AreaValues,
				Type:  catalog.TypeOpenEnded,
				Depth: catalog.DepthDeep,
				Text:  "If nobody who knows you would ever find out what you chose, what would you choose?",
			},
		})
	}
	if len(wantIDs) >= 3 && len(wantIDs) > 2*max(len(shouldIDs), 1) {
		res.Insights = append(res.Insights, session.Insight{
			Type:       session.InsightStrength,
			Area:       catalog.AreaValues,
			Text:       "You describe work in terms of genuine pull, not obligation - a reliable compass for this search",
			Confidence: 0.6,
			BasedOn:    wantIDs,
		})
	}
	return res
}

// #endregion authenticity
