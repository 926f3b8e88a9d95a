package synthesis

import (
	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region constants

// MinResponses gates synthesis; below it the pass is a no-op.
const MinResponses = 5

// #endregion constants

// #region rule

type condition struct {
	questionID string
	cond       catalog.Condition
}

// rule combines responses from at least two areas into a higher-order insight.
type rule struct {
	kind         string // cross-domain | paradox | nuanced-preference
	areas        []catalog.Area
	needs        []condition
	text         string
	confidence   float64
	implications []string
}

// #endregion rule

// #region synthesize

// Synthesize produces cross-domain insights from the full response mapping.
// Returns nil below MinResponses. The result replaces any cached list
// wholesale; callers must not treat it as append-only.
func Synthesize(responses map[string]session.Response) []session.SynthesizedInsight {
	if len(responses) < MinResponses {
		return nil
	}

	var out []session.SynthesizedInsight
	for _, r := range rules {
		evidence := true
		for _, need := range r.needs {
			resp, ok := responses[need.questionID]
			if !ok || !need.cond.Matches(resp.Value) {
				evidence = false
				break
			}
		}
		if !evidence {
			continue
		}
		out = append(out, session.SynthesizedInsight{
			Kind:         r.kind,
			Areas:        r.areas,
			Text:         r.text,
			Confidence:   session.Clamp(r.confidence),
			Implications: r.implications,
		})
	}
	return out
}

// #endregion synthesize

// #region rules

var rules = []rule{
	{
		kind:  "cross-domain",
		areas: []catalog.Area{catalog.AreaWorkStyle, catalog.AreaProblemSolving},
		needs: []condition{
			{"work-style-solo-team", catalog.Condition{OneOf: []string{"Deep focus, alone", "Mostly alone, occasional check-ins"}}},
			{"problem-kind", catalog.Condition{Equals: "A technical puzzle with a right answer"}},
		},
		text:       "Solitary focus plus an appetite for well-defined puzzles points at deep individual-contributor work",
		confidence: 0.7,
		implications: []string{
			"Prioritize roles measured on output, not meeting presence",
			"Treat management tracks with suspicion until tested",
		},
	},
	{
		kind:  "cross-domain",
		areas: []catalog.Area{catalog.AreaPeople, catalog.AreaLearning},
		needs: []condition{
			{"people-helping", catalog.Condition{Equals: "Teaching them something"}},
			{"learning-mastery", catalog.Condition{Equals: "Very good at one thing"}},
		},
		text:       "Deep expertise plus a pull toward teaching suggests mentorship-heavy senior roles over pure production work",
		confidence: 0.65,
		implications: []string{
			"Look at fields with apprenticeship structures",
			"Training, enablement, and staff-level roles fit this pairing",
		},
	},
	{
		kind:  "paradox",
		areas: []catalog.Area{catalog.AreaStructure, catalog.AreaCreativity},
		needs: []condition{
			{"structure-planning", catalog.Condition{Equals: "I need them to function"}},
			{"creativity-blank-page", catalog.Condition{Equals: "Blank page excites me"}},
		},
		text:       "You want a blank page and a detailed plan at the same time - creative freedom inside firm scaffolding",
		confidence: 0.6,
		implications: []string{
			"Structured creative fields (architecture, product design, technical writing) resolve this tension",
			"Pure open-ended creative work without process may stall you",
		},
	},
	{
		kind:  "paradox",
		areas: []catalog.Area{catalog.AreaValues, catalog.AreaEnvironment},
		needs: []condition{
			{"values-tradeoff", catalog.Condition{Equals: "Freedom and flexibility"}},
			{"environment-size", catalog.Condition{Equals: "A large organization with room to move"}},
		},
		text:       "Freedom ranked first, yet you picture yourself inside a large organization - you may want autonomy within a system, not outside one",
		confidence: 0.6,
		implications: []string{
			"Internal mobility and role-crafting matter more to you than self-employment",
		},
	},
	{
		kind:  "nuanced-preference",
		areas: []catalog.Area{catalog.AreaWorkStyle, catalog.AreaPeople},
		needs: []condition{
			{"work-style-solo-team", catalog.Condition{Equals: "A mix of both"}},
			{"people-depth-breadth", catalog.Condition{Equals: "A few, deeply"}},
		},
		text:       "Not an introvert or an extrovert profile: you want solitary production time anchored by a small set of close collaborators",
		confidence: 0.65,
		implications: []string{
			"Small, stable teams over large rotating ones",
			"Heavy networking-driven careers will feel expensive",
		},
	},
	{
		kind:  "nuanced-preference",
		areas: []catalog.Area{catalog.AreaProblemSolving, catalog.AreaEnvironment},
		needs: []condition{
			{"problem-risk", catalog.Condition{MinScale: 7}},
			{"environment-pressure", catalog.Condition{MinScale: 7}},
		},
		text:       "Comfort with ambiguity and with visible stakes is a rarer pairing - early-stage or crisis-shaped environments would use it",
		confidence: 0.7,
		implications: []string{
			"Startups, incident response, trading floors, emergency services all trade on this combination",
		},
	},
	{
		kind:  "cross-domain",
		areas: []catalog.Area{catalog.AreaCreativity, catalog.AreaLearning},
		needs: []condition{
			{"creativity-outlet", catalog.Condition{Equals: "Connecting ideas from different fields"}},
			{"learning-mastery", catalog.Condition{Equals: "One deep skill plus broad range"}},
		},
		text:       "Synthesis across fields plus a T-shaped learning goal marks you as a generalist-integrator, not a specialist",
		confidence: 0.7,
		implications: []string{
			"Roles that sit between disciplines (product, research translation, solutions work) fit",
			"Avoid ladders that reward narrow depth only",
		},
	},
}

// #endregion rules
