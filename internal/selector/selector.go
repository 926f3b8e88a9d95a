package selector

import (
	"log"
	"sort"
	"time"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/enrich"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region priorities

// Priority ladder. Higher wins; ties keep insertion order.
const (
	PriorityFollowUp      = 100
	PriorityClarification = 95
	PriorityDynamic       = 90
	PriorityDeepProbe     = 85
	PriorityGapSuggestion = 80
	PriorityNewArea       = 70
	PriorityShallowArea   = 60
)

// Dynamic generation gates.
const (
	dynamicMinResponses    = 5
	dynamicMinInteractions = 2
	hesitationMillis       = 30 * 1000
	hesitationRevisions    = 2
)

// deepProbeDepth is the per-area response count that unlocks deep questions.
const deepProbeDepth = 3

// #endregion priorities

// #region candidate

// Candidate is a scored next-question proposal.
type Candidate struct {
	Question catalog.Question `json:"question"`
	Priority int              `json:"priority"`
	Reason   string           `json:"reason"`
}

// #endregion candidate

// #region selector

// Selector ranks next questions from the catalog, the dynamic pool, and the
// recorded state. It reads but never mutates the state.
type Selector struct {
	Catalog      *catalog.Catalog
	State        *session.State
	Interactions []enrich.Interaction
}

// Next returns up to limit candidates, highest priority first. Selection is a
// pure function of state, so asking twice without recording in between returns
// the same list.
func (s *Selector) Next(limit int) []Candidate {
	if limit <= 0 {
		limit = 3
	}
	var cands []Candidate
	cands = append(cands, s.followUps()...)
	cands = append(cands, s.clarifications()...)
	cands = append(cands, s.pool()...)
	cands = append(cands, s.deepProbes()...)
	cands = append(cands, s.gapSuggestions()...)
	cands = append(cands, s.areaCoverage()...)

	cands = s.filter(cands)
	if len(cands) == 0 {
		cands = s.fallback()
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Priority > cands[j].Priority
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

// filter drops answered questions and duplicate IDs. First occurrence wins so
// the higher-priority source keeps the slot.
func (s *Selector) filter(cands []Candidate) []Candidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if c.Question.ID == "" || seen[c.Question.ID] {
			continue
		}
		if _, answered := s.State.Responses[c.Question.ID]; answered {
			continue
		}
		seen[c.Question.ID] = true
		out = append(out, c)
	}
	return out
}

// #endregion selector

// #region follow-ups

// followUps proposes the conditional follow-ups of the latest response.
func (s *Selector) followUps() []Candidate {
	latest, ok := s.State.LatestResponse()
	if !ok {
		return nil
	}
	q, ok := s.resolve(latest.QuestionID)
	if !ok {
		log.Printf("[SELECT] last question %s not resolvable, skipping follow-ups", latest.QuestionID)
		return nil
	}
	var out []Candidate
	for _, fu := range q.FollowUps {
		if fu.If.Matches(latest.Value) {
			out = append(out, Candidate{
				Question: fu.Then,
				Priority: PriorityFollowUp,
				Reason:   "follows up on " + latest.QuestionID,
			})
		}
	}
	return out
}

// clarifications proposes a clarifying question when the latest answer matched
// a clarification rule, or when the respondent marked it uncertain.
func (s *Selector) clarifications() []Candidate {
	latest, ok := s.State.LatestResponse()
	if !ok {
		return nil
	}
	if cq, ok := s.Catalog.Clarification(latest.QuestionID, latest.Value); ok {
		return []Candidate{{
			Question: cq,
			Priority: PriorityClarification,
			Reason:   "clarifies " + latest.QuestionID,
		}}
	}
	if latest.Confidence == session.Uncertain {
		if q, ok := s.resolve(latest.QuestionID); ok {
			return []Candidate{{
				Question: catalog.Question{
					ID:    "clarify-" + latest.QuestionID,
					Area:  q.Area,
					Type:  catalog.TypeOpenEnded,
					Depth: catalog.DepthIntermediate,
					Text:  "You sounded unsure there. What makes that one hard to answer?",
				},
				Priority: PriorityClarification,
				Reason:   "low-confidence answer to " + latest.QuestionID,
			}}
		}
	}
	return nil
}

func (s *Selector) resolve(id string) (catalog.Question, bool) {
	if q, ok := s.Catalog.Get(id); ok {
		return q, true
	}
	return s.State.Generated(id)
}

// #endregion follow-ups

// #region dynamic

// Dynamic generates telemetry-driven questions. The result is deterministic
// for a given state and interaction log, so regenerating is idempotent once
// the pool has absorbed the questions.
func (s *Selector) Dynamic() []session.GeneratedQuestion {
	if len(s.State.Responses) < dynamicMinResponses || len(s.Interactions) < dynamicMinInteractions {
		return nil
	}
	var out []session.GeneratedQuestion
	for _, it := range s.Interactions {
		if it.ResponseMillis < hesitationMillis && it.Revisions < hesitationRevisions {
			continue
		}
		q, ok := s.resolve(it.QuestionID)
		if !ok {
			continue
		}
		out = append(out, session.GeneratedQuestion{
			Source:   "hesitation",
			Priority: PriorityDynamic,
			Question: catalog.Question{
				ID:    "dynamic-hesitation-" + it.QuestionID,
				Area:  q.Area,
				Type:  catalog.TypeOpenEnded,
				Depth: catalog.DepthDeep,
				Text:  "You spent a while on an earlier question. What were you weighing while you answered it?",
			},
		})
	}
	return out
}

// pool surfaces the dynamic candidate pool with each question's own priority.
func (s *Selector) pool() []Candidate {
	var out []Candidate
	for _, g := range s.State.GeneratedQuestions {
		out = append(out, Candidate{
			Question: g.Question,
			Priority: g.Priority,
			Reason:   "generated by " + g.Source,
		})
	}
	return out
}

// #endregion dynamic

// #region deep-probes

// deepProbes offers deep catalog questions for areas past the depth gate.
func (s *Selector) deepProbes() []Candidate {
	var out []Candidate
	for _, area := range catalog.Areas() {
		if s.State.ExplorationDepth[area] < deepProbeDepth {
			continue
		}
		for _, q := range s.Catalog.ByArea(area) {
			if q.Depth == catalog.DepthDeep {
				out = append(out, Candidate{
					Question: q,
					Priority: PriorityDeepProbe,
					Reason:   "deep probe for well-explored area " + string(area),
				})
			}
		}
	}
	return out
}

// gapSuggestions surfaces the questions attached to identified gaps.
func (s *Selector) gapSuggestions() []Candidate {
	var out []Candidate
	for _, g := range s.State.IdentifiedGaps {
		for _, id := range g.SuggestedQuestions {
			if q, ok := s.resolve(id); ok {
				out = append(out, Candidate{
					Question: q,
					Priority: PriorityGapSuggestion,
					Reason:   "fills gap: " + g.Description,
				})
			}
		}
	}
	return out
}

// #endregion deep-probes

// #region coverage

// areaCoverage opens untouched areas and deepens shallow ones. Untouched
// areas get their first catalog question; areas with fewer than three answers
// get the next unanswered one.
func (s *Selector) areaCoverage() []Candidate {
	var out []Candidate
	for _, area := range catalog.Areas() {
		depth := s.State.ExplorationDepth[area]
		switch {
		case depth == 0:
			if qs := s.Catalog.ByArea(area); len(qs) > 0 {
				out = append(out, Candidate{
					Question: qs[0],
					Priority: PriorityNewArea,
					Reason:   "opens unexplored area " + string(area),
				})
			}
		case depth < deepProbeDepth:
			for _, q := range s.Catalog.ByArea(area) {
				if _, answered := s.State.Responses[q.ID]; !answered && q.Depth != catalog.DepthDeep {
					out = append(out, Candidate{
						Question: q,
						Priority: PriorityShallowArea,
						Reason:   "deepens area " + string(area),
					})
					break
				}
			}
		}
	}
	return out
}

// fallback returns unanswered catalog defaults when every ranked source came
// up empty. Keeps the session askable until the bank is exhausted.
func (s *Selector) fallback() []Candidate {
	log.Printf("[SELECT] no ranked candidates, falling back to catalog defaults")
	var out []Candidate
	for _, q := range s.Catalog.Questions() {
		if _, answered := s.State.Responses[q.ID]; answered {
			continue
		}
		out = append(out, Candidate{
			Question: q,
			Priority: PriorityShallowArea,
			Reason:   "catalog default",
		})
	}
	return out
}

// #endregion coverage

// #region telemetry-window

// RecentInteractions trims the interaction log to entries newer than cutoff.
func RecentInteractions(all []enrich.Interaction, cutoff time.Time) []enrich.Interaction {
	var out []enrich.Interaction
	for _, it := range all {
		if it.Timestamp.After(cutoff) {
			out = append(out, it)
		}
	}
	return out
}

// #endregion telemetry-window
