package selector

import (
	"testing"
	"time"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/enrich"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

func newSelector() *Selector {
	return &Selector{Catalog: catalog.Builtin(), State: session.NewState()}
}

func record(s *Selector, id string, value any) {
	q, ok := s.Catalog.Get(id)
	if !ok {
		q = catalog.Placeholder(id)
	}
	last, _ := s.State.LatestResponse()
	s.State.Upsert(session.Response{
		QuestionID: id,
		Value:      value,
		Timestamp:  last.Timestamp.Add(time.Minute),
	}, q.Area)
}

func TestEmptySessionOpensAreas(t *testing.T) {
	s := newSelector()
	cands := s.Next(3)
	if len(cands) != 3 {
		t.Fatalf("candidates = %d, want 3", len(cands))
	}
	for _, c := range cands {
		if c.Priority != PriorityNewArea {
			t.Fatalf("fresh session should offer area openers, got %+v", c)
		}
	}
	// First candidate is the first question of the first area.
	if cands[0].Question.ID != "work-style-solo-team" {
		t.Fatalf("first candidate = %s", cands[0].Question.ID)
	}
}

func TestFollowUpOutranksEverything(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "Deep focus, alone")

	cands := s.Next(3)
	if cands[0].Question.ID != "work-style-solo-why" {
		t.Fatalf("top candidate = %s, want matched follow-up", cands[0].Question.ID)
	}
	if cands[0].Priority != PriorityFollowUp {
		t.Fatalf("priority = %d", cands[0].Priority)
	}
}

func TestFollowUpConditionMustMatch(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "A mix of both")

	for _, c := range s.Next(5) {
		if c.Priority == PriorityFollowUp {
			t.Fatalf("follow-up offered without matching condition: %+v", c)
		}
	}
}

func TestClarificationRanksBelowFollowUp(t *testing.T) {
	s := newSelector()
	record(s, "values-tradeoff", "Income and security")

	cands := s.Next(3)
	if cands[0].Priority != PriorityClarification {
		t.Fatalf("top = %+v, want clarification", cands[0])
	}
	if cands[0].Question.ID != "values-security-clarify" {
		t.Fatalf("clarification = %s", cands[0].Question.ID)
	}
}

func TestUncertainAnswerGetsClarifier(t *testing.T) {
	s := newSelector()
	q, _ := s.Catalog.Get("problem-kind")
	s.State.Upsert(session.Response{
		QuestionID: "problem-kind",
		Value:      "A messy human situation",
		Timestamp:  time.Now(),
		Confidence: session.Uncertain,
	}, q.Area)

	cands := s.Next(3)
	if cands[0].Question.ID != "clarify-problem-kind" || cands[0].Priority != PriorityClarification {
		t.Fatalf("top = %+v, want synthesized clarifier", cands[0])
	}
}

func TestPoolQuestionsCarryOwnPriority(t *testing.T) {
	s := newSelector()
	record(s, "values-proud", "building things")
	s.State.AddGenerated(catalog.Question{
		ID: "authenticity-probe", Area: catalog.AreaValues, Type: catalog.TypeOpenEnded, Text: "?",
	}, "authenticity", 88)

	cands := s.Next(5)
	if cands[0].Question.ID != "authenticity-probe" || cands[0].Priority != 88 {
		t.Fatalf("top = %+v, want pooled probe at 88", cands[0])
	}
}

func TestGapSuggestionsRankAboveCoverage(t *testing.T) {
	s := newSelector()
	record(s, "work-style-ideal-day", "quiet")
	s.State.AddGap(session.Gap{
		Area:               catalog.AreaValues,
		Description:        "income floor unknown",
		Importance:         "high",
		SuggestedQuestions: []string{"values-tradeoff"},
	})

	cands := s.Next(3)
	if cands[0].Question.ID != "values-tradeoff" || cands[0].Priority != PriorityGapSuggestion {
		t.Fatalf("top = %+v, want gap suggestion", cands[0])
	}
}

func TestAnsweredQuestionsAreFiltered(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "A mix of both")
	record(s, "values-tradeoff", "Meaning and impact")

	for _, c := range s.Next(10) {
		if _, answered := s.State.Responses[c.Question.ID]; answered {
			t.Fatalf("answered question offered again: %s", c.Question.ID)
		}
	}
}

func TestSelectionIsIdempotent(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "Deep focus, alone")
	record(s, "values-tradeoff", "Income and security")

	first := s.Next(5)
	second := s.Next(5)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Question.ID != second[i].Question.ID || first[i].Priority != second[i].Priority {
			t.Fatalf("call %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestShallowAreaDeepening(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "A mix of both")

	found := false
	for _, c := range s.Next(20) {
		if c.Question.Area == catalog.AreaWorkStyle && c.Priority == PriorityShallowArea {
			found = true
			if c.Question.ID == "work-style-solo-team" {
				t.Fatal("deepening offered the answered question")
			}
		}
	}
	if !found {
		t.Fatal("no deepening candidate for the shallow area")
	}
}

func TestDeepProbeAfterDepthGate(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "A mix of both")
	record(s, "work-style-pace", "Steady and predictable")
	record(s, "work-style-energy", 5.0)

	found := false
	for _, c := range s.Next(20) {
		if c.Priority == PriorityDeepProbe {
			found = true
			if c.Question.Depth != catalog.DepthDeep {
				t.Fatalf("deep probe with depth %v", c.Question.Depth)
			}
		}
	}
	if !found {
		t.Fatal("no deep probe for a depth-3 area")
	}
}

func TestDynamicGeneration(t *testing.T) {
	s := newSelector()
	for i, id := range []string{"work-style-solo-team", "values-tradeoff", "problem-kind", "environment-size", "learning-style"} {
		q, _ := s.Catalog.Get(id)
		s.State.Upsert(session.Response{QuestionID: id, Value: "x", Timestamp: time.Unix(int64(i), 0)}, q.Area)
	}
	s.Interactions = []enrich.Interaction{
		{QuestionID: "values-tradeoff", ResponseMillis: 45_000, Revisions: 0},
		{QuestionID: "problem-kind", ResponseMillis: 2_000, Revisions: 0},
	}

	gen := s.Dynamic()
	if len(gen) != 1 {
		t.Fatalf("generated = %+v, want one hesitation probe", gen)
	}
	if gen[0].Question.ID != "dynamic-hesitation-values-tradeoff" || gen[0].Priority != PriorityDynamic {
		t.Fatalf("generated = %+v", gen[0])
	}

	// Below the response gate nothing generates.
	s2 := newSelector()
	record(s2, "values-tradeoff", "x")
	s2.Interactions = s.Interactions
	if gen := s2.Dynamic(); len(gen) != 0 {
		t.Fatalf("generation below gate: %+v", gen)
	}
}

func TestLimitAndOrdering(t *testing.T) {
	s := newSelector()
	record(s, "work-style-solo-team", "Deep focus, alone")

	cands := s.Next(2)
	if len(cands) != 2 {
		t.Fatalf("limit not applied: %d", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Priority > cands[i-1].Priority {
			t.Fatalf("candidates out of order: %+v", cands)
		}
	}
}

func TestFallbackWhenBankNearlyExhausted(t *testing.T) {
	s := newSelector()
	// Answer every top-level question; only follow-ups and pool remain.
	for _, q := range s.Catalog.Questions() {
		record(s, q.ID, "unmatched value")
	}
	cands := s.Next(3)
	if len(cands) != 0 {
		// Any survivors must be unanswered.
		for _, c := range cands {
			if _, answered := s.State.Responses[c.Question.ID]; answered {
				t.Fatalf("fallback offered answered question %s", c.Question.ID)
			}
		}
	}
}
