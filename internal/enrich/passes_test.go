package enrich

import (
	"testing"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

func input(pairs map[string]any) Input {
	responses := make(map[string]session.Response, len(pairs))
	for id, v := range pairs {
		responses[id] = session.Response{QuestionID: id, Value: v}
	}
	return Input{Catalog: catalog.Builtin(), Responses: responses}
}

func TestPassOrderAndGates(t *testing.T) {
	passes := Passes()
	wantOrder := []string{
		"motivation-archaeology", "strength-validation", "hidden-interest-prediction",
		"future-self-projection", "life-stage", "geography", "authenticity",
	}
	if len(passes) != len(wantOrder) {
		t.Fatalf("passes = %d, want %d", len(passes), len(wantOrder))
	}
	for i, p := range passes {
		if p.Name != wantOrder[i] {
			t.Errorf("pass %d = %s, want %s", i, p.Name, wantOrder[i])
		}
		if p.MinResponses <= 0 {
			t.Errorf("pass %s has no response gate", p.Name)
		}
	}
	profileGated := map[string]bool{"life-stage": true, "geography": true, "authenticity": true}
	for _, p := range passes {
		if profileGated[p.Name] != p.NeedsProfile {
			t.Errorf("pass %s profile gate wrong", p.Name)
		}
	}
}

func TestMotivationArchaeology(t *testing.T) {
	in := input(map[string]any{
		"values-proud": "I want to prove everyone who doubted me wrong",
	})
	res := motivationArchaeology(in)

	if len(res.Questions) != 1 {
		t.Fatalf("questions = %+v, want one probe", res.Questions)
	}
	q := res.Questions[0]
	if q.Question.ID != "archaeology-values-proud" {
		t.Fatalf("probe ID = %q", q.Question.ID)
	}
	if q.Priority != PriorityArchaeology || q.Source != "motivation-archaeology" {
		t.Fatalf("probe metadata = %+v", q)
	}
	if q.Question.Depth != catalog.DepthDeep {
		t.Fatalf("probe depth = %v", q.Question.Depth)
	}
	if len(res.Insights) != 1 || res.Insights[0].Type != session.InsightHiddenInterest {
		t.Fatalf("insights = %+v", res.Insights)
	}

	// Neutral answers produce nothing.
	if res := motivationArchaeology(input(map[string]any{"values-proud": "a community garden"})); len(res.Questions) != 0 {
		t.Fatalf("unexpected probes: %+v", res.Questions)
	}
}

func TestStrengthValidation(t *testing.T) {
	in := input(nil)
	in.Insights = []session.Insight{
		{Type: session.InsightStrength, Area: catalog.AreaPeople, Text: "Strong mentor", Confidence: 0.6, BasedOn: []string{"q1", "q2"}},
		{Type: session.InsightStrength, Area: catalog.AreaCreativity, Text: "Visual thinker", Confidence: 0.5, BasedOn: []string{"q3"}},
		{Type: session.InsightPreference, Area: catalog.AreaValues, Text: "ignored", Confidence: 0.9, BasedOn: []string{"q4"}},
	}
	res := strengthValidation(in)

	if len(res.Insights) != 1 {
		t.Fatalf("insights = %+v, want one validation", res.Insights)
	}
	v := res.Insights[0]
	if v.Confidence <= 0.6 || v.Confidence > 1 {
		t.Fatalf("validated confidence = %v, want a raise over 0.6", v.Confidence)
	}
	// Single-evidence strength becomes a gap, not a validation.
	if len(res.Gaps) != 1 || res.Gaps[0].Area != catalog.AreaCreativity {
		t.Fatalf("gaps = %+v", res.Gaps)
	}
}

func TestHiddenInterestPrediction(t *testing.T) {
	// Creative signal in two non-creativity answers, creativity unexplored.
	in := input(map[string]any{
		"work-style-ideal-day": "mornings spent making things, maybe design work",
		"values-proud":         "I built and designed a newsletter from scratch",
	})
	res := hiddenInterestPrediction(in)

	foundInsight := false
	for _, ins := range res.Insights {
		if ins.Area == catalog.AreaCreativity {
			foundInsight = true
			if len(ins.BasedOn) != 2 {
				t.Fatalf("evidence = %v", ins.BasedOn)
			}
		}
	}
	if !foundInsight {
		t.Fatalf("no creativity prediction in %+v", res.Insights)
	}

	// Once the area has an answer, the prediction stops.
	in.Responses["creativity-outlet"] = session.Response{QuestionID: "creativity-outlet", Value: "Making things with my hands"}
	res = hiddenInterestPrediction(in)
	for _, ins := range res.Insights {
		if ins.Area == catalog.AreaCreativity {
			t.Fatalf("prediction for explored area: %+v", ins)
		}
	}
}

func TestFutureSelfProjection(t *testing.T) {
	// No five-year answer yet: the pass asks for one.
	res := futureSelfProjection(input(map[string]any{"values-proud": "x"}))
	if len(res.Questions) != 1 || res.Questions[0].Question.ID != "future-self-projection" {
		t.Fatalf("questions = %+v", res.Questions)
	}

	// Value and industry language in the answer both produce insights.
	res = futureSelfProjection(input(map[string]any{
		"learning-five-years": "running my own software consultancy, fully independent",
	}))
	if len(res.Questions) != 0 {
		t.Fatalf("unexpected probe when answer exists: %+v", res.Questions)
	}
	if len(res.Insights) != 2 {
		t.Fatalf("insights = %+v, want value + industry", res.Insights)
	}
}

func TestLifeStage(t *testing.T) {
	in := input(map[string]any{"values-proud": "x"})
	in.Profile = &Profile{LifeStage: "mid-career", Dependents: true}

	res := lifeStage(in)
	if len(res.Questions) != 1 || res.Questions[0].Question.ID != "life-stage-mid" {
		t.Fatalf("questions = %+v", res.Questions)
	}
	if res.Questions[0].Priority != PriorityLifeStage {
		t.Fatalf("priority = %d", res.Questions[0].Priority)
	}
	if len(res.Insights) != 1 {
		t.Fatalf("dependents insight missing: %+v", res.Insights)
	}

	in.Profile = &Profile{LifeStage: "retired-navy-admiral"}
	if res := lifeStage(in); len(res.Questions) != 0 {
		t.Fatalf("unknown stage should be silent, got %+v", res.Questions)
	}
}

func TestGeography(t *testing.T) {
	in := input(map[string]any{"values-proud": "x"})
	in.Profile = &Profile{Location: "Duluth", WillingToRelocate: false}

	res := geography(in)
	if len(res.Questions) != 1 || res.Questions[0].Question.ID != "geography-tradeoff" {
		t.Fatalf("questions = %+v", res.Questions)
	}
	if len(res.Gaps) != 1 || res.Gaps[0].Area != catalog.AreaEnvironment {
		t.Fatalf("gaps = %+v", res.Gaps)
	}

	// Willing to relocate: nothing to probe.
	in.Profile = &Profile{Location: "Duluth", WillingToRelocate: true}
	if res := geography(in); len(res.Questions) != 0 {
		t.Fatalf("unexpected probe: %+v", res.Questions)
	}
}

func TestAuthenticity(t *testing.T) {
	in := input(map[string]any{
		"values-proud":         "I should probably stay in accounting, it's the sensible path",
		"values-nonnegotiable": "my parents expected a stable profession",
		"problem-stuck":        "no obligation words here",
	})
	res := authenticity(in)

	if len(res.Insights) != 1 || res.Insights[0].Type != session.InsightGrowthArea {
		t.Fatalf("insights = %+v", res.Insights)
	}
	if len(res.Questions) != 1 || res.Questions[0].Priority != PriorityAuthenticity {
		t.Fatalf("questions = %+v", res.Questions)
	}

	// Want-language dominant: a strength, no probe.
	res = authenticity(input(map[string]any{
		"values-proud":         "I love the work and I'm excited by it",
		"values-nonnegotiable": "I want room to be curious about new problems",
		"creativity-expression": "I'm drawn to making things and passionate about craft",
	}))
	if len(res.Questions) != 0 {
		t.Fatalf("unexpected probe: %+v", res.Questions)
	}
	if len(res.Insights) != 1 || res.Insights[0].Type != session.InsightStrength {
		t.Fatalf("insights = %+v", res.Insights)
	}
}
