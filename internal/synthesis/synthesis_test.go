package synthesis

import (
	"testing"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

func respMap(pairs map[string]any) map[string]session.Response {
	out := make(map[string]session.Response, len(pairs))
	for id, v := range pairs {
		out[id] = session.Response{QuestionID: id, Value: v}
	}
	return out
}

func TestSynthesizeGate(t *testing.T) {
	// Four responses satisfy a rule but sit below the gate.
	responses := respMap(map[string]any{
		"work-style-solo-team": "Deep focus, alone",
		"problem-kind":         "A technical puzzle with a right answer",
		"values-proud":         "x",
		"problem-stuck":        "y",
	})
	if got := Synthesize(responses); got != nil {
		t.Fatalf("expected nil below %d responses, got %+v", MinResponses, got)
	}
}

func TestSynthesizeCrossDomain(t *testing.T) {
	responses := respMap(map[string]any{
		"work-style-solo-team": "Deep focus, alone",
		"problem-kind":         "A technical puzzle with a right answer",
		"values-proud":         "x",
		"problem-stuck":        "y",
		"environment-culture":  "z",
	})
	out := Synthesize(responses)
	if len(out) != 1 {
		t.Fatalf("insights = %+v, want exactly one", out)
	}
	ins := out[0]
	if ins.Kind != "cross-domain" {
		t.Fatalf("kind = %q", ins.Kind)
	}
	if len(ins.Areas) < 2 {
		t.Fatalf("synthesized insight must span 2+ areas, got %v", ins.Areas)
	}
	if ins.Areas[0] != catalog.AreaWorkStyle || ins.Areas[1] != catalog.AreaProblemSolving {
		t.Fatalf("areas = %v", ins.Areas)
	}
	if len(ins.Implications) == 0 {
		t.Fatal("expected implications")
	}
}

func TestSynthesizeParadox(t *testing.T) {
	responses := respMap(map[string]any{
		"structure-planning":    "I need them to function",
		"creativity-blank-page": "Blank page excites me",
		"values-proud":          "a",
		"problem-stuck":         "b",
		"environment-culture":   "c",
	})
	out := Synthesize(responses)
	if len(out) != 1 || out[0].Kind != "paradox" {
		t.Fatalf("out = %+v, want one paradox", out)
	}
}

func TestSynthesizeScaleRule(t *testing.T) {
	responses := respMap(map[string]any{
		"problem-risk":         8.0,
		"environment-pressure": 9.0,
		"values-proud":         "a",
		"problem-stuck":        "b",
		"environment-culture":  "c",
	})
	out := Synthesize(responses)
	if len(out) != 1 || out[0].Kind != "nuanced-preference" {
		t.Fatalf("out = %+v, want one nuanced-preference", out)
	}

	// Below the scale threshold the rule stays silent.
	responses["problem-risk"] = session.Response{QuestionID: "problem-risk", Value: 6.0}
	if out := Synthesize(responses); len(out) != 0 {
		t.Fatalf("unexpected insights at sub-threshold scale: %+v", out)
	}
}

func TestSynthesizeNoPartialMatch(t *testing.T) {
	// Only one leg of the solo-puzzle rule present.
	responses := respMap(map[string]any{
		"work-style-solo-team": "Deep focus, alone",
		"problem-kind":         "A messy human situation",
		"values-proud":         "a",
		"problem-stuck":        "b",
		"environment-culture":  "c",
	})
	if out := Synthesize(responses); len(out) != 0 {
		t.Fatalf("partial match should yield nothing, got %+v", out)
	}
}
