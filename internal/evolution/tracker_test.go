package evolution

import (
	"testing"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

func occurrences(text string, confs ...float64) []session.InsightOccurrence {
	out := make([]session.InsightOccurrence, len(confs))
	for i, c := range confs {
		out[i] = session.InsightOccurrence{
			Text:          text,
			Type:          session.InsightPreference,
			Area:          catalog.AreaWorkStyle,
			Confidence:    c,
			EvidenceCount: i + 1,
		}
	}
	return out
}

func TestTrendClassification(t *testing.T) {
	tests := []struct {
		name  string
		confs []float64
		want  string
	}{
		{"steady rise", []float64{0.3, 0.4, 0.5}, "strengthening"},
		{"flat", []float64{0.5, 0.5, 0.5}, "stable"},
		{"swing", []float64{0.3, 0.6, 0.2}, "fluctuating"},
		{"steady fall", []float64{0.7, 0.6, 0.5}, "weakening"},
		{"single point", []float64{0.5}, "stable"},
		{"tiny drift", []float64{0.5, 0.52, 0.54}, "stable"},
	}
	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Track(occurrences("insight", tt.confs...), 10, cfg)
			if len(out.Evolutions) != 1 {
				t.Fatalf("evolutions = %d, want 1", len(out.Evolutions))
			}
			if got := out.Evolutions[0].Trend; got != tt.want {
				t.Errorf("trend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvolutionShape(t *testing.T) {
	cfg := DefaultConfig()
	// Occurrences arrive out of order; evidence count restores chronology.
	log := []session.InsightOccurrence{
		{Text: "solo focus", Area: catalog.AreaWorkStyle, Confidence: 0.9, EvidenceCount: 3},
		{Text: "solo focus", Area: catalog.AreaWorkStyle, Confidence: 0.5, EvidenceCount: 1},
		{Text: "solo focus", Area: catalog.AreaWorkStyle, Confidence: 0.7, EvidenceCount: 2},
	}
	out := Track(log, 10, cfg)
	if len(out.Evolutions) != 1 {
		t.Fatalf("evolutions = %d, want 1", len(out.Evolutions))
	}
	ev := out.Evolutions[0]

	if ev.Trend != "strengthening" {
		t.Fatalf("trend = %q", ev.Trend)
	}
	if ev.Current != 0.9 {
		t.Fatalf("current = %v, want last-by-evidence 0.9", ev.Current)
	}
	if !approx(ev.TrendStrength, 0.4) {
		t.Fatalf("trendStrength = %v, want |0.9-0.5|", ev.TrendStrength)
	}
	if !ev.Validated {
		t.Fatal("strengthening at 0.9 should be validated")
	}
	for i := 1; i < len(ev.History); i++ {
		prev, cur := ev.History[i-1], ev.History[i]
		if !cur.Timestamp.After(prev.Timestamp) {
			t.Fatal("synthetic timestamps must be strictly increasing")
		}
		if cur.Timestamp.Sub(prev.Timestamp) != cfg.StepInterval {
			t.Fatalf("timestamp spacing = %v, want %v", cur.Timestamp.Sub(prev.Timestamp), cfg.StepInterval)
		}
	}
}

func TestValidatedNeedsStrengthening(t *testing.T) {
	out := Track(occurrences("held steady", 0.85, 0.85, 0.85), 10, DefaultConfig())
	ev := out.Evolutions[0]
	if ev.Trend != "stable" || ev.Validated {
		t.Fatalf("high but flat confidence must not validate: %+v", ev)
	}
}

func TestStrengtheningClusterPattern(t *testing.T) {
	log := append(
		occurrences("first insight", 0.4, 0.6, 0.8),
		occurrences("second insight", 0.5, 0.7, 0.9)...,
	)
	out := Track(log, 10, DefaultConfig())

	var cluster *session.ConfidencePattern
	for i := range out.Patterns {
		if out.Patterns[i].Kind == "strengthening-cluster" {
			cluster = &out.Patterns[i]
		}
	}
	if cluster == nil {
		t.Fatalf("no cluster in %+v", out.Patterns)
	}
	if cluster.Area != catalog.AreaWorkStyle || len(cluster.Insights) != 2 {
		t.Fatalf("cluster = %+v", cluster)
	}
	if !approx(cluster.Confidence, 0.85) { // mean of 0.8 and 0.9
		t.Fatalf("cluster confidence = %v", cluster.Confidence)
	}
}

func TestValidatedHunchPattern(t *testing.T) {
	out := Track(occurrences("hunch", 0.4, 0.6, 0.85), 10, DefaultConfig())
	found := false
	for _, p := range out.Patterns {
		if p.Kind == "validated-hunch" {
			found = true
			if p.Confidence != 0.85 {
				t.Fatalf("hunch confidence = %v", p.Confidence)
			}
		}
	}
	if !found {
		t.Fatalf("no validated-hunch in %+v", out.Patterns)
	}
}

func TestChangingPriorityPattern(t *testing.T) {
	out := Track(occurrences("fading", 0.8, 0.65, 0.5), 10, DefaultConfig())
	found := false
	for _, p := range out.Patterns {
		if p.Kind == "changing-priority" {
			found = true
			if !approx(p.Confidence, 0.7) { // 0.4 + trendStrength 0.3
				t.Fatalf("priority confidence = %v", p.Confidence)
			}
		}
	}
	if !found {
		t.Fatalf("no changing-priority in %+v", out.Patterns)
	}
}

func TestStabilizingFluctuationPattern(t *testing.T) {
	out := Track(occurrences("settling", 0.3, 0.7, 0.68), 10, DefaultConfig())
	if len(out.Evolutions) != 1 || out.Evolutions[0].Trend != "fluctuating" {
		t.Fatalf("setup broken: %+v", out.Evolutions)
	}
	found := false
	for _, p := range out.Patterns {
		if p.Kind == "stabilizing-fluctuation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no stabilizing-fluctuation in %+v", out.Patterns)
	}
}

func TestSummary(t *testing.T) {
	log := append(
		occurrences("up", 0.3, 0.5, 0.8),
		occurrences("flat", 0.5, 0.5, 0.5)...,
	)
	out := Track(log, 10, DefaultConfig())
	s := out.Summary

	if s.Strengthening != 1 || s.Stable != 1 || s.Weakening != 0 || s.Fluctuating != 0 {
		t.Fatalf("counts = %+v", s)
	}
	// meanStrength = (0.5 + 0) / 2 = 0.25; stability = 1 - min(0.5, 1).
	if !approx(s.OverallStability, 0.5) {
		t.Fatalf("stability = %v", s.OverallStability)
	}
	// responseRatio 0.5, meanCurrent (0.8+0.5)/2, validated 1 of 2.
	want := 0.4*0.5 + 0.4*0.65 + 0.2*0.5
	if !approx(s.SelfDiscoveryProgress, want) {
		t.Fatalf("progress = %v, want %v", s.SelfDiscoveryProgress, want)
	}
}

func TestEmptyLog(t *testing.T) {
	out := Track(nil, 0, DefaultConfig())
	if len(out.Evolutions) != 0 || len(out.Patterns) != 0 {
		t.Fatalf("empty log produced views: %+v", out)
	}
	if out.Summary.OverallStability != 1 {
		t.Fatalf("stability with no evolutions = %v, want 1", out.Summary.OverallStability)
	}
	if out.Summary.SelfDiscoveryProgress != 0 {
		t.Fatalf("progress = %v, want 0", out.Summary.SelfDiscoveryProgress)
	}
}

func approx(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}
