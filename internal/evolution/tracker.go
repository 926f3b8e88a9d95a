package evolution

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region config

// Config holds thresholds for trend classification and pattern derivation.
type Config struct {
	TrendDelta        float64       // mean step delta beyond which a trend exists
	VarianceCutoff    float64       // step-delta variance above which history is fluctuating
	ValidatedMin      float64       // current confidence needed for a validated insight
	PromoteMin        float64       // pattern confidence at which it becomes an insight
	StabilizingWindow float64       // max gap between last two points of a settling fluctuator
	StabilizingMin    float64       // min current confidence for a settling fluctuator
	HunchStart        float64       // max initial confidence for a validated hunch
	HunchEnd          float64       // min current confidence for a validated hunch
	PriorityDrop      float64       // min weakening trend strength flagging changed priorities
	StepInterval      time.Duration // synthetic spacing between history points
	ResponseTarget    int           // response count treated as full progress
}

// DefaultConfig returns the thresholds the engine ships with.
func DefaultConfig() Config {
	return Config{
		TrendDelta:        0.05,
		VarianceCutoff:    0.01,
		ValidatedMin:      0.8,
		PromoteMin:        0.85,
		StabilizingWindow: 0.05,
		StabilizingMin:    0.6,
		HunchStart:        0.6,
		HunchEnd:          0.8,
		PriorityDrop:      0.2,
		StepInterval:      5 * time.Minute,
		ResponseTarget:    20,
	}
}

// #endregion config

// #region output

// Output bundles the three derived evolution views. Callers replace their
// caches with it wholesale.
type Output struct {
	Evolutions []session.ConfidenceEvolution
	Patterns   []session.ConfidencePattern
	Summary    session.EvolutionSummary
}

// #endregion output

// #region track

// Track rebuilds all confidence-evolution views from the insight occurrence
// log. Occurrences group by identical insight text; within a group, ascending
// evidence count stands in for chronology. Timestamps are synthetic, spaced
// from a fixed epoch so replays are deterministic.
func Track(log []session.InsightOccurrence, responseCount int, cfg Config) Output {
	evolutions := buildEvolutions(log, cfg)
	patterns := derivePatterns(evolutions, cfg)
	summary := summarize(evolutions, responseCount, cfg)
	return Output{Evolutions: evolutions, Patterns: patterns, Summary: summary}
}

// #endregion track

// #region evolutions

var epoch = time.Unix(0, 0).UTC()

func buildEvolutions(log []session.InsightOccurrence, cfg Config) []session.ConfidenceEvolution {
	groups := make(map[string][]session.InsightOccurrence)
	var order []string
	for _, occ := range log {
		if _, seen := groups[occ.Text]; !seen {
			order = append(order, occ.Text)
		}
		groups[occ.Text] = append(groups[occ.Text], occ)
	}

	out := make([]session.ConfidenceEvolution, 0, len(order))
	for _, text := range order {
		occs := groups[text]
		sort.SliceStable(occs, func(i, j int) bool {
			return occs[i].EvidenceCount < occs[j].EvidenceCount
		})

		history := make([]session.ConfidenceSnapshot, len(occs))
		confs := make([]float64, len(occs))
		for i, occ := range occs {
			history[i] = session.ConfidenceSnapshot{
				Confidence:    session.Clamp(occ.Confidence),
				EvidenceCount: occ.EvidenceCount,
				Timestamp:     epoch.Add(time.Duration(i) * cfg.StepInterval),
			}
			confs[i] = history[i].Confidence
		}

		trend := classifyTrend(confs, cfg)
		current := confs[len(confs)-1]
		out = append(out, session.ConfidenceEvolution{
			Insight:       text,
			Area:          occs[0].Area,
			History:       history,
			Trend:         trend,
			TrendStrength: math.Abs(current - confs[0]),
			Current:       current,
			Validated:     current >= cfg.ValidatedMin && trend == "strengthening",
		})
	}
	return out
}

// classifyTrend labels a confidence history from its step deltas.
func classifyTrend(confs []float64, cfg Config) string {
	if len(confs) < 2 {
		return "stable"
	}
	deltas := make([]float64, len(confs)-1)
	var mean float64
	for i := 1; i < len(confs); i++ {
		deltas[i-1] = confs[i] - confs[i-1]
		mean += deltas[i-1]
	}
	mean /= float64(len(deltas))

	var variance float64
	for _, d := range deltas {
		diff := d - mean
		variance += diff * diff
	}
	variance /= float64(len(deltas))

	switch {
	case variance > cfg.VarianceCutoff:
		return "fluctuating"
	case mean > cfg.TrendDelta:
		return "strengthening"
	case mean < -cfg.TrendDelta:
		return "weakening"
	default:
		return "stable"
	}
}

// #endregion evolutions

// #region patterns

func derivePatterns(evolutions []session.ConfidenceEvolution, cfg Config) []session.ConfidencePattern {
	var out []session.ConfidencePattern

	// Strengthening clusters: two or more strengthening insights in one area.
	byArea := make(map[string][]session.ConfidenceEvolution)
	var areaOrder []string
	for _, ev := range evolutions {
		if ev.Trend != "strengthening" {
			continue
		}
		key := string(ev.Area)
		if _, seen := byArea[key]; !seen {
			areaOrder = append(areaOrder, key)
		}
		byArea[key] = append(byArea[key], ev)
	}
	for _, key := range areaOrder {
		cluster := byArea[key]
		if len(cluster) < 2 {
			continue
		}
		var sum float64
		texts := make([]string, len(cluster))
		for i, ev := range cluster {
			sum += ev.Current
			texts[i] = ev.Insight
		}
		out = append(out, session.ConfidencePattern{
			Kind:        "strengthening-cluster",
			Area:        cluster[0].Area,
			Description: fmt.Sprintf("Multiple %s insights are gaining confidence together - this area is coming into focus", key),
			Insights:    texts,
			Confidence:  session.Clamp(sum / float64(len(cluster))),
		})
	}

	for _, ev := range evolutions {
		n := len(ev.History)
		switch {
		case ev.Trend == "fluctuating" && n >= 2 &&
			math.Abs(ev.History[n-1].Confidence-ev.History[n-2].Confidence) < cfg.StabilizingWindow &&
			ev.Current >= cfg.StabilizingMin:
			out = append(out, session.ConfidencePattern{
				Kind:        "stabilizing-fluctuation",
				Area:        ev.Area,
				Description: fmt.Sprintf("After swinging back and forth, %q is settling", ev.Insight),
				Insights:    []string{ev.Insight},
				Confidence:  ev.Current,
			})
		case ev.History[0].Confidence < cfg.HunchStart && ev.Current >= cfg.HunchEnd:
			out = append(out, session.ConfidencePattern{
				Kind:        "validated-hunch",
				Area:        ev.Area,
				Description: fmt.Sprintf("What started as a hunch - %q - has been validated by later answers", ev.Insight),
				Insights:    []string{ev.Insight},
				Confidence:  ev.Current,
			})
		case ev.Trend == "weakening" && ev.TrendStrength >= cfg.PriorityDrop:
			out = append(out, session.ConfidencePattern{
				Kind:        "changing-priority",
				Area:        ev.Area,
				Description: fmt.Sprintf("Confidence in %q has dropped noticeably - your priorities may be shifting", ev.Insight),
				Insights:    []string{ev.Insight},
				Confidence:  session.Clamp(0.4 + ev.TrendStrength),
			})
		}
	}
	return out
}

// #endregion patterns

// #region summary

func summarize(evolutions []session.ConfidenceEvolution, responseCount int, cfg Config) session.EvolutionSummary {
	var sum session.EvolutionSummary
	var strengthTotal, currentTotal float64
	validated := 0

	for _, ev := range evolutions {
		switch ev.Trend {
		case "strengthening":
			sum.Strengthening++
		case "weakening":
			sum.Weakening++
		case "fluctuating":
			sum.Fluctuating++
		default:
			sum.Stable++
		}
		strengthTotal += ev.TrendStrength
		currentTotal += ev.Current
		if ev.Validated {
			validated++
		}
	}

	var meanStrength, meanCurrent, validatedRatio float64
	if len(evolutions) > 0 {
		n := float64(len(evolutions))
		meanStrength = strengthTotal / n
		meanCurrent = currentTotal / n
		validatedRatio = float64(validated) / n
	}

	sum.OverallStability = 1 - math.Min(2*meanStrength, 1)

	responseRatio := math.Min(float64(responseCount)/float64(cfg.ResponseTarget), 1)
	sum.SelfDiscoveryProgress = session.Clamp(
		0.4*responseRatio + 0.4*meanCurrent + 0.2*validatedRatio,
	)
	return sum
}

// #endregion summary
