package patterns

import (
	"strings"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region neutral-stub

// neutralHierarchy stands in when no value hierarchy has materialized yet, so
// confidence recomputation always has something to align against.
func neutralHierarchy() *session.ValueHierarchy {
	return &session.ValueHierarchy{CoreMotivation: "still exploring"}
}

// #endregion neutral-stub

// #region recompute

// RecomputeConfidence rescores an existing insight from corroboration count
// and pattern strength. Not derived from scratch: the insight's evidence list
// is taken as given and the analysis supplies the pattern context.
// Components: evidence base 0.3 + up to 0.3, area pattern strength up to 0.25,
// hierarchy alignment 0.15. Result clamped to [0,1].
func RecomputeConfidence(ins session.Insight, a Analysis) float64 {
	evidence := len(ins.BasedOn)
	if evidence > 4 {
		evidence = 4
	}
	conf := 0.3 + 0.075*float64(evidence)

	var bestStrength float64
	for _, p := range a.Consistency {
		if p.Area == ins.Area && p.Strength > bestStrength {
			bestStrength = p.Strength
		}
	}
	conf += 0.25 * bestStrength

	h := a.Hierarchy
	if h == nil {
		h = neutralHierarchy()
	}
	lower := strings.ToLower(ins.Text)
	for _, v := range h.TopValues {
		if strings.Contains(lower, v) {
			conf += 0.15
			break
		}
	}

	return session.Clamp(conf)
}

// #endregion recompute
