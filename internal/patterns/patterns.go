package patterns

import (
	"sort"
	"strings"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region constants

// MinResponses gates pattern recognition; below it the pass is a no-op.
const MinResponses = 3

// #endregion constants

// #region analysis

// Analysis is the full pattern-recognition output. Callers replace their
// cached views with it wholesale; nothing here is merged incrementally.
type Analysis struct {
	Consistency       []session.ConsistencyPattern
	Intensities       []session.PreferenceIntensity
	Hierarchy         *session.ValueHierarchy
	Contradictions    []session.Contradiction
	HiddenMotivations []session.HiddenMotivation
}

// #endregion analysis

// #region recognize

// Recognize computes all pattern views from the full response mapping.
// Pure function of its inputs; returns the zero Analysis below MinResponses.
func Recognize(cat *catalog.Catalog, responses map[string]session.Response) Analysis {
	if len(responses) < MinResponses {
		return Analysis{}
	}
	return Analysis{
		Consistency:       consistencyPatterns(cat, responses),
		Intensities:       preferenceIntensities(cat, responses),
		Hierarchy:         valueHierarchy(responses),
		Contradictions:    contradictions(responses),
		HiddenMotivations: hiddenMotivations(responses),
	}
}

// #endregion recognize

// #region area-resolution

func areaOf(cat *catalog.Catalog, questionID string) catalog.Area {
	if q, ok := cat.Get(questionID); ok {
		return q.Area
	}
	return catalog.AreaValues
}

func responseText(r session.Response) string {
	return strings.Join(catalog.Strings(r.Value), " ")
}

// sortedIDs gives deterministic iteration over the response map.
func sortedIDs(responses map[string]session.Response) []string {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// #endregion area-resolution

// #region consistency

// consistencyPatterns finds value themes recurring within one area across
// at least two responses.
func consistencyPatterns(cat *catalog.Catalog, responses map[string]session.Response) []session.ConsistencyPattern {
	values := catalog.ValueRules()

	type themeKey struct {
		area  catalog.Area
		theme string
	}
	support := make(map[themeKey][]string)
	areaCounts := make(map[catalog.Area]int)

	for _, id := range sortedIDs(responses) {
		r := responses[id]
		area := areaOf(cat, id)
		areaCounts[area]++
		for _, theme := range values.All(responseText(r)) {
			k := themeKey{area, theme}
			support[k] = append(support[k], id)
		}
	}

	var out []session.ConsistencyPattern
	for k, ids := range support {
		if len(ids) < 2 {
			continue
		}
		out = append(out, session.ConsistencyPattern{
			Area:     k.area,
			Theme:    k.theme,
			Support:  ids,
			Strength: session.Clamp(float64(len(ids)) / float64(areaCounts[k.area])),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Area != out[j].Area {
			return out[i].Area < out[j].Area
		}
		return out[i].Theme < out[j].Theme
	})
	return out
}

// #endregion consistency

// #region intensities

// preferenceIntensities classifies each stated preference as weak, moderate,
// or strong from wording or scale magnitude.
func preferenceIntensities(cat *catalog.Catalog, responses map[string]session.Response) []session.PreferenceIntensity {
	intensity := catalog.IntensityRules()

	var out []session.PreferenceIntensity
	for _, id := range sortedIDs(responses) {
		r := responses[id]
		area := areaOf(cat, id)

		if n, ok := catalog.Number(r.Value); ok {
			level := "moderate"
			switch {
			case n >= 8 || n <= 2:
				level = "strong"
			case n >= 4 && n <= 6:
				level = "weak"
			}
			out = append(out, session.PreferenceIntensity{
				QuestionID: id,
				Area:       area,
				Preference: responseText(r),
				Level:      level,
			})
			continue
		}

		text := responseText(r)
		if text == "" {
			continue
		}
		level, ok := intensity.First(text)
		if !ok {
			level = "moderate"
		}
		out = append(out, session.PreferenceIntensity{
			QuestionID: id,
			Area:       area,
			Preference: truncate(text, 80),
			Level:      level,
		})
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// #endregion intensities

// #region hierarchy

// valueHierarchy ranks detected values. Only materializes with enough signal:
// at least three value hits across at least two distinct values.
func valueHierarchy(responses map[string]session.Response) *session.ValueHierarchy {
	values := catalog.ValueRules()

	counts := make(map[string]int)
	total := 0
	for _, id := range sortedIDs(responses) {
		for _, v := range values.All(responseText(responses[id])) {
			counts[v]++
			total++
		}
	}
	if total < 3 || len(counts) < 2 {
		return nil
	}

	ranked := make([]string, 0, len(counts))
	for v := range counts {
		ranked = append(ranked, v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	var conflicts []session.ValueConflict
	for _, pair := range conflictingValues {
		if containsValue(ranked, pair.first) && containsValue(ranked, pair.second) {
			conflicts = append(conflicts, session.ValueConflict{
				First:       pair.first,
				Second:      pair.second,
				Description: pair.description,
			})
		}
	}

	return &session.ValueHierarchy{
		TopValues:      ranked,
		Conflicts:      conflicts,
		CoreMotivation: coreMotivations[ranked[0]],
	}
}

func containsValue(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// #endregion hierarchy

// #region contradictions

// contradictions scans the declarative rule table for response pairs whose
// implied preferences conflict.
func contradictions(responses map[string]session.Response) []session.Contradiction {
	var out []session.Contradiction
	for _, rule := range contradictionRules {
		ra, okA := responses[rule.questionA]
		rb, okB := responses[rule.questionB]
		if !okA || !okB {
			continue
		}
		if rule.condA.Matches(ra.Value) && rule.condB.Matches(rb.Value) {
			out = append(out, session.Contradiction{
				QuestionA:          rule.questionA,
				QuestionB:          rule.questionB,
				Description:        rule.description,
				Severity:           rule.severity,
				NeedsClarification: rule.clarify,
			})
		}
	}
	return out
}

// #endregion contradictions

// #region hidden-motivations

// hiddenMotivations combines responses across questions; none of these are
// visible from any single answer.
func hiddenMotivations(responses map[string]session.Response) []session.HiddenMotivation {
	var out []session.HiddenMotivation

	for _, rule := range motivationCombos {
		evidence := make([]string, 0, len(rule.needs))
		matched := true
		for _, need := range rule.needs {
			r, ok := responses[need.questionID]
			if !ok || !need.cond.Matches(r.Value) {
				matched = false
				break
			}
			evidence = append(evidence, need.questionID)
		}
		if matched {
			out = append(out, session.HiddenMotivation{
				Motivation: rule.motivation,
				Evidence:   evidence,
				Confidence: rule.confidence,
			})
		}
	}

	// Keyword scan across open-ended answers: a motivation theme that shows
	// up in two or more separate responses is treated as load-bearing.
	motive := catalog.MotivationRules()
	themeEvidence := make(map[string][]string)
	for _, id := range sortedIDs(responses) {
		for _, theme := range motive.All(responseText(responses[id])) {
			themeEvidence[theme] = append(themeEvidence[theme], id)
		}
	}
	themes := make([]string, 0, len(themeEvidence))
	for theme := range themeEvidence {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	for _, theme := range themes {
		ids := themeEvidence[theme]
		if len(ids) < 2 {
			continue
		}
		out = append(out, session.HiddenMotivation{
			Motivation: motivationThemes[theme],
			Evidence:   ids,
			Confidence: session.Clamp(0.4 + 0.1*float64(len(ids))),
		})
	}
	return out
}

// #endregion hidden-motivations
