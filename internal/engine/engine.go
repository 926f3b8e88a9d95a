package engine

// #region imports
import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/enrich"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/evolution"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/patterns"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/selector"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/synthesis"
)

// #endregion

// #region completion-thresholds

// Completion evaluator constants.
const (
	responseTarget = 50
	insightTarget  = 10
	areaTarget     = 8

	completeMinPct       = 70
	completeMinInsights  = 5
	completeMinResponses = 25

	finishMinPct       = 40
	finishMinResponses = 15
)

// #endregion completion-thresholds

// #region engine-struct

// Engine owns one session's state and coordinates every recording pass.
// Not safe for concurrent use; callers serialize access per session.
type Engine struct {
	cat     *catalog.Catalog
	st      *session.State
	cfg     evolution.Config
	profile *enrich.Profile
	tracker enrich.Tracker
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithProfile attaches a user profile, enabling the profile-gated passes.
func WithProfile(p *enrich.Profile) Option {
	return func(e *Engine) { e.profile = p }
}

// WithInteractionTracker attaches response telemetry for dynamic generation.
func WithInteractionTracker(t enrich.Tracker) Option {
	return func(e *Engine) { e.tracker = t }
}

// WithEvolutionConfig overrides the confidence-evolution thresholds.
func WithEvolutionConfig(cfg evolution.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// New creates an engine with a fresh session state.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat: cat,
		st:  session.NewState(),
		cfg: evolution.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// #endregion engine-struct

// #region record

// RecordResponse commits a response and reruns every derived-view pass in
// fixed order. Only the base commit can fail; analysis and enrichment passes
// are best-effort and log instead of surfacing errors.
func (e *Engine) RecordResponse(resp session.Response) error {
	if resp.QuestionID == "" {
		return fmt.Errorf("record response: empty question ID")
	}
	if resp.Timestamp.IsZero() {
		resp.Timestamp = session.Now()
	}

	q := e.resolveQuestion(resp.QuestionID)
	e.st.Upsert(resp, q.Area)
	log.Printf("[ENGINE] recorded %s (area=%s, total=%d)", resp.QuestionID, q.Area, len(e.st.Responses))

	e.scanTriggers()
	e.scanGaps()

	analysis := patterns.Recognize(e.cat, e.st.Responses)
	e.applyAnalysis(analysis)

	if len(e.st.Responses) >= synthesis.MinResponses {
		e.st.SynthesizedInsights = synthesis.Synthesize(e.st.Responses)
	}

	e.runEnrichment()
	if len(e.st.Responses) >= patterns.MinResponses {
		e.recomputeConfidences(analysis)
	}
	e.trackEvolution()

	return nil
}

// resolveQuestion finds the question for an incoming response. Unknown IDs
// get a placeholder so recording never blocks; selection stays catalog-driven.
func (e *Engine) resolveQuestion(id string) catalog.Question {
	if q, ok := e.cat.Get(id); ok {
		return q
	}
	if q, ok := e.st.Generated(id); ok {
		return q
	}
	log.Printf("[ENGINE] unknown question %s, recording against placeholder", id)
	return catalog.Placeholder(id)
}

// #endregion record

// #region triggers

// scanTriggers evaluates every catalog trigger against the full response set.
// Insight dedupe makes the rescan idempotent for unchanged answers.
func (e *Engine) scanTriggers() {
	for _, q := range e.cat.Questions() {
		r, ok := e.st.Responses[q.ID]
		if !ok {
			continue
		}
		for _, trig := range q.InsightTriggers {
			if !trig.When.Matches(r.Value) {
				continue
			}
			e.st.AddInsight(session.Insight{
				Type:       session.InsightType(trig.Type),
				Area:       q.Area,
				Text:       trig.Insight,
				Confidence: trig.Confidence,
				BasedOn:    []string{q.ID},
			})
		}
	}
}

func (e *Engine) scanGaps() {
	for _, q := range e.cat.Questions() {
		r, ok := e.st.Responses[q.ID]
		if !ok {
			continue
		}
		for _, det := range q.GapDetectors {
			if !det.When.Matches(r.Value) {
				continue
			}
			e.st.AddGap(session.Gap{
				Area:               q.Area,
				Description:        det.Gap,
				Importance:         det.Importance,
				SuggestedQuestions: det.SuggestedQuestions,
			})
		}
	}
}

// #endregion triggers

// #region analysis

// applyAnalysis replaces the pattern caches wholesale and converts
// high-severity contradictions needing clarification into high-importance gaps.
func (e *Engine) applyAnalysis(a patterns.Analysis) {
	e.st.ConsistencyPatterns = a.Consistency
	e.st.PreferenceIntensities = a.Intensities
	e.st.ValueHierarchy = a.Hierarchy
	e.st.Contradictions = a.Contradictions
	e.st.HiddenMotivations = a.HiddenMotivations

	for _, c := range a.Contradictions {
		if c.Severity != "high" || !c.NeedsClarification {
			continue
		}
		area := e.resolveQuestion(c.QuestionA).Area
		e.st.AddGap(session.Gap{
			Area:        area,
			Description: c.Description,
			Importance:  "high",
		})
	}

	for _, hm := range a.HiddenMotivations {
		e.st.AddInsight(session.Insight{
			Type:       session.InsightHiddenInterest,
			Area:       catalog.AreaValues,
			Text:       hm.Motivation,
			Confidence: hm.Confidence,
			BasedOn:    hm.Evidence,
		})
	}
}

// recomputeConfidences re-derives every stored insight's confidence from the
// current pattern evidence. Runs after enrichment so new evidence counts.
func (e *Engine) recomputeConfidences(a patterns.Analysis) {
	for i := range e.st.DiscoveredInsights {
		ins := &e.st.DiscoveredInsights[i]
		ins.Confidence = session.Clamp(patterns.RecomputeConfidence(*ins, a))
	}
}

// #endregion analysis

// #region enrichment

// runEnrichment executes the gated enrichment passes in fixed order. A
// panicking pass is contained and logged; recording always proceeds.
func (e *Engine) runEnrichment() {
	in := enrich.Input{
		Catalog:   e.cat,
		Responses: e.st.Responses,
		Insights:  e.st.CopyInsights(),
		Profile:   e.profile,
	}
	if e.tracker != nil {
		in.Interactions = e.tracker.Recent(20)
	}
	for _, pass := range enrich.Passes() {
		if len(e.st.Responses) < pass.MinResponses {
			continue
		}
		if pass.NeedsProfile && e.profile == nil {
			continue
		}
		e.runPass(pass, in)
	}
}

func (e *Engine) runPass(pass enrich.Pass, in enrich.Input) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ENGINE] enrichment pass %s panicked: %v", pass.Name, r)
		}
	}()
	res := pass.Run(in)
	for _, ins := range res.Insights {
		e.st.AddInsight(ins)
	}
	for _, g := range res.Gaps {
		e.st.AddGap(g)
	}
	for _, gq := range res.Questions {
		e.st.AddGenerated(gq.Question, gq.Source, gq.Priority)
	}
}

// #endregion enrichment

// #region evolution

// trackEvolution rebuilds the confidence-evolution views and promotes any
// high-confidence pattern into the insight list.
func (e *Engine) trackEvolution() {
	out := evolution.Track(e.st.InsightLog, len(e.st.Responses), e.cfg)
	e.st.ConfidenceEvolutions = out.Evolutions
	e.st.ConfidencePatterns = out.Patterns
	e.st.EvolutionSummary = &out.Summary

	for _, p := range out.Patterns {
		if p.Confidence < e.cfg.PromoteMin {
			continue
		}
		if e.st.AddInsight(session.Insight{
			Type:       session.InsightStrength,
			Area:       p.Area,
			Text:       p.Description,
			Confidence: p.Confidence,
			BasedOn:    p.Insights,
		}) {
			log.Printf("[ENGINE] promoted %s pattern to insight (conf=%.2f)", p.Kind, p.Confidence)
		}
	}
}

// #endregion evolution

// #region next-questions

// NextQuestions returns up to limit ranked question candidates. Dynamic
// generation runs first and merges into the persistent pool, so repeated
// calls without an intervening RecordResponse return the same candidates.
func (e *Engine) NextQuestions(limit int) []selector.Candidate {
	sel := &selector.Selector{
		Catalog: e.cat,
		State:   e.st,
	}
	if e.tracker != nil {
		sel.Interactions = e.tracker.Recent(20)
	}
	for _, gq := range sel.Dynamic() {
		e.st.AddGenerated(gq.Question, gq.Source, gq.Priority)
	}
	return sel.Next(limit)
}

// #endregion next-questions

// #region readers

// Insights returns the deduplicated discovered insights.
func (e *Engine) Insights() []session.Insight {
	return e.st.CopyInsights()
}

// SynthesizedInsights returns the current cross-domain synthesis cache.
func (e *Engine) SynthesizedInsights() []session.SynthesizedInsight {
	out := make([]session.SynthesizedInsight, len(e.st.SynthesizedInsights))
	copy(out, e.st.SynthesizedInsights)
	return out
}

// Gaps returns the identified gaps.
func (e *Engine) Gaps() []session.Gap {
	return e.st.CopyGaps()
}

// PatternAnalysis returns the cached pattern views.
func (e *Engine) PatternAnalysis() patterns.Analysis {
	return patterns.Analysis{
		Consistency:       e.st.ConsistencyPatterns,
		Intensities:       e.st.PreferenceIntensities,
		Hierarchy:         e.st.ValueHierarchy,
		Contradictions:    e.st.Contradictions,
		HiddenMotivations: e.st.HiddenMotivations,
	}
}

// EvolutionReport returns the confidence-evolution views.
func (e *Engine) EvolutionReport() evolution.Output {
	out := evolution.Output{
		Evolutions: e.st.ConfidenceEvolutions,
		Patterns:   e.st.ConfidencePatterns,
	}
	if e.st.EvolutionSummary != nil {
		out.Summary = *e.st.EvolutionSummary
	}
	return out
}

// AreaProgress is one area's exploration depth.
type AreaProgress struct {
	Area  catalog.Area `json:"area"`
	Depth int          `json:"depth"`
}

// ExplorationProgress reports per-area depth in the fixed area order.
func (e *Engine) ExplorationProgress() []AreaProgress {
	out := make([]AreaProgress, 0, len(catalog.Areas()))
	for _, a := range catalog.Areas() {
		out = append(out, AreaProgress{Area: a, Depth: e.st.ExplorationDepth[a]})
	}
	return out
}

// ResponseCount reports how many distinct questions have been answered.
func (e *Engine) ResponseCount() int {
	return len(e.st.Responses)
}

// #endregion readers

// #region completion

// CompletionPercentage blends response volume, insight yield and area
// coverage into a 0-100 score.
func (e *Engine) CompletionPercentage() int {
	responses := float64(len(e.st.Responses)) / responseTarget
	insights := float64(len(e.st.DiscoveredInsights)) / insightTarget

	covered := 0
	for _, a := range catalog.Areas() {
		if e.st.ExplorationDepth[a] > 0 {
			covered++
		}
	}
	areas := float64(covered) / areaTarget

	pct := 100 * (0.5*math.Min(responses, 1) + 0.3*math.Min(insights, 1) + 0.2*math.Min(areas, 1))
	return int(math.Round(pct))
}

// IsComplete reports whether the session has reached a confident finish.
// All three conditions must hold.
func (e *Engine) IsComplete() bool {
	return e.CompletionPercentage() >= completeMinPct &&
		len(e.st.DiscoveredInsights) >= completeMinInsights &&
		len(e.st.Responses) >= completeMinResponses
}

// CanFinish reports whether ending now would still yield a useful profile.
// Either condition suffices.
func (e *Engine) CanFinish() bool {
	return e.CompletionPercentage() >= finishMinPct ||
		len(e.st.Responses) >= finishMinResponses
}

// #endregion completion

// #region export

// ExportedProfile is the end-of-session deliverable handed to downstream
// consumers (scoring, narrative generation).
type ExportedProfile struct {
	Insights             []session.Insight            `json:"insights"`
	SynthesizedInsights  []session.SynthesizedInsight `json:"synthesizedInsights"`
	Gaps                 []session.Gap                `json:"gaps"`
	ValueHierarchy       *session.ValueHierarchy      `json:"valueHierarchy,omitempty"`
	HiddenMotivations    []session.HiddenMotivation   `json:"hiddenMotivations"`
	EvolutionSummary     *session.EvolutionSummary    `json:"evolutionSummary,omitempty"`
	CompletionPercentage int                          `json:"completionPercentage"`
	Complete             bool                         `json:"complete"`
	ResponseCount        int                          `json:"responseCount"`
}

// ExportProfile assembles the deliverable. Insights come sorted by descending
// confidence so consumers can truncate safely.
func (e *Engine) ExportProfile() ExportedProfile {
	insights := e.st.CopyInsights()
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})
	return ExportedProfile{
		Insights:             insights,
		SynthesizedInsights:  e.SynthesizedInsights(),
		Gaps:                 e.st.CopyGaps(),
		ValueHierarchy:       e.st.ValueHierarchy,
		HiddenMotivations:    e.st.HiddenMotivations,
		EvolutionSummary:     e.st.EvolutionSummary,
		CompletionPercentage: e.CompletionPercentage(),
		Complete:             e.IsComplete(),
		ResponseCount:        len(e.st.Responses),
	}
}

// #endregion export

// #region snapshot

// Snapshot serializes the engine's session state.
func (e *Engine) Snapshot() ([]byte, error) {
	return e.st.Snapshot()
}

// Restore builds an engine around a previously serialized state.
func Restore(cat *catalog.Catalog, data []byte, opts ...Option) (*Engine, error) {
	st, err := session.Restore(data)
	if err != nil {
		return nil, fmt.Errorf("restore engine: %w", err)
	}
	e := New(cat, opts...)
	e.st = st
	return e, nil
}

// #endregion snapshot
