package session

import (
	"time"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
)

// #region confidence-level

// ConfidenceLevel is the user's self-reported certainty about an answer.
type ConfidenceLevel string

const (
	Certain      ConfidenceLevel = "certain"
	SomewhatSure ConfidenceLevel = "somewhat-sure"
	Uncertain    ConfidenceLevel = "uncertain"
)

// #endregion confidence-level

// #region response

// Response is one recorded answer. A later answer to the same question ID
// overwrites the prior one.
type Response struct {
	QuestionID string          `json:"questionId"`
	Value      any             `json:"response"`
	Timestamp  time.Time       `json:"timestamp"`
	Confidence ConfidenceLevel `json:"confidenceLevel,omitempty"`
}

// #endregion response

// #region insight

// InsightType tags what kind of claim an insight makes about the user.
type InsightType string

const (
	InsightStrength       InsightType = "strength"
	InsightPreference     InsightType = "preference"
	InsightHiddenInterest InsightType = "hidden-interest"
	InsightGrowthArea     InsightType = "growth-area"
)

// Insight is a short natural-language claim about the user with the
// evidence that produced it. Confidence is always in [0,1].
type Insight struct {
	Type       InsightType  `json:"type"`
	Area       catalog.Area `json:"area"`
	Text       string       `json:"insight"`
	Confidence float64      `json:"confidence"`
	BasedOn    []string     `json:"basedOn"`
}

// #endregion insight

// #region gap

// Gap is an identified hole in what the session knows about the user.
type Gap struct {
	Area               catalog.Area `json:"area"`
	Description        string       `json:"gap"`
	Importance         string       `json:"importance"` // low | medium | high
	SuggestedQuestions []string     `json:"suggestedQuestions"`
}

// #endregion gap

// #region insight-occurrence

// InsightOccurrence is one append-only log entry recorded every time a pass
// produces an insight, duplicate text included. The confidence evolution
// tracker reads this log; the deduplicated insight list never shows history.
type InsightOccurrence struct {
	Text          string       `json:"insight"`
	Type          InsightType  `json:"type"`
	Area          catalog.Area `json:"area"`
	Confidence    float64      `json:"confidence"`
	EvidenceCount int          `json:"evidenceCount"`
}

// #endregion insight-occurrence

// #region pattern-views

// ConsistencyPattern is a recurring theme within one area across responses.
type ConsistencyPattern struct {
	Area     catalog.Area `json:"area"`
	Theme    string       `json:"theme"`
	Support  []string     `json:"support"` // question IDs
	Strength float64      `json:"strength"`
}

// PreferenceIntensity classifies how strongly a preference was stated.
type PreferenceIntensity struct {
	QuestionID string       `json:"questionId"`
	Area       catalog.Area `json:"area"`
	Preference string       `json:"preference"`
	Level      string       `json:"level"` // weak | moderate | strong
}

// ValueConflict is a detected tension between two held values.
type ValueConflict struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	Description string `json:"description"`
}

// ValueHierarchy ranks the user's top values. Nullable singleton: only
// materializes once enough signal exists.
type ValueHierarchy struct {
	TopValues      []string        `json:"topValues"`
	Conflicts      []ValueConflict `json:"conflicts"`
	CoreMotivation string          `json:"coreMotivation"`
}

// Contradiction pairs two responses whose implied preferences conflict.
type Contradiction struct {
	QuestionA          string `json:"questionA"`
	QuestionB          string `json:"questionB"`
	Description        string `json:"description"`
	Severity           string `json:"severity"` // low | medium | high
	NeedsClarification bool   `json:"needsClarification"`
}

// HiddenMotivation is inferable only by combining multiple responses.
type HiddenMotivation struct {
	Motivation string   `json:"motivation"`
	Evidence   []string `json:"evidence"` // question IDs
	Confidence float64  `json:"confidence"`
}

// #endregion pattern-views

// #region synthesis-views

// SynthesizedInsight is a cross-domain insight referencing at least two areas.
type SynthesizedInsight struct {
	Kind         string         `json:"kind"` // cross-domain | paradox | nuanced-preference
	Areas        []catalog.Area `json:"areas"`
	Text         string         `json:"insight"`
	Confidence   float64        `json:"confidence"`
	Implications []string       `json:"implications"`
}

// #endregion synthesis-views

// #region evolution-views

// ConfidenceSnapshot is one point in an insight's confidence history.
// Timestamps are synthetic, spaced by a fixed interval: ordering is a proxy
// for "more evidence gathered", not elapsed wall-clock time.
type ConfidenceSnapshot struct {
	Confidence    float64   `json:"confidence"`
	EvidenceCount int       `json:"evidenceCount"`
	Timestamp     time.Time `json:"timestamp"`
}

// ConfidenceEvolution is the tracked history of one insight's confidence.
type ConfidenceEvolution struct {
	Insight       string               `json:"insight"`
	Area          catalog.Area         `json:"area"`
	History       []ConfidenceSnapshot `json:"history"`
	Trend         string               `json:"trend"` // strengthening | weakening | stable | fluctuating
	TrendStrength float64              `json:"trendStrength"`
	Current       float64              `json:"currentConfidence"`
	Validated     bool                 `json:"validated"`
}

// ConfidencePattern is a higher-order pattern across insight evolutions.
type ConfidencePattern struct {
	Kind        string       `json:"kind"` // strengthening-cluster | stabilizing-fluctuation | validated-hunch | changing-priority
	Area        catalog.Area `json:"area"`
	Description string       `json:"description"`
	Insights    []string     `json:"insights"`
	Confidence  float64      `json:"confidence"`
}

// EvolutionSummary aggregates evolution stats for the whole session.
type EvolutionSummary struct {
	Strengthening         int     `json:"strengthening"`
	Weakening             int     `json:"weakening"`
	Stable                int     `json:"stable"`
	Fluctuating           int     `json:"fluctuating"`
	OverallStability      float64 `json:"overallStability"`
	SelfDiscoveryProgress float64 `json:"selfDiscoveryProgress"`
}

// #endregion evolution-views

// #region generated-question

// GeneratedQuestion is a dynamically created question held in the session's
// explicit candidate pool, so answers to it still resolve after persistence.
type GeneratedQuestion struct {
	Question catalog.Question `json:"question"`
	Source   string           `json:"source"` // which pass generated it
	Priority int              `json:"priority"`
}

// #endregion generated-question
