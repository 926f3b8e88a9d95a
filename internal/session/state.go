package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
)

// #region state

// State is the engine-owned aggregate. All mutation goes through its methods;
// the pattern, synthesis, and evolution fields are derived views replaced
// wholesale on each qualifying pass, never merged.
type State struct {
	Responses        map[string]Response  `json:"responses"`
	AskedQuestions   []string             `json:"askedQuestions"`
	ExplorationDepth map[catalog.Area]int `json:"explorationDepth"`

	DiscoveredInsights []Insight           `json:"discoveredInsights"`
	IdentifiedGaps     []Gap               `json:"identifiedGaps"`
	InsightLog         []InsightOccurrence `json:"insightLog"`

	ConsistencyPatterns   []ConsistencyPattern  `json:"consistencyPatterns"`
	PreferenceIntensities []PreferenceIntensity `json:"preferenceIntensities"`
	ValueHierarchy        *ValueHierarchy       `json:"valueHierarchy,omitempty"`
	Contradictions        []Contradiction       `json:"contradictions"`
	HiddenMotivations     []HiddenMotivation    `json:"hiddenMotivations"`
	SynthesizedInsights   []SynthesizedInsight  `json:"synthesizedInsights"`

	ConfidenceEvolutions []ConfidenceEvolution `json:"confidenceEvolutions"`
	ConfidencePatterns   []ConfidencePattern   `json:"confidencePatterns"`
	EvolutionSummary     *EvolutionSummary     `json:"evolutionSummary,omitempty"`

	GeneratedQuestions []GeneratedQuestion `json:"generatedQuestions"`
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{
		Responses:        make(map[string]Response),
		ExplorationDepth: make(map[catalog.Area]int),
	}
}

// #endregion state

// #region clamp

// Clamp restricts a confidence value to [0,1]. Applied at every write site.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion clamp

// #region upsert

// Upsert records a response, appends the question to askedQuestions if new,
// and bumps the area depth for first-time answers. Re-answering overwrites the
// stored response without inflating depth, so depth always equals the count of
// responses whose question belongs to the area.
func (s *State) Upsert(resp Response, area catalog.Area) {
	_, seen := s.Responses[resp.QuestionID]
	s.Responses[resp.QuestionID] = resp
	if !seen {
		s.AskedQuestions = append(s.AskedQuestions, resp.QuestionID)
		s.ExplorationDepth[area]++
	}
}

// LatestResponse returns the most recently recorded response by timestamp.
func (s *State) LatestResponse() (Response, bool) {
	var latest Response
	found := false
	for _, r := range s.Responses {
		if !found || r.Timestamp.After(latest.Timestamp) {
			latest = r
			found = true
		}
	}
	return latest, found
}

// #endregion upsert

// #region add-insight

// AddInsight merges an insight into the deduplicated list (keyed by insight
// text) and appends an occurrence to the insight log. The list only grows;
// duplicates mutate the existing entry's confidence and evidence in place.
// Reports whether the insight text was new.
func (s *State) AddInsight(ins Insight) bool {
	ins.Confidence = Clamp(ins.Confidence)
	isNew := true
	for i := range s.DiscoveredInsights {
		if s.DiscoveredInsights[i].Text != ins.Text {
			continue
		}
		isNew = false
		existing := &s.DiscoveredInsights[i]
		existing.BasedOn = mergeEvidence(existing.BasedOn, ins.BasedOn)
		// More evidence wins; otherwise keep whichever confidence is higher.
		if len(existing.BasedOn) > 0 && ins.Confidence > 0 {
			if ins.Confidence > existing.Confidence || len(ins.BasedOn) >= len(existing.BasedOn) {
				existing.Confidence = Clamp(ins.Confidence)
			}
		}
		ins = *existing
		break
	}
	if isNew {
		s.DiscoveredInsights = append(s.DiscoveredInsights, ins)
	}
	s.InsightLog = append(s.InsightLog, InsightOccurrence{
		Text:          ins.Text,
		Type:          ins.Type,
		Area:          ins.Area,
		Confidence:    ins.Confidence,
		EvidenceCount: len(ins.BasedOn),
	})
	return isNew
}

func mergeEvidence(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e] = true
	}
	for _, e := range incoming {
		if !seen[e] {
			existing = append(existing, e)
			seen[e] = true
		}
	}
	return existing
}

// #endregion add-insight

// #region add-gap

// AddGap appends a gap unless one with the same area and description exists.
func (s *State) AddGap(g Gap) bool {
	for _, have := range s.IdentifiedGaps {
		if have.Area == g.Area && have.Description == g.Description {
			return false
		}
	}
	s.IdentifiedGaps = append(s.IdentifiedGaps, g)
	return true
}

// HasGap reports whether a gap with the given area and description exists.
func (s *State) HasGap(area catalog.Area, description string) bool {
	for _, g := range s.IdentifiedGaps {
		if g.Area == area && g.Description == description {
			return true
		}
	}
	return false
}

// #endregion add-gap

// #region generated-pool

// AddGenerated adds a question to the dynamic candidate pool. No-op when the
// ID is already pooled, so regeneration stays idempotent.
func (s *State) AddGenerated(q catalog.Question, source string, priority int) bool {
	for _, g := range s.GeneratedQuestions {
		if g.Question.ID == q.ID {
			return false
		}
	}
	s.GeneratedQuestions = append(s.GeneratedQuestions, GeneratedQuestion{
		Question: q,
		Source:   source,
		Priority: priority,
	})
	return true
}

// Generated resolves a question from the dynamic pool by ID.
func (s *State) Generated(id string) (catalog.Question, bool) {
	for _, g := range s.GeneratedQuestions {
		if g.Question.ID == id {
			return g.Question, true
		}
	}
	return catalog.Question{}, false
}

// #endregion generated-pool

// #region snapshot

// Snapshot serializes the whole aggregate. The shape round-trips losslessly
// through Restore.
func (s *State) Snapshot() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session state: %w", err)
	}
	return data, nil
}

// Restore replaces the aggregate with a previously serialized snapshot.
// The engine does not validate snapshot contents beyond JSON shape; callers
// own sanitizing untrusted snapshots.
func Restore(data []byte) (*State, error) {
	st := NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	if st.Responses == nil {
		st.Responses = make(map[string]Response)
	}
	if st.ExplorationDepth == nil {
		st.ExplorationDepth = make(map[catalog.Area]int)
	}
	return st, nil
}

// #endregion snapshot

// #region copies

// CopyInsights returns a defensive copy of the discovered insights.
func (s *State) CopyInsights() []Insight {
	out := make([]Insight, len(s.DiscoveredInsights))
	copy(out, s.DiscoveredInsights)
	for i := range out {
		out[i].BasedOn = append([]string(nil), out[i].BasedOn...)
	}
	return out
}

// CopyGaps returns a defensive copy of the identified gaps.
func (s *State) CopyGaps() []Gap {
	out := make([]Gap, len(s.IdentifiedGaps))
	copy(out, s.IdentifiedGaps)
	for i := range out {
		out[i].SuggestedQuestions = append([]string(nil), out[i].SuggestedQuestions...)
	}
	return out
}

// #endregion copies

// #region timestamps

// Now is the session clock. Swappable in tests for deterministic timestamps.
var Now = time.Now

// #endregion timestamps
