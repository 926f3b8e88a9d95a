package enrich

import "time"

// #region profile

// Experience is one prior role in the user's history.
type Experience struct {
	Role     string  `json:"role"`
	Industry string  `json:"industry"`
	Years    float64 `json:"years"`
	Enjoyed  string  `json:"enjoyed,omitempty"`
	Disliked string  `json:"disliked,omitempty"`
}

// Profile is the optional user profile consumed by profile-gated passes.
// The engine never writes it.
type Profile struct {
	Name              string       `json:"name,omitempty"`
	LifeStage         string       `json:"lifeStage,omitempty"` // student | early-career | mid-career | late-career
	Location          string       `json:"location,omitempty"`
	WillingToRelocate bool         `json:"willingToRelocate,omitempty"`
	Dependents        bool         `json:"dependents,omitempty"`
	Experience        []Experience `json:"experience,omitempty"`
	StatedValues      []string     `json:"statedValues,omitempty"`
}

// #endregion profile

// #region interactions

// Interaction is one piece of UI telemetry about how a question was answered.
type Interaction struct {
	QuestionID     string    `json:"questionId"`
	Kind           string    `json:"kind"` // answer | revision | skip
	ResponseMillis int64     `json:"responseMillis"`
	Revisions      int       `json:"revisions"`
	Timestamp      time.Time `json:"timestamp"`
}

// Tracker supplies recent interaction telemetry for dynamic question
// generation. Implemented by the UI layer.
type Tracker interface {
	Recent(n int) []Interaction
}

// #endregion interactions
