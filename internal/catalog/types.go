package catalog

import "strings"

// #region area

// Area is one of the eight fixed career-exploration dimensions.
type Area string

const (
	AreaWorkStyle      Area = "work-style"
	AreaPeople         Area = "people-interaction"
	AreaProblemSolving Area = "problem-solving"
	AreaCreativity     Area = "creativity"
	AreaStructure      Area = "structure-flexibility"
	AreaValues         Area = "values"
	AreaEnvironment    Area = "environment"
	AreaLearning       Area = "learning-growth"
)

// Areas returns all exploration areas in canonical order.
func Areas() []Area {
	return []Area{
		AreaWorkStyle, AreaPeople, AreaProblemSolving, AreaCreativity,
		AreaStructure, AreaValues, AreaEnvironment, AreaLearning,
	}
}

// #endregion area

// #region question-type

// QuestionType describes the expected response shape.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeScale          QuestionType = "scale"
	TypeOpenEnded      QuestionType = "open-ended"
	TypeRanking        QuestionType = "ranking"
	TypeBoolean        QuestionType = "boolean"
)

// #endregion question-type

// #region depth

// Depth gates how early a question becomes eligible within its area.
type Depth int

const (
	DepthBasic        Depth = 0
	DepthIntermediate Depth = 1
	DepthDeep         Depth = 2
)

// #endregion depth

// #region condition

// Condition is a declarative predicate over a recorded response value.
// Zero-value fields are ignored; an empty Condition with Any=false never matches.
type Condition struct {
	Any      bool     `yaml:"any,omitempty" json:"any,omitempty"`
	Equals   string   `yaml:"equals,omitempty" json:"equals,omitempty"`
	OneOf    []string `yaml:"one_of,omitempty" json:"oneOf,omitempty"`
	Contains string   `yaml:"contains,omitempty" json:"contains,omitempty"`
	MinScale float64  `yaml:"min_scale,omitempty" json:"minScale,omitempty"`
	MaxScale float64  `yaml:"max_scale,omitempty" json:"maxScale,omitempty"`
}

// Matches evaluates the condition against an untyped response value.
func (c Condition) Matches(v any) bool {
	if c.Any {
		return true
	}
	texts := Strings(v)
	if c.Equals != "" {
		for _, t := range texts {
			if strings.EqualFold(t, c.Equals) {
				return true
			}
		}
		return false
	}
	if len(c.OneOf) > 0 {
		for _, opt := range c.OneOf {
			for _, t := range texts {
				if strings.EqualFold(t, opt) {
					return true
				}
			}
		}
		return false
	}
	if c.Contains != "" {
		needle := strings.ToLower(c.Contains)
		for _, t := range texts {
			if strings.Contains(strings.ToLower(t), needle) {
				return true
			}
		}
		return false
	}
	if c.MinScale != 0 || c.MaxScale != 0 {
		n, ok := Number(v)
		if !ok {
			return false
		}
		if c.MinScale != 0 && n < c.MinScale {
			return false
		}
		if c.MaxScale != 0 && n > c.MaxScale {
			return false
		}
		return true
	}
	return false
}

// #endregion condition

// #region follow-up

// FollowUp pairs a response condition with the question to ask when it matches.
type FollowUp struct {
	If   Condition `yaml:"if" json:"if"`
	Then Question  `yaml:"then" json:"then"`
}

// #endregion follow-up

// #region triggers

// InsightTrigger emits a canned insight when the question's response matches.
type InsightTrigger struct {
	When       Condition `yaml:"when" json:"when"`
	Type       string    `yaml:"type" json:"type"` // strength | preference | hidden-interest | growth-area
	Insight    string    `yaml:"insight" json:"insight"`
	Confidence float64   `yaml:"confidence" json:"confidence"`
}

// GapDetector flags missing information when the question's response matches.
type GapDetector struct {
	When               Condition `yaml:"when" json:"when"`
	Gap                string    `yaml:"gap" json:"gap"`
	Importance         string    `yaml:"importance" json:"importance"` // low | medium | high
	SuggestedQuestions []string  `yaml:"suggested_questions" json:"suggestedQuestions"`
}

// #endregion triggers

// #region question

// Question is a static catalog entry. Read-only to the engine.
type Question struct {
	ID              string           `yaml:"id" json:"id"`
	Area            Area             `yaml:"area" json:"area"`
	Type            QuestionType     `yaml:"type" json:"type"`
	Text            string           `yaml:"text" json:"text"`
	Options         []string         `yaml:"options,omitempty" json:"options,omitempty"`
	Depth           Depth            `yaml:"depth,omitempty" json:"depth,omitempty"`
	FollowUps       []FollowUp       `yaml:"follow_ups,omitempty" json:"followUps,omitempty"`
	InsightTriggers []InsightTrigger `yaml:"insight_triggers,omitempty" json:"insightTriggers,omitempty"`
	GapDetectors    []GapDetector    `yaml:"gap_detectors,omitempty" json:"gapDetectors,omitempty"`
}

// #endregion question

// #region clarification

// Clarification maps (question ID, response condition) to a clarifying question.
type Clarification struct {
	QuestionID string    `yaml:"question_id" json:"questionId"`
	When       Condition `yaml:"when" json:"when"`
	Ask        Question  `yaml:"ask" json:"ask"`
}

// #endregion clarification

// #region value-coercion

// Strings normalizes a response value to a slice of strings for matching.
func Strings(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case bool:
		if x {
			return []string{"yes"}
		}
		return []string{"no"}
	}
	return nil
}

// Number extracts a numeric response value. JSON decoding yields float64.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// #endregion value-coercion
