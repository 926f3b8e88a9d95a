package catalog

import "strings"

// #region rule

// Rule classifies text by keyword match. Rules replace the inline string
// literals the matching heuristics would otherwise hardcode, so tables can be
// loaded from YAML and tested in isolation.
type Rule struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
	Outcome  string   `yaml:"outcome" json:"outcome"`
	Weight   float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Matches reports whether any keyword occurs in the lowercased text.
func (r Rule) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion rule

// #region rule-table

// RuleTable is an ordered list of rules. Earlier rules win on First.
type RuleTable struct {
	Name  string `yaml:"name" json:"name"`
	Rules []Rule `yaml:"rules" json:"rules"`
}

// First returns the outcome of the first matching rule.
func (t RuleTable) First(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range t.Rules {
		if r.Matches(lower) {
			return r.Outcome, true
		}
	}
	return "", false
}

// All returns the outcomes of every matching rule, in table order.
func (t RuleTable) All(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, r := range t.Rules {
		if r.Matches(lower) {
			out = append(out, r.Outcome)
		}
	}
	return out
}

// Score sums the weights of matching rules (weight 1 when unset).
func (t RuleTable) Score(text string) float64 {
	lower := strings.ToLower(text)
	var score float64
	for _, r := range t.Rules {
		if r.Matches(lower) {
			w := r.Weight
			if w == 0 {
				w = 1
			}
			score += w
		}
	}
	return score
}

// #endregion rule-table

// #region intensity-rules

// IntensityRules classifies preference wording as strong, moderate, or weak.
func IntensityRules() RuleTable {
	return RuleTable{
		Name: "intensity",
		Rules: []Rule{
			{Outcome: "strong", Keywords: []string{
				"love", "absolutely", "always", "never", "can't stand",
				"cannot stand", "hate", "essential", "must have", "thrive",
				"obsessed", "definitely", "deeply",
			}},
			{Outcome: "weak", Keywords: []string{
				"maybe", "i guess", "sort of", "kind of", "not sure",
				"sometimes", "it depends", "possibly", "slightly", "a little",
			}},
			{Outcome: "moderate", Keywords: []string{
				"like", "enjoy", "prefer", "usually", "often", "generally",
				"tend to", "mostly", "dislike",
			}},
		},
	}
}

// #endregion intensity-rules

// #region obligation-rules

// ObligationRules separates "should-want" language (external expectation) from
// "actually-want" language (intrinsic pull). Feeds the authenticity pass.
func ObligationRules() RuleTable {
	return RuleTable{
		Name: "obligation",
		Rules: []Rule{
			{Outcome: "should", Keywords: []string{
				"should", "supposed to", "expected", "ought to", "have to",
				"need to", "my parents", "everyone says", "people say",
				"practical choice", "sensible", "responsible thing",
			}},
			{Outcome: "want", Keywords: []string{
				"i want", "i love", "i enjoy", "excited", "drawn to",
				"i dream", "passionate", "fascinated", "curious about",
				"light up", "lose track of time",
			}},
		},
	}
}

// #endregion obligation-rules

// #region value-rules

// ValueRules maps response wording to canonical career values.
func ValueRules() RuleTable {
	return RuleTable{
		Name: "values",
		Rules: []Rule{
			{Outcome: "autonomy", Keywords: []string{
				"independen", "my own", "freedom", "on my terms", "self-directed",
				"without supervision", "own boss", "own pace",
			}},
			{Outcome: "impact", Keywords: []string{
				"make a difference", "help people", "helping others", "impact",
				"meaningful", "change the world", "community", "give back",
			}},
			{Outcome: "security", Keywords: []string{
				"stable", "stability", "security", "secure", "predictable",
				"reliable income", "safe choice", "benefits",
			}},
			{Outcome: "growth", Keywords: []string{
				"learn", "grow", "challenge myself", "improve", "develop",
				"new skills", "stretch", "push myself",
			}},
			{Outcome: "connection", Keywords: []string{
				"team", "people", "relationships", "collaborat", "together",
				"mentor", "belong",
			}},
			{Outcome: "mastery", Keywords: []string{
				"expert", "craft", "excellence", "best at", "deep knowledge",
				"specialist", "perfect",
			}},
			{Outcome: "balance", Keywords: []string{
				"work-life", "balance", "family time", "flexib", "time off",
				"my own schedule", "hobbies",
			}},
			{Outcome: "recognition", Keywords: []string{
				"recognized", "recognition", "respected", "status", "prestige",
				"title", "visible", "credit",
			}},
		},
	}
}

// #endregion value-rules

// #region industry-rules

// IndustryRules buckets free-text experience into broad industry categories.
func IndustryRules() RuleTable {
	return RuleTable{
		Name: "industry",
		Rules: []Rule{
			{Outcome: "technology", Keywords: []string{"software", "tech", "engineer", "developer", "it ", "data", "startup"}},
			{Outcome: "healthcare", Keywords: []string{"health", "medical", "nurse", "clinic", "patient", "hospital"}},
			{Outcome: "education", Keywords: []string{"teach", "school", "education", "tutor", "professor", "curriculum"}},
			{Outcome: "creative", Keywords: []string{"design", "art", "writing", "media", "film", "music", "creative"}},
			{Outcome: "business", Keywords: []string{"sales", "marketing", "finance", "consult", "management", "operations"}},
			{Outcome: "trades", Keywords: []string{"construction", "mechanic", "electric", "plumb", "carpent", "manufactur"}},
			{Outcome: "service", Keywords: []string{"retail", "hospitality", "restaurant", "customer service", "tourism"}},
			{Outcome: "public", Keywords: []string{"government", "nonprofit", "non-profit", "policy", "military", "public sector"}},
		},
	}
}

// #endregion industry-rules

// #region motivation-rules

// MotivationRules surfaces deep-motivation wording for the archaeology pass.
func MotivationRules() RuleTable {
	return RuleTable{
		Name: "motivation",
		Rules: []Rule{
			{Outcome: "proving", Keywords: []string{"prove", "show them", "doubted me", "underestimated"}},
			{Outcome: "escape", Keywords: []string{"get out of", "escape", "anything but", "never again", "stuck"}},
			{Outcome: "legacy", Keywords: []string{"remembered", "legacy", "lasting", "leave behind", "build something"}},
			{Outcome: "curiosity", Keywords: []string{"understand how", "always wondered", "figure out", "why things"}},
			{Outcome: "caretaking", Keywords: []string{"take care of", "protect", "support my", "provide for"}},
		},
	}
}

// #endregion motivation-rules
