package patterns

import "github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"

// #region conflict-pairs

var conflictingValues = []struct {
	first, second, description string
}{
	{"autonomy", "security", "Wanting full self-direction pulls against wanting a safety net"},
	{"balance", "mastery", "Deep expertise demands hours that protected personal time resists"},
	{"impact", "recognition", "Mission-first framing sits uneasily next to wanting visible credit"},
	{"security", "growth", "Stretch opportunities usually cost some predictability"},
	{"autonomy", "connection", "Working on your own terms limits how embedded in a team you can be"},
}

var coreMotivations = map[string]string{
	"autonomy":    "being the author of your own work",
	"impact":      "leaving things better than you found them",
	"security":    "building a foundation nobody can pull away",
	"growth":      "becoming more capable every year",
	"connection":  "doing work that keeps you close to people",
	"mastery":     "getting genuinely excellent at a craft",
	"balance":     "a career that serves your life, not the reverse",
	"recognition": "work whose quality is seen and named",
}

// #endregion conflict-pairs

// #region contradiction-rules

type responseCond struct {
	questionID string
	cond       catalog.Condition
}

var contradictionRules = []struct {
	questionA   string
	condA       catalog.Condition
	questionB   string
	condB       catalog.Condition
	description string
	severity    string
	clarify     bool
}{
	{
		questionA: "work-style-solo-team",
		condA:     catalog.Condition{OneOf: []string{"Mostly collaborating", "Always with a team"}},
		questionB: "work-style-energy",
		condB:     catalog.Condition{MinScale: 8},
		description: "You chose team-centered work but report being drained by a day of meetings",
		severity:  "high",
		clarify:   true,
	},
	{
		questionA: "values-tradeoff",
		condA:     catalog.Condition{Equals: "Income and security"},
		questionB: "structure-stability-change",
		condB:     catalog.Condition{Equals: "Changing and open-ended"},
		description: "Security ranked first, yet you'd take the open-ended offer over the stable one",
		severity:  "high",
		clarify:   true,
	},
	{
		questionA: "values-tradeoff",
		condA:     catalog.Condition{Equals: "Freedom and flexibility"},
		questionB: "structure-planning",
		condB:     catalog.Condition{Equals: "I need them to function"},
		description: "Flexibility ranked first, but you also say you need detailed plans to function",
		severity:  "medium",
		clarify:   false,
	},
	{
		questionA: "people-helping",
		condA:     catalog.Condition{Equals: "I prefer work that doesn't center on helping"},
		questionB: "values-tradeoff",
		condB:     catalog.Condition{Equals: "Meaning and impact"},
		description: "Impact ranked first while helping-centered work is ruled out - impact through what, then?",
		severity:  "medium",
		clarify:   true,
	},
	{
		questionA: "environment-size",
		condA:     catalog.Condition{Equals: "Just me"},
		questionB: "work-style-solo-team",
		condB:     catalog.Condition{Equals: "Always with a team"},
		description: "Solo organization preferred, but best work reportedly happens with a team",
		severity:  "high",
		clarify:   true,
	},
	{
		questionA: "structure-rules",
		condA:     catalog.Condition{Equals: "Follow it anyway"},
		questionB: "values-tradeoff",
		condB:     catalog.Condition{Equals: "Freedom and flexibility"},
		description: "Deference to rules sits oddly with flexibility as the top-ranked value",
		severity:  "low",
		clarify:   false,
	},
}

// #endregion contradiction-rules

// #region motivation-combos

var motivationCombos = []struct {
	needs      []responseCond
	motivation string
	confidence float64
}{
	{
		needs: []responseCond{
			{"work-style-solo-team", catalog.Condition{OneOf: []string{"Deep focus, alone", "Mostly alone, occasional check-ins"}}},
			{"structure-planning", catalog.Condition{Equals: "They feel restrictive"}},
		},
		motivation: "A need for self-direction runs underneath your specific preferences - solitude and loose process are both expressions of it",
		confidence: 0.6,
	},
	{
		needs: []responseCond{
			{"people-helping", catalog.Condition{Equals: "Teaching them something"}},
			{"values-tradeoff", catalog.Condition{Equals: "Meaning and impact"}},
		},
		motivation: "Being needed may matter as much to you as the mission itself",
		confidence: 0.55,
	},
	{
		needs: []responseCond{
			{"values-tradeoff", catalog.Condition{Equals: "Income and security"}},
			{"environment-pressure", catalog.Condition{MinScale: 8}},
		},
		motivation: "You describe yourself in security terms, but you thrive under stakes - the safe framing may be covering real ambition",
		confidence: 0.5,
	},
	{
		needs: []responseCond{
			{"learning-mastery", catalog.Condition{Equals: "Pretty good at many things"}},
			{"work-style-pace", catalog.Condition{Equals: "Constant variety"}},
		},
		motivation: "Novelty itself is a motivator for you - a career is partly a vehicle for staying interested",
		confidence: 0.6,
	},
	{
		needs: []responseCond{
			{"creativity-blank-page", catalog.Condition{Equals: "Blank page excites me"}},
			{"problem-approach", catalog.Condition{Equals: "Experiment and see what happens"}},
		},
		motivation: "You are drawn to zero-to-one situations - starting things may matter more than running them",
		confidence: 0.6,
	},
}

// #endregion motivation-combos

// #region motivation-themes

// motivationThemes maps MotivationRules outcomes to readable claims.
var motivationThemes = map[string]string{
	"proving":    "Proving early doubters wrong still shapes what you reach for",
	"escape":     "Part of this search is about getting away from something, not only toward something",
	"legacy":     "You want work that outlasts you - legacy is doing real motivational work here",
	"curiosity":  "Understanding how things work is an end in itself for you, not a means",
	"caretaking": "Providing for and protecting others sits underneath your practical choices",
}

// #endregion motivation-themes
