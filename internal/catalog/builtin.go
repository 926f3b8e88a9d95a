package catalog

// #region builtin

// Builtin returns the built-in question bank covering all eight areas.
// External catalogs loaded from YAML replace it wholesale.
func Builtin() *Catalog {
	c, err := New(builtinQuestions(), builtinClarifications())
	if err != nil {
		// The built-in bank is static data; a bad entry is a programming error.
		panic("builtin catalog: " + err.Error())
	}
	return c
}

// #endregion builtin

// #region work-style

func workStyleQuestions() []Question {
	return []Question{
		{
			ID:   "work-style-solo-team",
			Area: AreaWorkStyle,
			Type: TypeMultipleChoice,
			Text: "When you do your best work, are you usually alone or with others?",
			Options: []string{
				"Deep focus, alone", "Mostly alone, occasional check-ins",
				"A mix of both", "Mostly collaborating", "Always with a team",
			},
			FollowUps: []FollowUp{
				{
					If: Condition{OneOf: []string{"Deep focus, alone", "Mostly alone, occasional check-ins"}},
					Then: Question{
						ID:   "work-style-solo-why",
						Area: AreaWorkStyle,
						Type: TypeOpenEnded,
						Text: "What is it about working alone that helps you do better work?",
					},
				},
				{
					If: Condition{OneOf: []string{"Mostly collaborating", "Always with a team"}},
					Then: Question{
						ID:   "work-style-team-role",
						Area: AreaWorkStyle,
						Type: TypeMultipleChoice,
						Text: "What role do you naturally take in a group?",
						Options: []string{
							"The organizer", "The idea generator", "The finisher",
							"The mediator", "Whatever the group needs",
						},
					},
				},
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Deep focus, alone"},
					Type:       "preference",
					Insight:    "You do your best work in sustained solitary focus",
					Confidence: 0.6,
				},
				{
					When:       Condition{Equals: "Always with a team"},
					Type:       "preference",
					Insight:    "Collaboration is where your energy comes from",
					Confidence: 0.6,
				},
			},
		},
		{
			ID:   "work-style-pace",
			Area: AreaWorkStyle,
			Type: TypeMultipleChoice,
			Text: "Which pace of work suits you best?",
			Options: []string{
				"Steady and predictable", "Bursts of intensity with recovery time",
				"Constant variety", "Deadline-driven sprints",
			},
			GapDetectors: []GapDetector{
				{
					When:               Condition{Equals: "Bursts of intensity with recovery time"},
					Gap:                "How sustainable intense work periods are for you over months",
					Importance:         "medium",
					SuggestedQuestions: []string{"work-style-energy"},
				},
			},
		},
		{
			ID:    "work-style-energy",
			Area:  AreaWorkStyle,
			Type:  TypeScale,
			Depth: DepthIntermediate,
			Text:  "After a full day of meetings, how drained do you feel? (1 = energized, 10 = completely drained)",
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{MinScale: 8},
					Type:       "hidden-interest",
					Insight:    "Heavy social interaction costs you real energy; roles with protected focus time fit better",
					Confidence: 0.55,
				},
			},
		},
		{
			ID:    "work-style-ideal-day",
			Area:  AreaWorkStyle,
			Type:  TypeOpenEnded,
			Depth: DepthDeep,
			Text:  "Describe a workday that would leave you feeling genuinely satisfied.",
		},
	}
}

// #endregion work-style

// #region people-interaction

func peopleQuestions() []Question {
	return []Question{
		{
			ID:   "people-helping",
			Area: AreaPeople,
			Type: TypeMultipleChoice,
			Text: "How do you most like to help other people?",
			Options: []string{
				"Teaching them something", "Solving their problem for them",
				"Listening and supporting", "Building something they use",
				"I prefer work that doesn't center on helping",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Teaching them something"},
					Type:       "strength",
					Insight:    "You are drawn to transferring knowledge, not just applying it",
					Confidence: 0.6,
				},
				{
					When:       Condition{Equals: "Listening and supporting"},
					Type:       "strength",
					Insight:    "Emotional attunement is one of your working strengths",
					Confidence: 0.55,
				},
			},
		},
		{
			ID:   "people-conflict",
			Area: AreaPeople,
			Type: TypeMultipleChoice,
			Text: "When a disagreement comes up at work, what do you usually do?",
			Options: []string{
				"Address it head-on immediately", "Think it over, then raise it",
				"Look for a compromise", "Avoid it unless it really matters",
			},
			GapDetectors: []GapDetector{
				{
					When:               Condition{Equals: "Avoid it unless it really matters"},
					Gap:                "Whether conflict avoidance limits the roles you'd consider",
					Importance:         "medium",
					SuggestedQuestions: []string{"people-influence"},
				},
			},
		},
		{
			ID:    "people-influence",
			Area:  AreaPeople,
			Type:  TypeScale,
			Depth: DepthIntermediate,
			Text:  "How much do you enjoy persuading or influencing others? (1 = not at all, 10 = love it)",
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{MinScale: 8},
					Type:       "hidden-interest",
					Insight:    "Persuasion energizes you; advocacy, sales, or leadership paths deserve a look",
					Confidence: 0.5,
				},
			},
		},
		{
			ID:    "people-depth-breadth",
			Area:  AreaPeople,
			Type:  TypeMultipleChoice,
			Depth: DepthDeep,
			Text:  "Would you rather work closely with a few people or lightly with many?",
			Options: []string{
				"A few, deeply", "Many, lightly", "Depends on the project",
			},
		},
	}
}

// #endregion people-interaction

// #region problem-solving

func problemSolvingQuestions() []Question {
	return []Question{
		{
			ID:   "problem-approach",
			Area: AreaProblemSolving,
			Type: TypeMultipleChoice,
			Text: "A messy, ambiguous problem lands on your desk. What's your first move?",
			Options: []string{
				"Break it into smaller pieces", "Research how others solved it",
				"Experiment and see what happens", "Talk it through with someone",
				"Step back and look for the bigger pattern",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Experiment and see what happens"},
					Type:       "strength",
					Insight:    "You learn by doing rather than by planning",
					Confidence: 0.6,
				},
				{
					When:       Condition{Equals: "Step back and look for the bigger pattern"},
					Type:       "strength",
					Insight:    "Systems-level thinking comes naturally to you",
					Confidence: 0.6,
				},
			},
			FollowUps: []FollowUp{
				{
					If: Condition{Equals: "Break it into smaller pieces"},
					Then: Question{
						ID:   "problem-detail-tolerance",
						Area: AreaProblemSolving,
						Type: TypeScale,
						Text: "How much do you enjoy the detailed, careful parts of a problem? (1-10)",
					},
				},
			},
		},
		{
			ID:   "problem-kind",
			Area: AreaProblemSolving,
			Type: TypeMultipleChoice,
			Text: "Which kind of problem would you happily spend a whole week on?",
			Options: []string{
				"A technical puzzle with a right answer", "A people problem with no clean answer",
				"A design problem with many good answers", "An optimization problem - making something faster or cheaper",
			},
		},
		{
			ID:    "problem-stuck",
			Area:  AreaProblemSolving,
			Type:  TypeOpenEnded,
			Depth: DepthIntermediate,
			Text:  "Tell me about a time you were completely stuck. What got you moving again?",
		},
		{
			ID:    "problem-risk",
			Area:  AreaProblemSolving,
			Type:  TypeScale,
			Depth: DepthDeep,
			Text:  "How comfortable are you making decisions with incomplete information? (1 = very uncomfortable, 10 = fully comfortable)",
			GapDetectors: []GapDetector{
				{
					When:               Condition{MaxScale: 3},
					Gap:                "Whether low ambiguity tolerance rules out fast-moving environments",
					Importance:         "high",
					SuggestedQuestions: []string{"structure-planning"},
				},
			},
		},
	}
}

// #endregion problem-solving

// #region creativity

func creativityQuestions() []Question {
	return []Question{
		{
			ID:   "creativity-outlet",
			Area: AreaCreativity,
			Type: TypeMultipleChoice,
			Text: "Where does your creativity show up most?",
			Options: []string{
				"Making things - writing, art, building", "Finding unusual solutions",
				"Improving how things work", "Connecting ideas from different fields",
				"Honestly, I don't think of myself as creative",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Connecting ideas from different fields"},
					Type:       "strength",
					Insight:    "Your creativity is interdisciplinary synthesis, not craft output",
					Confidence: 0.6,
				},
				{
					When:       Condition{Equals: "Honestly, I don't think of myself as creative"},
					Type:       "growth-area",
					Insight:    "You may be underclaiming creativity you exercise in less obvious forms",
					Confidence: 0.4,
				},
			},
			FollowUps: []FollowUp{
				{
					If: Condition{Equals: "Honestly, I don't think of myself as creative"},
					Then: Question{
						ID:   "creativity-hidden",
						Area: AreaCreativity,
						Type: TypeOpenEnded,
						Text: "When did you last improvise a fix nobody showed you? What was it?",
					},
				},
			},
		},
		{
			ID:   "creativity-blank-page",
			Area: AreaCreativity,
			Type: TypeMultipleChoice,
			Text: "How do you feel about starting from a blank page versus improving something that exists?",
			Options: []string{
				"Blank page excites me", "I'd rather improve something existing",
				"Both, at different times",
			},
		},
		{
			ID:    "creativity-feedback",
			Area:  AreaCreativity,
			Type:  TypeScale,
			Depth: DepthIntermediate,
			Text:  "How well do you handle critical feedback on something you made? (1 = it stings for days, 10 = I actively seek it)",
		},
		{
			ID:    "creativity-expression",
			Area:  AreaCreativity,
			Type:  TypeOpenEnded,
			Depth: DepthDeep,
			Text:  "If money didn't matter, what would you spend a year making?",
		},
	}
}

// #endregion creativity

// #region structure-flexibility

func structureQuestions() []Question {
	return []Question{
		{
			ID:   "structure-planning",
			Area: AreaStructure,
			Type: TypeMultipleChoice,
			Text: "How do you feel about detailed plans?",
			Options: []string{
				"I need them to function", "Helpful, but I adapt as I go",
				"They feel restrictive", "I make them and then ignore them",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "I need them to function"},
					Type:       "preference",
					Insight:    "Clear structure is a requirement for you, not a nice-to-have",
					Confidence: 0.65,
				},
				{
					When:       Condition{Equals: "They feel restrictive"},
					Type:       "preference",
					Insight:    "You need room to improvise; rigid process will wear you down",
					Confidence: 0.6,
				},
			},
		},
		{
			ID:   "structure-routine",
			Area: AreaStructure,
			Type: TypeScale,
			Text: "How much routine do you want in a typical week? (1 = none, 10 = fully routinized)",
		},
		{
			ID:    "structure-rules",
			Area:  AreaStructure,
			Type:  TypeMultipleChoice,
			Depth: DepthIntermediate,
			Text:  "When a rule at work doesn't make sense, what do you do?",
			Options: []string{
				"Follow it anyway", "Follow it but push to change it",
				"Quietly work around it", "Openly challenge it",
			},
			GapDetectors: []GapDetector{
				{
					When:               Condition{OneOf: []string{"Quietly work around it", "Openly challenge it"}},
					Gap:                "How much institutional friction you can tolerate long-term",
					Importance:         "medium",
					SuggestedQuestions: []string{"environment-size"},
				},
			},
		},
		{
			ID:    "structure-stability-change",
			Area:  AreaStructure,
			Type:  TypeMultipleChoice,
			Depth: DepthDeep,
			Text:  "Imagine two offers: one stable and well-defined, one changing and open-ended. Which do you take?",
			Options: []string{
				"Stable and well-defined", "Changing and open-ended", "Genuinely torn",
			},
		},
	}
}

// #endregion structure-flexibility

// #region values

func valuesQuestions() []Question {
	return []Question{
		{
			ID:   "values-tradeoff",
			Area: AreaValues,
			Type: TypeMultipleChoice,
			Text: "If you had to pick one, which matters most in your next role?",
			Options: []string{
				"Income and security", "Meaning and impact", "Freedom and flexibility",
				"Learning and growth", "Status and recognition",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Meaning and impact"},
					Type:       "preference",
					Insight:    "Purpose outranks pay in how you weigh opportunities",
					Confidence: 0.65,
				},
				{
					When:       Condition{Equals: "Freedom and flexibility"},
					Type:       "preference",
					Insight:    "Autonomy is your primary filter for opportunities",
					Confidence: 0.65,
				},
			},
		},
		{
			ID:   "values-proud",
			Area: AreaValues,
			Type: TypeOpenEnded,
			Text: "What's a piece of work you're genuinely proud of, and why that one?",
		},
		{
			ID:    "values-nonnegotiable",
			Area:  AreaValues,
			Type:  TypeOpenEnded,
			Depth: DepthIntermediate,
			Text:  "What would make you quit a well-paying job?",
			GapDetectors: []GapDetector{
				{
					When:               Condition{Contains: "nothing"},
					Gap:                "Whether financial security overrides every other stated value",
					Importance:         "high",
					SuggestedQuestions: []string{"values-tradeoff"},
				},
			},
		},
		{
			ID:    "values-admire",
			Area:  AreaValues,
			Type:  TypeOpenEnded,
			Depth: DepthDeep,
			Text:  "Whose career do you quietly envy, and what exactly do you envy about it?",
		},
	}
}

// #endregion values

// #region environment

func environmentQuestions() []Question {
	return []Question{
		{
			ID:   "environment-setting",
			Area: AreaEnvironment,
			Type: TypeMultipleChoice,
			Text: "Where do you picture yourself working?",
			Options: []string{
				"Office with a team", "Home, remote", "Outdoors or on-site",
				"Different places all the time", "A workshop, lab, or studio",
			},
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Equals: "Outdoors or on-site"},
					Type:       "preference",
					Insight:    "Physical, non-desk settings matter more to you than most roles assume",
					Confidence: 0.6,
				},
			},
		},
		{
			ID:   "environment-size",
			Area: AreaEnvironment,
			Type: TypeMultipleChoice,
			Text: "What size of organization appeals to you?",
			Options: []string{
				"Just me", "A small team where everyone counts", "A mid-size company",
				"A large organization with room to move", "It doesn't matter much",
			},
		},
		{
			ID:    "environment-pressure",
			Area:  AreaEnvironment,
			Type:  TypeScale,
			Depth: DepthIntermediate,
			Text:  "How do you perform under visible pressure - deadlines, audiences, stakes? (1 = I crumble, 10 = I'm at my best)",
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{MinScale: 8},
					Type:       "strength",
					Insight:    "Pressure sharpens you; high-stakes environments are a fit, not a threat",
					Confidence: 0.55,
				},
			},
		},
		{
			ID:    "environment-culture",
			Area:  AreaEnvironment,
			Type:  TypeOpenEnded,
			Depth: DepthDeep,
			Text:  "Describe the worst work environment you've experienced. What made it bad?",
		},
	}
}

// #endregion environment

// #region learning-growth

func learningQuestions() []Question {
	return []Question{
		{
			ID:   "learning-style",
			Area: AreaLearning,
			Type: TypeMultipleChoice,
			Text: "How do you learn best?",
			Options: []string{
				"Hands-on, by doing", "Reading and research", "Being shown by someone",
				"Courses with structure", "Trial and error on my own",
			},
		},
		{
			ID:   "learning-recent",
			Area: AreaLearning,
			Type: TypeOpenEnded,
			Text: "What did you last learn just because you wanted to?",
			InsightTriggers: []InsightTrigger{
				{
					When:       Condition{Any: true},
					Type:       "hidden-interest",
					Insight:    "What you learn voluntarily points at interests your work history doesn't show",
					Confidence: 0.4,
				},
			},
		},
		{
			ID:    "learning-mastery",
			Area:  AreaLearning,
			Type:  TypeMultipleChoice,
			Depth: DepthIntermediate,
			Text:  "Would you rather be very good at one thing or pretty good at many?",
			Options: []string{
				"Very good at one thing", "Pretty good at many things", "One deep skill plus broad range",
			},
		},
		{
			ID:    "learning-five-years",
			Area:  AreaLearning,
			Type:  TypeOpenEnded,
			Depth: DepthDeep,
			Text:  "Five years from now, what do you want to be known for knowing?",
		},
	}
}

// #endregion learning-growth

// #region assembly

func builtinQuestions() []Question {
	var qs []Question
	qs = append(qs, workStyleQuestions()...)
	qs = append(qs, peopleQuestions()...)
	qs = append(qs, problemSolvingQuestions()...)
	qs = append(qs, creativityQuestions()...)
	qs = append(qs, structureQuestions()...)
	qs = append(qs, valuesQuestions()...)
	qs = append(qs, environmentQuestions()...)
	qs = append(qs, learningQuestions()...)
	return qs
}

func builtinClarifications() []Clarification {
	return []Clarification{
		{
			QuestionID: "values-tradeoff",
			When:       Condition{Equals: "Income and security"},
			Ask: Question{
				ID:   "values-security-clarify",
				Area: AreaValues,
				Type: TypeMultipleChoice,
				Text: "Is security the goal itself, or the foundation for something else?",
				Options: []string{
					"Security is the goal", "It's the foundation - then I'd chase something else",
					"I haven't thought about it",
				},
			},
		},
		{
			QuestionID: "structure-stability-change",
			When:       Condition{Equals: "Genuinely torn"},
			Ask: Question{
				ID:   "structure-torn-clarify",
				Area: AreaStructure,
				Type: TypeOpenEnded,
				Text: "What would tip you toward one of those two offers?",
			},
		},
		{
			QuestionID: "creativity-blank-page",
			When:       Condition{Equals: "Both, at different times"},
			Ask: Question{
				ID:   "creativity-both-clarify",
				Area: AreaCreativity,
				Type: TypeOpenEnded,
				Text: "What decides which mode you're in - the project, your mood, or something else?",
			},
		},
	}
}

// #endregion assembly
