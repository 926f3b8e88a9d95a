package catalog

import "fmt"

// #region catalog-struct

// Catalog is the static question bank the engine selects from.
type Catalog struct {
	questions      map[string]Question
	order          []string
	byArea         map[Area][]string
	clarifications []Clarification
}

// #endregion catalog-struct

// #region constructor

// New builds a catalog from question definitions and a clarification table.
// Inline follow-up questions are indexed too so they resolve by ID after being asked.
func New(questions []Question, clarifications []Clarification) (*Catalog, error) {
	c := &Catalog{
		questions:      make(map[string]Question),
		byArea:         make(map[Area][]string),
		clarifications: clarifications,
	}
	for _, q := range questions {
		if err := c.add(q, true); err != nil {
			return nil, err
		}
	}
	for _, cl := range clarifications {
		if cl.Ask.ID == "" {
			return nil, fmt.Errorf("clarification for %s: missing question ID", cl.QuestionID)
		}
		if _, ok := c.questions[cl.Ask.ID]; !ok {
			c.questions[cl.Ask.ID] = cl.Ask
		}
	}
	return c, nil
}

func (c *Catalog) add(q Question, topLevel bool) error {
	if q.ID == "" {
		return fmt.Errorf("question with empty ID in area %s", q.Area)
	}
	if _, dup := c.questions[q.ID]; dup && topLevel {
		return fmt.Errorf("duplicate question ID %s", q.ID)
	}
	c.questions[q.ID] = q
	if topLevel {
		c.order = append(c.order, q.ID)
		c.byArea[q.Area] = append(c.byArea[q.Area], q.ID)
	}
	// Follow-ups resolve by ID but are never offered as area defaults.
	for _, fu := range q.FollowUps {
		if err := c.add(fu.Then, false); err != nil {
			return err
		}
	}
	return nil
}

// #endregion constructor

// #region lookups

// Get resolves a question by ID.
func (c *Catalog) Get(id string) (Question, bool) {
	q, ok := c.questions[id]
	return q, ok
}

// ByArea returns the top-level questions of an area in catalog order.
func (c *Catalog) ByArea(a Area) []Question {
	ids := c.byArea[a]
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.questions[id])
	}
	return out
}

// Questions returns all top-level questions in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.questions[id])
	}
	return out
}

// Len reports the number of top-level questions.
func (c *Catalog) Len() int {
	return len(c.order)
}

// #endregion lookups

// #region clarification-lookup

// Clarification returns the clarifying question for a (question, response) pair.
// First matching table entry wins.
func (c *Catalog) Clarification(questionID string, response any) (Question, bool) {
	for _, cl := range c.clarifications {
		if cl.QuestionID != questionID {
			continue
		}
		if cl.When.Matches(response) {
			return cl.Ask, true
		}
	}
	return Question{}, false
}

// #endregion clarification-lookup

// #region placeholder

// Placeholder synthesizes a minimal question so recording never blocks on an
// unresolved ID. Area defaults to values per the recovery contract.
func Placeholder(id string) Question {
	return Question{
		ID:   id,
		Area: AreaValues,
		Type: TypeOpenEnded,
		Text: "Tell me more about that.",
	}
}

// #endregion placeholder
