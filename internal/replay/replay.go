package replay

import (
	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/engine"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region types

// Result captures the outcome of replaying one response through the engine.
type Result struct {
	QuestionID   string
	Committed    bool
	Reason       string
	InsightCount int
	GapCount     int
	Completion   int
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalResponses int
	Commits        int
	Failures       int
	FinalInsights  int
	FinalGaps      int
	Completion     int
	Complete       bool
	CanFinish      bool
}

// #endregion types

// #region replay

// Replay feeds a recorded response log into a fresh engine and reports
// per-response outcomes. Timestamps are preserved from the log, so the final
// derived views depend only on the log contents.
func Replay(cat *catalog.Catalog, responses []session.Response) ([]Result, *engine.Engine) {
	eng := engine.New(cat)
	results := make([]Result, 0, len(responses))

	for _, resp := range responses {
		r := Result{QuestionID: resp.QuestionID}
		if err := eng.RecordResponse(resp); err != nil {
			r.Reason = err.Error()
		} else {
			r.Committed = true
		}
		r.InsightCount = len(eng.Insights())
		r.GapCount = len(eng.Gaps())
		r.Completion = eng.CompletionPercentage()
		results = append(results, r)
	}
	return results, eng
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result, eng *engine.Engine) Summary {
	s := Summary{
		TotalResponses: len(results),
		FinalInsights:  len(eng.Insights()),
		FinalGaps:      len(eng.Gaps()),
		Completion:     eng.CompletionPercentage(),
		Complete:       eng.IsComplete(),
		CanFinish:      eng.CanFinish(),
	}
	for _, r := range results {
		if r.Committed {
			s.Commits++
		} else {
			s.Failures++
		}
	}
	return s
}

// #endregion replay
