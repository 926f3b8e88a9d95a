package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/replay"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sessions.db (DB mode)")
	sessionID := flag.String("session", "", "session to replay (DB mode)")
	logPath := flag.String("log", "", "path to exported response log JSON (file mode)")
	verbose := flag.Bool("v", false, "print per-response results")
	flag.Parse()

	if (*dbPath == "" && *logPath == "") || (*dbPath != "" && *logPath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/sessions.db --session id")
		fmt.Fprintln(os.Stderr, "       replay --log path/to/responses.json")
		os.Exit(2)
	}

	var responses []session.Response
	var err error
	if *logPath != "" {
		responses, err = loadLogFile(*logPath)
	} else {
		if *sessionID == "" {
			fmt.Fprintln(os.Stderr, "DB mode requires --session")
			os.Exit(2)
		}
		responses, err = loadFromStore(*dbPath, *sessionID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load responses: %v\n", err)
		os.Exit(1)
	}
	if len(responses) == 0 {
		fmt.Fprintln(os.Stderr, "no responses to replay")
		os.Exit(1)
	}

	results, eng := replay.Replay(catalog.Builtin(), responses)
	if *verbose {
		for i, r := range results {
			status := "commit"
			if !r.Committed {
				status = "fail: " + r.Reason
			}
			fmt.Printf("%3d %-40s %-8s insights=%d gaps=%d completion=%d%%\n",
				i+1, r.QuestionID, status, r.InsightCount, r.GapCount, r.Completion)
		}
	}

	s := replay.Summarize(results, eng)
	fmt.Printf("replayed %d responses: commits=%d failures=%d\n", s.TotalResponses, s.Commits, s.Failures)
	fmt.Printf("final: insights=%d gaps=%d completion=%d%% complete=%v canFinish=%v\n",
		s.FinalInsights, s.FinalGaps, s.Completion, s.Complete, s.CanFinish)

	if s.Failures > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region loaders

func loadLogFile(path string) ([]session.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var responses []session.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("parse response log: %w", err)
	}
	return responses, nil
}

func loadFromStore(dbPath, sessionID string) ([]session.Response, error) {
	st, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Responses(sessionID)
}

// #endregion loaders
