package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/engine"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sessions.db")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/sessions.db [--session id] [--json]")
		os.Exit(2)
	}

	st, err := store.New(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *sessionID != "" {
		if err := runDetailMode(st, *sessionID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store, jsonOut bool) error {
	sessions, err := st.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	fmt.Printf("%-38s %-26s %-26s\n", "SESSION", "CREATED", "UPDATED")
	for _, s := range sessions {
		fmt.Printf("%-38s %-26s %-26s\n",
			s.ID,
			s.CreatedAt.Format("2006-01-02T15:04:05Z"),
			s.UpdatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(st *store.Store, sessionID string, jsonOut bool) error {
	snapshot, err := st.Load(sessionID)
	if err != nil {
		return err
	}
	eng, err := engine.Restore(catalog.Builtin(), snapshot)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eng.ExportProfile())
	}

	fmt.Printf("Session %s\n", sessionID)
	fmt.Printf("  responses: %d  completion: %d%%  complete: %v  canFinish: %v\n",
		eng.ResponseCount(), eng.CompletionPercentage(), eng.IsComplete(), eng.CanFinish())

	fmt.Println("  exploration:")
	for _, ap := range eng.ExplorationProgress() {
		fmt.Printf("    %-22s depth=%d\n", ap.Area, ap.Depth)
	}

	insights := eng.Insights()
	fmt.Printf("  insights (%d):\n", len(insights))
	for _, ins := range insights {
		fmt.Printf("    [%s] %s (%.2f, evidence=%d)\n", ins.Type, ins.Text, ins.Confidence, len(ins.BasedOn))
	}

	gaps := eng.Gaps()
	fmt.Printf("  gaps (%d):\n", len(gaps))
	for _, g := range gaps {
		fmt.Printf("    [%s] %s\n", g.Importance, g.Description)
	}

	report := eng.EvolutionReport()
	fmt.Printf("  evolution: strengthening=%d weakening=%d stable=%d fluctuating=%d stability=%.2f progress=%.2f\n",
		report.Summary.Strengthening, report.Summary.Weakening, report.Summary.Stable,
		report.Summary.Fluctuating, report.Summary.OverallStability, report.Summary.SelfDiscoveryProgress)
	return nil
}

// #endregion detail-mode
