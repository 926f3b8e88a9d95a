package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/engine"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/store"
)

// #region main
func main() {
	dbPath := envOr("DB_PATH", "sessions.db")
	catalogPath := envOr("CATALOG_PATH", "")

	cat := catalog.Builtin()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
		cat = loaded
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	eng := engine.New(cat)
	snapshot, err := eng.Snapshot()
	if err != nil {
		log.Fatalf("failed to snapshot: %v", err)
	}
	sessionID, err := st.Create(snapshot)
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}

	fmt.Println("Career self-assessment session ready.")
	fmt.Printf("  Session: %s | DB: %s\n", sessionID, dbPath)
	fmt.Println("Answer each question, or type 'done' to finish, 'quit' to abort.")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		cands := eng.NextQuestions(1)
		if len(cands) == 0 {
			fmt.Println("\nNo questions left.")
			break
		}
		q := cands[0].Question

		fmt.Printf("\n%s\n", q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		if answer == "quit" {
			return
		}
		if answer == "done" {
			if !eng.CanFinish() {
				fmt.Printf("Too early to finish (%d%% complete, %d answers). Keep going.\n",
					eng.CompletionPercentage(), eng.ResponseCount())
				continue
			}
			break
		}

		resp := session.Response{
			QuestionID: q.ID,
			Value:      parseAnswer(q, answer),
			Timestamp:  session.Now(),
			Confidence: session.Certain,
		}
		if err := eng.RecordResponse(resp); err != nil {
			log.Printf("record error: %v", err)
			continue
		}
		if err := persist(st, sessionID, eng, resp); err != nil {
			log.Printf("persist error: %v", err)
		}

		fmt.Printf("[%d answers, %d%% complete, %d insights]\n",
			eng.ResponseCount(), eng.CompletionPercentage(), len(eng.Insights()))
		if eng.IsComplete() {
			fmt.Println("\nThat's a full picture. Finishing up.")
			break
		}
	}

	printProfile(eng)
}

// #endregion main

// #region helpers

// parseAnswer maps numeric input onto options and scale values; everything
// else stays free text.
func parseAnswer(q catalog.Question, answer string) any {
	n, err := strconv.Atoi(answer)
	if err != nil {
		return answer
	}
	if len(q.Options) > 0 && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	if q.Type == catalog.TypeScale {
		return float64(n)
	}
	return answer
}

func persist(st *store.Store, sessionID string, eng *engine.Engine, resp session.Response) error {
	snapshot, err := eng.Snapshot()
	if err != nil {
		return err
	}
	if err := st.Save(sessionID, snapshot); err != nil {
		return err
	}
	return st.AppendResponse(sessionID, resp)
}

func printProfile(eng *engine.Engine) {
	profile := eng.ExportProfile()
	fmt.Printf("\n=== Profile (%d%% complete) ===\n", profile.CompletionPercentage)
	for _, ins := range profile.Insights {
		fmt.Printf("  [%s] %s (%.2f)\n", ins.Type, ins.Text, ins.Confidence)
	}
	for _, syn := range profile.SynthesizedInsights {
		fmt.Printf("  [%s] %s (%.2f)\n", syn.Kind, syn.Text, syn.Confidence)
	}
	if len(profile.Gaps) > 0 {
		fmt.Println("Still unknown:")
		for _, g := range profile.Gaps {
			fmt.Printf("  - %s (%s)\n", g.Description, g.Importance)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
