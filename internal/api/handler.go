// Package api provides HTTP handlers for the questionnaire API.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/engine"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/evolution"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/store"
)

// #region handler

// Handler serves the session lifecycle over HTTP. Engines are rebuilt from
// stored snapshots per request; the snapshot in SQLite is the source of truth.
type Handler struct {
	cat *catalog.Catalog
	st  *store.Store
	cfg evolution.Config
}

// NewHandler creates a handler over a question catalog and a session store.
// The evolution config applies to every engine the handler builds.
func NewHandler(cat *catalog.Catalog, st *store.Store, cfg evolution.Config) *Handler {
	return &Handler{cat: cat, st: st, cfg: cfg}
}

// Routes mounts all session endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sessions", h.createSession)
	r.Get("/sessions", h.listSessions)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Delete("/", h.deleteSession)
		r.Post("/responses", h.recordResponse)
		r.Get("/questions", h.nextQuestions)
		r.Get("/insights", h.insights)
		r.Get("/gaps", h.gaps)
		r.Get("/progress", h.progress)
		r.Get("/export", h.export)
	})
	return r
}

// #endregion handler

// #region json-helpers

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// #endregion json-helpers

// #region session-lifecycle

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	eng := engine.New(h.cat, engine.WithEvolutionConfig(h.cfg))
	snapshot, err := eng.Snapshot()
	if err != nil {
		Error(w, http.StatusInternalServerError, "snapshot failed")
		return
	}
	id, err := h.st.Create(snapshot)
	if err != nil {
		log.Printf("[API] create session: %v", err)
		Error(w, http.StatusInternalServerError, "create failed")
		return
	}
	JSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.st.List()
	if err != nil {
		log.Printf("[API] list sessions: %v", err)
		Error(w, http.StatusInternalServerError, "list failed")
		return
	}
	JSON(w, http.StatusOK, sessions)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.st.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Error(w, http.StatusNotFound, "session not found")
			return
		}
		log.Printf("[API] delete session %s: %v", id, err)
		Error(w, http.StatusInternalServerError, "delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadEngine rebuilds an engine from the stored snapshot.
func (h *Handler) loadEngine(w http.ResponseWriter, id string) (*engine.Engine, bool) {
	snapshot, err := h.st.Load(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Error(w, http.StatusNotFound, "session not found")
		} else {
			log.Printf("[API] load session %s: %v", id, err)
			Error(w, http.StatusInternalServerError, "load failed")
		}
		return nil, false
	}
	eng, err := engine.Restore(h.cat, snapshot, engine.WithEvolutionConfig(h.cfg))
	if err != nil {
		log.Printf("[API] restore session %s: %v", id, err)
		Error(w, http.StatusInternalServerError, "restore failed")
		return nil, false
	}
	return eng, true
}

// #endregion session-lifecycle

// #region record

func (h *Handler) recordResponse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	eng, ok := h.loadEngine(w, id)
	if !ok {
		return
	}

	var resp session.Response
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		Error(w, http.StatusBadRequest, "invalid response body")
		return
	}
	if err := eng.RecordResponse(resp); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot, err := eng.Snapshot()
	if err != nil {
		Error(w, http.StatusInternalServerError, "snapshot failed")
		return
	}
	if err := h.st.Save(id, snapshot); err != nil {
		log.Printf("[API] save session %s: %v", id, err)
		Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	if err := h.st.AppendResponse(id, resp); err != nil {
		// The snapshot already committed; a missing log row only degrades replay.
		log.Printf("[API] append response for %s: %v", id, err)
	}

	JSON(w, http.StatusOK, map[string]any{
		"responseCount": eng.ResponseCount(),
		"completion":    eng.CompletionPercentage(),
		"complete":      eng.IsComplete(),
		"canFinish":     eng.CanFinish(),
	})
}

// #endregion record

// #region readers

func (h *Handler) nextQuestions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	eng, ok := h.loadEngine(w, id)
	if !ok {
		return
	}

	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	cands := eng.NextQuestions(limit)

	// Dynamic generation may have grown the pool; persist so answers resolve.
	snapshot, err := eng.Snapshot()
	if err == nil {
		if err := h.st.Save(id, snapshot); err != nil {
			log.Printf("[API] save session %s after generation: %v", id, err)
		}
	}

	JSON(w, http.StatusOK, cands)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.loadEngine(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	JSON(w, http.StatusOK, map[string]any{
		"insights":            eng.Insights(),
		"synthesizedInsights": eng.SynthesizedInsights(),
	})
}

func (h *Handler) gaps(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.loadEngine(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	JSON(w, http.StatusOK, eng.Gaps())
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.loadEngine(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	report := eng.EvolutionReport()
	JSON(w, http.StatusOK, map[string]any{
		"areas":         eng.ExplorationProgress(),
		"responseCount": eng.ResponseCount(),
		"completion":    eng.CompletionPercentage(),
		"complete":      eng.IsComplete(),
		"canFinish":     eng.CanFinish(),
		"evolution":     report.Summary,
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.loadEngine(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	JSON(w, http.StatusOK, eng.ExportProfile())
}

// #endregion readers
