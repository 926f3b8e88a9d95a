package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/api"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/catalog"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/config"
	"github.com/chrislloydHive/Career-Platform-sub000/internal/store"
)

// #region main
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[SERVER] no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	log.Printf("[SERVER] catalog ready (%d questions)", cat.Len())

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}
	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/api", api.NewHandler(cat, st, cfg.Evolution).Routes())

	log.Printf("[SERVER] listening on :%s (db=%s)", cfg.Port, cfg.DBPath)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

// #endregion main
