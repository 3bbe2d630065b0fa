package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/brightpath-labs/brightpath/internal/api"
	"github.com/brightpath-labs/brightpath/internal/db"
	"github.com/brightpath-labs/brightpath/internal/middleware"
	"github.com/brightpath-labs/brightpath/internal/services"
	"github.com/brightpath-labs/brightpath/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	addr := utils.SafeEnv("BRIGHTPATH_ADDR", ":8080")
	dbPath := utils.SafeEnv("BRIGHTPATH_DB_PATH", "brightpath.db")
	commit := os.Getenv("BRIGHTPATH_COMMIT")
	buildTime := os.Getenv("BRIGHTPATH_BUILD_TIME")

	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = conn.Close() }()
	if err := db.RunMigrations(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	snapshots := db.NewSnapshotStore(conn)
	store := buildStore(snapshots)

	coach := services.NewCoachService(services.CoachConfig{
		BaseURL: os.Getenv("BRIGHTPATH_AI_BASE_URL"),
		APIKey:  os.Getenv("BRIGHTPATH_AI_KEY"),
	}, nil)
	if !coach.Enabled() {
		log.Printf("AI coach offline: BRIGHTPATH_AI_BASE_URL/BRIGHTPATH_AI_KEY not set, fallback scripts only")
	}

	mux := http.NewServeMux()
	api.NewRouter(store, coach).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "BrightPath API",
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Frontend serving strategy (priority):
	// 1) Static files if BRIGHTPATH_STATIC_DIR is set (fullstack image)
	// 2) Dev proxy if BRIGHTPATH_DEV_FRONTEND_URL is set (proxy / to Vite dev)
	if staticDir := os.Getenv("BRIGHTPATH_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	} else if devURL := os.Getenv("BRIGHTPATH_DEV_FRONTEND_URL"); devURL != "" {
		if u, err := url.Parse(devURL); err == nil {
			rp := httputil.NewSingleHostReverseProxy(u)
			rp.ModifyResponse = func(res *http.Response) error {
				res.Header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
				return nil
			}
			mux.Handle("/", rp)
		} else {
			log.Printf("invalid BRIGHTPATH_DEV_FRONTEND_URL=%q: %v", devURL, err)
		}
	}

	handler := middleware.NoStore(middleware.SecureHeaders(middleware.CORS(middleware.WithAuth(mux))))

	log.Printf("BrightPath server listening on %s (db %s)", addr, dbPath)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildStore rehydrates memory from the snapshot slots, seeding the demo
// cohort on first run, and installs hooks so every mutation is persisted.
func buildStore(snapshots *db.SnapshotStore) *api.MemoryStore {
	apps, ok := snapshots.LoadApplications()
	if !ok {
		apps = seedApplications()
		snapshots.SaveApplications(apps)
		log.Printf("seeded %d default applications", len(apps))
	}
	if imported := importLegacySnapshot(); imported != nil {
		apps = imported
		snapshots.SaveApplications(apps)
	}
	store := api.NewMemoryStore(apps, snapshots.LoadSession())
	store.OnChange(snapshots.SaveApplications, snapshots.SaveSession)
	return store
}
