package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	api "github.com/quizgate/quizgate/internal/api/http"
	"github.com/quizgate/quizgate/internal/bank"
	"github.com/quizgate/quizgate/internal/config"
	"github.com/quizgate/quizgate/internal/db"
	"github.com/quizgate/quizgate/internal/quiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	importFile := flag.String("import", "", "import a delimited question file into the DB bank and exit")
	flag.Parse()

	cfg := config.FromEnv()

	// --- Question source ---
	var src bank.Source
	switch cfg.BankDriver {
	case "file":
		if *importFile != "" {
			log.Fatalf("-import needs BANK_DRIVER=sqlite or postgres")
		}
		src = bank.FileSource{Path: cfg.BankFile}
	case "sqlite", "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.BankDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		if *importFile != "" {
			text, err := os.ReadFile(*importFile)
			if err != nil {
				log.Fatalf("read %s: %v", *importFile, err)
			}
			n, err := bank.Import(ctx, dbh, string(text))
			if err != nil {
				log.Fatalf("import failed: %v", err)
			}
			log.Printf("imported %d bank lines from %s", n, *importFile)
			return
		}
		src = bank.SQLSource{DB: dbh}
	default:
		log.Fatalf("unsupported bank driver %q", cfg.BankDriver)
	}

	// --- Sessions (in-memory, swept on idle) ---
	store := quiz.NewStore(cfg.SessionTTL)
	go func() {
		for range time.Tick(time.Minute) {
			store.Sweep()
		}
	}()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/questions", api.QuestionsHandler(src))
	r.Route("/api/sessions", func(sr chi.Router) {
		sr.Post("/", api.CreateSessionHandler(src, store, quiz.ParseMode(cfg.DefaultMode)))
		sr.Get("/{sessionID}", api.GetSessionHandler(store))
		sr.Post("/{sessionID}/answer", api.AnswerHandler(store))
		sr.Post("/{sessionID}/confirm", api.ConfirmHandler(store))
		sr.Post("/{sessionID}/advance", api.AdvanceHandler(store))
		sr.Post("/{sessionID}/reset", api.ResetSessionHandler(src, store))
		sr.Delete("/{sessionID}", api.DeleteSessionHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (bank=%s)", cfg.HTTPAddr, cfg.BankDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
