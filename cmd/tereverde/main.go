package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/tereverde/tereverde-go/internal/config"
	"github.com/tereverde/tereverde-go/internal/handler"
	"github.com/tereverde/tereverde-go/internal/middleware"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/session"
	"github.com/tereverde/tereverde-go/internal/store"
	"github.com/tereverde/tereverde-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// crudHandlers defines the standard CRUD handler methods.
type crudHandlers struct {
	List     http.HandlerFunc
	NewForm  http.HandlerFunc
	Create   http.HandlerFunc
	EditForm http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for an admin resource.
// Routes: GET base, GET base/new, POST base, GET baseID/edit, POST baseID, POST baseID/delete
func registerCRUD(r chi.Router, base, baseID string, h crudHandlers) {
	r.Get(base, h.List)
	r.Get(base+handler.RouteSuffixNew, h.NewForm)
	r.Post(base, h.Create)
	r.Get(baseID+handler.RouteSuffixEdit, h.EditForm)
	r.Post(baseID, h.Update)
	r.Post(baseID+handler.RouteSuffixDelete, h.Delete)
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Terê Verde Online - Parks, trails and events of Teresópolis\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] [command]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  init-db    Create the database schema and exit\n")
		_, _ = fmt.Fprintf(os.Stderr, "  seed       Populate the database with sample data and exit\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_SESSION_SECRET  Session encryption key (min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_DB_PATH         SQLite database path (default: ./data/tereverde.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_SERVER_HOST     Server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TEREVERDE_LOG_LEVEL       Log level: debug|info|warn|error (default: info)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("tereverde %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	queries := store.New(db)

	switch command {
	case "init-db":
		// Schema is created by the migrations above.
		slog.Info("database initialized")
		return nil
	case "seed":
		if err := queries.Seed(context.Background(), logger); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		slog.Info("database seeded")
		return nil
	case "", "serve":
		// Fall through to the server below.
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized", "hsts", !cfg.IsDevelopment())

	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), strconv.Itoa(cfg.ServerPort))
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Initialize handlers
	publicHandler := handler.NewPublicHandler(db, renderer)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	adminHandler := handler.NewAdminHandler(db, renderer)
	parksHandler := handler.NewParksHandler(db, renderer)
	trailsHandler := handler.NewTrailsHandler(db, renderer)
	eventsHandler := handler.NewEventsHandler(db, renderer)
	availabilityHandler := handler.NewAvailabilityHandler(db, renderer)
	biodiversityHandler := handler.NewBiodiversityHandler(db, renderer)

	// Public routes
	r.Get(handler.RouteRoot, publicHandler.Home)
	r.Get(handler.RouteParks, publicHandler.ParksList)
	r.Get(handler.RouteParksID, publicHandler.ParkDetail)
	r.Get(handler.RouteTrails, publicHandler.TrailsList)
	r.Get(handler.RouteEvents, publicHandler.EventsList)
	r.Get(handler.RouteAbout, publicHandler.About)

	// Admin routes (protected with CSRF)
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)

		// Login and logout stay outside the auth gate.
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
		r.Post(handler.RouteLogout, authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin(sessionManager))
			r.Use(middleware.LoadAdmin(sessionManager, db))

			r.Get(handler.RouteRoot, adminHandler.Dashboard)

			registerCRUD(r, handler.RouteParks, handler.RouteParksID, crudHandlers{
				List: parksHandler.List, NewForm: parksHandler.NewForm, Create: parksHandler.Create,
				EditForm: parksHandler.EditForm, Update: parksHandler.Update, Delete: parksHandler.Delete,
			})

			registerCRUD(r, handler.RouteTrails, handler.RouteTrailsID, crudHandlers{
				List: trailsHandler.List, NewForm: trailsHandler.NewForm, Create: trailsHandler.Create,
				EditForm: trailsHandler.EditForm, Update: trailsHandler.Update, Delete: trailsHandler.Delete,
			})
			r.Post(handler.RouteTrailsID+handler.RouteSuffixToggle, trailsHandler.Toggle)

			registerCRUD(r, handler.RouteEvents, handler.RouteEventsID, crudHandlers{
				List: eventsHandler.List, NewForm: eventsHandler.NewForm, Create: eventsHandler.Create,
				EditForm: eventsHandler.EditForm, Update: eventsHandler.Update, Delete: eventsHandler.Delete,
			})
			r.Post(handler.RouteEventsID+handler.RouteSuffixToggle, eventsHandler.Toggle)

			registerCRUD(r, handler.RouteAvailability, handler.RouteAvailabilityID, crudHandlers{
				List: availabilityHandler.List, NewForm: availabilityHandler.NewForm, Create: availabilityHandler.Create,
				EditForm: availabilityHandler.EditForm, Update: availabilityHandler.Update, Delete: availabilityHandler.Delete,
			})

			registerCRUD(r, handler.RouteBiodiversity, handler.RouteBiodiversityID, crudHandlers{
				List: biodiversityHandler.List, NewForm: biodiversityHandler.NewForm, Create: biodiversityHandler.Create,
				EditForm: biodiversityHandler.EditForm, Update: biodiversityHandler.Update, Delete: biodiversityHandler.Delete,
			})
		})
	})

	// Static file serving
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(publicHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
