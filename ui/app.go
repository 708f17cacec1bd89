package ui

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"churnreport/internal/report"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App serves one generated report
type App struct {
	router    *chi.Mux
	report    *report.Report
	templates *template.Template
	logger    *zap.SugaredLogger
	assetsDir string
}

// Config holds UI application configuration
type Config struct {
	Report    *report.Report
	AssetsDir string
	Logger    *zap.SugaredLogger
}

// NewApp creates the report application
func NewApp(config Config) (*App, error) {
	if config.Report == nil {
		return nil, fmt.Errorf("report is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	funcMap := template.FuncMap{
		"pct":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"pct1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"rate": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"num": func(v float64) string {
			if math.IsNaN(v) {
				return "—"
			}
			return fmt.Sprintf("%.2f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		report:    config.Report,
		templates: templates,
		logger:    logger,
		assetsDir: config.AssetsDir,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", a.handleHealth)

	// Downloads
	a.router.Get("/dictionary.csv", a.handleDictionaryCSV)
	a.router.Get("/missing.csv", a.handleMissingCSV)
	a.router.Get("/report.xlsx", a.handleWorkbook)

	// API endpoints
	a.router.Get("/api/report", a.handleAPIReport)
	a.router.Get("/api/dictionary", a.handleAPIDictionary)
	a.router.Get("/api/missing", a.handleAPIMissing)
	a.router.Get("/api/target", a.handleAPITarget)

	a.router.Handle("/static/*", http.FileServer(http.FS(embeddedFiles)))
	if a.assetsDir != "" {
		a.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(a.assetsDir))))
	}
}

// ServeHTTP makes App usable as an http.Handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Start runs the HTTP server on addr
func (a *App) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.logger.Infof("[UI] Serving report %s on %s", a.report.ID, addr)
	return srv.ListenAndServe()
}
