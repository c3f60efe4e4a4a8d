// Package kotoba is a multilingual Markdown content engine built with
// Go, Echo, and templ. Posts live as frontmatter-plus-Markdown files in
// one directory per locale; kotoba loads and validates them, serves
// localized pages with RSS and a sitemap, and counts page views.
//
// Users provide their own templ templates via the ViewFuncs struct, and
// kotoba handles the handler logic, middleware, caching, and locale
// fallback.
package kotoba

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/kotoba/analytics"
	"github.com/eringen/kotoba/content"
)

// ViewFuncs holds user-provided templ components that the framework
// calls when rendering pages. This is the inversion-of-control mechanism
// that lets users own and customize all templates.
type ViewFuncs struct {
	Home        func(locale content.Locale, posts []content.Post, siteURL string) templ.Component
	Post        func(post content.Post, headings []content.Heading, related []content.Post, siteURL string) templ.Component
	KanaChart   func(locale content.Locale) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central kotoba application. It wires together the loader,
// cache, watcher, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Loader *content.Loader
	Cache  *PostCache
	Views  ViewFuncs

	log            zerolog.Logger
	watcher        *contentWatcher
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new kotoba App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		log:       zerolog.New(os.Stderr).With().Timestamp().Logger(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithLogger replaces the default stderr logger.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// Start initializes the loader, cache, watcher, middleware, and routes,
// then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("kotoba: SessionSecret is required")
	}

	a.Loader = content.NewLoader(a.Config.ContentDir, a.log)
	a.Cache = NewPostCache(a.Loader, a.Config.PostCacheTTL)

	if a.Config.WatchContent {
		w, err := watchContent(a.Config.ContentDir, a.Cache, a.log)
		if err != nil {
			// A site without live invalidation still works; the TTL
			// catches up eventually.
			a.log.Warn().Err(err).Msg("content watcher disabled")
		} else {
			a.watcher = w
		}
	}

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("kotoba: init analytics: %w", err)
		}
		a.analyticsStore = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/", a.handleRoot)
	e.POST("/locale/", a.handleSetLocale)
	e.GET("/api/kana", a.handleKana)

	e.GET("/:locale/", a.handleHome)
	e.GET("/:locale/feed.xml", a.handleFeed)
	e.GET("/:locale/kana/", a.handleKanaPage)
	e.GET("/:locale/blog/:slug/", a.handlePost)

	if a.analyticsStore != nil {
		h := analytics.NewHandler(a.analyticsStore, a.log)
		h.RegisterRoutes(e)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("kotoba: required environment variable %s is not set", key)
	}
	return v
}
