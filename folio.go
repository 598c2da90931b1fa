// Package folio serves a single-page personal portfolio built with Go, Echo,
// and gomponents. The page is rendered on the server; the browser only
// reports section geometry so the server can mark the active nav item.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/views"
)

const shutdownTimeout = 10 * time.Second

// App is the central folio application. It wires together the page cache,
// analytics, handlers and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Logger    *zap.Logger
	Pages     *PageCache
	Analytics *analytics.Store

	recorder        *analytics.Recorder
	fragmentLimiter *RateLimiter
	customRoutes    []func(*App)
	stopCleanup     func()
	closeOnce       sync.Once
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Logger: zap.NewNop(),
		Pages:  NewBodyCache(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup validates the configuration, opens the analytics store when enabled,
// and registers middleware and routes. Start calls it; tests call it
// directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("folio: invalid config: %w", err)
	}

	a.fragmentLimiter = NewRateLimiter(a.Config.FragmentRateLimit, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			a.fragmentLimiter.Stop()
			return fmt.Errorf("folio: init analytics: %w", err)
		}
		a.Analytics = store
		a.recorder = analytics.NewRecorder(store, a.Logger.Named("analytics"), a.selfHost())
		if a.Config.AnalyticsRetentionDays > 0 {
			a.stopCleanup = store.StartCleanupScheduler(a.Config.AnalyticsRetentionDays, 24*time.Hour, func(err error) {
				a.Logger.Warn("analytics cleanup failed", zap.Error(err))
			})
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until ctx is cancelled, then shuts the
// server down gracefully and releases resources.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	defer a.Close()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("folio: serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.Logger.Info("shutting down")
		return a.Echo.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/scrollspy.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)

	if a.recorder != nil {
		e.GET("/", a.handleHome, a.recorder.PageViews(func(c echo.Context) string {
			return themeFor(c).String()
		}))
	} else {
		e.GET("/", a.handleHome)
	}
	e.GET("/fragments/nav/", a.handleNavFragment)
	e.POST("/theme/", a.handleThemeToggle)
}

// Close cleans up resources. It is safe to call more than once.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.stopCleanup != nil {
			a.stopCleanup()
		}
		if a.fragmentLimiter != nil {
			a.fragmentLimiter.Stop()
		}
		if a.Analytics != nil {
			err = a.Analytics.Close()
		}
		_ = a.Logger.Sync()
	})
	return err
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// selfHost is the hostname of the configured site URL.
func (a *App) selfHost() string {
	u, err := url.Parse(a.Config.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
