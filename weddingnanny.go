// Package weddingnanny serves the Wedding Nanny marketing site and its admin
// console. Every city landing page, the site-wide SEO settings, the change log
// and the backups live in a content.Store persisted to a single storage slot.
//
// Users may replace the built-in templates by supplying their own ViewFuncs;
// the package owns routing, middleware, sessions and the admin JSON API.
package weddingnanny

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/storage"
)

// ViewFuncs holds the templ components the App renders. views.Defaults
// returns a working set.
type ViewFuncs struct {
	CityPage     func(v CityView) templ.Component
	AdminLogin   func(showError bool, csrfToken string) templ.Component
	AdminConsole func(v AdminView) templ.Component
	NotFound     func() templ.Component
	ServerError  func() templ.Component
}

// App wires together the content store, page cache, admin gate, media
// library, middleware and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *content.Store
	Pages  *PageCache
	Media  *MediaLibrary
	Gate   *Gate
	Views  ViewFuncs

	registry     *prometheus.Registry
	metrics      *storeMetrics
	slot         content.Slot
	ownedSlot    storage.Slot
	storeOpts    []content.Option
	customRoutes []func(*App)
	staticDir    string
	bootID       string
	unsubscribe  func()
	ready        bool
}

// New creates an App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup opens storage, loads saved content and registers middleware and
// routes without starting the listener. Start calls it.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	logger := a.Echo.Logger

	if a.Config.defaultPassword {
		logger.Warnf("weddingnanny: ADMIN_PASSWORD is not set, falling back to the default password")
	}
	if a.Config.SessionSecret == "" {
		logger.Warnf("weddingnanny: ADMIN_SESSION_SECRET is not set, generating a per-process secret")
		a.Config.SessionSecret = string(securecookie.GenerateRandomKey(32))
	}

	if a.slot == nil {
		slot, err := storage.Open(a.Config.Storage)
		if err != nil {
			return fmt.Errorf("weddingnanny: open storage: %w", err)
		}
		a.slot = slot
		a.ownedSlot = slot
	}

	a.Store = content.New(content.NewAdapter(a.slot), a.storeOpts...)
	if err := a.Store.Load(); err != nil {
		var se *content.SerializationError
		if errors.As(err, &se) {
			logger.Warnf("weddingnanny: saved content is unreadable, serving defaults: %v", err)
		} else {
			logger.Warnf("weddingnanny: could not read saved content, serving defaults: %v", err)
		}
	}

	a.Gate = NewGate(a.Config.AdminPassword)
	a.bootID = uuid.NewString()
	a.Pages = NewPageCache(a.Config.PageCacheTTL)
	a.Media = NewMediaLibrary(filepath.Join(a.staticDir, uploadsSubdir), "/public/"+uploadsSubdir+"/", a.Config.MaxImageWidth)

	a.registry = prometheus.NewRegistry()
	a.metrics = newStoreMetrics(a.registry, a.Store, a.Pages)
	a.unsubscribe = a.Store.Subscribe(a.onStoreEvent)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start runs Setup and then serves HTTP until the server stops.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) onStoreEvent(ev content.Event) {
	a.Pages.Invalidate()
	a.metrics.observe(ev)
	if ev.Err != nil {
		a.Echo.Logger.Warnf("weddingnanny: %s applied but not saved: %v", ev, ev.Err)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/styles.css", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	if a.Config.MetricsEnabled {
		e.GET("/metrics", a.metricsHandler())
	}

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)

	api := e.Group("/admin/api", a.requireAdmin)
	api.GET("/state", a.apiState)
	api.PUT("/cities/:id", a.apiPutCity)
	api.POST("/cities/:id/layout/move", a.apiMoveSection)
	api.POST("/cities/:id/layout/toggle", a.apiToggleSection)
	api.PATCH("/cities/:id/hero", a.apiPatchHero)
	api.POST("/cities/:id/testimonials", a.apiAddTestimonial)
	api.PUT("/cities/:id/testimonials/:idx", a.apiUpdateTestimonial)
	api.DELETE("/cities/:id/testimonials/:idx", a.apiDeleteTestimonial)
	api.PUT("/global", a.apiPutGlobal)
	api.PATCH("/global", a.apiPatchGlobal)
	api.GET("/dashboard", a.apiDashboard)
	api.GET("/logs", a.apiLogs)
	api.GET("/backups", a.apiBackups)
	api.POST("/backups", a.apiCreateBackup)
	api.DELETE("/backups/:id", a.apiDeleteBackup)
	api.GET("/backups/:id/restore", a.apiProposeRestore)
	api.POST("/backups/:id/restore", a.apiRestore)
	api.GET("/reset", a.apiProposeReset)
	api.POST("/reset", a.apiReset)
	api.GET("/images", a.apiImages)
	api.POST("/images", a.apiUploadImage)
	api.DELETE("/images/:name", a.apiDeleteImage)

	e.GET("/", a.handleHome)
	e.GET("/:city/", a.handleCity)
}

// Close releases the storage backend if the App opened it.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.ownedSlot != nil {
		return a.ownedSlot.Close()
	}
	return nil
}
