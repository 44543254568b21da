package weddingnanny

import (
	"time"

	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/storage"
)

// DefaultAdminPassword is used when no admin password is configured.
const DefaultAdminPassword = "admin123"

// SiteConfig holds all configuration for a site.
type SiteConfig struct {
	URL  string // Canonical URL (default "http://localhost:3000")
	Addr string // Listen address (default ":3000")

	Storage storage.Config // Slot backend (default SQLite at data/weddingnanny.db)

	AdminPassword string // ADMIN_PASSWORD (default DefaultAdminPassword, with a warning)
	SessionSecret string // Cookie signing secret (random per process if empty)
	CookieSecure  bool   // Set true for HTTPS

	MetricsEnabled bool          // Serve /metrics
	PageCacheTTL   time.Duration // Rendered page TTL (default 5min)
	MaxImageWidth  int           // Uploads wider than this are scaled down (default 1200)

	defaultPassword bool
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "data/weddingnanny.db"
	}
	if c.Storage.FilePath == "" {
		c.Storage.FilePath = "data/weddingnanny.json"
	}
	if c.AdminPassword == "" {
		c.AdminPassword = DefaultAdminPassword
		c.defaultPassword = true
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if c.MaxImageWidth == 0 {
		c.MaxImageWidth = 1200
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and uploads (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSlot makes the App persist into slot instead of opening the configured
// storage backend. The App does not close it.
func WithSlot(slot content.Slot) Option {
	return func(a *App) {
		a.slot = slot
	}
}

// WithStoreOptions passes options through to content.New.
func WithStoreOptions(opts ...content.Option) Option {
	return func(a *App) {
		a.storeOpts = append(a.storeOpts, opts...)
	}
}
