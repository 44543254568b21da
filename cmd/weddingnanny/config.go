package main

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/storage"
)

var cfgFile string

// Keys double as environment variable names once upper-cased.
const (
	keySiteURL       = "site_url"
	keyAddr          = "addr"
	keyStaticDir     = "static_dir"
	keyAdminPassword = "admin_password"
	keySessionSecret = "admin_session_secret"
	keyCookieSecure  = "cookie_secure"
	keyMetrics       = "metrics_enabled"
	keyBackend       = "storage_backend"
	keyDatabasePath  = "database_path"
	keyStorageFile   = "storage_file"
	keyRedisAddress  = "redis_address"
	keyRedisPassword = "redis_password"
	keyRedisDB       = "redis_db"
	keyRedisPrefix   = "redis_prefix"
	keyPageCacheTTL  = "page_cache_ttl"
	keyMaxImageWidth = "max_image_width"
)

func initConfig(_ *cobra.Command) error {
	viper.SetDefault(keySiteURL, "http://localhost:3000")
	viper.SetDefault(keyAddr, ":3000")
	viper.SetDefault(keyStaticDir, "public")
	viper.SetDefault(keyBackend, string(storage.BackendSQLite))
	viper.SetDefault(keyDatabasePath, "data/weddingnanny.db")
	viper.SetDefault(keyStorageFile, "data/weddingnanny.json")
	viper.SetDefault(keyPageCacheTTL, "5m")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("weddingnanny")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Infof("weddingnanny: using config file %s", viper.ConfigFileUsed())
	}
	return nil
}

func storageConfig() (storage.Config, error) {
	backend, err := storage.ParseBackend(viper.GetString(keyBackend))
	if err != nil {
		return storage.Config{}, err
	}
	return storage.Config{
		Backend:      backend,
		DatabasePath: viper.GetString(keyDatabasePath),
		FilePath:     viper.GetString(keyStorageFile),
		Redis: storage.RedisConfig{
			Address:  viper.GetString(keyRedisAddress),
			Password: viper.GetString(keyRedisPassword),
			DB:       viper.GetInt(keyRedisDB),
			Prefix:   viper.GetString(keyRedisPrefix),
		},
	}, nil
}

func siteConfig() (weddingnanny.SiteConfig, error) {
	sc, err := storageConfig()
	if err != nil {
		return weddingnanny.SiteConfig{}, err
	}
	return weddingnanny.SiteConfig{
		URL:            viper.GetString(keySiteURL),
		Addr:           viper.GetString(keyAddr),
		Storage:        sc,
		AdminPassword:  viper.GetString(keyAdminPassword),
		SessionSecret:  viper.GetString(keySessionSecret),
		CookieSecure:   viper.GetBool(keyCookieSecure),
		MetricsEnabled: viper.GetBool(keyMetrics),
		PageCacheTTL:   viper.GetDuration(keyPageCacheTTL),
		MaxImageWidth:  viper.GetInt(keyMaxImageWidth),
	}, nil
}

// openStore loads the saved content for an offline command. Unlike the
// server, it refuses to continue when the saved blob cannot be read, so a
// command never overwrites content it failed to load.
func openStore() (*content.Store, func()) {
	sc, err := storageConfig()
	if err != nil {
		log.Fatalf("weddingnanny: %v", err)
	}
	slot, err := storage.Open(sc)
	if err != nil {
		log.Fatalf("weddingnanny: open storage: %v", err)
	}
	store := content.New(content.NewAdapter(slot))
	if err := store.Load(); err != nil {
		slot.Close()
		log.Fatalf("weddingnanny: load content: %v", err)
	}
	return store, func() { slot.Close() }
}

// mustPersist exits when a mutation could not be saved; an offline command
// has no memory worth keeping.
func mustPersist(err error) {
	if err != nil {
		log.Fatalf("weddingnanny: %v", err)
	}
}
