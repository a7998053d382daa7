package config

import (
	"fmt"
	"sync/atomic"

	"turfbook/models"

	"github.com/spf13/viper"
)

// siteSnapshot holds the current immutable business configuration. Reload
// swaps the whole pointer; nothing ever mutates a published snapshot.
var siteSnapshot atomic.Pointer[models.SiteConfig]

// LoadSiteConfig reads the business snapshot (courts, capacities, hours,
// peak window, coupons) from the configured JSON file and publishes it.
func LoadSiteConfig() (*models.SiteConfig, error) {
	return loadSiteFrom(AppConfig.SiteConfigPath)
}

func loadSiteFrom(path string) (*models.SiteConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}
	var site models.SiteConfig
	if err := v.Unmarshal(&site); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	siteSnapshot.Store(&site)
	return &site, nil
}

// Site returns the current snapshot, or an empty config when none was
// loaded. Catalog lookups on the empty config degrade to the conservative
// one-at-a-time capacity model, so a missing site.json never crashes a
// request.
func Site() *models.SiteConfig {
	if s := siteSnapshot.Load(); s != nil {
		return s
	}
	return &models.SiteConfig{}
}

// SetSite publishes a snapshot directly. Used by tests and by reload.
func SetSite(s *models.SiteConfig) {
	siteSnapshot.Store(s)
}
