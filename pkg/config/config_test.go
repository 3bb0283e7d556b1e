package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "2025-01", cfg.Shopify.APIVersion)
	assert.Equal(t, "postgres", cfg.Shopify.SessionStore)
	assert.Equal(t, 30*time.Second, cfg.Shopify.UpstreamTimeout)
	assert.Equal(t, 120*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 0, cfg.Shopify.MaxPages)
	assert.Equal(t, "./template-ddt.liquid", cfg.Template.Path)
	assert.False(t, cfg.Template.Cache)
	assert.Equal(t, "", cfg.Template.Timezone)
	assert.Equal(t, "it-IT", cfg.Template.Locale)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("SESSION_STORE", "STATIC")
	v.Set("SHOPIFY_SHOP", "demo.myshopify.com")
	v.Set("DDT_TEMPLATE_CACHE", "true")
	v.Set("DDT_TIMEZONE", "Europe/Rome")
	v.Set("DDT_MAX_PAGES", "50")
	v.Set("UPSTREAM_TIMEOUT_SECONDS", 5)
	v.Set("REQUEST_TIMEOUT_SECONDS", "45")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "static", cfg.Shopify.SessionStore)
	assert.Equal(t, "demo.myshopify.com", cfg.Shopify.Shop)
	assert.True(t, cfg.Template.Cache)
	assert.Equal(t, "Europe/Rome", cfg.Template.Timezone)
	assert.Equal(t, 50, cfg.Shopify.MaxPages)
	assert.Equal(t, 5*time.Second, cfg.Shopify.UpstreamTimeout)
	assert.Equal(t, 45*time.Second, cfg.HTTP.RequestTimeout)
}

func TestFromViper_Invalida(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_STORE", "redis")
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("DDT_MAX_PAGES", -1)
	_, err = config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "sessions", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/sessions?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
