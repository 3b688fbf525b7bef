package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, "uploads/teachers", cfg.Upload.PublicPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Session.Secure)
	assert.Empty(t, cfg.TrustedProxies)
	assert.NoError(t, cfg.validate())
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ENV", EnvProduction)
	v.Set("UPLOAD_ALLOWED_EXTENSIONS", " PNG , webp,")
	v.Set("SESSION_TTL", "bogus")
	v.Set("UPLOAD_MAX_BYTES", 0)
	cfg := fromViper(v)

	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, []string{"png", "webp"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxBytes)
}

func TestProductionRequiresSessionSecret(t *testing.T) {
	for _, secret := range []string{"", "  ", defaultSessionSecret} {
		v := viper.New()
		setDefaults(v)
		v.Set("ENV", EnvProduction)
		v.Set("SESSION_SECRET", secret)

		assert.Error(t, fromViper(v).validate(), "secret %q", secret)
	}

	v := viper.New()
	setDefaults(v)
	v.Set("ENV", EnvProduction)
	v.Set("SESSION_SECRET", "a-long-random-production-secret")
	require.NoError(t, fromViper(v).validate())
}

func TestTrustedProxies(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("TRUSTED_PROXIES", "10.0.0.1, 192.168.0.0/16,")

	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, fromViper(v).TrustedProxies)
}
