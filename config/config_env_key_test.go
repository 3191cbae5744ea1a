package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"imageStore": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"carStore": map[string]any{
			"driver": "postgres",
		},
		"cars": map[string]any{
			"enforceImageOwnership": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IMAGESTORE_BUCKETURL", want: "imageStore.bucketUrl"},
		{envKey: "IMAGESTORE_PUBLICBASEURL", want: "imageStore.publicBaseUrl"},
		{envKey: "CARSTORE_DRIVER", want: "carStore.driver"},
		{envKey: "CARS_ENFORCEIMAGEOWNERSHIP", want: "cars.enforceImageOwnership"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.CarStore.Driver)
	assert.Equal(t, "cars", cfg.ImageStore.Folder)
	assert.Equal(t, "mem://", cfg.ImageStore.BucketURL)
	assert.Equal(t, 10, cfg.Cars.MaxImages)
	assert.False(t, cfg.Cars.EnforceImageOwnership)
	assert.True(t, cfg.Cars.LimitOnAppend())
	assert.True(t, cfg.Cars.PurgeOnRemove())
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.NotNil(t, cfg.PubSub)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  serviceName: carhub
carStore:
  driver: postgres
cars:
  maxImages: 10
  enforceImageLimitOnAppend: true
imageStore:
  bucketUrl: "mem://"
  folder: cars
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("CARSTORE_DRIVER", "mongo")
	t.Setenv("CARS_ENFORCEIMAGELIMITONAPPEND", "false")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "carhub", cfg.Env.ServiceName)
	assert.Equal(t, "mongo", cfg.CarStore.Driver)
	assert.Equal(t, 10, cfg.Cars.MaxImages)
	assert.False(t, cfg.Cars.LimitOnAppend())
	assert.Equal(t, "cars", cfg.ImageStore.Folder)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}
