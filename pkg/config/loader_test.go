package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shoplist/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CFG_TEST_DEFAULT_NAME" envDefault:"shoplist"`
	Lists   int           `env:"CFG_TEST_DEFAULT_LISTS" envDefault:"1024"`
	Timeout time.Duration `env:"CFG_TEST_DEFAULT_TIMEOUT" envDefault:"5s"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"CFG_TEST_FROM_FILE"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg defaultsConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{}))
		assert.Equal(t, "shoplist", cfg.Name)
		assert.Equal(t, 1024, cfg.Lists)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("explicit vars", func(t *testing.T) {
		t.Parallel()

		var cfg defaultsConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{
			"CFG_TEST_DEFAULT_LISTS":   "8",
			"CFG_TEST_DEFAULT_TIMEOUT": "1m",
		}))
		assert.Equal(t, 8, cfg.Lists)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()

		var cfg defaultsConfig
		err := config.Parse(&cfg, map[string]string{"CFG_TEST_DEFAULT_LISTS": "many"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()

		var cfg requiredConfig
		assert.ErrorIs(t, config.Parse(&cfg, map[string]string{}), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Parse(cfg, nil), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_Errors(t *testing.T) {
	var nilCfg *cachedConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CFG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg, nil))
	assert.Equal(t, "from-file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnv)
}
