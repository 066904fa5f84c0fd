package envstruct_test

import (
	"strings"
	"testing"
	"time"

	"github.com/emberops/firedesk/internal/envstruct"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	type config struct {
		Addr       string        `env:"ADDR" envDefault:"localhost:4000"`
		StationLat float64       `env:"STATION_LAT" envDefault:"12.9716"`
		StageDelay time.Duration `env:"STAGE_DELAY" envDefault:"1s"`
		MaxRetries int           `env:"MAX_RETRIES" envDefault:"3"`
		Verbose    bool          `env:"VERBOSE" envDefault:"false"`
	}

	t.Run("defaults", func(t *testing.T) {
		var cfg config
		err := envstruct.Populate(&cfg, func(_ string) (string, bool) { return "", false })
		require.NoError(t, err)
		require.Equal(t, "localhost:4000", cfg.Addr)
		require.InDelta(t, 12.9716, cfg.StationLat, 0.00001)
		require.Equal(t, time.Second, cfg.StageDelay)
		require.Equal(t, 3, cfg.MaxRetries)
		require.False(t, cfg.Verbose)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		env := map[string]string{
			"ADDR":        "localhost:0",
			"STATION_LAT": "60.1699",
			"STAGE_DELAY": "0s",
			"MAX_RETRIES": "5",
			"VERBOSE":     "true",
		}
		var cfg config
		err := envstruct.Populate(&cfg, func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		})
		require.NoError(t, err)
		require.Equal(t, "localhost:0", cfg.Addr)
		require.InDelta(t, 60.1699, cfg.StationLat, 0.00001)
		require.Equal(t, time.Duration(0), cfg.StageDelay)
		require.Equal(t, 5, cfg.MaxRetries)
		require.True(t, cfg.Verbose)
	})

	t.Run("untagged fields are ignored", func(t *testing.T) {
		v := struct {
			Tagged   string `env:"TAGGED"`
			Untagged string
		}{}
		err := envstruct.Populate(&v, func(s string) (string, bool) { return strings.ToLower(s), true })
		require.NoError(t, err)
		require.Equal(t, "tagged", v.Tagged)
		require.Empty(t, v.Untagged)
	})

	t.Run("missing env without default", func(t *testing.T) {
		v := struct {
			Required string `env:"REQUIRED"`
		}{}
		err := envstruct.Populate(&v, func(_ string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrEnvNotSet)
	})

	t.Run("not a pointer", func(t *testing.T) {
		err := envstruct.Populate(struct{}{}, func(_ string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrInvalidValue)
	})

	t.Run("unparsable value", func(t *testing.T) {
		v := struct {
			Delay time.Duration `env:"DELAY"`
		}{}
		err := envstruct.Populate(&v, func(_ string) (string, bool) { return "soon", true })
		require.ErrorIs(t, err, envstruct.ErrUnparsable)
	})
}
