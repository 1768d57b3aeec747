package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cracklab-io/attacksim/enginestate"
)

func TestSetDefaultConfigValues(t *testing.T) {
	// Reset viper before setting defaults to ensure clean state
	viper.Reset()

	SetDefaultConfigValues()

	cwd, err := os.Getwd()
	require.NoError(t, err, "failed to get current working directory")

	t.Run("engine defaults", func(t *testing.T) {
		tests := []struct {
			name     string
			key      string
			expected any
			getter   func(string) any
		}{
			{
				name:     "assumed_attempts_per_second defaults to one million",
				key:      "assumed_attempts_per_second",
				expected: 1000000.0,
				getter:   func(k string) any { return viper.GetFloat64(k) },
			},
			{
				name:     "progress_interval defaults to one second",
				key:      "progress_interval",
				expected: 1 * time.Second,
				getter:   func(k string) any { return viper.GetDuration(k) },
			},
			{
				name:     "progress_every_attempts defaults to 1000",
				key:      "progress_every_attempts",
				expected: uint64(1000),
				getter:   func(k string) any { return viper.GetUint64(k) },
			},
			{
				name:     "random_attempt_cap defaults to one million",
				key:      "random_attempt_cap",
				expected: uint64(1000000),
				getter:   func(k string) any { return viper.GetUint64(k) },
			},
			{
				name:     "recent_window defaults to 20",
				key:      "recent_window",
				expected: 20,
				getter:   func(k string) any { return viper.GetInt(k) },
			},
			{
				name:     "extra_debugging defaults to false",
				key:      "extra_debugging",
				expected: false,
				getter:   func(k string) any { return viper.GetBool(k) },
			},
			{
				name:     "wordlist_path defaults to empty",
				key:      "wordlist_path",
				expected: "",
				getter:   func(k string) any { return viper.GetString(k) },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				actual := tt.getter(tt.key)
				assert.Equal(t, tt.expected, actual, "config key %q mismatch", tt.key)
			})
		}
	})

	t.Run("path defaults", func(t *testing.T) {
		assert.Equal(t, filepath.Join(cwd, "data"), viper.GetString("data_path"))
	})
}

func TestSetDefaultConfigValues_ResetBetweenCalls(t *testing.T) {
	viper.Reset()
	SetDefaultConfigValues()

	viper.Set("random_attempt_cap", uint64(42))
	viper.Set("progress_interval", 5*time.Second)

	assert.Equal(t, uint64(42), viper.GetUint64("random_attempt_cap"))
	assert.Equal(t, 5*time.Second, viper.GetDuration("progress_interval"))

	viper.Reset()
	SetDefaultConfigValues()

	assert.Equal(t, uint64(1000000), viper.GetUint64("random_attempt_cap"),
		"random_attempt_cap should be reset to default")
	assert.Equal(t, 1*time.Second, viper.GetDuration("progress_interval"),
		"progress_interval should be reset to default")
}

func TestSetupSharedState(t *testing.T) {
	viper.Reset()
	SetDefaultConfigValues()

	customDataPath := filepath.Join("custom", "data")
	viper.Set("data_path", customDataPath)
	viper.Set("wordlist_path", filepath.Join("lists", "rockyou.txt"))
	viper.Set("assumed_attempts_per_second", 2500000.0)
	viper.Set("extra_debugging", true)

	SetupSharedState()

	assert.Equal(t, customDataPath, enginestate.State.DataPath)
	assert.Equal(t, filepath.Join("lists", "rockyou.txt"), enginestate.State.WordlistPath)
	assert.InDelta(t, 2500000.0, enginestate.State.AssumedAttemptsPerSecond, 1e-9)
	assert.Equal(t, 1*time.Second, enginestate.State.ProgressInterval)
	assert.Equal(t, uint64(1000), enginestate.State.ProgressEveryAttempts)
	assert.Equal(t, uint64(1000000), enginestate.State.RandomAttemptCap)
	assert.Equal(t, 20, enginestate.State.RecentWindow)
	assert.True(t, enginestate.State.ExtraDebugging)
}
