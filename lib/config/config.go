// Package config provides configuration management for the attack simulation engine.
package config

import (
	"os"
	"path"
	"time"

	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cracklab-io/attacksim/enginestate"
)

const (
	// Default configuration values.
	defaultAttemptsPerSecond = 1000000.0       // Assumed hash rate for pre-attack time estimates
	defaultProgressAttempts  = 1000            // Attempt-count spacing between progress events
	defaultProgressInterval  = 1 * time.Second // Wall-clock spacing between progress events
	defaultRandomAttemptCap  = uint64(1000000) // Attempt bound for random brute-force runs
	defaultRecentWindow      = 20              // Recently tried candidates retained per attack
)

var scope = gap.NewScope(gap.User, "AttackSim") //nolint:gochecknoglobals // Configuration scope

// InitConfig initializes the configuration from various sources.
func InitConfig(cfgFile string) {
	enginestate.ErrorLogger.SetReportCaller(true)

	home, err := os.UserConfigDir()
	cobra.CheckErr(err)

	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)

	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName("attacksim")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		enginestate.Logger.Info("Using config file", "config_file", viper.ConfigFileUsed())
	} else {
		enginestate.Logger.Warn("No config file found, attempting to write a new one")

		if err := viper.SafeWriteConfig(); err != nil && err.Error() != "config file already exists" {
			enginestate.Logger.Error("Error writing config file", "error", err)
		}
	}
}

// SetupSharedState configures the shared engine state from configuration values.
func SetupSharedState() {
	dataRoot := viper.GetString("data_path")
	enginestate.State.DataPath = dataRoot
	enginestate.State.WordlistPath = viper.GetString("wordlist_path")
	enginestate.State.AssumedAttemptsPerSecond = viper.GetFloat64("assumed_attempts_per_second")
	enginestate.State.ProgressInterval = viper.GetDuration("progress_interval")
	enginestate.State.ProgressEveryAttempts = viper.GetUint64("progress_every_attempts")
	enginestate.State.RandomAttemptCap = viper.GetUint64("random_attempt_cap")
	enginestate.State.RecentWindow = viper.GetInt("recent_window")
	enginestate.State.Debug = viper.GetBool("debug")
	enginestate.State.ExtraDebugging = viper.GetBool("extra_debugging")
}

// SetDefaultConfigValues sets default configuration values.
func SetDefaultConfigValues() {
	cwd, err := os.Getwd()
	cobra.CheckErr(err)

	viper.SetDefault("data_path", path.Join(cwd, "data"))
	viper.SetDefault("wordlist_path", "")
	viper.SetDefault("assumed_attempts_per_second", defaultAttemptsPerSecond)
	viper.SetDefault("progress_interval", defaultProgressInterval)
	viper.SetDefault("progress_every_attempts", defaultProgressAttempts)
	viper.SetDefault("random_attempt_cap", defaultRandomAttemptCap)
	viper.SetDefault("recent_window", defaultRecentWindow)
	viper.SetDefault("extra_debugging", false)
}
