// Package cmd implements the attacksim command line interface.
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/attack"
	"github.com/cracklab-io/attacksim/lib/config"
	"github.com/cracklab-io/attacksim/lib/display"
	"github.com/cracklab-io/attacksim/lib/hashes"
	"github.com/cracklab-io/attacksim/lib/strength"
)

// EngineVersion is the release version reported by the CLI.
const EngineVersion = "1.0.0"

var (
	cfgFile     string
	enableDebug bool

	attackMode    string
	plaintext     string
	targetHash    string
	algorithmName string
	methodName    string
	wordlistPath  string
	useVariations bool
	usePatterns   bool
	maxLength     int
	attemptCap    uint64
	randomSeed    int64
)

// rootCmd runs a single attack simulation against the configured target.
var rootCmd = &cobra.Command{
	Use:     "attacksim",
	Version: EngineVersion,
	Short:   "Password attack simulation engine",
	Long: "attacksim demonstrates how quickly weak passwords fall to brute-force and " +
		"dictionary attacks. It is an educational tool: attack your own test hashes only.",
	Run: runAttack,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/attacksim.yaml)")
	rootCmd.PersistentFlags().BoolVar(&enableDebug, "debug", false, "Enable debug mode")
	err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	cobra.CheckErr(err)

	rootCmd.Flags().StringVar(&attackMode, "mode", string(attack.ModeDictionary), "attack mode: brute-force or dictionary")
	rootCmd.Flags().StringVar(&plaintext, "password", "", "target password for brute-force demonstrations")
	rootCmd.Flags().StringVar(&targetHash, "hash", "", "target hex digest for dictionary attacks")
	rootCmd.Flags().StringVar(&algorithmName, "algorithm", "", "hash algorithm (md5, sha1, sha256, sha512); detected from the digest when omitted")
	rootCmd.Flags().StringVar(&methodName, "method", string(attack.MethodSequential), "brute-force method: sequential or random")
	rootCmd.Flags().StringVar(&wordlistPath, "wordlist", "", "wordlist file path or URL (defaults to the configured wordlist)")
	rootCmd.Flags().BoolVar(&useVariations, "variations", false, "expand dictionary words with case and substitution variants")
	rootCmd.Flags().BoolVar(&usePatterns, "patterns", false, "expand dictionary words with common suffix and prefix patterns")
	rootCmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum candidate length for sequential brute force (default: target length)")
	rootCmd.Flags().Uint64Var(&attemptCap, "cap", 0, "attempt cap for random brute force (default from config)")
	rootCmd.Flags().Int64Var(&randomSeed, "seed", 0, "seed for reproducible random brute force (0 uses a time seed)")

	config.SetDefaultConfigValues()
}

// initLogger raises the log level when debug mode is on.
func initLogger() {
	if enginestate.State.Debug {
		enginestate.Logger.SetLevel(log.DebugLevel)
		enginestate.Logger.SetReportCaller(true)
	} else {
		enginestate.Logger.SetLevel(log.InfoLevel)
	}
}

func runAttack(_ *cobra.Command, _ []string) {
	config.SetupSharedState()
	initLogger()
	display.Startup()

	req, err := buildRequest()
	if err != nil {
		enginestate.Logger.Fatal("Invalid attack request", "error", err)
	}

	registry := attack.NewRegistry(attack.SettingsFromState())

	ctrl, err := registry.StartAttack(req)
	if err != nil {
		enginestate.Logger.Fatal("Couldn't start attack", "error", err)
	}

	display.AttackStarting(ctrl, enginestate.State.AssumedAttemptsPerSecond)

	if req.Mode == attack.ModeBruteForce {
		display.StrengthAnalysis(strength.Analyze(req.TargetPlaintext))
	}

	signChan := make(chan os.Signal, 1)
	signal.Notify(signChan, os.Interrupt, syscall.SIGTERM)

	bar := newAttackBar(ctrl)

	for {
		select {
		case sig := <-signChan:
			enginestate.Logger.Debug("Received signal", "signal", sig)

			if err := ctrl.Stop(); err != nil {
				enginestate.Logger.Debug("Stop after terminal state", "error", err)
			}
		case event := <-ctrl.Progress():
			if bar != nil {
				bar.SetCurrent(int64(event.Attempts)) //nolint:gosec // Attempt counts stay far below int64 range
			} else {
				display.Progress(event)
			}
		case event := <-ctrl.Terminal():
			if bar != nil {
				bar.SetCurrent(int64(event.Attempts)) //nolint:gosec // Attempt counts stay far below int64 range
				bar.Finish()
			}

			display.Terminal(event)
			display.ShuttingDown()

			if event.Outcome == attack.OutcomeFound {
				return
			}

			os.Exit(1)
		}
	}
}

// newAttackBar builds a progress bar when the search space is small enough to
// meter; unbounded or oversized spaces fall back to log-line progress.
func newAttackBar(ctrl *attack.Controller) *pb.ProgressBar {
	space := ctrl.SpaceSize()
	if space == nil || !space.IsInt64() {
		return nil
	}

	bar := pb.Full.Start64(space.Int64())
	bar.Set("prefix", "attempts ")

	return bar
}

func buildRequest() (attack.Request, error) {
	req := attack.Request{
		Mode:            attack.Mode(attackMode),
		TargetPlaintext: plaintext,
		TargetHash:      targetHash,
		Method:          attack.Method(methodName),
		WordlistPath:    wordlistPath,
		UseVariations:   useVariations,
		UsePatterns:     usePatterns,
		MaxLength:       maxLength,
		AttemptCap:      attemptCap,
		Seed:            randomSeed,
	}

	if algorithmName != "" {
		algo, err := hashes.ParseAlgorithm(algorithmName)
		if err != nil {
			return attack.Request{}, err
		}

		req.Algorithm = algo
	}

	return req, nil
}
