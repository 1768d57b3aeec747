package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/breach"
	"github.com/cracklab-io/attacksim/lib/config"
	"github.com/cracklab-io/attacksim/lib/display"
	"github.com/cracklab-io/attacksim/lib/strength"
)

var skipBreachCheck bool

// checkCmd analyzes a password's strength and breach exposure without running
// an attack.
var checkCmd = &cobra.Command{
	Use:   "check <password>",
	Short: "Analyze password strength and breach exposure",
	Long: "Analyze a password's strength locally and check it against the Have I Been Pwned " +
		"breach database. Only the first five characters of the password's SHA-1 digest are sent.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config.SetupSharedState()
		initLogger()

		password := args[0]
		display.StrengthAnalysis(strength.Analyze(password))

		if skipBreachCheck {
			return
		}

		checker := breach.NewChecker()

		result, err := checker.Check(context.Background(), password)
		if err != nil {
			enginestate.Logger.Error("Breach check failed", "error", err)

			return
		}

		display.BreachResult(result)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&skipBreachCheck, "offline", false, "skip the online breach database check")
	rootCmd.AddCommand(checkCmd)
}
