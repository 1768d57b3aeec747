package cmd

import (
	"errors"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd writes an initial configuration file from interactive prompts.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the engine configuration",
	Long:  "Initialize the engine configuration.\nThis command should be run only once, unless you want to reset the configuration.",
	Run:   initializePrompts(),
}

func initializePrompts() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := promptForWordlist(); err != nil {
			return
		}

		if err := promptForAttemptRate(); err != nil {
			return
		}

		if err := viper.WriteConfig(); err != nil {
			log.Errorf("Writing config failed %v\n", err)
		}
	}
}

// promptForWordlist asks for the default dictionary wordlist path. An empty
// answer is allowed: dictionary attacks then require an explicit wordlist.
func promptForWordlist() error {
	wordlistPrompt := promptui.Prompt{
		Label: "Enter the default wordlist path (leave empty for none)",
		Validate: func(input string) error {
			if input == "" {
				return nil
			}

			if _, err := os.Stat(input); err != nil {
				return errors.New("wordlist file not found")
			}

			return nil
		},
	}

	wordlist, err := wordlistPrompt.Run()
	if err != nil {
		log.Errorf("Prompt failed %v\n", err)

		return err
	}

	viper.Set("wordlist_path", wordlist)

	return nil
}

// promptForAttemptRate asks for the assumed hash rate used in time estimates.
func promptForAttemptRate() error {
	ratePrompt := promptui.Prompt{
		Label:   "Assumed attempts per second for estimates",
		Default: "1000000",
		Validate: func(input string) error {
			rate, err := strconv.ParseFloat(input, 64)
			if err != nil || rate <= 0 {
				return errors.New("invalid rate")
			}

			return nil
		},
	}

	rate, err := ratePrompt.Run()
	if err != nil {
		log.Errorf("Prompt failed %v\n", err)

		return err
	}

	parsed, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return err
	}

	viper.Set("assumed_attempts_per_second", parsed)

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
