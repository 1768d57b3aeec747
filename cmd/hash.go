package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/hashes"
)

var hashAlgorithmName string

// hashCmd prints the digest of a plaintext, for generating test targets.
var hashCmd = &cobra.Command{
	Use:   "hash <plaintext>",
	Short: "Compute the hex digest of a plaintext",
	Long:  "Compute the hex digest of a plaintext under one of the supported algorithms, for use as a dictionary attack target.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algo, err := hashes.ParseAlgorithm(hashAlgorithmName)
		if err != nil {
			enginestate.Logger.Fatal("Unknown algorithm", "algorithm", hashAlgorithmName, "error", err)
		}

		digest, err := hashes.Digest(args[0], algo)
		if err != nil {
			enginestate.Logger.Fatal("Couldn't compute digest", "error", err)
		}

		fmt.Println(digest)
	},
}

func init() {
	hashCmd.Flags().StringVar(&hashAlgorithmName, "algorithm", string(hashes.MD5), "hash algorithm (md5, sha1, sha256, sha512)")
	rootCmd.AddCommand(hashCmd)
}
