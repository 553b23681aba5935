// Package cli implements the nfsr-cycles command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/keystream/nfsr-cycles/internal/nfsr/config"
	"github.com/keystream/nfsr-cycles/internal/nfsr/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nfsr-cycles",
	Short: "Decompose the state space of a feedback shift register into cycles",
	Long: `nfsr-cycles enumerates every state of a fixed-length feedback shift
register, follows the transition function each state induces, and reports
the exact set of cycles together with their length distribution.

The feedback rule comes either from the built-in library of named example
functions (see "nfsr-cycles functions") or from a boolean expression over
the register bits, e.g. "x[0] ^ x[1] & x[3]".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .nfsr-cycles.yaml)")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
