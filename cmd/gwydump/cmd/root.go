package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// log is configured by the root command before any subcommand runs.
var log *zap.SugaredLogger = zap.NewNop().Sugar()

var jsonOutput bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gwydump",
	Short: "Inspect Gwyddion GWY files",
	Long: `gwydump reads Gwyddion GWY files through the go-gwyfile codec layer
and prints what they contain: channels with their data fields, masks,
presentations and selections, and graph models with their curves.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var logger *zap.Logger
		var err error
		if jsonOutput {
			logger, err = zap.NewProduction()
		} else {
			cfg := zap.NewDevelopmentConfig()
			cfg.DisableStacktrace = true
			logger, err = cfg.Build()
		}
		if err != nil {
			return err
		}
		log = logger.Sugar()
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit logs as JSON")
}
