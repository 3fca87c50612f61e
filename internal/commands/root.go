package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/accountbook/internal/buildinfo"
)

// app carries state shared by subcommands once the root command has parsed its flags.
type app struct {
	logLevel string
	log      *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:     "accountbook",
		Short:   "Replay bank account scenarios and print transaction histories",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newDemoCommand(a))

	return rootCmd
}
