package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var logger zerolog.Logger

func main() {
	root := &cobra.Command{
		Use:   "mobilert",
		Short: "Tooling for the mobilert method-invocation runtime",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if viper.GetBool("verbose") {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	viper.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.BindEnv("no-color", "NO_COLOR")

	root.AddCommand(
		newSymbolicateCmd(),
		newHierarchyCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fatal(err)
	}
}
