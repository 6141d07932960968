package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/locconv/internal/cli"
	"codeberg.org/snonux/locconv/internal/logging"
	"codeberg.org/snonux/locconv/internal/processor"
	"codeberg.org/snonux/locconv/internal/translation"
)

func main() {
	logging.SetDefault()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, translation.ErrUsage) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		log.Error().Err(err).Msg("Conversion failed")
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	if err := logging.Setup(flags.LogLevel, flags.LogFormat); err != nil {
		return err
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	return proc.Run(cmd.Context(), args[0])
}
