package main

import (
	"github.com/spf13/cobra"

	"deskcalc/internal/config"
)

// overrides holds the persistent flags. Zero keeps the configured value.
type overrides struct {
	precision    int
	displayWidth int
}

func newRootCmd() *cobra.Command {
	flags := &overrides{}

	rootCmd := &cobra.Command{
		Use:           "deskcalc",
		Short:         "deskcalc is a desk calculator engine",
		Long:          `deskcalc drives a keypad calculator from an HTTP API, the command line or a terminal UI.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().IntVar(&flags.precision, "precision", 0, "maximum number of digits per operand")
	rootCmd.PersistentFlags().IntVar(&flags.displayWidth, "display-width", 0, "number of characters the display can show")

	rootCmd.AddCommand(
		newServeCmd(flags),
		newEvalCmd(flags),
		newTUICmd(flags),
	)
	return rootCmd
}

// loadConfig reads the configuration and applies the flag overrides.
func loadConfig(flags *overrides) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flags.precision > 0 {
		cfg.Calculator.Precision = flags.precision
	}
	if flags.displayWidth > 0 {
		cfg.Display.MaxItems = flags.displayWidth
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
