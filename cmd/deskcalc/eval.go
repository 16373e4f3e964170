package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deskcalc/internal/keypad"
	"deskcalc/internal/observability"
	"deskcalc/internal/session"
)

// errCalculation marks a run that ended on an error display. The display
// itself has already been printed.
var errCalculation = errors.New("calculation failed")

func newEvalCmd(flags *overrides) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "eval KEYS...",
		Short: "Press keys on a fresh calculator and print the display",
		Long: `Press keys on a fresh calculator and print the final display.
Arguments are joined, so "12 + 3 =" and "12+3=" are the same run.
Keys: 0-9 . + - × ÷ = ± ← C, with * x / c accepted as aliases.
Put keys starting with "-" after "--" so they are not read as flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := observability.InitLogger(cfg.Log.Level, cfg.Log.Development); err != nil {
				return err
			}
			defer observability.SyncLogger()

			keys, err := keypad.ParseKeys(strings.Join(args, ""))
			if err != nil {
				return err
			}

			s, err := session.New("eval", session.Options{
				Precision:    cfg.Calculator.Precision,
				DisplayItems: cfg.Display.MaxItems,
				HistorySize:  cfg.Sessions.History,
			}, observability.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap := s.PressKeys(keys, func(o session.KeyOutcome) {
				if history && o.Dispatched {
					fmt.Fprintf(out, "%s\t%s\n", o.Key, o.Display)
				}
			})

			if !history {
				fmt.Fprintln(out, snap.Display)
			}
			if snap.Error != "" {
				return errCalculation
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "print every display update with the key that caused it")
	return cmd
}
