package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deskcalc/internal/tui"
)

func newTUICmd(flags *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			// the terminal belongs to the UI, so no logger here
			model, err := tui.New(cfg.Calculator.Precision, cfg.Display.MaxItems, nil)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
