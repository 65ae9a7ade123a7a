package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/sgfin/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			// stderr belongs to the terminal UI
			if a.cfg.Logging.OutputFile == "" {
				a.logger = zap.NewNop()
				a.engine.SetLogger(a.logger.Sugar())
			}
			defer a.logger.Sync()

			opts := tui.Options{
				Engine:   a.engine,
				Parser:   a.parser,
				Preparer: a.cfg.Preparer.Preparer(),
			}
			if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				opts.Store = st
				opts.Preparer = a.preparer(cmd, st)
			}

			p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Bool("no-store", false, "Run without saved scenarios")
	return cmd
}
