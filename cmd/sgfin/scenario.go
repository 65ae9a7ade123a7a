package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/spf13/cobra"
)

// loadScenario reads a scenario file, or a saved scenario when the
// --saved flag is set.
func loadScenario(cmd *cobra.Command, a *app, st store.Store, args []string) (*domain.Scenario, error) {
	if id, _ := cmd.Flags().GetString("saved"); id != "" {
		if st == nil {
			return nil, fmt.Errorf("no store available for saved scenario %s", id)
		}
		return st.GetScenario(cmd.Context(), id)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a scenario file or --saved id is required")
	}
	return a.parser.LoadFromFile(args[0])
}

// buildReport loads a scenario and runs every calculation in it.
func buildReport(cmd *cobra.Command, args []string) (*app, *domain.Report, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, nil, err
	}

	var st store.Store
	if saved, _ := cmd.Flags().GetString("saved"); saved != "" || a.cfg.Store.Driver == "sqlite" && fileExists(a.cfg.Store.Path) {
		if st, err = a.openStore(); err != nil {
			return nil, nil, err
		}
		defer st.Close()
	}

	scenario, err := loadScenario(cmd, a, st, args)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("building report")
	r, err := report.NewBuilder(a.engine, a.parser).Build(scenario, a.preparer(cmd, st))
	if err != nil {
		return nil, nil, err
	}
	return a, r, nil
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func printSummary(w io.Writer, s report.ValidationSummary) {
	fmt.Fprintln(w, s.Message())
	for _, e := range s.Errors {
		fmt.Fprintf(w, "  ✗ %s\n", e)
	}
	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warn)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Run every calculation in a scenario and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q", format)
			}
			a, r, err := buildReport(cmd, args)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			data, err := f.Format(r)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			printSummary(cmd.ErrOrStderr(), report.Validate(r))
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format: console, console-lite, json, csv, detailed-csv, html")
	cmd.Flags().String("saved", "", "Run a saved scenario by id instead of a file")
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [scenario-file]",
		Short: "Write a client report for a scenario",
		Long: `Write a client report for a scenario. Reports that fail validation are
not written unless --force is given.

Example:
  sgfin report scenario.yaml -o client.pdf
  sgfin report scenario.yaml --format html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, r, err := buildReport(cmd, args)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = a.cfg.Report.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q", format)
			}

			summary := report.Validate(r)
			printSummary(cmd.ErrOrStderr(), summary)
			if force, _ := cmd.Flags().GetBool("force"); !summary.IsValid && !force {
				return fmt.Errorf("report %s not written: %d error(s)", r.ID, len(summary.Errors))
			}

			out, _ := cmd.Flags().GetString("output")
			var path string
			if out == "" {
				path, err = output.GenerateReport(r, format, a.cfg.Report.OutputDir)
			} else {
				path, err = writeReportFile(out, f, r)
			}
			if err != nil {
				return err
			}
			a.logger.Info("report written")
			fmt.Fprintf(cmd.OutOrStdout(), "Report %s written to %s\n", r.ID, path)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: timestamped file in report.output_dir)")
	cmd.Flags().StringP("format", "f", "", "Output format: pdf, html, json, csv, console (default: report.format)")
	cmd.Flags().String("saved", "", "Report on a saved scenario by id instead of a file")
	cmd.Flags().Bool("force", false, "Write the report even when validation finds errors")
	return cmd
}

func writeReportFile(path string, f output.Formatter, r *domain.Report) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>",
		Short: "Validate a scenario file and the report it produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, r, err := buildReport(cmd, args)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			summary := report.Validate(r)
			printSummary(cmd.OutOrStdout(), summary)
			if !summary.IsValid {
				return fmt.Errorf("scenario %s is not valid", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid\n", args[0])
			return nil
		},
	}
}

func scenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Manage saved scenarios",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		RunE: withStore(func(cmd *cobra.Command, a *app, st store.Store, args []string) error {
			list, err := st.ListScenarios(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved scenarios")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCLIENT\tCALCULATIONS\tUPDATED")
			for _, s := range list {
				ids := make([]string, 0, len(s.Calculations))
				for _, c := range s.Calculations {
					ids = append(ids, string(c.Calculator))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Client.Name,
					strings.Join(ids, ","), s.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		}),
	}

	save := &cobra.Command{
		Use:   "save <scenario-file>",
		Short: "Save a scenario file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, a *app, st store.Store, args []string) error {
			s, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := store.CheckScenario(s); err != nil {
				return err
			}
			saved, err := st.SaveScenario(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved scenario %q as %s\n", saved.Name, saved.ID)
			return nil
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, a *app, st store.Store, args []string) error {
			if err := st.DeleteScenario(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted scenario %s\n", args[0])
			return nil
		}),
	}

	cmd.AddCommand(list, save, del)
	return cmd
}

// withStore opens the configured store around a command.
func withStore(run func(cmd *cobra.Command, a *app, st store.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		st, err := a.openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return run(cmd, a, st, args)
	}
}
