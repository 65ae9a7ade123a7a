package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/rates"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate <calculator>",
		Short: "Run one calculator",
		Long: `Run one calculator with inputs given as --set key=value.

Example:
  sgfin calculate bsd --set propertyValue=1000000
  sgfin calculate absd --set propertyValue=1,200,000 --set buyerCategory=foreigner`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseCalculatorID(args[0])
			if err != nil {
				return err
			}
			sets, _ := cmd.Flags().GetStringArray("set")
			values, err := parseSets(sets)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			label, _ := cmd.Flags().GetString("label")
			scenario := &domain.Scenario{
				Name:         id.Title(),
				Calculations: []domain.CalculationRequest{{Calculator: id, Label: label, Inputs: values}},
			}
			r, err := report.NewBuilder(a.engine, a.parser).Build(scenario, a.cfg.Preparer.Preparer())
			if err != nil {
				return err
			}

			if path, _ := cmd.Flags().GetString("save-scenario"); path != "" {
				if err := output.SaveScenario(scenario, path); err != nil {
					return fmt.Errorf("save scenario: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Scenario saved to %s\n", path)
			}

			data, err := f.Format(r)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringArray("set", nil, "Input field as key=value (repeatable)")
	cmd.Flags().StringP("format", "f", "console", "Output format: console, console-lite, json, csv, detailed-csv, html")
	cmd.Flags().String("label", "", "Label shown next to the calculator title")
	cmd.Flags().String("save-scenario", "", "Also write the inputs as a scenario file")
	return cmd
}

func calculatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculators",
		Short: "List calculators and their input fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			showFields, _ := cmd.Flags().GetBool("fields")
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, id := range domain.AllCalculators() {
				fmt.Fprintf(w, "%s\t%s\n", id, id.Title())
				if !showFields {
					continue
				}
				for _, f := range domain.Schema(id) {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Key, f.Label, describeField(f))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("fields", false, "Show the input fields of each calculator")
	return cmd
}

func describeField(f domain.InputField) string {
	var parts []string
	switch {
	case f.Required && f.Default == "":
		parts = append(parts, "required")
	case f.Default != "":
		parts = append(parts, "default "+f.Default)
	default:
		parts = append(parts, "optional")
	}
	if len(f.Options) > 0 {
		parts = append(parts, "one of "+strings.Join(f.Options, "|"))
	}
	return strings.Join(parts, ", ")
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain> <value>",
		Short: "Check a value against a named range",
		Long:  "Check a value against a named range such as propertyPrice, loanAmount, interestRate or age.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := config.NewInputParser().Validator().Registry()
			if !registry.Has(args[0]) {
				return fmt.Errorf("unknown range %q (available: %s)", args[0], strings.Join(registry.Names(), ", "))
			}
			value, err := config.ParseAmount(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: must be a number", args[1])
			}
			outcome := registry.Validate(args[0], value)
			if !outcome.Valid {
				return fmt.Errorf("%s: %s", outcome.Field, outcome.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid for %s\n", args[1], args[0])
			return nil
		},
	}
}

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the rate schedule in use as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule := rates.Singapore2025()
			if err := schedule.Validate(); err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(schedule); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
