package main

import (
	"fmt"

	"github.com/rgehrsitz/sgfin/internal/compare"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <base-scenario> [alternative-scenario...]",
		Short: "Compare a scenario against alternatives and what-if variations",
		Long: `Compare stamp duty, upfront cash, monthly payment, TDSR and tax across
scenarios. Alternatives are other scenario files; variations change inputs of
the base scenario.

Example:
  sgfin compare condo.yaml --vary propertyValue=1200000 --vary "principal=900000,tenureYears=30"
  sgfin compare condo.yaml hdb.yaml --format csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			base, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			var alternatives []*domain.Scenario
			for _, path := range args[1:] {
				s, err := a.parser.LoadFromFile(path)
				if err != nil {
					return err
				}
				alternatives = append(alternatives, s)
			}

			varies, _ := cmd.Flags().GetStringArray("vary")
			var variations []compare.Variation
			for _, v := range varies {
				variation, err := compare.ParseVariation(v)
				if err != nil {
					return err
				}
				variations = append(variations, variation)
			}
			if len(alternatives) == 0 && len(variations) == 0 {
				return fmt.Errorf("nothing to compare: give alternative scenarios or --vary")
			}

			engine := compare.NewCompareEngine(report.NewBuilder(a.engine, a.parser))
			set, err := engine.Compare(cmd.Context(), base, alternatives, variations, a.cfg.Preparer.Preparer())
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch format {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(set)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
			default:
				return fmt.Errorf("unsupported format %q (use table, compact, csv or json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringArray("vary", nil, "What-if change to the base as key=value[,key=value] (repeatable)")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, compact, csv, json")
	return cmd
}
