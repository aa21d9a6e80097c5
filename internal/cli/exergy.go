package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wattwise/wattwise/internal/exergy"
)

// newExergyCmd groups the exergy analysis subcommands.
func newExergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exergy",
		Short: "Second-law (exergy) analysis of energy conversions",
	}
	cmd.AddCommand(newExergyAnalyzeCmd(), newExergyCompareCmd(), newExergyValueCmd())
	return cmd
}

// newExergyAnalyzeCmd creates the "exergy analyze" subcommand.
func newExergyAnalyzeCmd() *cobra.Command {
	var (
		source     string
		energy     float64
		endUse     string
		outputTemp float64
		stepsPath  string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one energy conversion process",
		Long: `Decompose a conversion process into first-law (energy) and second-law
(exergy) efficiency, exergy destruction, improvement potential and an
optional per-component destruction breakdown.

Known sources: ` + strings.Join(exergy.KnownSources(), ", ") + `.
Unknown sources fall back to generic factors rather than failing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExergyAnalyze(cmd, source, energy, endUse, outputTemp, stepsPath)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "energy source name, e.g. coal, solar, wind (required)")
	cmd.Flags().Float64Var(&energy, "energy", 0, "input energy in MJ (required)")
	cmd.Flags().StringVar(&endUse, "end-use", "electricity",
		"end use: electricity, mechanical_work, high_temp_heat, medium_temp_heat, low_temp_heat, chemical")
	cmd.Flags().Float64Var(&outputTemp, "output-temp", 0, "output temperature in Kelvin (heat end-uses)")
	cmd.Flags().StringVar(&stepsPath, "steps", "", "path to YAML file of process steps for component breakdown")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("energy")

	return cmd
}

func executeExergyAnalyze(cmd *cobra.Command, source string, energy float64, endUse string, outputTemp float64, stepsPath string) error {
	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	use, err := exergy.ParseEndUse(endUse)
	if err != nil {
		return err
	}

	input := exergy.ProcessInput{
		Source:        source,
		InputEnergyMJ: energy,
		OutputTempK:   outputTemp,
		EndUse:        use,
	}

	if stepsPath != "" {
		steps, stepsErr := loadProcessSteps(stepsPath)
		if stepsErr != nil {
			return stepsErr
		}
		input.Steps = steps
	}

	result, err := exergy.Analyze(input)
	if err != nil {
		return err
	}

	if !result.SourceKnown {
		logger.Warn().
			Str("source", source).
			Msg("unknown energy source, using generic efficiency and quality factors")
	}

	if format == outputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	return RenderExergyTable(cmd.OutOrStdout(), result, source, isTerminal(os.Stdout))
}

// newExergyCompareCmd creates the "exergy compare" subcommand.
func newExergyCompareCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank technologies by second-law efficiency",
		Long: `Analyze each technology in a YAML list independently at electricity
end-use and rank by second-law efficiency, best first. Ties keep their
input order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExergyCompare(cmd, inputPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to YAML technology list (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeExergyCompare(cmd *cobra.Command, inputPath string) error {
	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	technologies, err := loadTechnologies(inputPath)
	if err != nil {
		return err
	}

	comparison := exergy.Compare(technologies)

	if format == outputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), comparison)
	}
	return RenderComparisonTable(cmd.OutOrStdout(), comparison, isTerminal(os.Stdout))
}

// newExergyValueCmd creates the "exergy value" subcommand.
func newExergyValueCmd() *cobra.Command {
	var (
		production float64
		source     string
		price      float64
	)

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Exergy-adjusted economic value of annual production",
		Long: `Price annual energy production in thermodynamic terms: nominal revenue,
revenue discounted by second-law delivery efficiency, and the class-level
exergy premium (clean x3.0, fossil x1.0, other x1.5).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExergyValue(cmd, production, source, price)
		},
	}

	cmd.Flags().Float64Var(&production, "production", 0, "annual production in MWh (required)")
	cmd.Flags().StringVar(&source, "source", "", "energy source name (required)")
	cmd.Flags().Float64Var(&price, "price", 50, "electricity price in $/MWh")
	_ = cmd.MarkFlagRequired("production")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func executeExergyValue(cmd *cobra.Command, production float64, source string, price float64) error {
	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	result := exergy.Value(production, source, price)

	if format == outputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	return RenderValueTable(cmd.OutOrStdout(), result, source, isTerminal(os.Stdout))
}
