package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wattwise/wattwise/internal/exergy"
	"github.com/wattwise/wattwise/internal/tea"
)

// printer formats numbers with English grouping ("1,234,567.89").
var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // shared formatter, read-only

// tabwriterPadding is the minimum padding between columns.
const tabwriterPadding = 2

// Styles for table titles and section headings. Applied only when writing
// to a terminal.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)                                   //nolint:gochecknoglobals // render style
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) //nolint:gochecknoglobals // render style
)

func styleIf(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// formatCurrency renders a dollar amount with comma grouping and two
// decimals. Negative values get a leading minus before the dollar sign.
func formatCurrency(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.2f", math.Abs(v))
	}
	return printer.Sprintf("$%.2f", v)
}

// formatMWh renders an energy quantity in MWh with comma grouping.
func formatMWh(v float64) string {
	return printer.Sprintf("%.0f MWh", v)
}

// formatMJ renders an energy quantity in MJ.
func formatMJ(v float64) string {
	return printer.Sprintf("%.2f MJ", v)
}

// formatLCOE renders the levelized cost, spelling out the zero-production
// sentinel instead of printing "+Inf".
func formatLCOE(v float64) string {
	if math.IsInf(v, 1) {
		return "infinite (zero discounted production)"
	}
	return printer.Sprintf("$%.2f/MWh", v)
}

// RenderFinancialTable writes the techno-economic analysis result as a
// sectioned text table.
func RenderFinancialTable(w io.Writer, r tea.FinancialResult, showCashFlows, styled bool) error {
	title := fmt.Sprintf("Techno-Economic Analysis: %s (%s, %.0f MW)",
		r.Assumptions.ProjectName, r.Assumptions.TechnologyType, r.Assumptions.CapacityMW)
	if _, err := fmt.Fprintln(w, styleIf(styled, titleStyle, title)); err != nil {
		return err
	}

	irr := fmt.Sprintf("%.2f%%", r.IRR)
	if !r.IRRConverged {
		irr = "n/a (no real root)"
	}

	sections := []struct {
		heading string
		rows    [][2]string
	}{
		{"SUMMARY", [][2]string{
			{"LCOE", formatLCOE(r.LCOE)},
			{"NPV", formatCurrency(r.NPV)},
			{"IRR", irr},
			{"Payback period", fmt.Sprintf("%.1f years", r.PaybackYears)},
		}},
		{"CAPITAL COSTS", [][2]string{
			{"Equipment", formatCurrency(r.Capex.Equipment)},
			{"Installation", formatCurrency(r.Capex.Installation)},
			{"Land", formatCurrency(r.Capex.Land)},
			{"Grid connection", formatCurrency(r.Capex.GridConnection)},
			{"Total", formatCurrency(r.TotalCapex)},
		}},
		{"OPERATING COSTS (YEAR 1)", [][2]string{
			{"Capacity-based", formatCurrency(r.Opex.CapacityBased)},
			{"Fixed", formatCurrency(r.Opex.Fixed)},
			{"Variable", formatCurrency(r.Opex.Variable)},
			{"Insurance", formatCurrency(r.Opex.Insurance)},
			{"Total", formatCurrency(r.AnnualOpex)},
			{"Lifetime (discounted)", formatCurrency(r.TotalLifetimeCost)},
		}},
		{"PRODUCTION & REVENUE", [][2]string{
			{"Annual production", formatMWh(r.AnnualProductionMWh)},
			{"Lifetime production", formatMWh(r.LifetimeProductionMWh)},
			{"Annual revenue (year 1)", formatCurrency(r.AnnualRevenue)},
			{"Lifetime revenue (NPV)", formatCurrency(r.LifetimeRevenueNPV)},
		}},
	}

	for _, section := range sections {
		if _, err := fmt.Fprintln(w, styleIf(styled, sectionStyle, "\n"+section.heading)); err != nil {
			return err
		}
		if err := writeRows(w, section.rows); err != nil {
			return err
		}
	}

	if showCashFlows {
		if _, err := fmt.Fprintln(w, styleIf(styled, sectionStyle, "\nCASH FLOWS")); err != nil {
			return err
		}
		if err := writeCashFlows(w, r.CashFlows); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCashFlows(w io.Writer, flows []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "  YEAR\tNET CASH FLOW\tCUMULATIVE\t\n"); err != nil {
		return err
	}
	var cumulative float64
	for year, cf := range flows {
		cumulative += cf
		if _, err := fmt.Fprintf(tw, "  %d\t%s\t%s\t\n", year, formatCurrency(cf), formatCurrency(cumulative)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderSensitivityTable writes the sweep results, one row per variation.
func RenderSensitivityTable(w io.Writer, r tea.SensitivityResult, styled bool) error {
	title := fmt.Sprintf("Sensitivity: %s", r.Parameter)
	if _, err := fmt.Fprintln(w, styleIf(styled, titleStyle, title)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "VARIATION\tLCOE\tNPV\n"); err != nil {
		return err
	}
	for i, pct := range r.Variations {
		if _, err := fmt.Fprintf(tw, "%+.1f%%\t%s\t%s\n",
			pct, formatLCOE(r.LCOE[i]), formatCurrency(r.NPV[i])); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderExergyTable writes the exergy analysis as a sectioned text table.
func RenderExergyTable(w io.Writer, r exergy.Result, source string, styled bool) error {
	title := fmt.Sprintf("Exergy Analysis: %s", source)
	if !r.SourceKnown {
		title += " (unknown source, generic factors)"
	}
	if _, err := fmt.Fprintln(w, styleIf(styled, titleStyle, title)); err != nil {
		return err
	}

	rows := [][2]string{
		{"Input energy", formatMJ(r.InputEnergyMJ)},
		{"Input exergy", formatMJ(r.InputExergyMJ)},
		{"Useful energy", formatMJ(r.UsefulEnergyMJ)},
		{"Useful exergy", formatMJ(r.UsefulExergyMJ)},
		{"Energy loss", formatMJ(r.EnergyLossMJ)},
		{"Exergy destruction", formatMJ(r.ExergyDestructionMJ)},
		{"First-law efficiency", fmt.Sprintf("%.1f%%", r.FirstLawEfficiency*100)},
		{"Second-law efficiency", fmt.Sprintf("%.1f%%", r.SecondLawEfficiency*100)},
		{"Destruction ratio", fmt.Sprintf("%.4f", r.DestructionRatio)},
		{"Improvement potential", formatMJ(r.ImprovementPotentialMJ)},
		{"Thermodynamic perfection", fmt.Sprintf("%.1f / 100", r.PerfectionScore)},
	}
	if r.CarnotValid {
		rows = append(rows, [2]string{"Carnot factor", fmt.Sprintf("%.4f", r.CarnotFactor)})
	}
	if err := writeRows(w, rows); err != nil {
		return err
	}

	if len(r.Components) > 0 {
		if _, err := fmt.Fprintln(w, styleIf(styled, sectionStyle, "\nCOMPONENT BREAKDOWN")); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "  COMPONENT\tDESTRUCTION\tSHARE\tEFFICIENCY\n"); err != nil {
			return err
		}
		for _, c := range r.Components {
			if _, err := fmt.Fprintf(tw, "  %s\t%s\t%.1f%%\t%.1f%%\n",
				c.Name, formatMJ(c.DestructionMJ), c.DestructionShare*100, c.Efficiency*100); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// RenderComparisonTable writes the ranked technology comparison.
func RenderComparisonTable(w io.Writer, c exergy.Comparison, styled bool) error {
	if _, err := fmt.Fprintln(w, styleIf(styled, titleStyle, "Technology Comparison")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "RANK\tTECHNOLOGY\tSOURCE\t1ST LAW\t2ND LAW\tDESTRUCTION\n"); err != nil {
		return err
	}
	for i, row := range c.Rankings {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f%%\t%.1f%%\t%.1f%%\n",
			i+1, row.Name, row.Source,
			row.FirstLawEfficiency*100, row.SecondLawEfficiency*100, row.DestructionRatio*100); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Best != "" {
		if _, err := fmt.Fprintf(w, "\nBest technology: %s\n", c.Best); err != nil {
			return err
		}
	}
	return nil
}

// RenderValueTable writes the exergy-adjusted valuation.
func RenderValueTable(w io.Writer, v exergy.ValueResult, source string, styled bool) error {
	title := fmt.Sprintf("Exergy-Adjusted Value: %s", source)
	if _, err := fmt.Fprintln(w, styleIf(styled, titleStyle, title)); err != nil {
		return err
	}

	rows := [][2]string{
		{"Annual production", formatMWh(v.AnnualProductionMWh)},
		{"Nominal value", formatCurrency(v.NominalValue)},
		{"Exergy efficiency", fmt.Sprintf("%.1f%%", v.ExergyEfficiency*100)},
		{"Exergy-adjusted value", formatCurrency(v.ExergyAdjustedValue)},
		{"Premium factor", fmt.Sprintf("%.1fx", v.PremiumFactor)},
		{"True thermodynamic value", formatCurrency(v.TrueValue)},
	}
	return writeRows(w, rows)
}
