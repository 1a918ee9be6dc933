package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avoleti/incomehelper/internal/domain"
)

// tableColumns defines the record table: header, width and cell value.
var tableColumns = []struct {
	header string
	width  int
	cell   func(domain.YearlyRecord) string
}{
	{"Year", 5, func(r domain.YearlyRecord) string { return fmt.Sprintf("%d", r.Year) }},
	{"Gross/Y", 10, func(r domain.YearlyRecord) string { return r.GrossYearly.StringFixed(0) }},
	{"Tax/Y", 9, func(r domain.YearlyRecord) string { return r.TaxYearly.StringFixed(0) }},
	{"Net/M", 9, func(r domain.YearlyRecord) string { return r.NetMonthly.StringFixed(0) }},
	{"Invest/M", 9, func(r domain.YearlyRecord) string { return r.MonthlyInvestment.StringFixed(0) }},
	{"Left/M", 9, func(r domain.YearlyRecord) string { return r.SalaryLeftMonthly.StringFixed(0) }},
	{"Invested", 11, func(r domain.YearlyRecord) string { return r.RunningInvestTotal.StringFixed(0) }},
	{"Value", 11, func(r domain.YearlyRecord) string { return r.CumulativeValue.StringFixed(0) }},
	{"Return%", 8, func(r domain.YearlyRecord) string { return r.ReturnPercentage.StringFixed(2) }},
	{"Remarks", 7, func(r domain.YearlyRecord) string { return r.Remarks }},
}

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}
	if m.loading {
		return m.renderLoading()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTable(),
		m.renderSummary(),
		m.renderStatusBar(),
	)
}

func (m Model) renderLoading() string {
	return SubtitleStyle.Render("Loading...")
}

func (m Model) renderError() string {
	return ErrorStyle.Render("Error: "+m.err.Error()) + "\n" +
		StatusBarStyle.Render("press q to quit")
}

func (m Model) renderTitleBar() string {
	name := "(no scenario)"
	position := ""
	if sc := m.currentScenario(); sc != nil {
		name = sc.Name
		position = fmt.Sprintf(" %d/%d", m.scenarioIdx+1, len(m.config.Scenarios))
	}
	return TitleStyle.Render("Income Projection") +
		SubtitleStyle.Render("Scenario: "+name+position)
}

// visibleRows is how many record rows fit under the chrome: title, header,
// summary block and status bar.
func (m Model) visibleRows() int {
	rows := m.height - 10
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m Model) renderTable() string {
	var sb strings.Builder

	cells := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		cells[i] = fmt.Sprintf("%-*s", col.width, col.header)
	}
	sb.WriteString(TableHeaderStyle.Render(strings.Join(cells, " ")))
	sb.WriteString("\n")

	end := m.rowOffset + m.visibleRows()
	if end > len(m.records) {
		end = len(m.records)
	}
	for _, rec := range m.records[m.rowOffset:end] {
		for i, col := range tableColumns {
			cells[i] = fmt.Sprintf("%-*s", col.width, col.cell(rec))
		}
		sb.WriteString(TableCellStyle.Render(strings.Join(cells, " ")))
		sb.WriteString("\n")
	}

	if end < len(m.records) {
		sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("... %d more years", len(m.records)-end)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderSummary() string {
	if m.analysis == nil {
		return ""
	}
	a := m.analysis

	parts := []string{
		MetricLabelStyle.Render("Invested ") + MetricValueStyle.Render(a.TotalInvested.StringFixed(0)),
		MetricLabelStyle.Render("Value ") + MetricValueStyle.Render(a.FinalValue.StringFixed(0)),
		MetricLabelStyle.Render("Gain ") + MetricValueStyle.Render(a.TotalGain.StringFixed(0)),
		MetricLabelStyle.Render("Tax ") + MetricValueStyle.Render(a.TotalTaxPaid.StringFixed(0)),
		MetricLabelStyle.Render("CAGR ") + MetricValueStyle.Render(a.ReturnsCAGR.StringFixed(2)+"%"),
	}
	if a.BreakEvenYear > 0 {
		parts = append(parts,
			MetricLabelStyle.Render("Break-even yr ")+MetricValueStyle.Render(fmt.Sprintf("%d", a.BreakEvenYear)))
	}

	return strings.Join(parts, StatusBarStyle.Render("  |  "))
}

func (m Model) renderStatusBar() string {
	bindings := []struct{ keys, desc string }{
		{m.keys.PrevScenario.Help().Key, m.keys.PrevScenario.Help().Desc},
		{m.keys.NextScenario.Help().Key, m.keys.NextScenario.Help().Desc},
		{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
		{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = StatusKeyStyle.Render(b.keys) + StatusBarStyle.Render(" "+b.desc)
	}
	return StatusBarStyle.Render(strings.Join(parts, "  "))
}
