// Package report renders ledger summaries for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/tracker"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// Generator renders summaries in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Generate renders s as text or json.
func (g *Generator) Generate(s tracker.Summary, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(g.text(s)), nil
	case FormatJSON:
		return g.json(s)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

type jsonSummary struct {
	Count      int                `json:"count"`
	KPIs       jsonKPIs           `json:"kpis"`
	ByCategory []jsonCategory     `json:"by_category"`
	BySource   []jsonSource       `json:"by_source"`
	Daily      []jsonDaily        `json:"daily"`
	Subs       []jsonSubscription `json:"subscriptions"`
}

type jsonKPIs struct {
	Income       decimal.Decimal `json:"income"`
	RealExpenses decimal.Decimal `json:"real_expenses"`
	PctSalary    decimal.Decimal `json:"pct_salary"`
	Invested     decimal.Decimal `json:"invested"`
}

type jsonCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"`
}

type jsonSource struct {
	Source   string          `json:"source"`
	Inflows  decimal.Decimal `json:"inflows"`
	Outflows decimal.Decimal `json:"outflows"`
	Balance  decimal.Decimal `json:"balance"`
}

type jsonDaily struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

type jsonSubscription struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
}

func (g *Generator) json(s tracker.Summary) ([]byte, error) {
	out := jsonSummary{
		Count: s.Count,
		KPIs: jsonKPIs{
			Income:       s.KPIs.Income,
			RealExpenses: s.KPIs.RealExpenses,
			PctSalary:    s.KPIs.PctSalary,
			Invested:     s.KPIs.Invested,
		},
		ByCategory: make([]jsonCategory, 0, len(s.ByCategory)),
		BySource:   make([]jsonSource, 0, len(s.BySource)),
		Daily:      make([]jsonDaily, 0, len(s.Daily)),
		Subs:       make([]jsonSubscription, 0, len(s.Subscriptions)),
	}
	for _, c := range s.ByCategory {
		out.ByCategory = append(out.ByCategory, jsonCategory(c))
	}
	for _, src := range s.BySource {
		out.BySource = append(out.BySource, jsonSource(src))
	}
	for _, d := range s.Daily {
		out.Daily = append(out.Daily, jsonDaily(d))
	}
	for _, tx := range s.Subscriptions {
		out.Subs = append(out.Subs, jsonSubscription{Date: tx.Day(), Description: tx.Description, Amount: tx.Amount, Source: tx.Source})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) text(s tracker.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Indicadores"))
	b.WriteString("\n")
	b.WriteString(newTable([]string{"Receita", "Gastos reais", "% do salário", "Investido"}, [][]string{{
		money(s.KPIs.Income),
		money(s.KPIs.RealExpenses),
		s.KPIs.PctSalary.StringFixed(2) + "%",
		money(s.KPIs.Invested),
	}}).Render())
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Gastos por categoria"))
	b.WriteString("\n")
	if len(s.ByCategory) == 0 {
		b.WriteString(mutedStyle.Render("Nenhum gasto real no período."))
	} else {
		rows := make([][]string, 0, len(s.ByCategory))
		for _, c := range s.ByCategory {
			rows = append(rows, []string{c.Category, money(c.Total), c.Share.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"})
		}
		b.WriteString(newTable([]string{"Categoria", "Total", "Parcela"}, rows).Render())
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Por fonte"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(s.BySource))
	for _, src := range s.BySource {
		rows = append(rows, []string{src.Source, money(src.Inflows), money(src.Outflows), money(src.Balance)})
	}
	b.WriteString(newTable([]string{"Fonte", "Entradas", "Saídas", "Saldo"}, rows).Render())
	b.WriteString("\n")

	if len(s.Subscriptions) > 0 {
		b.WriteString(titleStyle.Render("Assinaturas"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(s.Subscriptions))
		for _, tx := range s.Subscriptions {
			rows = append(rows, []string{tx.Day(), tx.Description, money(tx.Amount), tx.Source})
		}
		b.WriteString(newTable([]string{"Data", "Descrição", "Valor", "Fonte"}, rows).Render())
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d transações", s.Count)))
	b.WriteString("\n")
	return b.String()
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return cellStyle
			}
			return numberStyle
		})
}

// money formats an amount the Brazilian way: R$ 1.234,56.
func money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	return sign + "R$ " + grouped.String() + "," + frac
}
