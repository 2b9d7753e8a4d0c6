package report_generator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/shopspring/decimal"
)

const timeLayout = "02/01/2006 15:04"

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// AccountTotal sums the records of one account.
type AccountTotal struct {
	Code   string
	Name   string
	Months int
	Total  decimal.Decimal
}

type Summary struct {
	Revenue  decimal.Decimal
	Expense  decimal.Decimal
	Accounts []AccountTotal
}

func (s Summary) Net() decimal.Decimal {
	return s.Revenue.Add(s.Expense)
}

func Summarize(records []*domain.Record) Summary {
	var summary Summary
	byCode := make(map[string]*AccountTotal)

	for _, r := range records {
		if r.Type == domain.TypeRevenue {
			summary.Revenue = summary.Revenue.Add(r.Amount)
		} else {
			summary.Expense = summary.Expense.Add(r.Amount)
		}

		total, ok := byCode[r.AccountCode]
		if !ok {
			total = &AccountTotal{Code: r.AccountCode, Name: r.AccountName}
			byCode[r.AccountCode] = total
		}
		total.Months++
		total.Total = total.Total.Add(r.Amount)
	}

	summary.Accounts = make([]AccountTotal, 0, len(byCode))
	for _, total := range byCode {
		summary.Accounts = append(summary.Accounts, *total)
	}
	slices.SortFunc(summary.Accounts, func(a, b AccountTotal) int {
		return cmp.Compare(a.Code, b.Code)
	})

	return summary
}

func (g *Generator) GenerateReport(outputPath string, run domain.Run, records []*domain.Record) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)
	summary := Summarize(records)

	title := props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	label := props.Text{Size: 9, Style: fontstyle.Bold}
	value := props.Text{Size: 9}
	amount := props.Text{Size: 9, Align: align.Right}
	head := props.Text{Size: 9, Style: fontstyle.Bold}
	headRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(text.NewRow(14, "DRE HITSS - Realizado", title))

	m.AddRow(6, text.NewCol(3, "Execução", label), text.NewCol(9, run.ExecutionID, value))
	m.AddRow(6, text.NewCol(3, "Lote", label), text.NewCol(9, run.BatchID, value))
	m.AddRow(6, text.NewCol(3, "Arquivo", label), text.NewCol(9, run.FileName, value))
	m.AddRow(6, text.NewCol(3, "Início", label), text.NewCol(9, run.StartedAt.Format(timeLayout), value))
	m.AddRow(6, text.NewCol(3, "Registros", label), text.NewCol(9, fmt.Sprint(len(records)), value))

	m.AddRow(4)

	m.AddRow(6, text.NewCol(3, "Receitas", label), text.NewCol(9, summary.Revenue.StringFixed(2), value))
	m.AddRow(6, text.NewCol(3, "Despesas", label), text.NewCol(9, summary.Expense.StringFixed(2), value))
	m.AddRow(6, text.NewCol(3, "Resultado", label), text.NewCol(9, summary.Net().StringFixed(2), value))

	m.AddRow(6)

	m.AddRow(7,
		text.NewCol(2, "Conta", head),
		text.NewCol(6, "Denominação", head),
		text.NewCol(1, "Meses", headRight),
		text.NewCol(3, "Total", headRight),
	)

	for _, account := range summary.Accounts {
		m.AddRow(6,
			text.NewCol(2, account.Code, value),
			text.NewCol(6, account.Name, value),
			text.NewCol(1, fmt.Sprint(account.Months), amount),
			text.NewCol(3, account.Total.StringFixed(2), amount),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", outputPath, err)
	}

	return nil
}
