package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the analytics aggregates and the 7-day earnings
// chart.
func ReportMarkdown(v privates.View, today date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Отчёт на %s", today))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Показатель", "Значение"},
		Rows: [][]string{
			{"Добавлено сегодня", fmt.Sprintf("%d", v.Analytics.AddedToday)},
			{"Доход за месяц", v.Analytics.MonthEarnings.String()},
			{"Средняя цена", v.Analytics.AveragePrice.String()},
			{"Просрочено", fmt.Sprintf("%d", v.Analytics.OverdueCount)},
		},
	}
	doc.Table(table)

	doc.H2("Доход за 7 дней")
	doc.CodeBlocks(md.SyntaxHighlightText, weekChart(v.Week))

	return doc.String()
}

// weekChart draws one line per day: the date, a proportional bar and the
// day's signed total.
func weekChart(week []privates.EarningsPoint) string {
	var max float64
	for _, p := range week {
		if f := p.Total.AsFloat(); f > max {
			max = f
		} else if -f > max {
			max = -f
		}
	}

	var b strings.Builder
	for _, p := range week {
		amount := "-"
		if !p.Total.IsZero() {
			amount = p.Total.SignedString()
		}
		cells := bar(p.Total.AsFloat(), max)
		// Pad by rune count, the bar cells are multi-byte.
		pad := strings.Repeat(" ", barWidth-utf8.RuneCountInString(cells))
		fmt.Fprintf(&b, "%s %s%s %s\n", p.Day, cells, pad, amount)
	}
	return strings.TrimRight(b.String(), "\n")
}
