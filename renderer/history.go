package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/privates"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the earnings ledger, newest entry first, with the
// running total on top.
func HistoryMarkdown(entries []privates.LedgerEntry, total privates.Amount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Доход")
	doc.PlainText(fmt.Sprintf("Итого: %s", total))

	if len(entries) == 0 {
		doc.PlainText("История пуста.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Когда", "Сумма", "Примечание"},
		Rows:   [][]string{},
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		reason := e.Reason
		if reason == "" {
			reason = "без прим."
		}
		table.Rows = append(table.Rows, []string{
			e.TS.Format("2006-01-02 15:04"),
			e.Delta.SignedString(),
			reason,
		})
	}
	doc.Table(table)

	return doc.String()
}
