package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	md "github.com/nao1215/markdown"
)

// ListMarkdown renders the filtered item list with its counters.
func ListMarkdown(items []privates.Item, stats privates.Stats, today date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Вещи")
	doc.PlainText(fmt.Sprintf("Всего: %d · Сдана: %d · Не сдана: %d", stats.Total, stats.Rented, stats.Free))

	if len(items) == 0 {
		doc.PlainText("Список пуст.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Название", "Категория", "Цена", "Срок", "Статус", "Заметка"},
		Rows:   [][]string{},
	}
	for _, it := range items {
		due := ""
		if !it.DueDate.IsZero() {
			due = it.DueDate.String()
		}
		table.Rows = append(table.Rows, []string{
			shortID(it.ID),
			it.Name,
			it.Category.DisplayName(),
			it.Price.String(),
			due,
			it.StatusLabel(today),
			it.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}

// shortID keeps list rows narrow. Commands resolve unique id prefixes, so
// the first 8 characters are enough to act on an item.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
