package privates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/privates/date"
)

// This file contains functions to handle the import/export formats: the JSON
// interchange payload (a full backup, re-importable) and the tabular CSV
// export (spreadsheet food, one way).

// BackupFilename is the default name of the JSON backup file.
const BackupFilename = "privates-backup.json"

// CSVFilename returns the tabular export filename, stamped with the given day.
func CSVFilename(today date.Date) string {
	return fmt.Sprintf("privates-%s.csv", today)
}

// ExportJSON writes the interchange payload: the item collection, the
// earnings total and the ledger history, verbatim, 2-space indented.
func ExportJSON(w io.Writer, t *Tracker) error {
	payload := struct {
		Items           []Item        `json:"items"`
		EarningsTotal   Amount        `json:"earningsTotal"`
		EarningsHistory []LedgerEntry `json:"earningsHistory"`
	}{t.items, t.total, t.history}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal backup payload: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup payload: %w", err)
	}
	return nil
}

// ImportJSON restores state from an interchange payload and persists it.
//
// Each of the three fields is adopted only when it is present with the
// expected container type (list for items and history, number for the total);
// the other fields keep their current in-memory value. Partial import is
// allowed and expected. A payload that does not parse as a JSON object is a
// single generic failure that leaves the state untouched.
func ImportJSON(r io.Reader, t *Tracker) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read import payload: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("could not import file: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return errors.New("could not import file: payload is not a JSON object")
	}

	if raw, err := jsonpath.Get("$.items", doc); err == nil {
		if list, ok := raw.([]any); ok {
			if items, ok := decodeList[Item](list); ok {
				t.items = items
			}
		}
	}
	if raw, err := jsonpath.Get("$.earningsTotal", doc); err == nil {
		if n, ok := raw.(float64); ok {
			t.total = A(n)
		}
	}
	if raw, err := jsonpath.Get("$.earningsHistory", doc); err == nil {
		if list, ok := raw.([]any); ok {
			if history, ok := decodeList[LedgerEntry](list); ok {
				t.history = history
			}
		}
	}

	t.saveItems()
	t.saveEarnings()
	return nil
}

// decodeList round-trips a generic JSON array into a concrete slice. A list
// whose elements do not decode is reported as not adopted.
func decodeList[T any](list []any) ([]T, bool) {
	data, err := json.Marshal(list)
	if err != nil {
		return nil, false
	}
	out := make([]T, 0, len(list))
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

// ExportCSV writes the tabular export: UTF-8 with a byte-order marker so
// spreadsheet software picks the encoding up, a header row, then one row per
// item with text fields double-quoted.
func ExportCSV(w io.Writer, t *Tracker, today date.Date) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("cannot write CSV export: %w", err)
	}

	header := []string{"Название", "Категория", "Цена", "Срок", "Заметка", "Статус", "Добавлена"}
	for i, h := range header {
		header[i] = csvQuote(h)
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return fmt.Errorf("cannot write CSV export: %w", err)
	}

	for _, it := range t.items {
		due, created := "", ""
		if !it.DueDate.IsZero() {
			due = it.DueDate.String()
		}
		if !it.CreatedAt.IsZero() {
			created = date.FromTime(it.CreatedAt).String()
		}
		row := strings.Join([]string{
			csvQuote(it.Name),
			csvQuote(it.Category.DisplayName()),
			it.Price.Plain(),
			csvQuote(due),
			csvQuote(it.Note),
			csvQuote(it.StatusLabel(today)),
			csvQuote(created),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("cannot write CSV export: %w", err)
		}
	}
	return nil
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
