package privates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/etnz/privates/date"
)

func TestItem_DueDateStatus(t *testing.T) {
	today := date.New(2025, time.June, 15)

	testCases := []struct {
		name    string
		due     date.Date
		overdue bool
		soon    bool
	}{
		{name: "no due date", due: date.Date{}},
		{name: "yesterday", due: today.Add(-1), overdue: true},
		{name: "today", due: today},
		{name: "tomorrow", due: today.Add(1), soon: true},
		{name: "in three days", due: today.Add(3), soon: true},
		{name: "in four days", due: today.Add(4)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			it := Item{Name: "x", DueDate: tc.due}
			if got := it.IsOverdue(today); got != tc.overdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tc.overdue)
			}
			if got := it.IsDueSoon(today); got != tc.soon {
				t.Errorf("IsDueSoon() = %v, want %v", got, tc.soon)
			}
		})
	}
}

// TestItem_StatusLabel checks the display precedence: overdue beats rented,
// rented beats free.
func TestItem_StatusLabel(t *testing.T) {
	today := date.New(2025, time.June, 15)

	rentedOverdue := Item{Rented: true, DueDate: today.Add(-2)}
	if got := rentedOverdue.StatusLabel(today); got != "Просрочена" {
		t.Errorf("StatusLabel() = %q, overdue should win over rented", got)
	}
	rented := Item{Rented: true}
	if got := rented.StatusLabel(today); got != "Сдана" {
		t.Errorf("StatusLabel() = %q, want Сдана", got)
	}
	free := Item{}
	if got := free.StatusLabel(today); got != "Не сдана" {
		t.Errorf("StatusLabel() = %q, want Не сдана", got)
	}
}

func TestItem_DaysOverdue(t *testing.T) {
	today := date.New(2025, time.June, 15)
	it := Item{DueDate: today.Add(-5)}
	if got := it.DaysOverdue(today); got != 5 {
		t.Errorf("DaysOverdue() = %d, want 5", got)
	}
}

func TestItem_JSONRoundTrip(t *testing.T) {
	in := Item{
		ID:        "id-1",
		Name:      "Honda Dio",
		Category:  CategoryModded,
		Price:     A(1200.5),
		DueDate:   date.New(2025, time.June, 20),
		Note:      "scratch on the left side",
		Rented:    true,
		CreatedAt: time.UnixMilli(1750000000000),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var out Item
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if out.ID != in.ID || out.Name != in.Name || out.Category != in.Category ||
		out.Note != in.Note || out.Rented != in.Rented || out.DueDate != in.DueDate {
		t.Errorf("round trip mutated the item: %+v", out)
	}
	if !out.Price.Equal(in.Price) {
		t.Errorf("round trip price = %s, want %s", out.Price.Plain(), in.Price.Plain())
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("round trip createdAt = %v, want %v", out.CreatedAt, in.CreatedAt)
	}
}

// TestItem_LegacyDueAt checks that old payloads carrying the due date as
// "dueAt" epoch milliseconds still decode.
func TestItem_LegacyDueAt(t *testing.T) {
	dueAt := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.Local).UnixMilli()
	raw := struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Price int    `json:"price"`
		DueAt int64  `json:"dueAt"`
	}{"id-1", "Honda Dio", 1200, dueAt}
	data, _ := json.Marshal(raw)

	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if want := date.New(2025, time.June, 20); it.DueDate != want {
		t.Errorf("legacy dueAt decoded to %s, want %s", it.DueDate, want)
	}
}

func TestItem_MarshalOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Item{ID: "id-1", Name: "Honda Dio"})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	for _, key := range []string{"category", "dueDate", "note"} {
		if _, ok := m[key]; ok {
			t.Errorf("empty %q should be omitted from the payload", key)
		}
	}
}
