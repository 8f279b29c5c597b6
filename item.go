package privates

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/privates/date"
	"github.com/shopspring/decimal"
)

// Category classifies an item. The set is fixed; an empty category means
// "unset".
type Category string

const (
	CategoryJailbreak Category = "jailbreak"
	CategoryModded    Category = "modded"
	CategoryVanilla   Category = "vanilla"
	CategoryCustom    Category = "custom"
	CategoryOther     Category = "other"
)

// Categories lists the known categories, in display order.
var Categories = []Category{CategoryJailbreak, CategoryModded, CategoryVanilla, CategoryCustom, CategoryOther}

// ParseCategory parses a string into a Category. The empty string is a valid
// "unset" category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case "", CategoryJailbreak, CategoryModded, CategoryVanilla, CategoryCustom, CategoryOther:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// DisplayName returns the localized category name, the one the UI shows and
// the free-text search matches against.
func (c Category) DisplayName() string {
	switch c {
	case CategoryJailbreak:
		return "Джейлбрейк"
	case CategoryModded:
		return "Модифицированная"
	case CategoryVanilla:
		return "Стоковая"
	case CategoryCustom:
		return "Кастом"
	case CategoryOther:
		return "Другое"
	default:
		return string(c)
	}
}

// Status display strings. Overdue takes precedence over the rented flag: an
// item past its due date shows as overdue even while it is rented out.
const (
	labelOverdue = "Просрочена"
	labelRented  = "Сдана"
	labelFree    = "Не сдана"
)

// Item represents one trackable asset.
//
// ID and CreatedAt are assigned once at creation and never change; the other
// fields are mutable through the tracker.
type Item struct {
	ID        string
	Name      string
	Category  Category
	Price     Amount
	DueDate   date.Date // optional rental return deadline
	Note      string
	Rented    bool
	CreatedAt time.Time
}

// IsOverdue reports whether the item has a due date strictly before today.
// The rented flag does not matter here.
func (i Item) IsOverdue(today date.Date) bool {
	return !i.DueDate.IsZero() && i.DueDate.Before(today)
}

// DaysOverdue returns how many days past the due date the item is.
func (i Item) DaysOverdue(today date.Date) int { return today.Sub(i.DueDate) }

// IsDueSoon reports whether the due date falls within the next 1 to 3 days.
func (i Item) IsDueSoon(today date.Date) bool {
	if i.DueDate.IsZero() {
		return false
	}
	d := i.DueDate.Sub(today)
	return d > 0 && d <= 3
}

// StatusLabel returns the display status of the item: overdue wins over
// rented, rented wins over free.
func (i Item) StatusLabel(today date.Date) string {
	switch {
	case i.IsOverdue(today):
		return labelOverdue
	case i.Rented:
		return labelRented
	default:
		return labelFree
	}
}

// MarshalJSON implements the json.Marshaler interface for Item. The field
// order and names match the interchange payload.
func (i Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Optional("category", i.Category)
	w.Append("price", i.Price)
	if !i.DueDate.IsZero() {
		w.Append("dueDate", i.DueDate)
	}
	w.Optional("note", i.Note)
	w.Append("rented", i.Rented)
	w.Append("createdAt", timeMillis(i.CreatedAt))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Item. It also
// accepts the legacy "dueAt" epoch-milliseconds field from old payloads.
func (i *Item) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Category  string          `json:"category"`
		Price     decimal.Decimal `json:"price"`
		DueDate   string          `json:"dueDate"`
		DueAt     int64           `json:"dueAt"` // legacy: epoch ms
		Note      string          `json:"note"`
		Rented    bool            `json:"rented"`
		CreatedAt int64           `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	i.ID = temp.ID
	i.Name = temp.Name
	i.Category = Category(temp.Category)
	i.Price = Amount{value: temp.Price}
	i.Note = temp.Note
	i.Rented = temp.Rented
	i.CreatedAt = millisTime(temp.CreatedAt)

	i.DueDate = date.Date{}
	if temp.DueDate != "" {
		d, err := date.Parse(temp.DueDate)
		if err != nil {
			return err
		}
		i.DueDate = d
	} else if temp.DueAt != 0 {
		i.DueDate = date.FromTime(millisTime(temp.DueAt))
	}
	return nil
}

// timeMillis converts a time to epoch milliseconds, keeping the zero time at 0.
func timeMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// millisTime is the inverse of timeMillis.
func millisTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
