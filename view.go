package privates

import (
	"fmt"
	"strings"

	"github.com/etnz/privates/date"
	"github.com/shopspring/decimal"
)

// StatusFilter selects items by rental status. The filters are mutually
// exclusive, single-select.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterRented  StatusFilter = "rented"
	FilterFree    StatusFilter = "free"
	FilterOverdue StatusFilter = "overdue"
)

// ParseStatusFilter parses a string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case FilterAll, FilterRented, FilterFree, FilterOverdue:
		return f, nil
	default:
		return FilterAll, fmt.Errorf("unknown status filter: %q", s)
	}
}

// Query narrows the visible item list. All predicates are independent; the
// result is their pure intersection, so application order does not matter.
type Query struct {
	Status   StatusFilter
	Category Category // exact match, empty means unset
	Search   string   // case-insensitive substring
}

// Stats are the collection counters shown above the list.
type Stats struct {
	Total  int
	Rented int
	Free   int
}

// Analytics are the aggregate numbers, recomputed fully on each derivation.
type Analytics struct {
	AddedToday    int    // items created today
	MonthEarnings Amount // sum of ledger deltas in the current calendar month
	AveragePrice  Amount // mean price over items with a positive price, zero if none
	OverdueCount  int
}

// NoticeLevel grades a notification.
type NoticeLevel int

const (
	NoticeUrgent NoticeLevel = iota
	NoticeWarning
	NoticeInfo
	NoticeAllClear
)

// Notice is one derived notification.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// EarningsPoint is one day of the earnings chart series.
type EarningsPoint struct {
	Day   date.Date
	Total Amount // sum of the deltas applied that day
}

// View is everything the presentation layer needs, derived from scratch from
// the full collections. Deriving twice without a mutation in between yields
// an identical view.
type View struct {
	Items     []Item
	Stats     Stats
	Analytics Analytics
	Notices   []Notice
	Week      []EarningsPoint // last 7 days, oldest first
}

// DeriveView recomputes every visible surface from the tracker state.
func DeriveView(t *Tracker, q Query, today date.Date) View {
	return View{
		Items:     FilterItems(t.items, q, today),
		Stats:     deriveStats(t.items),
		Analytics: deriveAnalytics(t.items, t.history, today),
		Notices:   DeriveNotices(t.items, t.total, today),
		Week:      deriveWeek(t.history, today),
	}
}

// FilterItems applies the status, category and search predicates, preserving
// collection order.
func FilterItems(items []Item, q Query, today date.Date) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matchesStatus(it, q.Status, today) && matchesCategory(it, q.Category) && matchesSearch(it, q.Search) {
			out = append(out, it)
		}
	}
	return out
}

func matchesStatus(i Item, f StatusFilter, today date.Date) bool {
	switch f {
	case FilterRented:
		return i.Rented
	case FilterFree:
		return !i.Rented
	case FilterOverdue:
		return i.IsOverdue(today)
	default:
		return true
	}
}

func matchesCategory(i Item, c Category) bool {
	return c == "" || i.Category == c
}

// matchesSearch matches the query as a case-insensitive substring of the
// name, the note, the stringified price or the localized category name.
func matchesSearch(i Item, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, s := range []string{i.Name, i.Note, i.Price.Plain(), i.Category.DisplayName()} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func deriveStats(items []Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		if it.Rented {
			s.Rented++
		}
	}
	s.Free = s.Total - s.Rented
	return s
}

func deriveAnalytics(items []Item, history []LedgerEntry, today date.Date) Analytics {
	var a Analytics
	var priced int
	var sum Amount
	for _, it := range items {
		if !it.CreatedAt.IsZero() && date.FromTime(it.CreatedAt) == today {
			a.AddedToday++
		}
		if it.IsOverdue(today) {
			a.OverdueCount++
		}
		if it.Price.IsPositive() {
			priced++
			sum = sum.Add(it.Price)
		}
	}
	if priced > 0 {
		a.AveragePrice = Amount{value: sum.value.Div(decimal.NewFromInt(int64(priced)))}.Round2()
	}
	for _, e := range history {
		on := date.FromTime(e.TS)
		if on.Year() == today.Year() && on.Month() == today.Month() {
			a.MonthEarnings = a.MonthEarnings.Add(e.Delta)
		}
	}
	return a
}

// DeriveNotices computes the notification list: one urgent notice per overdue
// item, one warning per due-soon item, then a single informational notice
// when the earnings total is negative. When nothing else was emitted, exactly
// one "all clear" notice is returned.
func DeriveNotices(items []Item, total Amount, today date.Date) []Notice {
	var notices []Notice
	for _, it := range items {
		switch {
		case it.IsOverdue(today):
			notices = append(notices, Notice{NoticeUrgent, fmt.Sprintf("«%s»: просрочена на %d дн.", it.Name, it.DaysOverdue(today))})
		case it.IsDueSoon(today):
			notices = append(notices, Notice{NoticeWarning, fmt.Sprintf("«%s»: вернуть через %d дн.", it.Name, it.DueDate.Sub(today))})
		}
	}
	if total.IsNegative() {
		notices = append(notices, Notice{NoticeInfo, fmt.Sprintf("Доход отрицательный: %s", total.String())})
	}
	if len(notices) == 0 {
		notices = append(notices, Notice{NoticeAllClear, "Всё в порядке"})
	}
	return notices
}

// deriveWeek sums the ledger deltas per calendar day over the last 7 days,
// today included, oldest first.
func deriveWeek(history []LedgerEntry, today date.Date) []EarningsPoint {
	week := make([]EarningsPoint, 7)
	first := today.Add(-6)
	for i := range week {
		week[i].Day = first.Add(i)
	}
	for _, e := range history {
		on := date.FromTime(e.TS)
		i := on.Sub(first)
		if i >= 0 && i < 7 {
			week[i].Total = week[i].Total.Add(e.Delta)
		}
	}
	return week
}
