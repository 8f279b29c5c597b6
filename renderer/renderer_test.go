package renderer

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
)

func TestBar(t *testing.T) {
	if got := bar(0, 100); got != "" {
		t.Errorf("bar(0) = %q, want empty", got)
	}
	if got := bar(100, 100); utf8.RuneCountInString(got) != barWidth {
		t.Errorf("bar(max) is %d cells, want %d", utf8.RuneCountInString(got), barWidth)
	}
	// Tiny but non-zero values still show at least one cell.
	if got := bar(0.1, 100); utf8.RuneCountInString(got) != 1 {
		t.Errorf("bar(tiny) = %q, want a single cell", got)
	}
	// Negative values use the lighter shade.
	if got := bar(-50, 100); !strings.Contains(got, "▒") || strings.Contains(got, "█") {
		t.Errorf("bar(negative) = %q, want light-shade cells", got)
	}
}

func TestListMarkdown(t *testing.T) {
	today := date.New(2025, time.June, 15)
	items := []privates.Item{
		{ID: "abcdef1234567890", Name: "Honda Dio", Category: privates.CategoryVanilla, Price: privates.A(1200), Rented: true},
		{ID: "0123456789abcdef", Name: "Yamaha Jog", DueDate: today.Add(-1)},
	}
	stats := privates.Stats{Total: 2, Rented: 1, Free: 1}

	out := ListMarkdown(items, stats, today)

	if !strings.Contains(out, "Всего: 2 · Сдана: 1 · Не сдана: 1") {
		t.Errorf("list is missing the counters:\n%s", out)
	}
	// IDs are shortened to an actionable prefix.
	if !strings.Contains(out, "abcdef12") || strings.Contains(out, "abcdef1234567890") {
		t.Errorf("list should show 8-character id prefixes:\n%s", out)
	}
	if !strings.Contains(out, "Сдана") || !strings.Contains(out, "Просрочена") {
		t.Errorf("list is missing status labels:\n%s", out)
	}
}

func TestListMarkdown_Empty(t *testing.T) {
	out := ListMarkdown(nil, privates.Stats{}, date.New(2025, time.June, 15))
	if !strings.Contains(out, "Список пуст.") {
		t.Errorf("empty list should say so:\n%s", out)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	entries := []privates.LedgerEntry{
		{TS: time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC), Delta: privates.A(300), Reason: "rent"},
		{TS: time.Date(2025, time.June, 15, 11, 30, 0, 0, time.UTC), Delta: privates.A(-50)},
	}

	out := HistoryMarkdown(entries, privates.A(250))

	// Newest first: the -50 entry row comes before the +300 one.
	newest := strings.Index(out, "2025-06-15 11:30")
	oldest := strings.Index(out, "2025-06-14 10:00")
	if newest == -1 || oldest == -1 || newest > oldest {
		t.Errorf("history should list newest first:\n%s", out)
	}
	if !strings.Contains(out, "без прим.") {
		t.Errorf("entries without a reason should show a placeholder:\n%s", out)
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	out := HistoryMarkdown(nil, privates.Amount{})
	if !strings.Contains(out, "История пуста.") {
		t.Errorf("empty history should say so:\n%s", out)
	}
}

func TestReportMarkdown(t *testing.T) {
	today := date.New(2025, time.June, 15)
	week := make([]privates.EarningsPoint, 7)
	for i := range week {
		week[i].Day = today.Add(i - 6)
	}
	week[6].Total = privates.A(100)
	v := privates.View{
		Analytics: privates.Analytics{AddedToday: 2, OverdueCount: 1},
		Week:      week,
	}

	out := ReportMarkdown(v, today)

	if !strings.Contains(out, "Отчёт на 2025-06-15") {
		t.Errorf("report is missing its title:\n%s", out)
	}
	if !strings.Contains(out, "Добавлено сегодня") || !strings.Contains(out, "Просрочено") {
		t.Errorf("report is missing analytics rows:\n%s", out)
	}
	// Every chart day is present, zero days show a dash.
	for _, p := range week {
		if !strings.Contains(out, p.Day.String()) {
			t.Errorf("chart is missing day %s:\n%s", p.Day, out)
		}
	}
	if !strings.Contains(out, "█") {
		t.Errorf("chart should draw a bar for the non-zero day:\n%s", out)
	}
}

func TestWeekChart_AlignsByRunes(t *testing.T) {
	week := []privates.EarningsPoint{
		{Day: date.New(2025, time.June, 14), Total: privates.A(100)},
		{Day: date.New(2025, time.June, 15), Total: privates.A(50)},
	}

	lines := strings.Split(weekChart(week), "\n")
	if len(lines) != 2 {
		t.Fatalf("chart has %d lines, want 2", len(lines))
	}
	// The amount column starts at the same rune offset on every line even
	// though the bars hold multi-byte cells.
	first := utf8.RuneCountInString(lines[0][:strings.LastIndex(lines[0], " ")])
	second := utf8.RuneCountInString(lines[1][:strings.LastIndex(lines[1], " ")])
	if first != second {
		t.Errorf("chart columns are misaligned:\n%s", weekChart(week))
	}
}

func TestNoticesMarkdown(t *testing.T) {
	notices := []privates.Notice{
		{Level: privates.NoticeUrgent, Message: "«Honda Dio»: просрочена на 2 дн."},
		{Level: privates.NoticeAllClear, Message: "Всё в порядке"},
	}

	out := NoticesMarkdown(notices)

	if !strings.Contains(out, "🔴 «Honda Dio»: просрочена на 2 дн.") {
		t.Errorf("urgent notice is missing its icon:\n%s", out)
	}
	if !strings.Contains(out, "✅ Всё в порядке") {
		t.Errorf("all-clear notice is missing its icon:\n%s", out)
	}
}
