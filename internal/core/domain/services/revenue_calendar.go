// Package services contains stateless domain services that implement logic
// spanning more than one aggregate or requiring no aggregate at all.
package services

import (
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// Granularity selects the bucketing scheme of a revenue series.
type Granularity int

const (
	// Daily buckets the 7 trailing calendar days ending at the anchor day.
	Daily Granularity = iota

	// Weekly buckets the Monday-aligned weeks of the anchor month,
	// clamped to the month's boundaries (at most 4 buckets).
	Weekly

	// Monthly buckets the 5 trailing calendar months ending at the anchor month.
	Monthly
)

// GranularityFromString parses the wire form of a granularity. An empty
// string defaults to daily, matching the revenue endpoint's behavior.
func GranularityFromString(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return Daily, errs.NewValueIsInvalidErrorWithCause(
			"granularity",
			fmt.Errorf("%q is not one of daily, weekly, monthly", s),
		)
	}
}

// String returns the wire form of the granularity.
func (g Granularity) String() string {
	switch g {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return "daily"
	}
}

// Bucket is one slot of a revenue series: a half-open time window
// [Start, End) plus the label and tooltip the dashboard renders for it.
type Bucket struct {
	Label   string
	Tooltip string
	Start   time.Time
	End     time.Time
}

// Contains reports whether ts falls inside the bucket's window.
func (b Bucket) Contains(ts time.Time) bool {
	return !ts.Before(b.Start) && ts.Before(b.End)
}

// DailyLabels returns the fixed 7-slot labels of a daily series. The slot
// for the bucket N days before the anchor carries label index N, so the
// labels are positional rather than tied to actual weekdays; the tooltip
// carries the real date. This mirrors the dashboard's historical rendering.
func DailyLabels() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// RevenueCalendar computes the bucket windows of a revenue series. It is a
// pure calendar calculation: callers sum order totals per window themselves.
type RevenueCalendar struct{}

// NewRevenueCalendar creates a RevenueCalendar.
func NewRevenueCalendar() RevenueCalendar {
	return RevenueCalendar{}
}

// Buckets returns the series windows for the given granularity, anchored on
// the most recent order's creation time (or the current time when no orders
// exist). Buckets are ordered oldest first.
func (c RevenueCalendar) Buckets(granularity Granularity, anchor time.Time) []Bucket {
	switch granularity {
	case Weekly:
		return c.weeklyBuckets(anchor)
	case Monthly:
		return c.monthlyBuckets(anchor)
	default:
		return c.dailyBuckets(anchor)
	}
}

// dailyBuckets covers the 7 trailing calendar days ending at the anchor day.
func (c RevenueCalendar) dailyBuckets(anchor time.Time) []Bucket {
	labels := DailyLabels()
	buckets := make([]Bucket, 0, 7)

	for i := 6; i >= 0; i-- {
		start := startOfDay(anchor).AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)
		buckets = append(buckets, Bucket{
			Label:   labels[i],
			Tooltip: formatDay(start),
			Start:   start,
			End:     end,
		})
	}
	return buckets
}

// weeklyBuckets covers the anchor month with Monday-aligned weeks. The first
// and last week are clamped to the month, so partial weeks keep a partial
// window and the series never exceeds 4 buckets.
func (c RevenueCalendar) weeklyBuckets(anchor time.Time) []Bucket {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	nextMonth := firstOfMonth.AddDate(0, 1, 0)

	// back up to the Monday of the week containing the 1st
	cursor := firstOfMonth.AddDate(0, 0, -int((firstOfMonth.Weekday()+6)%7))

	buckets := make([]Bucket, 0, 4)
	for idx := 0; idx < 4; idx++ {
		weekEnd := cursor.AddDate(0, 0, 7)
		start := maxTime(cursor, firstOfMonth)
		end := minTime(weekEnd, nextMonth)
		lastDay := end.AddDate(0, 0, -1)

		buckets = append(buckets, Bucket{
			Label:   fmt.Sprintf("Week %d", idx+1),
			Tooltip: fmt.Sprintf("%02d - %02d/%02d/%d", start.Day(), lastDay.Day(), int(lastDay.Month()), lastDay.Year()),
			Start:   start,
			End:     end,
		})

		cursor = weekEnd
		if !cursor.Before(nextMonth) {
			break
		}
	}
	return buckets
}

// monthlyBuckets covers the 5 trailing calendar months ending at the anchor month.
func (c RevenueCalendar) monthlyBuckets(anchor time.Time) []Bucket {
	firstOfAnchorMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	buckets := make([]Bucket, 0, 5)
	for i := 4; i >= 0; i-- {
		start := firstOfAnchorMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		label := fmt.Sprintf("%02d/%d", int(start.Month()), start.Year())

		buckets = append(buckets, Bucket{
			Label:   label,
			Tooltip: label,
			Start:   start,
			End:     end,
		})
	}
	return buckets
}

func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

func formatDay(ts time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", ts.Day(), int(ts.Month()), ts.Year())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
