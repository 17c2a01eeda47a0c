// Package dashboard aggregates waste records into chart series.
package dashboard

import (
	"sort"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
)

// RecentLimit is how many records the recent list holds.
const RecentLimit = 10

// Palette is the chart colour cycle.
var Palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#84CC16", "#F97316", "#EC4899", "#6B7280",
}

// Color returns the palette colour of the i-th series point.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string
	Value float64
	Color string
}

// Summary is everything the dashboard shows.
type Summary struct {
	// ByType and ByLocation are in first-appearance order.
	ByType     []Point
	ByLocation []Point
	// ByDate is in ascending date order.
	ByDate []Point
	Total  float64
	Count  int
	// Recent holds the last RecentLimit records, newest insertion first.
	Recent []models.WasteRecord
	Empty  bool
}

// Summarize computes the dashboard aggregates. records must be in insertion
// order; the input is not modified.
func Summarize(records []models.WasteRecord) Summary {
	s := Summary{Count: len(records), Empty: len(records) == 0}

	byType := newAccumulator()
	byLocation := newAccumulator()
	byDate := newAccumulator()

	for _, r := range records {
		byType.add(r.Type, r.Weight)
		byLocation.add(r.Location, r.Weight)
		byDate.add(r.Date, r.Weight)
		s.Total += r.Weight
	}

	s.ByType = byType.points()
	s.ByLocation = byLocation.points()

	dates := byDate.points()
	// YYYY-MM-DD sorts lexically
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].Label < dates[j].Label })
	for i := range dates {
		dates[i].Color = Palette[0]
	}
	s.ByDate = dates

	s.Recent = Recent(records, RecentLimit)
	return s
}

// Recent returns up to n of the last records, most recently inserted first.
// A negative n is treated as 0.
func Recent(records []models.WasteRecord, n int) []models.WasteRecord {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]models.WasteRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}

// Share returns p's percentage of the series total, 0 for an empty total.
func Share(series []Point, p Point) float64 {
	var total float64
	for _, x := range series {
		total += x.Value
	}
	if total == 0 {
		return 0
	}
	return p.Value / total * 100
}

type accumulator struct {
	index map[string]int
	pts   []Point
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (a *accumulator) add(label string, v float64) {
	i, ok := a.index[label]
	if !ok {
		i = len(a.pts)
		a.index[label] = i
		a.pts = append(a.pts, Point{Label: label, Color: Color(i)})
	}
	a.pts[i].Value += v
}

func (a *accumulator) points() []Point {
	if a.pts == nil {
		return []Point{}
	}
	return a.pts
}
