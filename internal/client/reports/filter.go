package reports

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// SortKey orders the rows of a report.
type SortKey string

const (
	// SortDate is newest first by date and time.
	SortDate SortKey = "date"
	// SortType is ascending by type under Spanish collation.
	SortType SortKey = "type"
	// SortWeight is heaviest first.
	SortWeight SortKey = "weight"
)

// ParseSortKey accepts a sort key name; empty means SortDate.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortDate:
		return SortDate, nil
	case SortType, SortWeight:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q: %w", s, common.ErrValidation)
	}
}

// Filter describes one report query. Empty Type or Location means all.
// Start and End are only used with PeriodCustom.
type Filter struct {
	Type     string
	Location string
	Period   Period
	Start    string
	End      string
	Sort     SortKey
}

// Stats summarizes a filtered record set.
type Stats struct {
	Count     int
	Total     float64
	Average   float64
	Types     int
	Locations int
}

// Report is the result of running a Filter.
type Report struct {
	Filter  Filter
	Range   DateRange
	Records []models.WasteRecord
	Stats   Stats
}

// Run applies f to records: type filter, location filter, date range, then
// a stable sort. records is not modified.
func Run(records []models.WasteRecord, f Filter, today time.Time) (Report, error) {
	if f.Period == "" {
		f.Period = PeriodDaily
	}
	if f.Sort == "" {
		f.Sort = SortDate
	}

	rng, err := RangeFor(f.Period, today, f.Start, f.End)
	if err != nil {
		return Report{}, err
	}

	out := make([]models.WasteRecord, 0, len(records))
	for _, r := range records {
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Location != "" && r.Location != f.Location {
			continue
		}
		if !rng.Contains(r.Date) {
			continue
		}
		out = append(out, r)
	}

	if err := Sort(out, f.Sort); err != nil {
		return Report{}, err
	}

	return Report{Filter: f, Range: rng, Records: out, Stats: ComputeStats(out)}, nil
}

// Sort orders records in place by key. The sort is stable.
func Sort(records []models.WasteRecord, key SortKey) error {
	switch key {
	case SortDate:
		sort.SliceStable(records, func(i, j int) bool {
			return stamp(records[i]) > stamp(records[j])
		})
	case SortType:
		col := collate.New(language.Spanish)
		sort.SliceStable(records, func(i, j int) bool {
			return col.CompareString(records[i].Type, records[j].Type) < 0
		})
	case SortWeight:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Weight > records[j].Weight
		})
	default:
		return fmt.Errorf("unknown sort key %q: %w", key, common.ErrValidation)
	}
	return nil
}

// ComputeStats counts, sums and averages records and counts their distinct
// types and locations.
func ComputeStats(records []models.WasteRecord) Stats {
	s := Stats{Count: len(records)}
	types := make(map[string]struct{})
	locations := make(map[string]struct{})

	for _, r := range records {
		s.Total += r.Weight
		types[r.Type] = struct{}{}
		locations[r.Location] = struct{}{}
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	s.Types = len(types)
	s.Locations = len(locations)
	return s
}

// DistinctTypes returns the record types in first-appearance order.
func DistinctTypes(records []models.WasteRecord) []string {
	return distinct(records, func(r models.WasteRecord) string { return r.Type })
}

// DistinctLocations returns the record locations in first-appearance order.
func DistinctLocations(records []models.WasteRecord) []string {
	return distinct(records, func(r models.WasteRecord) string { return r.Location })
}

func distinct(records []models.WasteRecord, field func(models.WasteRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// stamp is the sortable date-time of a record. Both parts are fixed width.
func stamp(r models.WasteRecord) string {
	return r.Date + " " + r.Time
}
