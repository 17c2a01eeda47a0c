package vocab

// Table names used in Difference.
const (
	TableWasteTypes = "waste types"
	TableLocations  = "locations"
)

// Form names used in Difference.
const (
	FormDesk   = "desk"
	FormTablet = "tablet"
)

// Difference is a label offered by one form but not by the other.
type Difference struct {
	Table  string
	Label  string
	OnlyIn string
}

// Drift compares the desk and tablet tables label by label. Order
// differences are ignored. The result is empty while both forms agree.
func Drift() []Difference {
	var out []Difference
	out = append(out, diff(TableWasteTypes, DeskWasteTypes, names(TabletWasteTypes))...)
	out = append(out, diff(TableLocations, DeskLocations, names(TabletAreas))...)
	return out
}

// Unknown returns the distinct labels in labels that neither form offers,
// in first-appearance order. Useful to spot records written under retired
// vocabulary.
func Unknown(labels []string) []string {
	known := make(map[string]struct{})
	for _, l := range DeskWasteTypes {
		known[l] = struct{}{}
	}
	for _, l := range DeskLocations {
		known[l] = struct{}{}
	}
	for _, e := range TabletWasteTypes {
		known[e.Name] = struct{}{}
	}
	for _, e := range TabletAreas {
		known[e.Name] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, l := range labels {
		if _, ok := known[l]; ok {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Retired returns the distinct labels in labels that an earlier tablet layout
// wrote (RetiredTabletLabels), in first-appearance order.
func Retired(labels []string) []string {
	retired := toSet(RetiredTabletLabels)

	var out []string
	seen := make(map[string]struct{})
	for _, l := range labels {
		if _, ok := retired[l]; !ok {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func diff(table string, desk, tablet []string) []Difference {
	inDesk := toSet(desk)
	inTablet := toSet(tablet)

	var out []Difference
	for _, l := range desk {
		if _, ok := inTablet[l]; !ok {
			out = append(out, Difference{Table: table, Label: l, OnlyIn: FormDesk})
		}
	}
	for _, l := range tablet {
		if _, ok := inDesk[l]; !ok {
			out = append(out, Difference{Table: table, Label: l, OnlyIn: FormTablet})
		}
	}
	return out
}

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
