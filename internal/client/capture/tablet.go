package capture

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/vocab"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// State is the selection state of a TabletForm.
type State int

const (
	NoTypesSelected State = iota
	TypesSelected
	AreaSelected
)

func (s State) String() string {
	switch s {
	case NoTypesSelected:
		return "no types selected"
	case TypesSelected:
		return "types selected"
	case AreaSelected:
		return "area selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type selection struct {
	weight string
	notes  string
}

// TabletForm captures several waste types for one area in a single batch.
// Types and areas are addressed by their tablet vocabulary ids.
type TabletForm struct {
	Date string
	Time string

	selected map[string]*selection
	area     string

	adder     RecordAdder
	createdBy string
	now       func() time.Time
}

func NewTabletForm(adder RecordAdder, createdBy string, now func() time.Time) *TabletForm {
	if now == nil {
		now = time.Now
	}
	f := &TabletForm{adder: adder, createdBy: createdBy, now: now}
	f.Reset()
	return f
}

// Reset clears selection and area and sets date and time to now.
func (f *TabletForm) Reset() {
	f.selected = make(map[string]*selection)
	f.area = ""
	f.Date, f.Time = today(f.now())
}

// State reports where the form is in its selection flow. An area chosen
// while no type is selected still reports NoTypesSelected.
func (f *TabletForm) State() State {
	switch {
	case len(f.selected) == 0:
		return NoTypesSelected
	case f.area == "":
		return TypesSelected
	default:
		return AreaSelected
	}
}

// Toggle adds the type to the selection, or removes it (with its weight and
// note) if already selected.
func (f *TabletForm) Toggle(typeID string) error {
	if _, ok := vocab.TabletType(typeID); !ok {
		return fmt.Errorf("unknown waste type %q: %w", typeID, common.ErrValidation)
	}
	if _, ok := f.selected[typeID]; ok {
		delete(f.selected, typeID)
		return nil
	}
	f.selected[typeID] = &selection{}
	return nil
}

// Selected returns the selected type ids in vocabulary order.
func (f *TabletForm) Selected() []string {
	ids := make([]string, 0, len(f.selected))
	for id := range f.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return typeIndex(ids[i]) < typeIndex(ids[j]) })
	return ids
}

// SetWeight stores the raw weight input of a selected type.
func (f *TabletForm) SetWeight(typeID, weight string) error {
	s, ok := f.selected[typeID]
	if !ok {
		return fmt.Errorf("waste type %q is not selected: %w", typeID, common.ErrValidation)
	}
	s.weight = weight
	return nil
}

// SetNote stores the note of a selected type.
func (f *TabletForm) SetNote(typeID, note string) error {
	s, ok := f.selected[typeID]
	if !ok {
		return fmt.Errorf("waste type %q is not selected: %w", typeID, common.ErrValidation)
	}
	s.notes = note
	return nil
}

// SelectArea sets the area of the batch. Ids outside the tablet vocabulary
// are kept and later stored verbatim.
func (f *TabletForm) SelectArea(areaID string) {
	f.area = strings.TrimSpace(areaID)
}

// Area returns the selected area id.
func (f *TabletForm) Area() string { return f.area }

// InvalidWeights returns the names of selected types whose weight is
// missing, not a number or not positive, in vocabulary order.
func (f *TabletForm) InvalidWeights() []string {
	var bad []string
	for _, id := range f.Selected() {
		if _, err := ParseWeight(f.selected[id].weight); err != nil {
			bad = append(bad, typeName(id))
		}
	}
	return bad
}

// CanSubmit reports whether Submit would pass validation.
func (f *TabletForm) CanSubmit() bool {
	return f.State() == AreaSelected && len(f.InvalidWeights()) == 0
}

// Submit writes one record per selected type, in vocabulary order, all with
// the same area, date and time. Nothing is written when validation fails.
//
// Writes are sequential with no rollback: if the store fails mid-batch the
// records written so far are returned together with the error and the form
// keeps its input.
func (f *TabletForm) Submit(ctx context.Context) ([]models.WasteRecord, error) {
	switch f.State() {
	case NoTypesSelected:
		return nil, fmt.Errorf("select at least one waste type: %w", common.ErrValidation)
	case TypesSelected:
		return nil, fmt.Errorf("select an area: %w", common.ErrValidation)
	}
	if bad := f.InvalidWeights(); len(bad) > 0 {
		return nil, fmt.Errorf("enter a weight greater than zero for: %s: %w", strings.Join(bad, ", "), common.ErrValidation)
	}
	if err := validateDateTime(f.Date, f.Time); err != nil {
		return nil, err
	}

	location := vocab.AreaName(f.area)

	var written []models.WasteRecord
	for _, id := range f.Selected() {
		s := f.selected[id]
		w, _ := ParseWeight(s.weight)

		rec, err := f.adder.Add(ctx, models.WasteRecord{
			Type:      typeName(id),
			Location:  location,
			Weight:    w,
			Date:      f.Date,
			Time:      f.Time,
			Notes:     strings.TrimSpace(s.notes),
			CreatedBy: f.createdBy,
		})
		if err != nil {
			return written, fmt.Errorf("save %s: %w", typeName(id), err)
		}
		written = append(written, rec)
	}

	f.Reset()
	return written, nil
}

func typeName(id string) string {
	if e, ok := vocab.TabletType(id); ok {
		return e.Name
	}
	return id
}

func typeIndex(id string) int {
	return vocab.TypeOrder(typeName(id))
}
