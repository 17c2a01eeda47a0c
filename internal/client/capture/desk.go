package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// DeskForm captures one record at a time. Fields hold raw user input.
type DeskForm struct {
	Type     string
	Location string
	Weight   string
	Date     string
	Time     string
	Notes    string

	adder     RecordAdder
	createdBy string
	now       func() time.Time
}

// NewDeskForm returns a form whose date and time default to now.
func NewDeskForm(adder RecordAdder, createdBy string, now func() time.Time) *DeskForm {
	if now == nil {
		now = time.Now
	}
	f := &DeskForm{adder: adder, createdBy: createdBy, now: now}
	f.Reset()
	return f
}

// Reset clears the entry fields and sets date and time to now.
func (f *DeskForm) Reset() {
	f.Type, f.Location, f.Weight, f.Notes = "", "", "", ""
	f.Date, f.Time = today(f.now())
}

// Validate checks the form without writing anything.
func (f *DeskForm) Validate() (float64, error) {
	var missing []string
	if strings.TrimSpace(f.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(f.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(f.Weight) == "" {
		missing = append(missing, "weight")
	}
	if f.Date == "" {
		missing = append(missing, "date")
	}
	if f.Time == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), common.ErrValidation)
	}

	w, err := ParseWeight(f.Weight)
	if err != nil {
		return 0, err
	}
	if err := validateDateTime(f.Date, f.Time); err != nil {
		return 0, err
	}
	return w, nil
}

// Submit validates the form, writes one record and resets the form. On any
// error the form keeps its input.
func (f *DeskForm) Submit(ctx context.Context) (models.WasteRecord, error) {
	w, err := f.Validate()
	if err != nil {
		return models.WasteRecord{}, err
	}

	rec, err := f.adder.Add(ctx, models.WasteRecord{
		Type:      strings.TrimSpace(f.Type),
		Location:  strings.TrimSpace(f.Location),
		Weight:    w,
		Date:      f.Date,
		Time:      f.Time,
		Notes:     strings.TrimSpace(f.Notes),
		CreatedBy: f.createdBy,
	})
	if err != nil {
		return models.WasteRecord{}, err
	}

	f.Reset()
	return rec, nil
}
