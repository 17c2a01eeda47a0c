// Package capture implements the two waste capture forms: the single-entry
// desk form and the multi-select tablet form. Both hand finished records to
// a RecordAdder; neither keeps records itself.
package capture

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// RecordAdder persists one record and returns it with its id assigned.
type RecordAdder interface {
	Add(ctx context.Context, rec models.WasteRecord) (models.WasteRecord, error)
}

// ParseWeight parses a weight in kilograms. It must be a finite number
// strictly greater than zero.
func ParseWeight(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("weight is required: %w", common.ErrValidation)
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("weight %q is not a number: %w", s, common.ErrValidation)
	}
	if w <= 0 {
		return 0, fmt.Errorf("weight must be greater than zero: %w", common.ErrValidation)
	}
	return w, nil
}

func validateDateTime(date, tm string) error {
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		return fmt.Errorf("date %q is not YYYY-MM-DD: %w", date, common.ErrValidation)
	}
	if _, err := time.Parse(common.TimeLayout, tm); err != nil {
		return fmt.Errorf("time %q is not HH:MM: %w", tm, common.ErrValidation)
	}
	return nil
}

func today(now time.Time) (string, string) {
	return now.Format(common.DateLayout), now.Format(common.TimeLayout)
}
