package models

// WasteRecord is one logged waste-disposal event.
//
// Date is a calendar date (YYYY-MM-DD) and Time a time of day (HH:MM), both
// local to the hotel. Weight is in kilograms. CreatedBy is an unchecked
// reference to User.ID.
type WasteRecord struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Location  string  `json:"location"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Notes     string  `json:"notes,omitempty"`
	CreatedBy string  `json:"createdBy"`
}

func (r WasteRecord) GetID() string { return r.ID }

func (r WasteRecord) WithID(id string) WasteRecord {
	r.ID = id
	return r
}
