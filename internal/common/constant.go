package common

// Keys of the local key/value store. Every entity list is stored as one
// JSON blob under its own key.
const (
	UsersKey         = "waste_management_users"
	WasteRecordsKey  = "waste_management_records"
	EmailConfigKey   = "waste_management_emails"
	AuthKey          = "waste_management_auth"
	SchemaVersionKey = "waste_management_schema_version"
)

// SchemaVersion is the version of the stored JSON layout this build writes.
const SchemaVersion = 1

// DateLayout and TimeLayout are the wire formats of WasteRecord.Date and
// WasteRecord.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
