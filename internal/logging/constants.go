package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldSource     = "source"
	FieldExternalID = "external_id"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDropped    = "dropped"
	FieldAdded      = "added"
	FieldFetched    = "fetched"
	FieldRunID      = "run_id"
	FieldItem       = "item_id"
	FieldIndex      = "index"
	FieldDelimiter  = "delimiter"
)
