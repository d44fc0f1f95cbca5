package logging

// Standardized field names for structured logging. Keeping these in one
// place makes the log output consistent and easy to filter.
const (
	FieldAccountID     = "account_id"
	FieldTransactionID = "transaction_id"
	FieldKey           = "key"
	FieldReason        = "reason"
	FieldCount         = "count"
	FieldDropped       = "dropped"
	FieldEndpoint      = "endpoint"
	FieldRequestID     = "request_id"
	FieldStatus        = "status"
	FieldSnapshot      = "snapshot_path"
	FieldFile          = "file_path"
)
