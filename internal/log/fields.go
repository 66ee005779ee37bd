package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldPath      = "path"
	FieldRecordID  = "record_id"
	FieldMonth     = "month"
	FieldKind      = "kind"
	FieldChanges   = "changes"
)

// Component names
const (
	ComponentLedger = "ledger"
	ComponentCLI    = "cli"
)

// Operation names
const (
	OpLoad    = "load"
	OpMigrate = "migrate"
	OpSave    = "save"
	OpCreate  = "create"
	OpDelete  = "delete"
	OpClear   = "clear"
	OpBudget  = "budget"
	OpImport  = "import"
)
