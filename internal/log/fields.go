package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldScenario  = "scenario"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldFormat    = "format"
	FieldPath      = "path"
	FieldWorkers   = "workers"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentCalculation = "calculation"
	ComponentConfig      = "config"
	ComponentOutput      = "output"
)
