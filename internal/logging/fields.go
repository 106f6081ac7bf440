package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldLanguage   = "language"

	// Configuration fields.
	FieldConfig = "config"
	FieldJobs   = "jobs"
	FieldFormat = "format"

	// Selection fields.
	FieldSelection = "selection"
	FieldMode      = "mode"
	FieldCursor    = "cursor"

	// Assist fields.
	FieldAssist   = "assist"
	FieldLabel    = "label"
	FieldOffered  = "offered"
	FieldElapsed  = "elapsed"
	FieldHandlers = "handlers"
	FieldAssists  = "assists"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
