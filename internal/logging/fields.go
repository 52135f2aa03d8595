package logging

// Standardized attribute keys used across the pipeline.
const (
	FieldComponent = "component"
	FieldPath      = "path"
	FieldRunID     = "run_id"
	FieldLanguage  = "language"
	FieldTracks    = "tracks"
	FieldBytes     = "bytes"
)
