package readmegen

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadSource  = errors.New("failed to read source document")
	ErrStatSource  = errors.New("failed to collect source statistics")
	ErrWriteOutput = errors.New("failed to write README")
	ErrSameFile    = errors.New("output path must differ from source path")

	// Template errors.
	ErrTemplateParse  = errors.New("failed to parse README template")
	ErrTemplateRender = errors.New("failed to render README template")

	// Timestamp errors.
	ErrInvalidTimestampFormat = errors.New("invalid timestamp format")

	// Preview errors.
	ErrRenderPreview = errors.New("failed to render HTML preview")
	ErrWritePreview  = errors.New("failed to write HTML preview")
)
