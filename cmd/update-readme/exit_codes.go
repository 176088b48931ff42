package main

import (
	"errors"
	"os"

	"github.com/nbajpai-code/readmegen"
	"github.com/nbajpai-code/readmegen/internal/config"
)

// Exit codes for update-readme.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // README written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or template
	ExitIO      = 3 // Source unreadable, README unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, readmegen.ErrReadSource) ||
		errors.Is(err, readmegen.ErrStatSource) ||
		errors.Is(err, readmegen.ErrWriteOutput) ||
		errors.Is(err, readmegen.ErrWritePreview) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, readmegen.ErrTemplateParse) ||
		errors.Is(err, readmegen.ErrTemplateRender) ||
		errors.Is(err, readmegen.ErrInvalidTimestampFormat) ||
		errors.Is(err, readmegen.ErrSameFile) {
		return ExitUsage
	}

	return ExitGeneral
}
