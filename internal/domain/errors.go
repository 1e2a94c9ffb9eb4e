package domain

import "errors"

var (
	// ErrInvalidArgument signals malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAnalysisNotFound signals a missing analysis report.
	ErrAnalysisNotFound = errors.New("analysis not found")
	// ErrUnsupportedFileType signals a resume file with an unknown extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyDocument signals a resume file that yielded no text.
	ErrEmptyDocument = errors.New("no text content found")
)
