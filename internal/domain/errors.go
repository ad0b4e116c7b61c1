package domain

import "errors"

// Domain errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("no readable text found in the document")
	ErrFileNotFound        = errors.New("file not found")
	ErrInvalidFilename     = errors.New("invalid filename")
	ErrNoCompletion        = errors.New("no completion returned by the model")
)
