package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFile indicates a required file was not supplied.
	// Caught before any request is sent.
	ErrNoFile = errors.New("no file supplied")

	// ErrUnsupportedFileType indicates the file is not a PDF or DOCX resume.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrTelegramUsernameRequired indicates an empty telegram handle was
	// submitted for linking.
	ErrTelegramUsernameRequired = errors.New("telegram username required")

	// ErrUploadInProgress indicates an upload is already running.
	ErrUploadInProgress = errors.New("upload in progress")

	// ErrNoCandidateSelected indicates a profile action was invoked with
	// no candidate selected.
	ErrNoCandidateSelected = errors.New("no candidate selected")
)

// IsValidationGap reports whether err was caught client-side before any
// request left the process.
func IsValidationGap(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNoFile) ||
		errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrTelegramUsernameRequired) ||
		errors.Is(err, ErrNoCandidateSelected)
}
