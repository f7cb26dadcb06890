package tui

import "errors"

// ErrMissingCandidateService is returned when the candidate service is not provided.
var ErrMissingCandidateService = errors.New("tui: candidate service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// ErrMissingUploadService is returned when the upload service is not provided.
var ErrMissingUploadService = errors.New("tui: upload service is required")
