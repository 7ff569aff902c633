package services

import "errors"

var (
	// ErrUpstreamFailure wraps any failure of the completion provider.
	ErrUpstreamFailure = errors.New("upstream completion failure")

	// ErrExtractionFailed means the uploaded document yielded no usable text.
	// It is a property of the input, not a system fault.
	ErrExtractionFailed = errors.New("document text extraction failed")
)
