package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with fmt.Errorf("...: %w", err) and the API layer uses
// errors.Is() to map them to HTTP responses, so no service ever needs to know
// about status codes.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrOCREmpty signifies that the vision provider answered successfully but
	// returned no usable text for an image request.
	// This is mapped to a 400 Bad Request HTTP status ("cannot read image").
	ErrOCREmpty = errors.New("ocr returned no text")

	// ErrProviderTransport signifies a network, authentication or upstream
	// failure while talking to an OCR, reasoning or speech provider.
	ErrProviderTransport = errors.New("provider transport error")

	// ErrQuotaExceeded signifies that a provider rejected the call because of
	// rate limiting or an exhausted quota. It always wraps together with
	// ErrProviderTransport.
	ErrQuotaExceeded = errors.New("provider quota exceeded")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
