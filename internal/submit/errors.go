package submit

import "fmt"

// RejectedError means the webhook answered with JSON that did not report
// success. Detail carries the server's error value, or the whole body when
// there was none.
type RejectedError struct {
	Detail  string
	Status  int
	Attempt int
}

func (e *RejectedError) Error() string {
	return "Error submitting form: " + e.Detail
}

// TransportError means no usable reply arrived: the request failed, or the
// body could not be read or was not JSON.
type TransportError struct {
	Err     error
	Attempt int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
