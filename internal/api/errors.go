package api

import (
	"errors"
	"fmt"
)

// ErrNoData is wrapped in a NetworkError when the backend reports success
// but sends no analysis payload.
var ErrNoData = errors.New("response has no data")

const networkPrefix = "பகுப்பாய்வில் பிழை (Analysis failed)"

// BackendError is returned when the backend answers with "error": true.
// Its message is shown to the user verbatim.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// NetworkError covers every failure to obtain a usable reply: transport
// errors, timeouts and bodies that do not decode.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", networkPrefix, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
