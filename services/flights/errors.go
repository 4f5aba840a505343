package flights

import "fmt"

// SearchError distinguishes configuration and upstream failures so handlers
// can surface the right message to the caller.
type SearchError struct {
	Code    string
	Message string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigError(msg string) error {
	return &SearchError{Code: "configError", Message: msg}
}

func NewAccessError(msg string) error {
	return &SearchError{Code: "accessError", Message: msg}
}

func NewSearchError(msg string) error {
	return &SearchError{Code: "searchError", Message: msg}
}
