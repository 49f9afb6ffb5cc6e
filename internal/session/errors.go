package session

import "fmt"

// AccessError reports a member that appears in a value's directory but
// whose value could not be read. It is recoverable: reports log it and
// keep enumerating.
type AccessError struct {
	Attribute string
	Reason    string
}

func (e *AccessError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("attribute %s is not accessible", e.Attribute)
	}
	return fmt.Sprintf("attribute %s is not accessible: %s", e.Attribute, e.Reason)
}

// NewAccessError builds an AccessError for the named attribute.
func NewAccessError(attribute, reason string) *AccessError {
	return &AccessError{Attribute: attribute, Reason: reason}
}
