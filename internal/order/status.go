package order

import "strings"

type Status string

const (
	StatusNew        Status = "NEW"
	StatusProcessing Status = "PROCESSING"
	StatusFulfilled  Status = "FULFILLED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus uppercases and trims the input and rejects anything outside
// the four lifecycle states. Any valid target is accepted regardless of the
// order's current state; the admin panel relies on that.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
