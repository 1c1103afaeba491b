package order

import (
	"fmt"
	"strings"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// The arrow order is the intended flow only; see CanTransition.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Cooking
	Cooked
	PickedUp
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus converts the wire name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, status := range Statuses() {
		if strings.EqualFold(status.String(), s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarshalText writes the status name into JSON bodies and event payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
