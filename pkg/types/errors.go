package types

import (
	"errors"
	"fmt"
)

// Standard errors returned by store operations.
var (
	// ErrDuplicateEmail is returned when registering a member whose email
	// is already taken. The first registration remains intact.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrMemberNotFound is the sentinel wrapped by MemberNotFoundError;
	// use errors.Is against this to classify lookup failures.
	ErrMemberNotFound = errors.New("member not found")
)

// MemberNotFoundError reports an RSVP or lookup referencing an email with no
// matching member. It carries the missing email and wraps ErrMemberNotFound.
type MemberNotFoundError struct {
	Email string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member %q not found", e.Email)
}

func (e *MemberNotFoundError) Unwrap() error {
	return ErrMemberNotFound
}
