package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist or belongs to another user. The two cases are
// deliberately indistinguishable so existence never leaks across accounts.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, stripes out of range).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrDuplicateName is returned when a create or rename collides with an
// active record of the same name for the same user.
// Handlers should map this to HTTP 400.
var ErrDuplicateName = errors.New("duplicate name")

// ErrEmailTaken is returned by signup when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned by login on an unknown email or a wrong
// password. The message is identical in both cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SoftDeletedConflictError is returned when a technique create or update
// collides with a soft-deleted record of the same name. It carries the id of
// that record so the caller can choose between restoring it as-is and
// replacing its content with the draft, without losing the in-progress edit.
// Handlers should map this to HTTP 409.
type SoftDeletedConflictError struct {
	// ExistingID is the soft-deleted technique that owns the name.
	ExistingID uuid.UUID
	// Name is the normalized name that collided.
	Name string
}

func (e *SoftDeletedConflictError) Error() string {
	return fmt.Sprintf("a soft-deleted technique named %q already exists", e.Name)
}

// AsSoftDeletedConflict unwraps err into a SoftDeletedConflictError, if any.
func AsSoftDeletedConflict(err error) (*SoftDeletedConflictError, bool) {
	var conflict *SoftDeletedConflictError
	ok := errors.As(err, &conflict)
	return conflict, ok
}
