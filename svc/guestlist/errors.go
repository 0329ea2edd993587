package guestlist

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a roster operation referenced an id that is not
// present.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("guestlist: no guest with id %d", e.ID)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
