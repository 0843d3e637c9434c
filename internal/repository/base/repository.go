package base

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNotFound reports whether the error is pgx's "no rows" marker. The
// repositories translate it into a nil result instead of an error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
