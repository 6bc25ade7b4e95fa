package blockscmd

import (
	"errors"

	"github.com/google/uuid"
)

var errBlockIDRequired = errors.New("block id is required")

// requireUUID rejects the zero UUID. ozzo's Required rule treats fixed-size
// arrays as never empty, so UUID fields need an explicit check.
func requireUUID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errBlockIDRequired
	}
	return nil
}
