package usecase

import (
	"fmt"

	"github.com/google/uuid"
)

// NewStorageKey generates the object store key for an uploaded file.
// The random prefix makes keys unique even for identical filenames;
// the key is the sole linkage between a metadata record and its binary.
func NewStorageKey(filename string) string {
	return fmt.Sprintf("%s_%s", uuid.NewString(), filename)
}
