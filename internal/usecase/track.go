package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Track is one catalogued audio item: the metadata record plus the
// storage key of the binary it references. FileURL is derived on read
// and never persisted.
type Track struct {
	ID         uuid.UUID
	Title      string
	Artist     string
	Genre      string
	Date       string
	StorageKey string
	FileURL    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// File is the uploaded payload capability. The HTTP adapter implements
// it over a multipart file header; tests implement it in memory.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}
