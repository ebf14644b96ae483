package corpus

import (
	"errors"
	"fmt"
)

// ErrLineMissing reports a conversation that references a line ID absent
// from the line table. The corpus is assumed internally consistent, so this
// is fatal for the extraction that hit it.
var ErrLineMissing = errors.New("line id not present in line table")

// ErrMalformedText reports invalid bytes encountered under DecodeStrict.
var ErrMalformedText = errors.New("malformed text encoding")

// ManualDownloadError is returned by corpora that cannot be auto-provisioned.
// It names the local path the user must populate and where to get the data.
type ManualDownloadError struct {
	Path         string
	Instructions string
}

func (e *ManualDownloadError) Error() string {
	return fmt.Sprintf("corpus data not found: download it manually and place the files in %s (%s)", e.Path, e.Instructions)
}
