// internal/organize/errors.go
package organize

import "errors"

var (
	// ErrInvalidDirectory indicates the working directory does not exist
	// or is not a directory.
	ErrInvalidDirectory = errors.New("invalid working directory")

	// ErrNoPriorSort indicates undo was requested with no recorded sort.
	ErrNoPriorSort = errors.New("no prior sort to undo")

	// ErrMoveFailed indicates a single file relocation failed.
	ErrMoveFailed = errors.New("failed to move file")

	// ErrDestinationExists indicates the resolved destination appeared
	// between the collision check and the move.
	ErrDestinationExists = errors.New("destination already exists")
)
