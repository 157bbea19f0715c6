package highscore

import (
	"errors"
	"fmt"
)

// MaxEntries is the size of the highscore table.
const MaxEntries = 10

// NameLength is the number of letters in a player name.
const NameLength = 3

var (
	// ErrPersistence is returned when the highscore file cannot be read or written.
	ErrPersistence = errors.New("highscore: persistence failure")

	// ErrInvalidName is returned for names that are not three letters.
	ErrInvalidName = errors.New("highscore: name must be three letters")
)

// Entry is one ranked win.
type Entry struct {
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

// Line renders the entry for the highscore panel, rank starting at 1.
func (e Entry) Line(rank int) string {
	return fmt.Sprintf("%02d:......%s......%03d", rank, e.Name, e.Seconds)
}
