package world

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by LoadError
var (
	ErrMalformed        = errors.New("malformed dungeon definition")
	ErrNoRooms          = errors.New("dungeon has no rooms")
	ErrMissingRoomID    = errors.New("room has no id")
	ErrDuplicateRoom    = errors.New("duplicate room id")
	ErrDuplicateTheme   = errors.New("duplicate theme")
	ErrDuplicateItem    = errors.New("duplicate item id")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownRoom      = errors.New("unknown room")
	ErrUnknownDirection = errors.New("unknown direction")
)

// LoadError reports why a definition was rejected. Ref names the offending
// reference, Where says which part of the document held it.
type LoadError struct {
	Err   error
	Ref   string
	Where string
}

func (e *LoadError) Error() string {
	switch {
	case e.Ref != "" && e.Where != "":
		return fmt.Sprintf("%v %q in %s", e.Err, e.Ref, e.Where)
	case e.Ref != "":
		return fmt.Sprintf("%v %q", e.Err, e.Ref)
	case e.Where != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Where)
	default:
		return e.Err.Error()
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(err error, ref, where string) *LoadError {
	return &LoadError{Err: err, Ref: ref, Where: where}
}
