package dungeon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates bad bounds or parameters passed by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfBounds indicates a coordinate outside a Room or Level.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidState indicates an operation invoked while its precondition does not hold.
	ErrInvalidState = errors.New("invalid state")

	ErrNotDeadEnd        = fmt.Errorf("%w: cell is not a dead end", ErrInvalidState)
	ErrRoomDoesNotFit    = fmt.Errorf("%w: room does not fit inside container", ErrInvalidArgument)
	ErrRoomAlreadyPlaced = fmt.Errorf("%w: room is already placed in a container", ErrInvalidArgument)
)
