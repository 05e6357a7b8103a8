package randomizer

import "errors"

// Sentinel errors for the distinct validation failure classes. Callers match
// them with errors.Is; messages wrapped around them name the failing argument.
var (
	ErrUnknownSet             = errors.New("unknown game set")
	ErrUnknownCardName        = errors.New("unknown card name")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInsufficientCandidates = errors.New("not enough candidates")
)
