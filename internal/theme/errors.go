package theme

import "errors"

var (
	// ErrUnknownTheme indicates a name outside CYBER, NOVA, VOID, NEBULA.
	ErrUnknownTheme = errors.New("theme: unknown theme")

	// ErrBadColor indicates a palette override that is not #rrggbb.
	ErrBadColor = errors.New("theme: color must be #rrggbb")
)
