package board

import "errors"

var (
	ErrPlayerRequired = errors.New("player_required")
	ErrLineRequired   = errors.New("line_required")
	ErrPropNotFound   = errors.New("prop_not_found")
)
