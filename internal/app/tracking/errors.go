package tracking

import "errors"

var (
	ErrNothingToSave = errors.New("nothing_to_save")
	ErrBadResult     = errors.New("bad_result")
)
