package stats

import "errors"

var ErrForbidden = errors.New("operation forbidden for actor")
