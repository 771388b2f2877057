package about

import "errors"

var ErrNoActiveProfile = errors.New("no active about profile")
