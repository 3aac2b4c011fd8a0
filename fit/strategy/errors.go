package strategy

import "github.com/cockroachdb/errors"

// ErrNoFit reports that no block in the list can satisfy the wanted size.
var ErrNoFit = errors.New("strategy: no block large enough")
