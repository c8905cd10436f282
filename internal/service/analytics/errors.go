package analytics

import "errors"

var ErrInvalidPeriod = errors.New("invalid period filter")
