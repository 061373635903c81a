package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// MaxListSize caps every list operation; there is no pagination.
const MaxListSize = 1000
