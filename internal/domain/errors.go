package domain

import "errors"

// ErrNotFound is wrapped by repositories when a lookup matches nothing.
// Flows convert it into an Outcome at the operation boundary.
var ErrNotFound = errors.New("not found")
