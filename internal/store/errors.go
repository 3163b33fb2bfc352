package store

import "errors"

// ErrValidation is returned when an add or update is missing a required
// field; the operation leaves the collection and storage untouched.
var ErrValidation = errors.New("category and product name are required")

// ErrNotFound is returned when an update targets an id that no longer exists.
var ErrNotFound = errors.New("inventory item not found")
