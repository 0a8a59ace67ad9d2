package repository

import "errors"

// ErrNotFound is returned when a query for a single entity finds no rows.
// The service layer translates it into the application-level ErrNotFound so
// callers never see sql.ErrNoRows.
var ErrNotFound = errors.New("repository: not found")
