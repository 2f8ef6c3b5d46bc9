// Package store owns all database access. No handler may query the DB
// directly; every read and write goes through one of the stores in this
// package.
package store

import "errors"

// ErrNotFound is returned when a requested entity, or any entity in its
// owning chain, does not exist.
var ErrNotFound = errors.New("not found")
