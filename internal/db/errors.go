package db

import (
	"errors"
	"fmt"
)

// Sentinel errors for store operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
)

// Operation names for error reporting.
const (
	OpGet       = "get"
	OpSet       = "set"
	OpDel       = "del"
	OpDelPrefix = "del_prefix"
	OpScan      = "scan"
)

// Error wraps a store failure with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
