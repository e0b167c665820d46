package storage

import "errors"

var (
	ErrOrderExists   = errors.New("order with given id already exists in storage")
	ErrOrderNotFound = errors.New("order with given id doesn't exist in storage")
)
