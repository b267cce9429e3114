package record

import "errors"

var (
	ErrInvalidTable        = errors.New("Invalid table name")
	ErrOperationNotAllowed = errors.New("Operation not allowed on this table")
	ErrRecordNotFound      = errors.New("No record found")
	ErrRecordsNotFound     = errors.New("No records found")
	ErrNoUpdates           = errors.New("ID and updates are required")
)
