package database

import "errors"

// Store failure kinds. Repositories wrap the driver error with one of these so
// the HTTP layer can classify a failure without knowing SQL.
var (
	ErrBeginTx = errors.New("Transaction start failed")
	ErrInsert  = errors.New("Insertion Failed")
	ErrUpdate  = errors.New("Update Failed")
	ErrDelete  = errors.New("Delete Failed")
	ErrQuery   = errors.New("Query Failed")
	ErrCommit  = errors.New("Transaction commit failed")
	ErrTimeout = errors.New("Transaction timed out")
)
