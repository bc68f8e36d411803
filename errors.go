package khseg

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrDictNotFound indicates the dictionary file does not exist.
	ErrDictNotFound = errors.New("khseg: dictionary file not found")

	// ErrInvalidDict indicates the dictionary file exists but failed
	// validation (bad magic, wrong version, corrupt table).
	ErrInvalidDict = errors.New("khseg: invalid dictionary format")
)
