package repository

import "errors"

// ErrSerializationConflict marks a detected isolation conflict between
// concurrent units of work (deadlock, serialization failure). The store
// implementation wraps its driver-specific error with this sentinel; the
// engine retries the whole operation from the balance read when it sees it.
var ErrSerializationConflict = errors.New("serialization conflict")
