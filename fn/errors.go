package fn

import "errors"

// ErrNilOperation is the panic value (wrapped) raised when a nil
// [Operation] is applied.
var ErrNilOperation = errors.New("fn: nil operation")
