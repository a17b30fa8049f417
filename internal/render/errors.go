package render

import "errors"

// ErrUnknownFormat is returned for an output format name that is not one of
// [Formats].
var ErrUnknownFormat = errors.New("render: unknown format")
