package impsep

import "errors"

// ErrInvalidInput indicates malformed arguments to ImportantSeparators: s or
// t not present in the graph.
var ErrInvalidInput = errors.New("impsep: invalid input")
