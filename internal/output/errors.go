package output

import "errors"

// ErrUnsupportedFormat is returned when no formatter matches a requested name
var ErrUnsupportedFormat = errors.New("unsupported report format")
