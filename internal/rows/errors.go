package rows

import "errors"

// ErrUnsupportedFormat indicates an items file extension other than .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported items file format")

// ErrInvalidItems indicates the document is neither a list of rows nor a mapping with an "items" key.
var ErrInvalidItems = errors.New("items must be a list of {text: ...} entries")
