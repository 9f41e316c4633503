package tracking

import (
	"errors"
)

var ErrEmptyAttributeName = errors.New("empty attribute name supplied")
var ErrInvalidHistoryFormat = errors.New(`format must be one of "flat" or "attr"`)

var ErrIndexOutOfRange = errors.New("list index out of range")
var ErrPopFromEmptyList = errors.New("pop from empty list")
var ErrValueNotFound = errors.New("value not found in list")
var ErrInvalidIndexType = errors.New("index must be an integer or implement IntIndexer")
var ErrKeyNotFound = errors.New("key not found in dict")

var ErrNilLogger = errors.New("nil logger supplied")
var ErrNilMetricsCollector = errors.New("nil metricsCollector supplied")
var ErrNilPrivatePredicate = errors.New("nil private-name predicate supplied")

// AttributeNameString is a type alias for string, representing the name of a tracked attribute.
type AttributeNameString = string
