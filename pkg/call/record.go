package call

import (
	"time"

	"github.com/getcalltrack/calltrack/pkg/payload"
)

// Record captures one logged invocation of a tracked operation.
// Args and Returned are optional: an instrumentation layer may log a call
// without capturing either. A Record must not be mutated after it has been
// handed to a tracker.
type Record struct {
	// ID is a unique identifier for the record. Stamped at log time if empty.
	ID string `json:"id"`

	// Key is the tracked operation this call belongs to. Stamped at log time.
	Key string `json:"key"`

	// Timestamp is when the call was logged. Stamped at log time if zero.
	Timestamp time.Time `json:"timestamp"`

	// Args holds the captured argument tuple, or nil if none was logged.
	Args *payload.Payload `json:"-"`

	// Returned holds the captured return value, or nil if none was logged.
	Returned *payload.Payload `json:"-"`
}

// Args builds an argument tuple from individual argument values.
// Use it with the builder when a tracked operation takes more than one
// argument:
//
//	call.New().WithArgs(call.Args("Ann", 30)).Record()
func Args(vs ...any) []any {
	return vs
}
