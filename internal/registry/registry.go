package registry

import (
	"sort"
	"sync"

	"github.com/getcalltrack/calltrack/pkg/call"
)

// Subscriber is a channel that receives newly recorded calls across all keys.
type Subscriber chan *call.Record

// subscriberBuffer is the per-subscriber channel capacity. Records are
// dropped for a subscriber that falls this far behind rather than blocking
// the recording path.
const subscriberBuffer = 100

// Registry is a thread-safe mapping from key to call log.
// Logs are created lazily on first record and removed only by Clear.
type Registry struct {
	mu   sync.RWMutex
	logs map[string]*call.Log

	subMu       sync.RWMutex
	subscribers map[Subscriber]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		logs:        make(map[string]*call.Log),
		subscribers: make(map[Subscriber]struct{}),
	}
}

// Record appends rec to the log for key, creating the log if this is the
// key's first call. Never loses a record under concurrent callers.
func (r *Registry) Record(key string, rec *call.Record) {
	if rec == nil {
		return
	}
	rec.Key = key

	log := r.getOrCreate(key)
	log.Append(rec)

	// Notify subscribers after the record is visible to readers.
	r.subMu.RLock()
	for sub := range r.subscribers {
		select {
		case sub <- rec:
		default:
			// Drop if subscriber is slow
		}
	}
	r.subMu.RUnlock()
}

// Lookup returns the log for key, or nil if the key has never been recorded.
func (r *Registry) Lookup(key string) *call.Log {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logs[key]
}

// Snapshot returns the current records for key in call order.
// A key that has never been recorded yields an empty snapshot.
func (r *Registry) Snapshot(key string) []*call.Record {
	log := r.Lookup(key)
	if log == nil {
		return nil
	}
	return log.Snapshot()
}

// Count returns the number of records for key.
func (r *Registry) Count(key string) int {
	log := r.Lookup(key)
	if log == nil {
		return 0
	}
	return log.Len()
}

// Keys returns all recorded keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.logs))
	for k := range r.logs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes all keys and their logs.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = make(map[string]*call.Log)
}

// Subscribe registers a subscriber to receive newly recorded calls.
// Returns the channel and an unsubscribe function.
func (r *Registry) Subscribe() (Subscriber, func()) {
	ch := make(Subscriber, subscriberBuffer)

	r.subMu.Lock()
	r.subscribers[ch] = struct{}{}
	r.subMu.Unlock()

	unsubscribe := func() {
		r.subMu.Lock()
		delete(r.subscribers, ch)
		r.subMu.Unlock()
		close(ch)
	}

	return ch, unsubscribe
}

// getOrCreate returns the log for key, creating it if absent.
// The registry lock is held only for the map access, never for the append.
func (r *Registry) getOrCreate(key string) *call.Log {
	r.mu.RLock()
	log := r.logs[key]
	r.mu.RUnlock()
	if log != nil {
		return log
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if log := r.logs[key]; log != nil {
		return log
	}
	log = call.NewLog()
	r.logs[key] = log
	return log
}
