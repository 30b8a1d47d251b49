package call

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Log is a thread-safe, append-only store of call records for one key.
// Insertion order is call order. Records are never evicted or reordered;
// the log only shrinks on an explicit Clear.
type Log struct {
	mu      sync.RWMutex
	records []*Record
}

// NewLog creates an empty call log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the end of the log, stamping ID and Timestamp if
// they are unset. Safe under arbitrary concurrent callers.
func (l *Log) Append(rec *Record) {
	if rec == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	l.records = append(l.records, rec)
}

// Snapshot returns a copy of the log's current contents in call order.
// Appends made after the snapshot is taken never appear in it.
func (l *Log) Snapshot() []*Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Clear removes all records.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}
