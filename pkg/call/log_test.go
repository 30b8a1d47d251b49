package call

import (
	"sync"
	"testing"
)

func TestLog_Append(t *testing.T) {
	log := NewLog()

	rec := New().WithArgs("x").Record()
	log.Append(rec)

	if log.Len() != 1 {
		t.Fatalf("Len: got %d want 1", log.Len())
	}
	if rec.ID == "" {
		t.Error("Append must stamp a record ID")
	}
	if rec.Timestamp.IsZero() {
		t.Error("Append must stamp a timestamp")
	}
}

func TestLog_AppendNil(t *testing.T) {
	log := NewLog()
	log.Append(nil)

	if log.Len() != 0 {
		t.Errorf("nil record must not be stored, got %d entries", log.Len())
	}
}

func TestLog_SnapshotIsolation(t *testing.T) {
	log := NewLog()
	log.Append(New().WithArgs("first").Record())

	snap := log.Snapshot()
	log.Append(New().WithArgs("second").Record())

	if len(snap) != 1 {
		t.Fatalf("snapshot must not grow after later appends: got %d entries", len(snap))
	}
	if log.Len() != 2 {
		t.Fatalf("Len: got %d want 2", log.Len())
	}
}

func TestLog_SnapshotOrder(t *testing.T) {
	log := NewLog()
	for i := 0; i < 5; i++ {
		log.Append(New().WithArgs(i).Record())
	}

	snap := log.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("snapshot length: got %d want 5", len(snap))
	}
	for i, rec := range snap {
		got := recArg(rec)
		if got != i {
			t.Errorf("record %d out of order: got arg %v", i, got)
		}
	}
}

func TestLog_Clear(t *testing.T) {
	log := NewLog()
	log.Append(New().Record())
	log.Append(New().Record())

	log.Clear()

	if log.Len() != 0 {
		t.Errorf("Len after Clear: got %d want 0", log.Len())
	}
}

func TestLog_ConcurrentAppend(t *testing.T) {
	log := NewLog()

	const writers = 20
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Append(New().WithArgs(i).Record())
			}
		}()
	}
	wg.Wait()

	if log.Len() != writers*perWriter {
		t.Errorf("lost records under concurrent append: got %d want %d",
			log.Len(), writers*perWriter)
	}
}

func TestLog_ConcurrentSnapshotDuringAppend(t *testing.T) {
	log := NewLog()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			log.Append(New().WithArgs(i).Record())
		}
	}()

	// Snapshots taken while the writer runs must be prefixes of call order.
	for i := 0; i < 50; i++ {
		snap := log.Snapshot()
		for j, rec := range snap {
			got := recArg(rec)
			if got != j {
				t.Fatalf("snapshot reordered: entry %d has arg %v", j, got)
			}
		}
	}
	<-done
}

func recArg(rec *Record) any {
	if rec.Args == nil {
		return nil
	}
	return rec.Args.Value()
}
