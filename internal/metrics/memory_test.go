package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.NumGoroutine == 0 {
		t.Error("NumGoroutine should be > 0")
	}
}

var sink []byte

func TestMemorySnapshot_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]byte, 1<<20)
	after := mc.Snapshot()

	d := before.Delta(after)
	if d.TotalAlloc < 1<<20 {
		t.Errorf("TotalAlloc delta = %d, want >= %d", d.TotalAlloc, 1<<20)
	}
	if d.NumGC > after.NumGC {
		t.Errorf("NumGC delta %d exceeds absolute count %d", d.NumGC, after.NumGC)
	}
}
