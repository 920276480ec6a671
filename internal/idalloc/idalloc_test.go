package idalloc

import "testing"

func TestAllocFreshIndices(t *testing.T) {
	a := New()

	i0, g0 := a.Alloc()
	i1, g1 := a.Alloc()

	if i0 != 0 || i1 != 1 {
		t.Fatalf("got indices (%d,%d), want (0,1)", i0, i1)
	}
	if g0 != 0 || g1 != 0 {
		t.Fatalf("got generations (%d,%d), want (0,0)", g0, g1)
	}
}

func TestFreeBumpsGeneration(t *testing.T) {
	a := New()

	idx, gen := a.Alloc()
	if !a.IsCurrent(idx, gen) {
		t.Fatalf("freshly allocated slot should be current")
	}

	a.Free(idx)
	if a.IsCurrent(idx, gen) {
		t.Fatalf("generation %d should be stale after Free", gen)
	}

	idx2, gen2 := a.Alloc()
	if idx2 != idx {
		t.Fatalf("expected freed slot %d to be reused, got %d", idx, idx2)
	}
	if gen2 == gen {
		t.Fatalf("reused slot must have a bumped generation, got same %d twice", gen)
	}
	if !a.IsCurrent(idx2, gen2) {
		t.Fatalf("newly allocated slot should be current")
	}
}

func TestNeverReusesExactBitPattern(t *testing.T) {
	a := New()

	seen := make(map[[2]uint32]bool)
	var idx uint32
	var gen uint32
	for i := 0; i < 1000; i++ {
		idx, gen = a.Alloc()
		key := [2]uint32{idx, gen}
		if seen[key] {
			t.Fatalf("index/generation pair (%d,%d) reused", idx, gen)
		}
		seen[key] = true
		if i%3 == 0 {
			a.Free(idx)
		}
	}
}

func TestLenCountsAllSlotsEverAllocated(t *testing.T) {
	a := New()
	a.Alloc()
	a.Alloc()
	idx, _ := a.Alloc()
	a.Free(idx)
	a.Alloc() // reuses idx, should not grow Len

	if got := a.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}
