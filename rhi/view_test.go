package rhi

import "testing"

func TestViewCacheReturnsSameViewForSameKey(t *testing.T) {
	var cache ViewCache
	created := 0
	create := func() any {
		created++
		return created
	}

	rng := ViewRange{MipBase: 0, MipCount: 1, LayerBase: 0, LayerCount: 1}
	v1 := cache.GetOrCreate(ImageID{}, ViewSRV, rng, create)
	v2 := cache.GetOrCreate(ImageID{}, ViewSRV, rng, create)

	if v1 != v2 {
		t.Fatalf("GetOrCreate with identical (kind, range) must return the identical view")
	}
	if created != 1 {
		t.Fatalf("create() called %d times, want 1", created)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cache.Len())
	}
}

func TestViewCacheDistinguishesRanges(t *testing.T) {
	var cache ViewCache
	create := func() any { return nil }

	v1 := cache.GetOrCreate(ImageID{}, ViewSRV, ViewRange{MipBase: 0, MipCount: 1}, create)
	v2 := cache.GetOrCreate(ImageID{}, ViewSRV, ViewRange{MipBase: 1, MipCount: 1}, create)

	if v1 == v2 {
		t.Fatalf("distinct ranges must yield distinct views")
	}
	if cache.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cache.Len())
	}
}
