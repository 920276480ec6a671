package rhi

import "sync"

// ResourceView is a tagged reference into a Buffer or Image (§3.1). Views
// never outlive their owning resource; callers obtain them through
// Image.View / Buffer view constructors, never by constructing one
// directly.
type ResourceView interface {
	ID() ViewID
	Kind() ViewKind
	// Image returns the owning image, or the zero ID if this view is a
	// buffer view.
	Image() ImageID
	Range() ViewRange
}

// view is the concrete ResourceView shared by every backend; backends
// attach their own driver handle via the Native field rather than
// subclassing.
type view struct {
	id     ViewID
	kind   ViewKind
	image  ImageID
	rng    ViewRange
	Native any
}

func (v *view) ID() ViewID        { return v.id }
func (v *view) Kind() ViewKind    { return v.kind }
func (v *view) Image() ImageID    { return v.image }
func (v *view) Range() ViewRange  { return v.rng }

// ViewCache is the per-resource arena described in spec.md §9: "replace
// source's new/delete view caches with an arena keyed by
// (resource_id, view_descriptor) owned by the resource; views hold
// resource-id indices, not pointers." Image/Buffer backend implementations
// embed one ViewCache and call GetOrCreate from their View method.
type ViewCache struct {
	mu    sync.Mutex
	views map[viewKey]*view
	next  uint32
}

type viewKey struct {
	kind ViewKind
	rng  ViewRange
}

// GetOrCreate returns the cached view for (kind, rng), creating it via
// create on first request. create is only invoked while holding the
// cache's lock, so backend Create calls made from it must not re-enter
// GetOrCreate on the same cache.
func (c *ViewCache) GetOrCreate(image ImageID, kind ViewKind, rng ViewRange, create func() any) ResourceView {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.views == nil {
		c.views = make(map[viewKey]*view)
	}
	key := viewKey{kind: kind, rng: rng}
	if v, ok := c.views[key]; ok {
		return v
	}

	c.next++
	v := &view{
		id:     NewID[viewMarker](c.next, 0),
		kind:   kind,
		image:  image,
		rng:    rng,
		Native: create(),
	}
	c.views[key] = v
	return v
}

// Len reports how many distinct views have been cached. Exposed for tests
// verifying the view-caching property (§8).
func (c *ViewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.views)
}
