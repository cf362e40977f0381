package game

// Reaction is what the World does when a collider reports contact.
type Reaction uint8

const (
	ReactionGameOver Reaction = iota + 1
)

type Collider struct {
	Owner     EntityID
	Reactions []Reaction
}

// Registry tracks the colliders of one Arena. Iteration follows insertion order.
type Registry struct {
	arena     *Arena
	order     []EntityID
	colliders map[EntityID]*Collider
}

func NewRegistry(arena *Arena) *Registry {
	return &Registry{
		arena:     arena,
		colliders: make(map[EntityID]*Collider),
	}
}

// Add registers a collider for id, replacing any previous one.
func (r *Registry) Add(id EntityID, reactions ...Reaction) {
	if _, ok := r.colliders[id]; !ok {
		r.order = append(r.order, id)
	}
	r.colliders[id] = &Collider{Owner: id, Reactions: reactions}
}

func (r *Registry) Remove(id EntityID) {
	if _, ok := r.colliders[id]; !ok {
		return
	}
	delete(r.colliders, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Colliding reports whether id overlaps any other registered collider.
func (r *Registry) Colliding(id EntityID) bool {
	if _, ok := r.colliders[id]; !ok {
		return false
	}
	self := r.arena.Get(id)
	if self == nil {
		return false
	}
	for _, otherID := range r.order {
		if otherID == id {
			continue
		}
		other := r.arena.Get(otherID)
		if other != nil && overlaps(self, other) {
			return true
		}
	}
	return false
}

// Check returns the reactions of id's collider once if it overlaps anything,
// nil otherwise.
func (r *Registry) Check(id EntityID) []Reaction {
	if !r.Colliding(id) {
		return nil
	}
	return r.colliders[id].Reactions
}

// overlaps dispatches on the shape pair. Two circles never overlap: only one
// circular object exists per World.
func overlaps(a, b *Object) bool {
	switch {
	case a.Shape == ShapeCircle && b.Shape == ShapeRect:
		return CircleOverlapsRect(a.Circle(), b.Bounds())
	case a.Shape == ShapeRect && b.Shape == ShapeCircle:
		return RectOverlapsCircle(a.Bounds(), b.Circle())
	case a.Shape == ShapeRect && b.Shape == ShapeRect:
		return RectsOverlap(a.Bounds(), b.Bounds())
	}
	return false
}
