package exhibit

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// LayerID identifies a layer added to a Scene.
type LayerID struct {
	Z   int
	seq uint64
}

type layer struct {
	drawable Drawable
	at       Point
}

// Scene stacks drawables by depth. Lower Z is drawn first; layers with the
// same Z are drawn in the order they were added. A Scene is itself a
// Drawable, so scenes nest.
type Scene struct {
	layers *redblacktree.Tree
	seq    uint64
}

func NewScene() *Scene {
	return &Scene{layers: redblacktree.NewWith(LayerComparator)}
}

func (s *Scene) Add(z int, d Drawable, at Point) LayerID {
	s.seq++
	id := LayerID{Z: z, seq: s.seq}
	s.layers.Put(id, layer{drawable: d, at: at})

	return id
}

// Remove drops a layer. It reports whether the layer was present.
func (s *Scene) Remove(id LayerID) bool {
	if _, ok := s.layers.Get(id); !ok {
		return false
	}
	s.layers.Remove(id)

	return true
}

func (s *Scene) Len() int {
	return s.layers.Size()
}

func (s *Scene) Blit(target Target, offset Point) {
	it := s.layers.Iterator()
	for it.Next() {
		l := it.Value().(layer)
		ox, oy := int(l.at.X)+int(offset.X), int(l.at.Y)+int(offset.Y)

		p, ok := wide(ox, oy)
		if !ok {
			continue
		}
		l.drawable.Blit(target, p)
	}
}

func LayerComparator(a, b interface{}) int {
	aAsserted := a.(LayerID)
	bAsserted := b.(LayerID)

	switch {
	case aAsserted.Z > bAsserted.Z:
		return 1
	case aAsserted.Z < bAsserted.Z:
		return -1
	case aAsserted.seq > bAsserted.seq:
		return 1
	case aAsserted.seq < bAsserted.seq:
		return -1
	default:
		return 0
	}
}
