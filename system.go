package depot

import (
	"iter"

	"github.com/TheBitDrifter/depot/packed"
)

// System is a unit of behavior run once per step over the entities whose
// signature includes the system's required signature. Concrete systems embed
// SystemBase and implement Run.
type System interface {
	Run(w *World)

	Signature() Signature
	Entities() iter.Seq[EntityHandle]
	OnEntitySignatureChanged(e *Entity, signature Signature)
	RemoveEntityChecked(e *Entity) bool

	base() *SystemBase
}

// SystemBase tracks a system's required signature and its members.
type SystemBase struct {
	signature Signature
	entities  packed.PackedArray[EntityHandle]
	members   map[EntityHandle]packed.Handle
}

func (s *SystemBase) base() *SystemBase {
	return s
}

func (s *SystemBase) Signature() Signature {
	return s.signature
}

// SetSignature sets the required signature. The registry calls it once, before
// the system sees any entity.
func (s *SystemBase) SetSignature(signature Signature) {
	s.signature = signature
}

// Entities yields the current members. Removing members while ranging may skip
// or repeat entities; collect handles first and mutate afterwards.
func (s *SystemBase) Entities() iter.Seq[EntityHandle] {
	return func(yield func(EntityHandle) bool) {
		for e := range s.entities.Values() {
			if !yield(*e) {
				return
			}
		}
	}
}

func (s *SystemBase) EntityCount() int {
	return s.entities.Size()
}

func (s *SystemBase) HasEntity(handle EntityHandle) bool {
	_, ok := s.members[handle]
	return ok
}

func (s *SystemBase) AddEntity(e *Entity) {
	if s.HasEntity(e.Handle()) {
		fail(MembershipError{Entity: e.Handle(), Present: true})
	}
	if s.members == nil {
		s.members = make(map[EntityHandle]packed.Handle)
	}
	s.members[e.Handle()] = s.entities.Add(e.Handle())
}

func (s *SystemBase) RemoveEntity(e *Entity) {
	membership, ok := s.members[e.Handle()]
	if !ok {
		fail(MembershipError{Entity: e.Handle()})
	}
	s.entities.Remove(membership)
	delete(s.members, e.Handle())
}

func (s *SystemBase) AddEntityChecked(e *Entity) bool {
	if s.HasEntity(e.Handle()) {
		return false
	}
	s.AddEntity(e)
	return true
}

func (s *SystemBase) RemoveEntityChecked(e *Entity) bool {
	if !s.HasEntity(e.Handle()) {
		return false
	}
	s.RemoveEntity(e)
	return true
}

// OnEntitySignatureChanged adds e when signature includes the required
// signature and drops it otherwise. Repeated calls without a change in the
// match are no-ops.
func (s *SystemBase) OnEntitySignatureChanged(e *Entity, signature Signature) {
	if signature.Includes(s.signature) {
		s.AddEntityChecked(e)
	} else {
		s.RemoveEntityChecked(e)
	}
}

func (s *SystemBase) clearEntities() {
	s.entities.Clear()
	clear(s.members)
}
