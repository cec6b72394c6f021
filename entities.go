package depot

import (
	"iter"

	"github.com/TheBitDrifter/depot/packed"
)

// EntityRegistry owns entity identity and the entity records themselves. It
// knows nothing about component stores or systems; the World coordinates
// cleanup across registries.
type EntityRegistry struct {
	entities *packed.ObjectStore[Entity]
}

func NewEntityRegistry(capacity int) *EntityRegistry {
	return &EntityRegistry{entities: packed.NewObjectStore[Entity](capacity)}
}

// CreateEntity stores a new record whose own handle matches the handle it is
// stored under.
func (r *EntityRegistry) CreateEntity() EntityHandle {
	return r.entities.CreateObjectWithHandle(newEntity)
}

// RemoveEntity destroys the record. Components and memberships must already
// have been released by the caller.
func (r *EntityRegistry) RemoveEntity(handle EntityHandle) {
	if !r.entities.IsValidHandle(handle) {
		fail(InvalidEntityError{Entity: handle})
	}
	r.entities.RemoveObject(handle)
}

func (r *EntityRegistry) RemoveEntityChecked(handle EntityHandle) bool {
	return r.entities.RemoveObjectChecked(handle)
}

// Entity returns the record for handle. The pointer is invalidated by the next
// CreateEntity or removal.
func (r *EntityRegistry) Entity(handle EntityHandle) *Entity {
	e, ok := r.entities.GetObjectChecked(handle)
	if !ok {
		fail(InvalidEntityError{Entity: handle})
	}
	return e
}

func (r *EntityRegistry) EntityChecked(handle EntityHandle) (*Entity, bool) {
	return r.entities.GetObjectChecked(handle)
}

func (r *EntityRegistry) IsValidEntityHandle(handle EntityHandle) bool {
	return r.entities.IsValidHandle(handle)
}

func (r *EntityRegistry) RemoveAllEntities() {
	r.entities.Clear()
}

func (r *EntityRegistry) Size() int {
	return r.entities.Size()
}

// All yields every live entity record.
func (r *EntityRegistry) All() iter.Seq[*Entity] {
	return r.entities.Values()
}
