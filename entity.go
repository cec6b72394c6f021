package depot

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/depot/packed"
	iter_util "github.com/TheBitDrifter/util/iter"
)

type (
	EntityHandle    = packed.Handle
	ComponentHandle = packed.Handle
)

// NullHandle never refers to a live entity or component.
const NullHandle = packed.NullHandle

// Entity records which component, by type and handle, is attached to an
// entity. It holds at most one component per type.
type Entity struct {
	handle     EntityHandle
	components []ComponentInfo // sorted by Type
}

func newEntity(handle EntityHandle) Entity {
	return Entity{handle: handle}
}

func (e *Entity) Handle() EntityHandle {
	return e.handle
}

// AddComponent records info on the entity. It panics if a component of the
// same type is already attached.
func (e *Entity) AddComponent(info ComponentInfo) {
	i, found := e.find(info.Type)
	if found {
		fail(ComponentExistsError{Entity: e.handle, Component: info.Type})
	}
	e.components = slices.Insert(e.components, i, info)
}

// RemoveComponent forgets the component of type t. It panics if none is
// attached.
func (e *Entity) RemoveComponent(t ComponentType) {
	i, found := e.find(t)
	if !found {
		fail(ComponentNotFoundError{Entity: e.handle, Component: t})
	}
	e.components = slices.Delete(e.components, i, i+1)
}

func (e *Entity) HasComponent(t ComponentType) bool {
	_, found := e.find(t)
	return found
}

func (e *Entity) ComponentHandle(t ComponentType) ComponentHandle {
	handle, ok := e.ComponentHandleChecked(t)
	if !ok {
		fail(ComponentNotFoundError{Entity: e.handle, Component: t})
	}
	return handle
}

func (e *Entity) ComponentHandleChecked(t ComponentType) (ComponentHandle, bool) {
	i, found := e.find(t)
	if !found {
		return NullHandle, false
	}
	return e.components[i].Handle, true
}

// Components yields the attached components ordered by type.
func (e *Entity) Components() iter.Seq[ComponentInfo] {
	return slices.Values(e.components)
}

func (e *Entity) ComponentTypes() iter.Seq[ComponentType] {
	return func(yield func(ComponentType) bool) {
		for _, info := range e.components {
			if !yield(info.Type) {
				return
			}
		}
	}
}

func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// Signature returns the set of component types currently attached.
func (e *Entity) Signature() Signature {
	return NewSignature(iter_util.Collect(e.ComponentTypes())...)
}

func (e *Entity) find(t ComponentType) (int, bool) {
	return slices.BinarySearchFunc(e.components, t, func(info ComponentInfo, t ComponentType) int {
		switch {
		case info.Type < t:
			return -1
		case info.Type > t:
			return 1
		}
		return 0
	})
}
