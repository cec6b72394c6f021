package depot

import "github.com/TheBitDrifter/depot/packed"

// AccessibleComponent describes component type T and carries the typed World
// operations for it. Obtain one with FactoryNewComponent.
type AccessibleComponent[T any] struct {
	Component
}

// ComponentType returns the identifier of T.
func (c AccessibleComponent[T]) ComponentType() ComponentType {
	return ComponentTypeOf[T]()
}

// Register creates an empty store for T in w, discarding any existing one.
// Entities that carried a T lose it and their memberships are updated.
func (c AccessibleComponent[T]) Register(w *World) {
	if c.IsRegistered(w) {
		t := c.ComponentType()
		for e := range w.entities.All() {
			if e.HasComponent(t) {
				e.RemoveComponent(t)
				w.signatureChanged(e)
			}
		}
		w.logger.Warn("component store replaced", "component", componentName(t))
	}
	RegisterComponent[T](w.components)
	w.logger.Debug("component registered", "component", componentName(c.ComponentType()))
}

func (c AccessibleComponent[T]) RegisterChecked(w *World) bool {
	if c.IsRegistered(w) {
		return false
	}
	c.Register(w)
	return true
}

func (c AccessibleComponent[T]) IsRegistered(w *World) bool {
	return IsComponentRegistered[T](w.components)
}

// Add attaches value to the entity and updates system memberships.
func (c AccessibleComponent[T]) Add(w *World, handle EntityHandle, value T) {
	e := w.entities.Entity(handle)
	AddComponent(w.components, e, value)
	w.signatureChanged(e)
}

// AddChecked reports false, changing nothing, when the entity is dead, T is
// unregistered or the entity already carries a T.
func (c AccessibleComponent[T]) AddChecked(w *World, handle EntityHandle, value T) bool {
	e, ok := w.entities.EntityChecked(handle)
	if !ok || !AddComponentChecked(w.components, e, value) {
		return false
	}
	w.signatureChanged(e)
	return true
}

func (c AccessibleComponent[T]) Remove(w *World, handle EntityHandle) {
	e := w.entities.Entity(handle)
	RemoveComponent[T](w.components, e)
	w.signatureChanged(e)
}

func (c AccessibleComponent[T]) RemoveChecked(w *World, handle EntityHandle) bool {
	e, ok := w.entities.EntityChecked(handle)
	if !ok || !RemoveComponentChecked[T](w.components, e) {
		return false
	}
	w.signatureChanged(e)
	return true
}

// Get returns a pointer to the entity's T. The pointer is invalidated by the
// next insertion into or removal from T's store.
func (c AccessibleComponent[T]) Get(w *World, handle EntityHandle) *T {
	return GetComponent[T](w.components, w.entities.Entity(handle))
}

func (c AccessibleComponent[T]) GetChecked(w *World, handle EntityHandle) (*T, bool) {
	e, ok := w.entities.EntityChecked(handle)
	if !ok {
		return nil, false
	}
	return GetComponentChecked[T](w.components, e)
}

func (c AccessibleComponent[T]) Has(w *World, handle EntityHandle) bool {
	return w.entities.Entity(handle).HasComponent(c.ComponentType())
}

func (c AccessibleComponent[T]) HasChecked(w *World, handle EntityHandle) bool {
	e, ok := w.entities.EntityChecked(handle)
	return ok && c.IsRegistered(w) && e.HasComponent(c.ComponentType())
}

// Store returns the store holding every live T in w, or nil if T is not
// registered.
func (c AccessibleComponent[T]) Store(w *World) *packed.ObjectStore[T] {
	return ComponentsByType[T](w.components)
}

// EnqueueAdd adds value now, or once w is unlocked.
func (c AccessibleComponent[T]) EnqueueAdd(w *World, handle EntityHandle, value T) {
	if !w.Locked() {
		c.AddChecked(w, handle, value)
		return
	}
	w.opQueue.EnqueueComponentOp(operation{
		typ:       opAddComponent,
		entity:    handle,
		component: c.ComponentType(),
		apply: func(w *World) bool {
			return c.AddChecked(w, handle, value)
		},
	})
}

// EnqueueRemove removes the entity's T now, or once w is unlocked.
func (c AccessibleComponent[T]) EnqueueRemove(w *World, handle EntityHandle) {
	if !w.Locked() {
		c.RemoveChecked(w, handle)
		return
	}
	w.opQueue.EnqueueComponentOp(operation{
		typ:       opRemoveComponent,
		entity:    handle,
		component: c.ComponentType(),
		apply: func(w *World) bool {
			return c.RemoveChecked(w, handle)
		},
	})
}

// GetFromCursor returns the T of the entity at the cursor position.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return c.Get(cursor.world, cursor.CurrentEntity())
}

// GetFromCursorSafe is GetFromCursor for entities that may lack a T.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	v, ok := c.GetChecked(cursor.world, cursor.CurrentEntity())
	return ok, v
}
