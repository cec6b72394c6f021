package depot

import (
	"reflect"

	"github.com/TheBitDrifter/depot/packed"
)

// ComponentRegistry holds one ObjectStore per registered component type.
//
// Typed operations are package-level functions because Go methods cannot take
// type parameters.
type ComponentRegistry struct {
	stores   map[ComponentType]packed.AnyObjectStore
	capacity int
}

func NewComponentRegistry(capacity int) *ComponentRegistry {
	return &ComponentRegistry{
		stores:   make(map[ComponentType]packed.AnyObjectStore),
		capacity: capacity,
	}
}

func (r *ComponentRegistry) IsRegistered(t ComponentType) bool {
	_, ok := r.stores[t]
	return ok
}

// OnEntityRemoved erases every component recorded on e from its store. Missing
// stores or handles are tolerated.
func (r *ComponentRegistry) OnEntityRemoved(e *Entity) {
	for info := range e.Components() {
		if store, ok := r.stores[info.Type]; ok {
			store.RemoveObjectChecked(info.Handle)
		}
	}
}

// Clear empties every store while keeping the registrations.
func (r *ComponentRegistry) Clear() {
	for _, store := range r.stores {
		store.Clear()
	}
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.stores)
}

// RegisterComponent creates an empty store for T, discarding any existing store
// and the components in it. Entity records still listing a T are not touched
// here; re-register through AccessibleComponent.Register to have them cleared.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.stores[ComponentTypeOf[T]()] = packed.NewObjectStore[T](r.capacity)
}

// RegisterComponentChecked registers T unless it is already registered.
func RegisterComponentChecked[T any](r *ComponentRegistry) bool {
	if IsComponentRegistered[T](r) {
		return false
	}
	RegisterComponent[T](r)
	return true
}

func IsComponentRegistered[T any](r *ComponentRegistry) bool {
	return r.IsRegistered(ComponentTypeOf[T]())
}

// AddComponent stores component and records it on e. T must be registered and
// e must not already carry a T.
func AddComponent[T any](r *ComponentRegistry, e *Entity, component T) {
	t := ComponentTypeOf[T]()
	if e.HasComponent(t) {
		fail(ComponentExistsError{Entity: e.Handle(), Component: t})
	}
	handle := mustStore[T](r, t).AddObject(component)
	e.AddComponent(ComponentInfo{Type: t, Handle: handle})
}

// AddComponentChecked reports false when T is unregistered or e already
// carries a T.
func AddComponentChecked[T any](r *ComponentRegistry, e *Entity, component T) bool {
	t := ComponentTypeOf[T]()
	store, ok := storeFor[T](r, t)
	if !ok || e.HasComponent(t) {
		return false
	}
	e.AddComponent(ComponentInfo{Type: t, Handle: store.AddObject(component)})
	return true
}

func RemoveComponent[T any](r *ComponentRegistry, e *Entity) {
	t := ComponentTypeOf[T]()
	store := mustStore[T](r, t)
	store.RemoveObject(e.ComponentHandle(t))
	e.RemoveComponent(t)
}

func RemoveComponentChecked[T any](r *ComponentRegistry, e *Entity) bool {
	t := ComponentTypeOf[T]()
	store, ok := storeFor[T](r, t)
	if !ok {
		return false
	}
	handle, ok := e.ComponentHandleChecked(t)
	if !ok {
		return false
	}
	if !store.RemoveObjectChecked(handle) {
		return false
	}
	e.RemoveComponent(t)
	return true
}

// GetComponent returns a pointer to e's T. The pointer is invalidated by the
// next insertion into or removal from T's store.
func GetComponent[T any](r *ComponentRegistry, e *Entity) *T {
	t := ComponentTypeOf[T]()
	return mustStore[T](r, t).GetObject(e.ComponentHandle(t))
}

func GetComponentChecked[T any](r *ComponentRegistry, e *Entity) (*T, bool) {
	t := ComponentTypeOf[T]()
	store, ok := storeFor[T](r, t)
	if !ok {
		return nil, false
	}
	handle, ok := e.ComponentHandleChecked(t)
	if !ok {
		return nil, false
	}
	return store.GetObjectChecked(handle)
}

// ComponentsByType returns the store holding every live T, or nil if T is not
// registered. Re-registering T detaches the returned store from the registry.
func ComponentsByType[T any](r *ComponentRegistry) *packed.ObjectStore[T] {
	store, _ := storeFor[T](r, ComponentTypeOf[T]())
	return store
}

func storeFor[T any](r *ComponentRegistry, t ComponentType) (*packed.ObjectStore[T], bool) {
	store, ok := r.stores[t]
	if !ok {
		return nil, false
	}
	return store.(*packed.ObjectStore[T]), true
}

func mustStore[T any](r *ComponentRegistry, t ComponentType) *packed.ObjectStore[T] {
	store, ok := storeFor[T](r, t)
	if !ok {
		fail(UnregisteredTypeError{Name: reflect.TypeFor[T]().String()})
	}
	return store
}
