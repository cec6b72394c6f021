package depot

import (
	"reflect"
	"sync"
)

// SystemType is the runtime key of a system's static type.
type SystemType uint32

var systemCatalog = struct {
	sync.Mutex
	ids   map[reflect.Type]SystemType
	names []string
}{
	ids: make(map[reflect.Type]SystemType),
}

// SystemTypeOf returns the identifier of the system type S.
func SystemTypeOf[S any]() SystemType {
	typ := reflect.TypeFor[S]()

	systemCatalog.Lock()
	defer systemCatalog.Unlock()
	if id, ok := systemCatalog.ids[typ]; ok {
		return id
	}
	id := SystemType(len(systemCatalog.names))
	systemCatalog.ids[typ] = id
	systemCatalog.names = append(systemCatalog.names, typ.String())
	return id
}

func systemName(t SystemType) string {
	systemCatalog.Lock()
	defer systemCatalog.Unlock()
	return systemCatalog.names[t]
}

// systemPtr lets a registry construct an S while calling System methods on *S.
type systemPtr[S any] interface {
	*S
	System
}

// SystemRegistry owns one instance per registered system type and relays
// entity changes to each of them in registration order.
type SystemRegistry struct {
	systems map[SystemType]System
	order   []SystemType
}

func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{systems: make(map[SystemType]System)}
}

func (r *SystemRegistry) IsRegistered(t SystemType) bool {
	_, ok := r.systems[t]
	return ok
}

// System returns the registered instance of t, or nil.
func (r *SystemRegistry) System(t SystemType) System {
	return r.systems[t]
}

func (r *SystemRegistry) Len() int {
	return len(r.order)
}

func (r *SystemRegistry) OnEntitySignatureChanged(e *Entity, signature Signature) {
	for _, t := range r.order {
		r.systems[t].OnEntitySignatureChanged(e, signature)
	}
}

// OnEntityRemoved drops e from every membership list that holds it.
func (r *SystemRegistry) OnEntityRemoved(e *Entity) {
	for _, t := range r.order {
		r.systems[t].RemoveEntityChecked(e)
	}
}

// ClearMemberships empties every system's membership list.
func (r *SystemRegistry) ClearMemberships() {
	for _, t := range r.order {
		r.systems[t].base().clearEntities()
	}
}

// RegisterSystem constructs a fresh S requiring signature. An existing S is
// replaced, along with its membership list.
func RegisterSystem[S any, PS systemPtr[S]](r *SystemRegistry, signature Signature) PS {
	t := SystemTypeOf[S]()
	sys := PS(new(S))
	sys.base().SetSignature(signature)
	if !r.IsRegistered(t) {
		r.order = append(r.order, t)
	}
	r.systems[t] = sys
	return sys
}

func RegisterSystemChecked[S any, PS systemPtr[S]](r *SystemRegistry, signature Signature) bool {
	if r.IsRegistered(SystemTypeOf[S]()) {
		return false
	}
	RegisterSystem[S, PS](r, signature)
	return true
}

func IsSystemRegistered[S any](r *SystemRegistry) bool {
	return r.IsRegistered(SystemTypeOf[S]())
}

// GetSystem returns the registered S, or nil.
func GetSystem[S any, PS systemPtr[S]](r *SystemRegistry) PS {
	sys, ok := r.systems[SystemTypeOf[S]()]
	if !ok {
		return nil
	}
	return sys.(PS)
}

func RunSystem[S any, PS systemPtr[S]](r *SystemRegistry, w *World) {
	sys := GetSystem[S, PS](r)
	if sys == nil {
		fail(UnregisteredTypeError{Name: reflect.TypeFor[S]().String()})
	}
	sys.Run(w)
}

func RunSystemChecked[S any, PS systemPtr[S]](r *SystemRegistry, w *World) bool {
	sys := GetSystem[S, PS](r)
	if sys == nil {
		return false
	}
	sys.Run(w)
	return true
}
