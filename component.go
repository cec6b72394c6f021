package depot

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// Component represents a data attribute/state that can be attached to entities
// Components can be used to build signatures and queries
type Component interface {
	table.ElementType
}

// ComponentType is the runtime key of a component's static type. It is unique
// within the process but not stable across processes.
type ComponentType uint32

// ComponentInfo links an entity to one of its components.
type ComponentInfo struct {
	Type   ComponentType
	Handle ComponentHandle
}

// catalog maps Go types to element types and the row index the shared schema
// assigns them; that row index doubles as the ComponentType and the signature
// bit.
var catalog = struct {
	sync.Mutex
	schema   table.Schema
	elements map[reflect.Type]Component
	names    map[ComponentType]string
}{
	schema:   table.Factory.NewSchema(),
	elements: make(map[reflect.Type]Component),
	names:    make(map[ComponentType]string),
}

// ComponentTypeOf returns the identifier of T.
func ComponentTypeOf[T any]() ComponentType {
	return ComponentTypeFor(elementFor[T]())
}

// ComponentTypeFor returns the identifier of the component described by c.
func ComponentTypeFor(c Component) ComponentType {
	catalog.Lock()
	defer catalog.Unlock()
	catalog.schema.Register(c)
	return ComponentType(catalog.schema.RowIndexFor(c))
}

func elementFor[T any]() Component {
	typ := reflect.TypeFor[T]()

	catalog.Lock()
	defer catalog.Unlock()
	if elem, ok := catalog.elements[typ]; ok {
		return elem
	}
	elem := table.FactoryNewElementType[T]()
	catalog.elements[typ] = elem
	catalog.schema.Register(elem)
	catalog.names[ComponentType(catalog.schema.RowIndexFor(elem))] = typ.String()
	return elem
}

func componentName(t ComponentType) string {
	catalog.Lock()
	defer catalog.Unlock()
	if name, ok := catalog.names[t]; ok {
		return name
	}
	return fmt.Sprintf("#%d", t)
}
