package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld(NewConfig())
}

func (f factory) NewWorldWithConfig(cfg Config) *World {
	return newWorld(cfg)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

// NewCursor returns a cursor over the entities of world matching query. The
// cursor locks world while iterating; stopping a Next loop early requires a
// call to Cursor.Reset.
func (f factory) NewCursor(query QueryNode, world *World) *Cursor {
	return newCursor(query, world)
}

// FactoryNewComponent returns the descriptor of component type T. Every call
// for the same T describes the same component type.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: elementFor[T](),
	}
}

// FactoryNewSystem returns the descriptor of system type S.
func FactoryNewSystem[S any, PS systemPtr[S]]() SystemKind[S, PS] {
	return SystemKind[S, PS]{}
}
