package depot

import "reflect"

// SystemKind carries the typed World operations for system type S. Obtain one
// with FactoryNewSystem.
type SystemKind[S any, PS systemPtr[S]] struct{}

func (k SystemKind[S, PS]) Type() SystemType {
	return SystemTypeOf[S]()
}

// Register constructs S requiring the given components, replacing any existing
// S, and matches it against the entities already in w.
func (k SystemKind[S, PS]) Register(w *World, components ...Component) PS {
	if k.IsRegistered(w) {
		w.logger.Warn("system replaced", "system", systemName(k.Type()))
	}
	sys := RegisterSystem[S, PS](w.systems, SignatureOf(components...))
	w.seed(sys)
	w.logger.Debug("system registered", "system", systemName(k.Type()), "signature", sys.Signature())
	return sys
}

func (k SystemKind[S, PS]) RegisterChecked(w *World, components ...Component) bool {
	if k.IsRegistered(w) {
		return false
	}
	k.Register(w, components...)
	return true
}

func (k SystemKind[S, PS]) IsRegistered(w *World) bool {
	return IsSystemRegistered[S](w.systems)
}

// Get returns the registered S, or nil.
func (k SystemKind[S, PS]) Get(w *World) PS {
	return GetSystem[S, PS](w.systems)
}

// Run invokes S once. The world is locked for the duration, so enqueued
// operations are applied after Run returns.
func (k SystemKind[S, PS]) Run(w *World) {
	sys := k.Get(w)
	if sys == nil {
		fail(UnregisteredTypeError{Name: reflect.TypeFor[S]().String()})
	}
	k.run(w, sys)
}

// RunChecked reports false without side effects if S is not registered.
func (k SystemKind[S, PS]) RunChecked(w *World) bool {
	sys := k.Get(w)
	if sys == nil {
		return false
	}
	k.run(w, sys)
	return true
}

func (k SystemKind[S, PS]) run(w *World, sys PS) {
	w.Lock()
	defer w.Unlock()
	sys.Run(w)
}
