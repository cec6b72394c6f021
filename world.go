package depot

import (
	"log/slog"

	"github.com/TheBitDrifter/mask"
)

// World composes the entity, component and system registries and keeps them
// consistent: component changes are relayed to systems as signature changes,
// and entity removal cascades through every registry.
type World struct {
	entities   *EntityRegistry
	components *ComponentRegistry
	systems    *SystemRegistry
	logger     *slog.Logger

	holds   int
	locks   mask.Mask
	opQueue opQueue
}

func newWorld(cfg Config) *World {
	return &World{
		entities:   NewEntityRegistry(cfg.entityCapacity),
		components: NewComponentRegistry(cfg.componentCapacity),
		systems:    NewSystemRegistry(),
		logger:     cfg.loggerOrDiscard(),
		opQueue:    newOpQueue(),
	}
}

func (w *World) Entities() *EntityRegistry {
	return w.entities
}

func (w *World) Components() *ComponentRegistry {
	return w.components
}

func (w *World) Systems() *SystemRegistry {
	return w.systems
}

func (w *World) CreateEntity() EntityHandle {
	return w.entities.CreateEntity()
}

// RemoveEntity releases the entity's components, drops it from every system
// and destroys its record, in that order.
func (w *World) RemoveEntity(handle EntityHandle) {
	e := w.entities.Entity(handle)
	w.components.OnEntityRemoved(e)
	w.systems.OnEntityRemoved(e)
	w.entities.RemoveEntity(handle)
	w.logger.Debug("entity removed", "entity", handle)
}

func (w *World) RemoveEntityChecked(handle EntityHandle) bool {
	if !w.IsValidEntityHandle(handle) {
		return false
	}
	w.RemoveEntity(handle)
	return true
}

// RemoveAllEntities destroys every entity along with its components and
// memberships. Registrations are kept.
func (w *World) RemoveAllEntities() {
	w.components.Clear()
	w.systems.ClearMemberships()
	w.entities.RemoveAllEntities()
}

// Entity returns the record for handle. It panics if the handle is not live.
func (w *World) Entity(handle EntityHandle) *Entity {
	return w.entities.Entity(handle)
}

func (w *World) EntityChecked(handle EntityHandle) (*Entity, bool) {
	return w.entities.EntityChecked(handle)
}

func (w *World) IsValidEntityHandle(handle EntityHandle) bool {
	return w.entities.IsValidEntityHandle(handle)
}

func (w *World) EntityCount() int {
	return w.entities.Size()
}

func (w *World) EntityHasComponent(handle EntityHandle, c Component) bool {
	return w.Entity(handle).HasComponent(ComponentTypeFor(c))
}

// EntityHasComponentChecked is false for dead entities and unregistered
// component types.
func (w *World) EntityHasComponentChecked(handle EntityHandle, c Component) bool {
	e, ok := w.EntityChecked(handle)
	if !ok {
		return false
	}
	t := ComponentTypeFor(c)
	return w.components.IsRegistered(t) && e.HasComponent(t)
}

// Locked reports whether enqueued operations are currently being deferred.
func (w *World) Locked() bool {
	return w.holds > 0 || w.locks != mask.Mask{}
}

// Lock defers enqueued operations until the matching Unlock. Calls nest.
func (w *World) Lock() {
	w.holds++
}

// Unlock releases one Lock and drains the operation queue once nothing holds
// the world.
func (w *World) Unlock() {
	if w.holds == 0 {
		fail(LockedStorageError{})
	}
	w.holds--
	w.drain()
}

// AddLock sets a named lock bit. The world stays locked until every bit is
// removed.
func (w *World) AddLock(bit uint32) {
	w.locks.Mark(bit)
}

func (w *World) RemoveLock(bit uint32) {
	w.locks.Unmark(bit)
	w.drain()
}

// EnqueueRemoveEntity removes the entities now, or once the world is
// unlocked. Handles that are no longer live are ignored.
func (w *World) EnqueueRemoveEntity(handles ...EntityHandle) {
	if !w.Locked() {
		for _, h := range handles {
			w.RemoveEntityChecked(h)
		}
		return
	}
	w.opQueue.EnqueueDestroy(handles)
}

func (w *World) drain() {
	if w.Locked() {
		return
	}
	w.processOperationQueue()
}

// signatureChanged relays e's current signature to every system.
func (w *World) signatureChanged(e *Entity) {
	w.systems.OnEntitySignatureChanged(e, e.Signature())
}

// seed matches a newly registered system against the existing entities.
func (w *World) seed(sys System) {
	for e := range w.entities.All() {
		sys.OnEntitySignatureChanged(e, e.Signature())
	}
}
