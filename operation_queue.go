package depot

type operationType int

const (
	opAddComponent operationType = iota
	opRemoveComponent
	opDestroy
)

func (t operationType) String() string {
	switch t {
	case opAddComponent:
		return "add component"
	case opRemoveComponent:
		return "remove component"
	case opDestroy:
		return "destroy"
	}
	return "unknown"
}

type operation struct {
	typ       operationType
	entity    EntityHandle
	component ComponentType
	// apply performs the operation through the checked interface.
	apply func(*World) bool
}

// opQueue holds operations requested while the world is locked. Operations
// address entities by handle, so an entity removed directly and recreated under
// the same handle before the queue drains receives the queued operations.
type opQueue struct {
	componentOps   []operation
	destroyOps     []EntityHandle
	pendingDestroy map[EntityHandle]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityHandle]struct{}),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) EnqueueDestroy(handles []EntityHandle) {
	for _, h := range handles {
		if _, exists := q.pendingDestroy[h]; exists {
			continue
		}
		q.pendingDestroy[h] = struct{}{}
		q.destroyOps = append(q.destroyOps, h)
	}
}

// EnqueueComponentOp queues op unless its entity is already pending
// destruction.
func (q *opQueue) EnqueueComponentOp(op operation) {
	if _, isDestroyed := q.pendingDestroy[op.entity]; isDestroyed {
		return
	}
	q.componentOps = append(q.componentOps, op)
}

// processOperationQueue applies component operations first, then removals.
// Component operations on entities destroyed in the same batch are dropped.
func (w *World) processOperationQueue() {
	for !w.opQueue.empty() {
		componentOps := w.opQueue.componentOps
		destroyOps := w.opQueue.destroyOps
		pending := w.opQueue.pendingDestroy
		w.opQueue = newOpQueue()

		for _, op := range componentOps {
			if _, isDestroyed := pending[op.entity]; isDestroyed {
				continue
			}
			if !op.apply(w) {
				w.logger.Warn("queued operation dropped",
					"op", op.typ, "entity", op.entity, "component", componentName(op.component))
			}
		}
		for _, h := range destroyOps {
			if !w.RemoveEntityChecked(h) {
				w.logger.Warn("queued operation dropped", "op", opDestroy, "entity", h)
			}
		}
	}
}
