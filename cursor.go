package depot

import "iter"

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, world *World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances to the next matching entity. The world stays locked from the
// first call until Next returns false or Reset is called, so a loop that exits
// early must call Reset or enqueued operations are never applied. Entities
// releases the world on break by itself.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.entityIndex < len(c.matched) {
		c.entityIndex++
		return true
	}
	c.Reset()
	return false
}

// Entities yields the matching entities with their position. Breaking out of
// the range releases the world.
func (c *Cursor) Entities() iter.Seq2[int, EntityHandle] {
	return func(yield func(int, EntityHandle) bool) {
		c.initialize()

		for c.entityIndex < len(c.matched) {
			c.entityIndex++
			if !yield(c.entityIndex-1, c.matched[c.entityIndex-1]) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.world.Lock()
	c.matched = c.collect()
	c.entityIndex = 0
	c.initialized = true
}

func (c *Cursor) collect() []EntityHandle {
	matched := make([]EntityHandle, 0)
	for e := range c.world.entities.All() {
		if c.query.Evaluate(e.Signature()) {
			matched = append(matched, e.Handle())
		}
	}
	return matched
}

// Reset rewinds the cursor and releases its hold on the world.
func (c *Cursor) Reset() {
	wasInitialized := c.initialized
	c.entityIndex = 0
	c.matched = nil
	c.initialized = false
	if wasInitialized {
		c.world.Unlock()
	}
}

// CurrentEntity returns the entity the last call to Next moved to.
func (c *Cursor) CurrentEntity() EntityHandle {
	return c.matched[c.entityIndex-1]
}

func (c *Cursor) RemainingMatched() int {
	return len(c.matched) - c.entityIndex
}

// TotalMatched counts the matching entities without advancing the cursor.
func (c *Cursor) TotalMatched() int {
	if c.initialized {
		return len(c.matched)
	}
	return len(c.collect())
}
