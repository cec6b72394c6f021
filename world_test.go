package depot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	movementSystem = FactoryNewSystem[MovementSystem]()
	damageSystem   = FactoryNewSystem[DamageSystem]()
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := Factory.NewWorld()
	for _, register := range []func(*World){
		locationComp.Register,
		movementComp.Register,
		hpComp.Register,
		damageComp.Register,
	} {
		register(w)
	}
	movementSystem.Register(w, locationComp, movementComp)
	damageSystem.Register(w, hpComp, damageComp)
	return w
}

// populate creates four combatants. Entities 0 and 1 target each other, as do
// 2 and 3.
func populate(t *testing.T, w *World) []EntityHandle {
	t.Helper()
	entities := make([]EntityHandle, 4)
	for i := range entities {
		entities[i] = w.CreateEntity()
	}
	for i, e := range entities {
		movementComp.Add(w, e, MovementComponent{
			Owner:     e,
			Speed:     float64(i + 1),
			Direction: Vector{X: 1, Y: -1, Z: 0.5},
		})
		locationComp.Add(w, e, LocationComponent{Owner: e, Location: Vector{X: float64(i)}})
		hpComp.Add(w, e, HPComponent{Owner: e, HP: 100})
		damageComp.Add(w, e, DamageComponent{Owner: e, Target: entities[i^1], Damage: 20})
	}
	return entities
}

func TestWorldEntityLifecycle(t *testing.T) {
	w := Factory.NewWorld()

	e := w.CreateEntity()
	assert.True(t, w.IsValidEntityHandle(e))
	assert.Equal(t, 1, w.EntityCount())
	assert.Equal(t, e, w.Entity(e).Handle())

	w.RemoveEntity(e)
	assert.False(t, w.IsValidEntityHandle(e))
	assert.False(t, w.RemoveEntityChecked(e))
	_, ok := w.EntityChecked(e)
	assert.False(t, ok)
	assert.Panics(t, func() { w.RemoveEntity(e) })
	assert.Panics(t, func() { w.Entity(e) })
}

func TestWorldSystemsTrackComposition(t *testing.T) {
	w := newTestWorld(t)
	entities := populate(t, w)

	movement := movementSystem.Get(w)
	damage := damageSystem.Get(w)
	require.NotNil(t, movement)
	require.NotNil(t, damage)
	assert.Equal(t, 4, movement.EntityCount())
	assert.Equal(t, 4, damage.EntityCount())

	e := entities[0]
	movementComp.Remove(w, e)
	assert.False(t, movement.HasEntity(e))
	assert.True(t, damage.HasEntity(e))
	assert.False(t, movementComp.Has(w, e))

	movementComp.Add(w, e, MovementComponent{Owner: e})
	assert.True(t, movement.HasEntity(e))

	// A component no system requires leaves memberships untouched.
	type Tag struct{}
	tag := FactoryNewComponent[Tag]()
	tag.Register(w)
	tag.Add(w, e, Tag{})
	assert.True(t, movement.HasEntity(e))
	assert.True(t, damage.HasEntity(e))
	assert.True(t, w.EntityHasComponent(e, tag))
}

func TestWorldMovementSystem(t *testing.T) {
	w := newTestWorld(t)
	entities := populate(t, w)

	before := make([]Vector, len(entities))
	for i, e := range entities {
		before[i] = locationComp.Get(w, e).Location
	}

	movementSystem.Run(w)

	for i, e := range entities {
		m := movementComp.Get(w, e)
		expected := before[i].Add(m.Direction.Scale(m.Speed))
		assert.NotEqual(t, before[i], locationComp.Get(w, e).Location)
		assert.Equal(t, expected, locationComp.Get(w, e).Location)
	}
}

func TestWorldDamageSystem(t *testing.T) {
	w := newTestWorld(t)
	entities := populate(t, w)

	damageSystem.Run(w)
	for _, e := range entities {
		hp := hpComp.Get(w, e)
		assert.Equal(t, 80, hp.HP)
		assert.False(t, hp.IsDead)
	}

	for range 4 {
		require.True(t, damageSystem.RunChecked(w))
	}

	// Every pair killed each other on the fifth run.
	assert.Equal(t, 5, damageSystem.Get(w).runs)
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, damageSystem.Get(w).EntityCount())
	assert.Equal(t, 0, movementSystem.Get(w).EntityCount())
	for _, c := range []interface{ Size() int }{
		locationComp.Store(w), movementComp.Store(w), hpComp.Store(w), damageComp.Store(w),
	} {
		assert.Equal(t, 0, c.Size())
	}
}

func TestWorldRemoveEntityCascade(t *testing.T) {
	w := newTestWorld(t)
	entities := populate(t, w)
	removed, kept := entities[1], entities[2]

	w.RemoveEntity(removed)

	assert.False(t, w.IsValidEntityHandle(removed))
	assert.False(t, movementSystem.Get(w).HasEntity(removed))
	assert.False(t, damageSystem.Get(w).HasEntity(removed))
	assert.Equal(t, 3, locationComp.Store(w).Size())
	assert.Equal(t, 3, hpComp.Store(w).Size())

	for hp := range hpComp.Store(w).Values() {
		assert.NotEqual(t, removed, hp.Owner)
	}
	assert.Equal(t, kept, hpComp.Get(w, kept).Owner)
	assert.Equal(t, entities[3], damageComp.Get(w, kept).Target)

	// The freed handle is reused without inheriting anything.
	reused := w.CreateEntity()
	assert.Equal(t, removed, reused)
	assert.Equal(t, 0, w.Entity(reused).ComponentCount())
	assert.False(t, movementSystem.Get(w).HasEntity(reused))
}

func TestWorldRemoveAllEntities(t *testing.T) {
	w := newTestWorld(t)
	populate(t, w)

	w.RemoveAllEntities()
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, hpComp.Store(w).Size())
	assert.Equal(t, 0, damageSystem.Get(w).EntityCount())
	assert.True(t, hpComp.IsRegistered(w))
	assert.True(t, damageSystem.IsRegistered(w))

	populate(t, w)
	assert.Equal(t, 4, damageSystem.Get(w).EntityCount())
}

func TestWorldCheckedComponentOps(t *testing.T) {
	w := Factory.NewWorld()
	e := w.CreateEntity()

	assert.False(t, hpComp.AddChecked(w, e, HPComponent{HP: 5}), "unregistered")
	assert.False(t, hpComp.HasChecked(w, e))
	assert.False(t, w.EntityHasComponentChecked(e, hpComp))
	assert.Panics(t, func() { hpComp.Add(w, e, HPComponent{}) })

	assert.True(t, hpComp.RegisterChecked(w))
	assert.False(t, hpComp.RegisterChecked(w))

	assert.True(t, hpComp.AddChecked(w, e, HPComponent{Owner: e, HP: 5}))
	assert.False(t, hpComp.AddChecked(w, e, HPComponent{Owner: e, HP: 99}))
	assert.Equal(t, 5, hpComp.Get(w, e).HP)
	assert.True(t, hpComp.HasChecked(w, e))
	assert.True(t, hpComp.Has(w, e))

	assert.True(t, hpComp.RemoveChecked(w, e))
	assert.False(t, hpComp.RemoveChecked(w, e))
	_, ok := hpComp.GetChecked(w, e)
	assert.False(t, ok)
	assert.Panics(t, func() { hpComp.Remove(w, e) })

	w.RemoveEntity(e)
	assert.False(t, hpComp.AddChecked(w, e, HPComponent{}), "dead entity")
	assert.False(t, hpComp.RemoveChecked(w, e))
	assert.False(t, hpComp.HasChecked(w, e))
	assert.False(t, w.EntityHasComponentChecked(e, hpComp))
	_, ok = hpComp.GetChecked(w, e)
	assert.False(t, ok)
}

func TestWorldSystemRegistration(t *testing.T) {
	w := Factory.NewWorld()
	locationComp.Register(w)
	movementComp.Register(w)

	assert.False(t, movementSystem.RunChecked(w))
	assert.Panics(t, func() { movementSystem.Run(w) })
	assert.Nil(t, movementSystem.Get(w))

	// Existing entities are matched on registration.
	e := w.CreateEntity()
	locationComp.Add(w, e, LocationComponent{Owner: e})
	movementComp.Add(w, e, MovementComponent{Owner: e, Speed: 1})

	assert.True(t, movementSystem.RegisterChecked(w, locationComp, movementComp))
	assert.False(t, movementSystem.RegisterChecked(w, locationComp, movementComp))
	assert.True(t, movementSystem.Get(w).HasEntity(e))
	assert.True(t, movementSystem.RunChecked(w))

	replaced := movementSystem.Register(w, locationComp)
	assert.Same(t, replaced, movementSystem.Get(w))
	assert.True(t, replaced.HasEntity(e))
	assert.Equal(t, 1, w.Systems().Len())
}

func TestWorldLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := Factory.NewWorldWithConfig(NewConfig().WithLogger(logger).WithEntityCapacity(8))

	hpComp.Register(w)
	hpComp.Register(w)
	e := w.CreateEntity()
	w.RemoveEntity(e)

	out := buf.String()
	assert.Contains(t, out, "component registered")
	assert.Contains(t, out, "component store replaced")
	assert.Contains(t, out, "entity removed")
}

func TestWorldReRegisterClearsEntities(t *testing.T) {
	w := newTestWorld(t)
	e1 := w.CreateEntity()
	hpComp.Add(w, e1, HPComponent{Owner: e1, HP: 1})
	damageComp.Add(w, e1, DamageComponent{Owner: e1})
	require.True(t, damageSystem.Get(w).HasEntity(e1))

	hpComp.Register(w)
	assert.False(t, hpComp.Has(w, e1))
	assert.False(t, damageSystem.Get(w).HasEntity(e1))
	assert.True(t, damageComp.Has(w, e1))

	// The fresh store reissues handle 0 to e2; e1 must not reach it.
	e2 := w.CreateEntity()
	hpComp.Add(w, e2, HPComponent{Owner: e2, HP: 2})

	_, ok := hpComp.GetChecked(w, e1)
	assert.False(t, ok)
	assert.False(t, hpComp.RemoveChecked(w, e1))
	assert.True(t, hpComp.Has(w, e2))
	assert.Equal(t, 2, hpComp.Get(w, e2).HP)
	assert.Equal(t, 1, hpComp.Store(w).Size())

	assert.True(t, hpComp.AddChecked(w, e1, HPComponent{Owner: e1, HP: 3}))
	assert.True(t, damageSystem.Get(w).HasEntity(e1))
	assert.Equal(t, 2, hpComp.Get(w, e2).HP)
}
