package bench

import (
	"testing"

	"github.com/mlange-42/arche/ecs"
)

func newArcheWorld() (*ecs.World, ecs.ID, ecs.ID) {
	world := ecs.NewWorld(ecs.NewConfig().WithCapacityIncrement(1024))

	posID := ecs.ComponentID[Position](&world)
	velID := ecs.ComponentID[Velocity](&world)

	ecs.NewBuilder(&world, posID).NewBatch(nPos)
	ecs.NewBuilder(&world, posID, velID).NewBatch(nPosVel)
	return &world, posID, velID
}

func BenchmarkIterArche(b *testing.B) {
	b.StopTimer()
	world, posID, velID := newArcheWorld()

	var filter ecs.Filter = ecs.All(posID, velID)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		query := world.Query(filter)
		for query.Next() {
			pos := (*Position)(query.Get(posID))
			vel := (*Velocity)(query.Get(velID))
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkCreateRemoveArche(b *testing.B) {
	b.StopTimer()
	world, posID, velID := newArcheWorld()
	entities := make([]ecs.Entity, nPosVel)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for j := range entities {
			e := world.NewEntity()
			world.Add(e, posID, velID)
			entities[j] = e
		}
		for _, e := range entities {
			world.RemoveEntity(e)
		}
	}
}
