// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

var (
	c1 = depot.FactoryNewComponent[comp1]()
	c2 = depot.FactoryNewComponent[comp2]()
)

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := depot.Factory.NewWorldWithConfig(
			depot.NewConfig().WithEntityCapacity(numEntities).WithComponentCapacity(numEntities),
		)
		c1.Register(w)
		c2.Register(w)
		query := depot.Factory.NewQuery().And(c1, c2)

		for range iters {
			for range numEntities {
				e := w.CreateEntity()
				c1.Add(w, e, comp1{})
				c2.Add(w, e, comp2{V: 1, W: 1})
			}
			cursor := depot.Factory.NewCursor(query, w)
			for cursor.Next() {
				a := c1.GetFromCursor(cursor)
				b := c2.GetFromCursor(cursor)
				a.V += b.V
				a.W += b.W
				w.EnqueueRemoveEntity(cursor.CurrentEntity())
			}
		}
	}
}
