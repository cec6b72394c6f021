// Profiling:
// go build ./profile/systems
// go tool pprof -http=":8000" -nodefraction=0.001 ./systems cpu.pprof

package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

var (
	pos = depot.FactoryNewComponent[position]()
	vel = depot.FactoryNewComponent[velocity]()
)

type moveSystem struct {
	depot.SystemBase
}

func (s *moveSystem) Run(w *depot.World) {
	for e := range s.Entities() {
		p := pos.Get(w, e)
		v := vel.Get(w, e)
		p.X += v.X
		p.Y += v.Y
	}
}

func main() {
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	w := depot.Factory.NewWorldWithConfig(
		depot.NewConfig().WithEntityCapacity(numEntities).WithComponentCapacity(numEntities),
	)
	pos.Register(w)
	vel.Register(w)
	movement := depot.FactoryNewSystem[moveSystem]()
	movement.Register(w, pos, vel)

	for i := range numEntities {
		e := w.CreateEntity()
		pos.Add(w, e, position{})
		if i%2 == 0 {
			vel.Add(w, e, velocity{X: 1, Y: 1})
		}
	}

	for range iters {
		movement.Run(w)
	}
}
