/*
Package depot provides a handle-based Entity-Component-System (ECS) for games and simulations.

Entities are records in a dense, handle-addressed store. Each component type gets its own
dense store, so all instances of a type sit next to each other in memory. Systems declare
the components they require and keep a membership list that is updated whenever an
entity's composition changes; running a system walks that list.

Core Concepts:

  - Entity: a handle plus the set of components attached to it.
  - Component: plain data, at most one of each type per entity.
  - Signature: a set of component types, either held by an entity or required by a system.
  - System: behavior run over every entity whose signature includes the required one.
  - World: the coordinator that keeps the registries consistent.

Basic Usage:

	world := depot.Factory.NewWorld()

	location := depot.FactoryNewComponent[Location]()
	velocity := depot.FactoryNewComponent[Velocity]()
	location.Register(world)
	velocity.Register(world)

	movement := depot.FactoryNewSystem[MovementSystem]()
	movement.Register(world, location, velocity)

	e := world.CreateEntity()
	location.Add(world, e, Location{})
	velocity.Add(world, e, Velocity{X: 1})

	movement.Run(world)

Every operation comes in an unchecked form, which panics when its preconditions do not
hold, and a checked form (suffix Checked) that reports failure through its result and
changes nothing.

Removing entities while a system iterates its members reorders the membership list. Either
collect the handles and remove them after the loop, or use EnqueueRemoveEntity, which
defers the removal until the system returns.

A Cursor locks the world from its first Next until Next returns false. A loop that
breaks out early must call Reset, otherwise enqueued operations stay deferred. Ranging
over Cursor.Entities releases the world on break without a Reset.
*/
package depot
