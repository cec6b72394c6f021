package depot

import "iter"

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(signature Signature) bool
}

type iCursor interface {
	Entities() iter.Seq2[int, EntityHandle]
	Next() bool
}

// Cursor walks the entities of a World matching a query.
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The world to iterate over
	world *World

	// Current iteration state
	matched     []EntityHandle
	entityIndex int

	initialized bool
}
