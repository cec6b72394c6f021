package depot

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op        Operation
	children  []QueryNode
	signature Signature
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component, children []QueryNode) *compositeNode {
	return &compositeNode{
		op:        op,
		children:  children,
		signature: SignatureOf(components...),
	}
}

func (n *compositeNode) Evaluate(signature Signature) bool {
	switch n.op {
	case OpAnd:
		if !signature.Includes(n.signature) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(signature) {
				return false
			}
		}
		return true

	case OpOr:
		if signature.Intersects(n.signature) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(signature) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(signature) {
				return false
			}
		}
		return !signature.Intersects(n.signature)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

func (q *query) node(op Operation, items []interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components, children)
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

// Evaluate applies the first node built from q.
func (q *query) Evaluate(signature Signature) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(signature)
}
