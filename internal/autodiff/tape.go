package autodiff

// TopoOrder returns the nodes reachable from root in topological order.
//
// The order is a depth-first post-order: the operands of a node are visited
// first, in operand order, and the node is appended after them. Every node
// therefore appears after all of its operands, and root is last. Shared
// operands are visited once; identity is the node index, not its value.
//
// Algorithm:
//  1. Push root onto an explicit stack with its next-operand cursor at 0
//  2. While the top has an unvisited operand left, push that operand
//  3. Otherwise pop the top and append it to the order
//
// The walk keeps its own stack, so chain length is not limited by goroutine
// stack depth.
func (g *Graph) TopoOrder(root Value) []Value {
	ids := g.topoIDs(root)
	order := make([]Value, len(ids))
	for i, id := range ids {
		order[i] = g.handle(id)
	}
	return order
}

// frame is one pending node of the depth-first walk.
type frame struct {
	id   int
	next int // index of the next operand to visit
}

// topoIDs is TopoOrder over raw node ids.
func (g *Graph) topoIDs(root Value) []int {
	root.check()
	if root.graph != g {
		fault(ErrGraphMismatch, "root node %d belongs to another graph", root.id)
	}

	visited := make([]bool, len(g.data))
	order := make([]int, 0, root.id+1)
	stack := []frame{{id: root.id}}
	visited[root.id] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := g.ops[top.id].Operands()

		pushed := false
		for top.next < len(operands) {
			child := operands[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
				pushed = true
				break
			}
		}
		if pushed {
			continue
		}

		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}
