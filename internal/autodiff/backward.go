package autodiff

// Backward computes gradients of root with respect to every node it depends on.
//
// Algorithm:
//  1. Compute the topological order of the subgraph reachable from root
//  2. Seed root's gradient with 1 (d(root)/d(root) = 1)
//  3. Walk the order in reverse, applying each node's local gradient rule once
//
// Walking in reverse guarantees that every consumer of a node has already
// added its contribution before the node propagates its own gradient, so
// shared operands receive the sum over all paths.
//
// Gradients accumulate: calling Backward twice on the same graph without
// ZeroGrad in between adds the second pass on top of the first (root itself is
// re-seeded to 1).
func (g *Graph) Backward(root Value) {
	order := g.topoIDs(root)

	g.grad[root.id] = 1

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		g.ops[id].Backward(id, g.data, g.grad)
	}
}
