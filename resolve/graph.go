package resolve

// Graph tracks which modules reference which and produces a
// deterministic order in which they can be processed, dependencies
// first.
type Graph struct {
	root  string
	nodes map[string]*node
	names []string
}

type node struct {
	name string
	deps []string
}

// NewGraph creates a graph rooted at the entry module.
func NewGraph(root string) *Graph {
	g := &Graph{
		root:  root,
		nodes: make(map[string]*node),
	}
	g.node(root)
	return g
}

func (g *Graph) node(name string) *node {
	n, ok := g.nodes[name]
	if !ok {
		n = &node{name: name}
		g.nodes[name] = n
		g.names = append(g.names, name)
	}
	return n
}

// Add records that dependant references dependency.
func (g *Graph) Add(dependency, dependant string) {
	n := g.node(dependant)
	g.node(dependency)

	for _, dep := range n.deps {
		if dep == dependency {
			return
		}
	}

	n.deps = append(n.deps, dependency)
}

// Resolve returns the module names ordered so that every module comes
// after all its dependencies. Dependencies are visited in the order
// their references appear, so the result is stable across runs.
func (g *Graph) Resolve() ([]string, error) {
	ctx := &resolutionCtx{
		graph:   g,
		done:    make(map[string]bool),
		onStack: make(map[string]bool),
	}

	if err := ctx.visit(g.root); err != nil {
		return nil, err
	}

	// modules not reachable from the root, if any, keep their
	// discovery order
	for _, name := range g.names {
		if err := ctx.visit(name); err != nil {
			return nil, err
		}
	}

	return ctx.order, nil
}

type resolutionCtx struct {
	graph   *Graph
	done    map[string]bool
	stack   []string
	onStack map[string]bool
	order   []string
}

func (c *resolutionCtx) visit(name string) error {
	if c.done[name] {
		return nil
	}

	if c.onStack[name] {
		var start int
		for i, n := range c.stack {
			if n == name {
				start = i
				break
			}
		}

		cycle := append([]string{}, c.stack[start:]...)
		return &CircularImportError{Cycle: append(cycle, name)}
	}

	c.stack = append(c.stack, name)
	c.onStack[name] = true

	for _, dep := range c.graph.nodes[name].deps {
		if err := c.visit(dep); err != nil {
			return err
		}
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.onStack[name] = false
	c.done[name] = true
	c.order = append(c.order, name)
	return nil
}
