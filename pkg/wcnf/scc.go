package wcnf

// tarjanSCC computes strongly connected components of a directed graph
// on nodes 0..n-1, given by succ(node) []int. It returns, for each
// node, the id of the component it belongs to; two nodes share a
// component id iff they are mutually reachable. Components are
// computed with an explicit stack rather than recursion, since the
// implication graphs built from large hard-clause sets can be far
// deeper than Go's default goroutine stack would comfortably grow for
// a recursive DFS.
func tarjanSCC(n int, succ func(node int) []int) []int {
	const unvisited = -1
	index := make([]int, n)
	lowlink := make([]int, n)
	comp := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
		comp[i] = unvisited
	}

	var nodeStack []int // the Tarjan stack of nodes forming the current candidate SCC
	nextIndex := 0
	nextComp := 0

	type frame struct {
		node    int
		succs   []int
		nextIdx int
	}
	var callStack []frame

	for start := 0; start < n; start++ {
		if index[start] != unvisited {
			continue
		}
		callStack = append(callStack, frame{node: start, succs: succ(start)})
		index[start] = nextIndex
		lowlink[start] = nextIndex
		nextIndex++
		nodeStack = append(nodeStack, start)
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			if top.nextIdx < len(top.succs) {
				w := top.succs[top.nextIdx]
				top.nextIdx++
				if index[w] == unvisited {
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					nodeStack = append(nodeStack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w, succs: succ(w)})
				} else if onStack[w] {
					if index[w] < lowlink[top.node] {
						lowlink[top.node] = index[w]
					}
				}
				continue
			}
			// Done with top.node's successors: pop and propagate lowlink.
			v := top.node
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				for {
					w := nodeStack[len(nodeStack)-1]
					nodeStack = nodeStack[:len(nodeStack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
		}
	}
	return comp
}
