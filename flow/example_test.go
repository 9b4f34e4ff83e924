package flow_test

import (
	"fmt"

	"github.com/katalvlaran/wallcut/core"
	"github.com/katalvlaran/wallcut/flow"
)

// ExampleMinCut runs Dinic on the classic six-vertex network.
func ExampleMinCut() {
	g := core.NewGraph(6)
	for _, a := range []struct {
		u, v core.Vertex
		c    int64
	}{
		{0, 1, 16}, {0, 2, 13}, {1, 2, 10}, {1, 3, 12}, {2, 1, 4},
		{2, 4, 14}, {3, 2, 9}, {3, 5, 20}, {4, 3, 7}, {4, 5, 4},
	} {
		_ = g.CreateEdge(a.u, a.v, a.c)
	}

	res, _ := flow.MinCut(g, 0, 5)
	fmt.Println("max flow:", res.MaxFlow)
	fmt.Println("cut:", res.Cut)

	// Output:
	// max flow: 23
	// cut: [1→3 4→3 4→5]
}

// ExampleMaxFlow shows vertex splitting: vertex 1 may carry one unit
// only, so the flow is 1 although both surrounding edges are wide.
func ExampleMaxFlow() {
	// 0 → 1in → 1out → 3, with 1in→1out capacity 1
	const in, out = 1, 2
	g := core.NewGraph(4)
	_ = g.CreateEdge(0, in, 100)
	_ = g.CreateEdge(in, out, 1)
	_ = g.CreateEdge(out, 3, 100)

	mf, _ := flow.MaxFlow(g, 0, 3)
	fmt.Println(mf)

	// Output:
	// 1
}
