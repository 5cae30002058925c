package metrics

import (
	"math"
	"testing"

	"github.com/mverbeek/transgraph/internal/graph"
)

const tolerance = 1e-9

func mkGraph(directed bool, nodeIDs []string, edges [][2]string) *graph.Graph {
	g := &graph.Graph{Directed: directed}
	for _, id := range nodeIDs {
		g.Nodes = append(g.Nodes, &graph.Node{ID: id, Name: id, Group: "authorName"})
	}
	for _, e := range edges {
		g.Edges = append(g.Edges, &graph.Edge{
			Source: e[0], Target: e[1], Type: graph.EdgeCustom, Weight: 1,
		})
	}
	return g
}

func node(t *testing.T, g *graph.Graph, id string) *graph.Node {
	t.Helper()
	n := g.NodeByID(id)
	if n == nil {
		t.Fatalf("node %q not found", id)
	}
	return n
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < tolerance
}

// A - B - C
func pathGraph() *graph.Graph {
	return mkGraph(false,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
}

// A -> B -> C
func chainGraph() *graph.Graph {
	return mkGraph(true,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
}

func TestDegreesUndirected(t *testing.T) {
	g := pathGraph()
	Degrees(g)

	want := map[string]int{"A": 1, "B": 2, "C": 1}
	for id, deg := range want {
		n := node(t, g, id)
		if n.Degree != deg || n.InDegree != deg || n.OutDegree != deg {
			t.Errorf("%s: degree = %d/%d/%d, want all %d",
				id, n.Degree, n.InDegree, n.OutDegree, deg)
		}
	}
}

func TestDegreesDirected(t *testing.T) {
	g := chainGraph()
	Degrees(g)

	checks := []struct {
		id           string
		in, out, all int
	}{
		{"A", 0, 1, 1},
		{"B", 1, 1, 2},
		{"C", 1, 0, 1},
	}
	for _, c := range checks {
		n := node(t, g, c.id)
		if n.InDegree != c.in || n.OutDegree != c.out || n.Degree != c.all {
			t.Errorf("%s: got %d/%d/%d, want in=%d out=%d degree=%d",
				c.id, n.InDegree, n.OutDegree, n.Degree, c.in, c.out, c.all)
		}
	}
}

func TestClosenessUndirected(t *testing.T) {
	g := pathGraph()
	Closeness(g)

	// A reaches B at 1, C at 2: 2/3. B reaches both at 1: 2/2.
	if n := node(t, g, "A"); !approx(n.Closeness, 2.0/3.0) {
		t.Errorf("A closeness = %v, want 2/3", n.Closeness)
	}
	if n := node(t, g, "B"); !approx(n.Closeness, 1.0) {
		t.Errorf("B closeness = %v, want 1", n.Closeness)
	}
	if n := node(t, g, "C"); !approx(n.Closeness, 2.0/3.0) {
		t.Errorf("C closeness = %v, want 2/3", n.Closeness)
	}
}

func TestClosenessDirected(t *testing.T) {
	g := chainGraph()
	Closeness(g)

	if n := node(t, g, "A"); !approx(n.Closeness, 2.0/3.0) {
		t.Errorf("A closeness = %v, want 2/3", n.Closeness)
	}
	if n := node(t, g, "B"); !approx(n.Closeness, 1.0) {
		t.Errorf("B closeness = %v, want 1", n.Closeness)
	}
	// C reaches nothing.
	if n := node(t, g, "C"); n.Closeness != 0 {
		t.Errorf("C closeness = %v, want 0", n.Closeness)
	}
}

func TestClosenessDisconnected(t *testing.T) {
	g := mkGraph(false,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}},
	)
	Closeness(g)

	// A reaches only B at distance 1: closeness 1 within its component.
	if n := node(t, g, "A"); !approx(n.Closeness, 1.0) {
		t.Errorf("A closeness = %v, want 1", n.Closeness)
	}
	if n := node(t, g, "C"); n.Closeness != 0 {
		t.Errorf("isolated C closeness = %v, want 0", n.Closeness)
	}
}

func TestBetweennessPath(t *testing.T) {
	g := pathGraph()
	Betweenness(g)

	// B sits on the A-C shortest path, counted from both sources.
	if n := node(t, g, "B"); !approx(n.Betweenness, 2.0) {
		t.Errorf("B betweenness = %v, want 2", n.Betweenness)
	}
	if n := node(t, g, "A"); n.Betweenness != 0 {
		t.Errorf("A betweenness = %v, want 0", n.Betweenness)
	}
}

func TestBetweennessDirectedChain(t *testing.T) {
	g := chainGraph()
	Betweenness(g)

	// Only the A->C path crosses B.
	if n := node(t, g, "B"); !approx(n.Betweenness, 1.0) {
		t.Errorf("B betweenness = %v, want 1", n.Betweenness)
	}
}

func TestBetweennessTieSplitting(t *testing.T) {
	// Diamond: A-B-D and A-C-D are equal-length paths, so B and C each
	// carry half the A-D dependency from each endpoint.
	g := mkGraph(false,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
	)
	Betweenness(g)

	for _, id := range []string{"A", "B", "C", "D"} {
		if n := node(t, g, id); !approx(n.Betweenness, 1.0) {
			t.Errorf("%s betweenness = %v, want 1", id, n.Betweenness)
		}
	}
}

func TestPageRankConservation(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"undirected path": pathGraph(),
		"directed chain with sink": chainGraph(),
		"with isolate": mkGraph(false,
			[]string{"A", "B", "C"},
			[][2]string{{"A", "B"}},
		),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			PageRank(g)
			sum := 0.0
			for _, n := range g.Nodes {
				if n.PageRank <= 0 {
					t.Errorf("%s pagerank = %v, want > 0", n.ID, n.PageRank)
				}
				sum += n.PageRank
			}
			if math.Abs(sum-1.0) > 1e-6 {
				t.Errorf("pagerank sum = %v, want 1", sum)
			}
		})
	}
}

func TestPageRankOrdering(t *testing.T) {
	g := pathGraph()
	PageRank(g)

	b := node(t, g, "B")
	a := node(t, g, "A")
	c := node(t, g, "C")
	if b.PageRank <= a.PageRank || b.PageRank <= c.PageRank {
		t.Errorf("center should outrank leaves: A=%v B=%v C=%v",
			a.PageRank, b.PageRank, c.PageRank)
	}
	if !approx(a.PageRank, c.PageRank) {
		t.Errorf("symmetric leaves should tie: A=%v C=%v", a.PageRank, c.PageRank)
	}
}

func TestGraphStats(t *testing.T) {
	t.Run("undirected path", func(t *testing.T) {
		s := GraphStats(pathGraph())
		if s.NodeCount != 3 || s.EdgeCount != 2 {
			t.Errorf("counts = %d/%d, want 3/2", s.NodeCount, s.EdgeCount)
		}
		if !approx(s.Density, 2.0*2/(3*2)) {
			t.Errorf("density = %v, want 2/3", s.Density)
		}
		if !approx(s.AvgDegree, 4.0/3.0) {
			t.Errorf("avgDegree = %v, want 4/3", s.AvgDegree)
		}
	})

	t.Run("directed chain", func(t *testing.T) {
		s := GraphStats(chainGraph())
		if !approx(s.Density, 2.0/6.0) {
			t.Errorf("density = %v, want 1/3", s.Density)
		}
		if !approx(s.AvgDegree, 4.0/3.0) {
			t.Errorf("avgDegree = %v, want 4/3", s.AvgDegree)
		}
	})

	t.Run("empty graph", func(t *testing.T) {
		s := GraphStats(&graph.Graph{})
		if s.Density != 0 || s.AvgDegree != 0 {
			t.Errorf("empty graph stats = %+v, want zeros", s)
		}
	})

	t.Run("single node", func(t *testing.T) {
		s := GraphStats(mkGraph(false, []string{"A"}, nil))
		if s.Density != 0 || s.AvgDegree != 0 {
			t.Errorf("single-node stats = %+v, want zero density and degree", s)
		}
	})
}

func TestComputeDegenerate(t *testing.T) {
	for _, g := range []*graph.Graph{
		{},
		mkGraph(false, []string{"A"}, nil),
		mkGraph(true, []string{"A", "B"}, nil),
	} {
		Compute(g)
		for _, n := range g.Nodes {
			for _, v := range []float64{n.Closeness, n.Betweenness, n.PageRank} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("degenerate graph produced NaN/Inf on %s: %+v", n.ID, n)
				}
			}
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	g := pathGraph()
	Compute(g)
	first := make([]graph.Node, len(g.Nodes))
	for i, n := range g.Nodes {
		first[i] = *n
	}

	Compute(g)
	for i, n := range g.Nodes {
		if *n != first[i] {
			t.Errorf("second Compute changed %s: %+v vs %+v", n.ID, *n, first[i])
		}
	}
}
