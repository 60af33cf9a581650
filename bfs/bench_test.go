package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/molkit/bfs"
	"github.com/katalvlaran/molkit/builder"
	"github.com/katalvlaran/molkit/molecule"
)

// BenchmarkBFS_Chain measures BFS on a linear chain molecule of N+1 atoms.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	m, err := builder.Build([]molecule.Option{molecule.WithCapacity(N+1, N)}, nil, builder.Chain(N+1))
	if err != nil {
		b.Fatal(err)
	}
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² atoms, 2*M*(M−1) bonds).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	V := M * M
	E := 2 * M * (M - 1)

	m, err := builder.Build([]molecule.Option{molecule.WithCapacity(V, E)}, nil, builder.Grid(M, M))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, 0)
	}
}

// BenchmarkComponents_Fragments measures fragment detection on a molecule
// made of many small disjoint rings.
func BenchmarkComponents_Fragments(b *testing.B) {
	const rings = 500
	cons := make([]builder.Constructor, rings)
	for i := range cons {
		cons[i] = builder.Ring(6)
	}
	m, err := builder.Build(nil, nil, cons...)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(m.AtomCount() + m.BondCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(m)
	}
}

// BenchmarkComponents_RandomSparse measures exact fragment detection on a
// sparse random graph.
func BenchmarkComponents_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := make(adjacency, V)
	for k := 0; k < E; k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u != v {
			g.link(u, v)
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}

// BenchmarkBFS_HookOverhead compares BFS with and without an expensive OnVisit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	const N = 1000
	g := make(adjacency, N+1)
	for i := 0; i < N; i++ {
		g.link(i, i+1)
	}
	V := N + 1
	E := N

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0)
		}
	})

	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_ int, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0, bfs.WithOnVisit(heavy))
		}
	})
}
