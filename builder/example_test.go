package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/molkit/builder"
	"github.com/katalvlaran/molkit/molecule"
)

// ExampleBuild assembles benzene's carbon ring with alternating bond orders.
func ExampleBuild() {
	n := 0
	alternate := builder.WithOrderFn(func(_ *rand.Rand) uint8 {
		n++
		return uint8(2 - n%2)
	})
	m, err := builder.Build([]molecule.Option{molecule.WithName("benzene")}, []builder.BuilderOption{alternate}, builder.Ring(6))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Name(), m.AtomCount(), m.BondCount(), m.BondOrders())
	// Output: benzene 6 6 [1 2 1 2 1 2]
}

// ExampleBuild_fragments composes two disjoint fragments.
func ExampleBuild_fragments() {
	m, _ := builder.Build(nil, []builder.BuilderOption{builder.WithElement(8)}, builder.Chain(2), builder.Chain(2))
	fmt.Println(m.AtomCount(), m.BondCount(), m.BondPairs()[1])
	// Output: 4 2 {2 3}
}
