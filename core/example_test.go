package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

// ExampleBuild builds a three-node line and inspects it.
func ExampleBuild() {
	g, err := core.Build([]core.Record{
		{Name: "AA", Rate: 0, Neighbors: []string{"BB"}},
		{Name: "BB", Rate: 13, Neighbors: []string{"AA", "CC"}},
		{Name: "CC", Rate: 2, Neighbors: []string{"BB"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	b, _ := g.Index("BB")
	fmt.Println("nodes:", g.Len(), "rewards:", g.RewardCount())
	fmt.Println("BB rate:", g.Rate(b), "degree:", len(g.Neighbors(b)))
	// Output:
	// nodes: 3 rewards: 2
	// BB rate: 13 degree: 2
}

// ExampleBuild_undefinedNeighbor shows how a dangling reference is reported.
func ExampleBuild_undefinedNeighbor() {
	_, err := core.Build([]core.Record{
		{Name: "AA", Neighbors: []string{"ZZ"}},
	})
	var re *core.ReferenceError
	fmt.Println(errors.As(err, &re), re.Neighbor)
	fmt.Println(errors.Is(err, core.ErrUndefinedReference))
	// Output:
	// true ZZ
	// true
}
