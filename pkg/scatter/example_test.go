package scatter_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/scatter"
	"github.com/matzehuels/ripple/pkg/topic"
)

func ExampleEstimateSize() {
	fmt.Println(scatter.EstimateSize("TravelPlan", []string{"Erhai", "Dali"}))
	fmt.Println(scatter.EstimateSize("", nil))
	// Output:
	// 212
	// 200
}

func ExampleController() {
	rng := rand.New(rand.NewPCG(1, 2))
	c := scatter.NewController(scatter.DefaultOptions(), rng)
	bounds := geom.Bounds{Width: 1400, Height: 740, MarginX: 40, MarginY: 40}

	first := c.Update([]topic.Topic{{ID: "t1", Label: "TravelPlan"}}, bounds)
	second := c.Update([]topic.Topic{
		{ID: "t1", Label: "TravelPlan"},
		{ID: "t2", Label: "BudgetPlan"},
	}, bounds)

	fmt.Println(first.Positions["t1"] == second.Positions["t1"])
	fmt.Println(second.Decisions["t1"], second.Decisions["t2"])
	// Output:
	// true
	// kept created
}

func ExampleRelax() {
	bounds := geom.Bounds{Width: 1400, Height: 900, MarginX: 40, MarginY: 40}
	res := scatter.Relax(map[string]geom.Circle{
		"a": {X: 600, Y: 450, Size: 200},
		"b": {X: 700, Y: 450, Size: 200},
	}, bounds, scatter.DefaultOptions())

	fmt.Println(res.Positions["a"].X, res.Positions["b"].X, res.Converged)
	// Output: 480 820 true
}
