package radial_test

import (
	"fmt"

	"github.com/matzehuels/ripple/pkg/radial"
	"github.com/matzehuels/ripple/pkg/topic"
)

func ExampleLayouter_Compute() {
	l := radial.NewLayouter(radial.DefaultOptions())
	bounds := radial.DefaultOptions().Bounds(1400, 900)

	frame := l.Compute([]topic.Topic{
		{ID: "t1", Label: "TravelPlan", Keyphrases: []string{"Erhai", "Dali"}},
		{ID: "t2", Label: "BudgetPlan", Keyphrases: []string{"Costs"}},
	}, bounds)

	fmt.Println(frame.Center)
	fmt.Println(len(frame.Keywords["t1"]), len(frame.Keywords["t2"]))
	fmt.Println(frame.Cache.Misses, l.Cache().Len())
	// Output:
	// {700 450}
	// 2 1
	// 3 3
}
