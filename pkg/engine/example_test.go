package engine_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/topic"
)

func ExampleEngine_Update() {
	e := engine.New(engine.WithLogger(log.New(io.Discard)))
	ctx := context.Background()
	vp := engine.Viewport{Width: 1400, Height: 900}

	topics := []topic.Topic{{ID: "t1", Label: "TravelPlan", Keyphrases: []string{"Erhai", "Dali"}}}
	first, _ := e.Update(ctx, topics, vp)

	topics = append(topics, topic.Topic{ID: "t2", Label: "BudgetPlan"})
	second, _ := e.Update(ctx, topics, vp)

	fmt.Println(first.Scatter["t1"] == second.Scatter["t1"])
	fmt.Println(second.Stats.Kept, second.Stats.Created)
	fmt.Println(second.Colors["t2"])
	// Output:
	// true
	// 1 1
	// rgba(255, 255, 255, 0.8)
}
