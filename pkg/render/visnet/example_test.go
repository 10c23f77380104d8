package visnet_test

import (
	"fmt"

	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/graphml"
	"github.com/matzehuels/graphview/pkg/palette"
	"github.com/matzehuels/graphview/pkg/render/visnet"
)

func ExampleBuild() {
	g := graph.Build(
		[]graphml.NodeRecord{
			{ID: "n1", Attrs: map[string]string{"labels": ":Forest", "Name": "corp.example"}},
		},
		nil,
	)

	data := visnet.Build(g, palette.Assign(g.RenderedTypes(), palette.Default))
	n := data.Nodes[0]
	fmt.Println(n.Label, n.Color)
	fmt.Println(n.Title)
	// Output:
	// corp.example #4C78A8
	// corp.example
	// Type: Forest
	// ID: n1
	// Name: corp.example
	// labels: :Forest
}
