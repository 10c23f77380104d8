package graph

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/matzehuels/graphview/pkg/graphml"
)

var sampleIDs = []string{"", "a", "b", "c", "d"}

func TestTypeDerivationProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("type is never empty and has no marker", prop.ForAll(
		func(labels string) bool {
			typ := TypeFromLabels(labels)
			return typ != "" && !strings.Contains(typ, TypeMarker)
		},
		gen.AnyString(),
	))

	properties.Property("leading marker is ignored", prop.ForAll(
		func(name string) bool {
			return TypeFromLabels(TypeMarker+name) == TypeFromLabels(name)
		},
		gen.AlphaString(),
	))

	properties.Property("build keeps one node per distinct id", prop.ForAll(
		func(ids []string) bool {
			recs := make([]graphml.NodeRecord, len(ids))
			distinct := make(map[string]struct{})
			for i, id := range ids {
				recs[i] = graphml.NodeRecord{ID: id}
				if id != "" {
					distinct[id] = struct{}{}
				}
			}
			return Build(recs, nil).NodeCount() == len(distinct)
		},
		gen.SliceOf(gen.IntRange(0, len(sampleIDs)-1).Map(func(i int) string { return sampleIDs[i] })),
	))

	properties.TestingRun(t)
}
