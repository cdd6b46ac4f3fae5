package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

// ErrNegativeCost indicates that the cost function returned a negative edge cost.
var ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

// edgeCost evaluates cost for from → to and rejects negative results.
func edgeCost[S comparable, G any, C core.Cost](cost core.CostFunc[S, G, C], graph G, to, from S) (C, error) {
	w := cost(graph, to, from)
	if w < 0 {
		return w, fmt.Errorf("%w: edge %v→%v cost=%v", ErrNegativeCost, from, to, w)
	}
	return w, nil
}
