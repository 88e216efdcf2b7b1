package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/core"
)

// oneNodeGraph is AA (rate 0) next to BB (rate 5).
func oneNodeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build([]core.Record{
		{Name: "AA", Rate: 0, Neighbors: []string{"BB"}},
		{Name: "BB", Rate: 5, Neighbors: []string{"AA"}},
	})
	require.NoError(t, err)

	return g
}
