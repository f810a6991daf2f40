package toptree

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	tree := New(6, ClusterFuncs[struct{}, struct{}]{}, WithMetrics(m))

	assert.Equal(t, 6.0, testutil.ToFloat64(m.roots))
	for v := 1; v < 6; v++ {
		_, err := tree.Link(0, v, struct{}{})
		require.NoError(t, err)
	}
	_, err := tree.Link(1, 2, struct{}{})
	require.ErrorIs(t, err, ErrAlreadyConnected)
	_, _, _, err = tree.Cut(0, 5)
	require.NoError(t, err)
	_, err = tree.Expose(0, 4)
	require.NoError(t, err)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.operations.WithLabelValues("link", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("link", resultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("cut", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("expose", resultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.roots))

	// Hub 0 reached degree five, then lost one edge.
	assert.Equal(t, 3.0, testutil.ToFloat64(m.vertexSplits))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.vertexMerges))
	assert.Positive(t, testutil.ToFloat64(m.clustersCreated))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rebalanceLevels))

	_, _, _, err = tree.Cut(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.vertexMerges))
	require.NoError(t, tree.Check())
}

func TestNilMetricsAreSilent(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.op("link", nil)
		m.clusterCreated()
		m.clusterDeleted()
		m.vertexSplit(2)
		m.vertexMerge()
		m.levels(3)
		m.setRoots(1)
	})
}

func TestInvariantErrorUnwraps(t *testing.T) {
	err := error(invariant("check", "%d roots", 3))
	assert.True(t, errors.Is(err, ErrInvariant))
	var ie *InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "check", ie.Op)
	assert.Equal(t, "toptree: check: 3 roots", err.Error())
}
