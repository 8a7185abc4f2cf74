package fabric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multistage/fabric"
)

func TestBuildSlepian_DefaultSizing(t *testing.T) {
	t.Parallel()

	m, err := fabric.BuildSlepian(fabric.Int(8), nil, nil, 3)
	require.NoError(t, err)

	assert.Equal(t, fabric.Slepian, m.Family)
	assert.Equal(t, 8, m.NetworkSize)
	assert.Equal(t, 4, m.InputPorts)
	assert.Equal(t, 4, m.OutputPorts)
	assert.Equal(t, 2, m.MiddleStageSwitches)
	assert.Equal(t, fabric.Params{Size: 8, FanOut: 2, Blocks: 4}, m.Params)
	assert.InDelta(t, 64.0, m.Crosspoints, 1e-9) // 2·√2·8^1.5
	assert.Equal(t, 64.0, m.RoundedCrosspoints())
	assert.Nil(t, m.Nested)
}

func TestBuildSlepian_DefaultCostIsClosedForm(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 10, 50, 99, 1000} {
		m, err := fabric.BuildSlepian(fabric.Int(n), nil, nil, 3)
		require.NoError(t, err)
		want := 2 * math.Sqrt2 * math.Pow(float64(n), 1.5)
		assert.InDelta(t, want, m.Crosspoints, 1e-6, "N=%d", n)
	}
}

func TestBuildSlepian_Resolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		size, n, r  *int
		wantParams  fabric.Params
		wantCrosspt float64
	}{
		{"n given derives r", fabric.Int(8), fabric.Int(2), nil, fabric.Params{Size: 8, FanOut: 2, Blocks: 4}, 64},
		// cost uses the requested N=10, not the resolved 12: 10·(2·3+4)
		{"rounded up size", fabric.Int(10), fabric.Int(3), nil, fabric.Params{Size: 12, FanOut: 3, Blocks: 4}, 100},
		{"r given derives n", fabric.Int(12), nil, fabric.Int(5), fabric.Params{Size: 15, FanOut: 3, Blocks: 5}, 132},
		{"consistent triple", fabric.Int(12), fabric.Int(3), fabric.Int(4), fabric.Params{Size: 12, FanOut: 3, Blocks: 4}, 120},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := fabric.BuildSlepian(tc.size, tc.n, tc.r, 3)
			require.NoError(t, err)
			assert.Equal(t, tc.wantParams, got.Params)
			assert.Equal(t, tc.wantParams.Blocks, got.InputPorts)
			assert.Equal(t, tc.wantParams.FanOut, got.MiddleStageSwitches)
			assert.Equal(t, tc.wantCrosspt, got.Crosspoints)
		})
	}
}

func TestBuildSlepian_MultiStage(t *testing.T) {
	t.Parallel()

	m, err := fabric.BuildSlepian(fabric.Int(8), nil, nil, 5)
	require.NoError(t, err)
	require.Equal(t, 2, m.Depth())

	// r²·n^stages = 4²·2⁵, independent of the nested cost.
	assert.Equal(t, 512.0, m.Crosspoints)

	// Recursion keeps the same N.
	require.NotNil(t, m.Nested)
	assert.Equal(t, 8, m.Nested.NetworkSize)
	assert.Equal(t, 3, m.Nested.Stages)
	assert.InDelta(t, 64.0, m.Nested.Crosspoints, 1e-9)
}

func TestBuildSlepian_MultiStageResolvedTop(t *testing.T) {
	t.Parallel()

	m, err := fabric.BuildSlepian(fabric.Int(8), fabric.Int(2), fabric.Int(4), 7)
	require.NoError(t, err)

	levels := m.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, 2048.0, levels[0].Crosspoints) // 4²·2⁷
	assert.Equal(t, 512.0, levels[1].Crosspoints)  // 4²·2⁵
	assert.InDelta(t, 64.0, levels[2].Crosspoints, 1e-9)
}

func TestBuildSlepian_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     *int
		n, r     *int
		stages   int
		wantErrs []error
	}{
		{"missing size", nil, nil, nil, 3, []error{fabric.ErrMissingNetworkSize}},
		{"stages below three", fabric.Int(8), nil, nil, 2, []error{fabric.ErrInvalidStageCount}},
		{"inconsistent triple", fabric.Int(12), fabric.Int(3), fabric.Int(5), 3, []error{fabric.ErrInconsistentDimensions}},
		{"zero blocks", fabric.Int(12), nil, fabric.Int(0), 3, []error{fabric.ErrInvalidDimension}},
		// Even counts pass the top-level check but the nested level reaches 2.
		{"even stages fail one level down", fabric.Int(8), nil, nil, 4,
			[]error{fabric.ErrNestedConstructionFailed, fabric.ErrInvalidStageCount}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := fabric.BuildSlepian(tc.size, tc.n, tc.r, tc.stages)
			assert.Nil(t, m)
			for _, want := range tc.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestBuildSlepian_CrosspointOverflow(t *testing.T) {
	t.Parallel()

	// 45²·23^k leaves float64 range before k reaches 301.
	m, err := fabric.BuildSlepian(fabric.Int(1024), nil, nil, 301)
	assert.ErrorIs(t, err, fabric.ErrCrosspointOverflow)
	assert.Nil(t, m)

	m, err = fabric.BuildSlepian(fabric.Int(1024), nil, nil, 201)
	require.NoError(t, err)
	assert.False(t, math.IsInf(m.Crosspoints, 0))
	assert.NoError(t, m.Validate())

	_, err = fabric.BuildSlepian(fabric.Int(math.MaxInt), nil, nil, 3)
	assert.ErrorIs(t, err, fabric.ErrInvalidDimension)
}
