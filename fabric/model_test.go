package fabric_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multistage/fabric"
)

func buildClos(t *testing.T, size, stages int) *fabric.Model {
	t.Helper()
	m, err := fabric.BuildClos(fabric.Int(size), nil, nil, stages)
	require.NoError(t, err)
	return m
}

func TestModel_Traversal(t *testing.T) {
	t.Parallel()

	m := buildClos(t, 64, 7)

	assert.Equal(t, 3, m.Depth())
	assert.Len(t, m.Levels(), 3)
	assert.Same(t, m.Nested.Nested, m.Deepest())

	var visited []int
	m.Walk(func(depth int, l *fabric.Model) bool {
		visited = append(visited, depth)
		return depth < 1
	})
	assert.Equal(t, []int{0, 1}, visited, "walk stops when fn returns false")

	var nilModel *fabric.Model
	assert.Equal(t, 0, nilModel.Depth())
	assert.Empty(t, nilModel.Levels())
	assert.Nil(t, nilModel.Deepest())
	assert.Nil(t, nilModel.Clone())
	assert.Equal(t, "<nil>", nilModel.String())
}

func TestModel_EdgeSwitchPorts(t *testing.T) {
	t.Parallel()

	clos := buildClos(t, 8, 3)
	assert.Equal(t, 4, clos.EdgeSwitchPorts()) // n from mid=2n−1=7

	slep, err := fabric.BuildSlepian(fabric.Int(8), nil, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, slep.EdgeSwitchPorts())
}

func TestModel_RoundedCrosspoints(t *testing.T) {
	t.Parallel()

	m := &fabric.Model{Crosspoints: 2.0 / 3.0}
	assert.Equal(t, 0.67, m.RoundedCrosspoints())

	m = &fabric.Model{Crosspoints: 64.00000000000001}
	assert.Equal(t, 64.0, m.RoundedCrosspoints())
}

func TestModel_String(t *testing.T) {
	t.Parallel()

	m := buildClos(t, 64, 5)
	want := "clos N=64 stages=5 ports=6 middle=21 crosspoints=4452.00\n" +
		"  clos N=6 stages=3 ports=2 middle=5 crosspoints=80.00"
	assert.Equal(t, want, m.String())
}

func TestModel_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := buildClos(t, 64, 5)
	cp := m.Clone()
	require.Equal(t, m, cp)

	cp.Nested.Crosspoints = -1
	assert.Equal(t, 80.0, m.Nested.Crosspoints, "original untouched")
	assert.NotSame(t, m.Nested, cp.Nested)
}

func TestModel_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(m *fabric.Model)
	}{
		{"unknown family", func(m *fabric.Model) { m.Family = 0 }},
		{"even stages", func(m *fabric.Model) { m.Stages = 4 }},
		{"missing nested", func(m *fabric.Model) { m.Nested = nil }},
		{"nested on base level", func(m *fabric.Model) { m.Nested.Nested = m.Nested.Clone() }},
		{"stage gap", func(m *fabric.Model) { m.Stages = 7 }},
		{"family mismatch", func(m *fabric.Model) { m.Nested.Family = fabric.Slepian }},
		{"port mismatch", func(m *fabric.Model) { m.OutputPorts++ }},
		{"even clos middle", func(m *fabric.Model) { m.MiddleStageSwitches++ }},
		{"negative cost", func(m *fabric.Model) { m.Nested.Crosspoints = -1 }},
		{"params below size", func(m *fabric.Model) { m.Params = fabric.Params{Size: 4, FanOut: 2, Blocks: 2} }},
		{"zero size", func(m *fabric.Model) { m.NetworkSize = 0 }},
	}

	base := buildClos(t, 64, 5)
	require.NoError(t, base.Validate())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := base.Clone()
			tc.mutate(m)
			assert.ErrorIs(t, m.Validate(), fabric.ErrInvalidModel)
		})
	}

	var nilModel *fabric.Model
	assert.ErrorIs(t, nilModel.Validate(), fabric.ErrInvalidModel)
}

func TestFamily_Text(t *testing.T) {
	t.Parallel()

	f, err := fabric.ParseFamily(" Slepian ")
	require.NoError(t, err)
	assert.Equal(t, fabric.Slepian, f)

	_, err = fabric.ParseFamily("benes")
	assert.ErrorIs(t, err, fabric.ErrUnknownFamily)

	data, err := json.Marshal(struct {
		F fabric.Family `json:"f"`
	}{fabric.Clos})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"clos"}`, string(data))

	var back struct {
		F fabric.Family `json:"f"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"f":"slepian"}`), &back))
	assert.Equal(t, fabric.Slepian, back.F)

	_, err = fabric.Family(7).MarshalText()
	assert.ErrorIs(t, err, fabric.ErrUnknownFamily)
	assert.Equal(t, "family(7)", fabric.Family(7).String())
}
