package fabric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multistage/fabric"
)

func TestParseDimension(t *testing.T) {
	t.Parallel()

	for _, absent := range []string{"", "   ", "abc", "4.5", "0", "-3", "12x"} {
		assert.Nil(t, fabric.ParseDimension(absent), "input %q", absent)
	}

	got := fabric.ParseDimension(" 12 ")
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)
}

func TestParseRequest(t *testing.T) {
	t.Parallel()

	req, err := fabric.ParseRequest("8", "", "junk", "3")
	require.NoError(t, err)
	require.NotNil(t, req.Size)
	assert.Equal(t, 8, *req.Size)
	assert.Nil(t, req.FanOut, "empty field is absent, not zero")
	assert.Nil(t, req.Blocks)
	assert.Equal(t, 3, req.Stages)

	_, err = fabric.ParseRequest("8", "", "", "three")
	assert.ErrorIs(t, err, fabric.ErrInvalidStageCount)

	// Parsed requests feed straight into Build.
	req, err = fabric.ParseRequest("8", "4", "", " 3 ")
	require.NoError(t, err)
	m, err := fabric.Build(fabric.Clos, req)
	require.NoError(t, err)
	assert.Equal(t, 140.0, m.Crosspoints)
}
