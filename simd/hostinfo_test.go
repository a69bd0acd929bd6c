package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	info := Describe()
	require.NotEmpty(t, info.Supported)
	assert.Equal(t, DispatchScalar, info.Supported[0])
	assert.Contains(t, info.Supported, info.Best)
	assert.Equal(t, BestLevel(), info.Best)
	assert.Equal(t, TargetLevel(), info.Target)
	assert.NotEmpty(t, info.Arch)
}
