package bridge_test

import (
	"testing"

	"github.com/elucid503/playerpp/v2/internal/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyProgram = `
_result.n = function(s) { return s.split("").reverse().join(""); };
_result.sig = function(s) { return s.toUpperCase(); };
`

func TestNewRejectsUnknownRuntime(t *testing.T) {
	_, err := bridge.New("does-not-exist")
	assert.Error(t, err)
}

func TestNamesIncludesBothBackends(t *testing.T) {
	names := bridge.Names()
	assert.Contains(t, names, "goja")
	assert.Contains(t, names, "otto")
}

func TestGojaRuntimeSolvesBothKinds(t *testing.T) {
	rt, err := bridge.New("goja")
	require.NoError(t, err)
	require.NoError(t, rt.Load(tinyProgram))

	n, err := rt.Solve("n", "abc")
	require.NoError(t, err)
	assert.Equal(t, "cba", n)

	sig, err := rt.Solve("sig", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", sig)
}

func TestOttoRuntimeSolvesBothKinds(t *testing.T) {
	rt, err := bridge.New("otto")
	require.NoError(t, err)
	require.NoError(t, rt.Load(tinyProgram))

	n, err := rt.Solve("n", "abc")
	require.NoError(t, err)
	assert.Equal(t, "cba", n)

	sig, err := rt.Solve("sig", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", sig)
}

func TestSolveFailsWhenResultFieldMissing(t *testing.T) {
	rt, err := bridge.New("goja")
	require.NoError(t, err)
	require.NoError(t, rt.Load(`_result.n = function(s) { return s; };`))

	_, err = rt.Solve("sig", "abc")
	assert.Error(t, err)
}
