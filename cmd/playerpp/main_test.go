package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlayer = `(function(){
var window=this||self;
function g(h,i,j){
c=h.split("");
i&&(d=decfn(decodeURIComponent(c)),1);
return c.join("")
}
nfn=function(n){
var a=[n];
try{
var b=a[0];
return b;
}catch(e){
return a[0]+e;
}
return b;
};
function decfn(s){return s.split("").reverse().join("")};
_result.n=nfn;
}).call(this);`

func TestGroupRequestsSplitsByKind(t *testing.T) {
	reqs, err := groupRequests([]string{"n:abc", "sig:def", "n:ghi"})
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, []string{"abc", "ghi"}, reqs[0].Challenges)
	assert.Equal(t, []string{"def"}, reqs[1].Challenges)
}

func TestGroupRequestsRejectsUnsupportedKind(t *testing.T) {
	_, err := groupRequests([]string{"bogus:abc"})
	assert.Error(t, err)
}

func TestGroupRequestsRejectsMissingColon(t *testing.T) {
	_, err := groupRequests([]string{"noColon"})
	assert.Error(t, err)
}

func TestRunPrintsUsageWithoutArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"playerpp"}))
}

func TestRunHelpExitsZero(t *testing.T) {
	assert.Equal(t, 0, run([]string{"playerpp", "--help"}))
}

func TestRunMissingPlayerFileIsIoError(t *testing.T) {
	assert.Equal(t, 1, run([]string{"playerpp", "/no/such/file.js", "n:abc"}))
}

func TestRunUnknownRuntimeFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.js")
	require.NoError(t, os.WriteFile(path, []byte(samplePlayer), 0o644))

	assert.Equal(t, 1, run([]string{"playerpp", "--runtime", "bogus", path, "n:abc"}))
}

func TestRunSucceedsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.js")
	require.NoError(t, os.WriteFile(path, []byte(samplePlayer), 0o644))

	assert.Equal(t, 0, run([]string{"playerpp", path, "n:abc"}))
}
