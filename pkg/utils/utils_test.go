package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b"), PathJoin("a", "b"))
	assert.Equal(t, filepath.Join("a", "b")+"/", PathJoin("a", "b/"))
}

func TestResolve(t *testing.T) {
	abs, _ := filepath.Abs("x.bin")
	assert.Equal(t, "x.bin", Resolve("", "x.bin"))
	assert.Equal(t, abs, Resolve("/tmp/root", abs))
	assert.Equal(t, filepath.Join("root", "x.bin"), Resolve("root", "x.bin"))
}

func TestPrettyPrintSize(t *testing.T) {
	assert.Equal(t, "10", PrettyPrintSize(10))
	assert.Equal(t, "2K", PrettyPrintSize(2048))
	assert.Equal(t, "3.00M", PrettyPrintSize(3*1024*1024))
}
