package yamlflag_test

import (
	"os"
	"testing"

	"github.com/usnistgov/bertlv/core/testenv"
	"github.com/usnistgov/bertlv/core/yamlflag"
)

type testConfig struct {
	MaxDepth int    `json:"maxDepth"`
	Name     string `json:"name"`
}

func TestYamlFlag(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	var cfg testConfig
	v := yamlflag.New(&cfg)
	require.NoError(v.Set("maxDepth: 7\nname: inline"))
	assert.Equal(7, cfg.MaxDepth)
	assert.Equal("inline", cfg.Name)
	assert.JSONEq(`{"maxDepth":7,"name":"inline"}`, v.String())
	assert.Same(&cfg, v.Get())

	filename := testenv.TempName(t, "cfg.yaml")
	require.NoError(os.WriteFile(filename, []byte("name: file\n"), 0o644))
	require.NoError(v.Set("@" + filename))
	assert.Equal(7, cfg.MaxDepth)
	assert.Equal("file", cfg.Name)

	assert.Error(v.Set("@" + filename + ".missing"))
	assert.Error(v.Set("maxDepth: [1"))

	assert.Panics(func() { yamlflag.New(cfg) })
}
