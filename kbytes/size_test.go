package kbytes

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"
	"gopkg.in/yaml.v3"
)

type limitsConfig struct {
	MaxBody Size `json:"maxBody" yaml:"maxBody"`
	Buffer  Size `json:"buffer" yaml:"buffer"`
}

func TestSizeYAML(t *testing.T) {
	var cfg limitsConfig
	err := yaml.Unmarshal([]byte("maxBody: 2mb\nbuffer: 512\n"), &cfg)
	assert.NoError(t, err)
	assert.Equal(t, Size(2*MB), cfg.MaxBody)
	assert.Equal(t, Size(512), cfg.Buffer)

	out, err := yaml.Marshal(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "maxBody: 2mb\nbuffer: 512b\n", string(out))
}

func TestSizeYAMLInvalid(t *testing.T) {
	var cfg limitsConfig
	assert.Error(t, yaml.Unmarshal([]byte("maxBody: lots\n"), &cfg))
	assert.Error(t, yaml.Unmarshal([]byte("maxBody: [1]\n"), &cfg))
}

func TestSizeJSON(t *testing.T) {
	var cfg limitsConfig
	err := json.Unmarshal([]byte(`{"maxBody":"3kb","buffer":100}`), &cfg)
	assert.NoError(t, err)
	assert.Equal(t, Size(3*KB), cfg.MaxBody)
	assert.Equal(t, Size(100), cfg.Buffer)

	out, err := json.Marshal(cfg)
	assert.NoError(t, err)
	assert.Equal(t, `{"maxBody":"3kb","buffer":"100b"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"maxBody":"lots"}`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"maxBody":true}`), &cfg))
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "1.00gb", Size(GB).String())
	assert.Equal(t, int64(GB), Size(GB).Bytes())
}

func TestSizeRoundTripExact(t *testing.T) {
	for _, n := range []Size{0, 1, 1023, 1500, Size(KB), Size(3 * MB), Size(GB + 1), Size(5 * TB), 1<<40 + 512, -2048} {
		in := limitsConfig{MaxBody: n, Buffer: n}

		j, err := json.Marshal(in)
		assert.NoError(t, err)
		var fromJSON limitsConfig
		assert.NoError(t, json.Unmarshal(j, &fromJSON))
		assert.Equal(t, in, fromJSON, "json %s", j)

		y, err := yaml.Marshal(in)
		assert.NoError(t, err)
		var fromYAML limitsConfig
		assert.NoError(t, yaml.Unmarshal(y, &fromYAML))
		assert.Equal(t, in, fromYAML, "yaml %s", y)
	}
}

func TestSizeMarshalText(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{0, "0b"},
		{1500, "1500b"},
		{Size(2 * KB), "2kb"},
		{Size(MB + KB), "1025kb"},
		{Size(4 * TB), "4tb"},
		{-5, "-5"},
	}

	for _, tt := range tests {
		out, err := tt.size.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, tt.want, string(out))
	}
}

func TestSizeUnmarshalTextTrims(t *testing.T) {
	var s Size
	assert.NoError(t, s.UnmarshalText([]byte(" 7kb ")))
	assert.Equal(t, Size(7*KB), s)
}
