package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []int{256, 512, 1024, 2048, 4096}, cfg.Sizes)
	assert.Equal(t, []string{"slice", "string", "raw"}, cfg.Kinds)
	require.NoError(t, cfg.Validate())

	// Defaults are copies.
	cfg.Sizes[0] = 1
	assert.Equal(t, 256, DefaultSizes[0])
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		wantSizes []int
		wantKinds []string
	}{
		{
			name:      "empty overrides keep defaults",
			overrides: Overrides{},
			wantSizes: DefaultSizes,
			wantKinds: DefaultKinds,
		},
		{
			name:      "sizes only",
			overrides: Overrides{Sizes: []int{64}},
			wantSizes: []int{64},
			wantKinds: DefaultKinds,
		},
		{
			name:      "kinds only",
			overrides: Overrides{Kinds: []string{"raw"}},
			wantSizes: DefaultSizes,
			wantKinds: []string{"raw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Merge(tt.overrides)
			assert.Equal(t, tt.wantSizes, cfg.Sizes)
			assert.Equal(t, tt.wantKinds, cfg.Kinds)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{"valid", &Config{Sizes: []int{2}, Kinds: []string{"slice"}}, nil},
		{"no sizes", &Config{Kinds: []string{"slice"}}, ErrNoSizes},
		{"zero size", &Config{Sizes: []int{256, 0}, Kinds: []string{"slice"}}, ErrInvalidSize},
		{"negative size", &Config{Sizes: []int{-4}, Kinds: []string{"slice"}}, ErrInvalidSize},
		{"square overflows", &Config{Sizes: []int{math.MaxInt/2 + 1}, Kinds: []string{"slice"}}, ErrSizeTooLarge},
		{"largest square", &Config{Sizes: []int{int(math.Sqrt(float64(math.MaxInt))) - 1}, Kinds: []string{"slice"}}, nil},
		{"no kinds", &Config{Sizes: []int{2}}, ErrNoKinds},
		{"unknown kind", &Config{Sizes: []int{2}, Kinds: []string{"vector"}}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	err := (&Config{Sizes: []int{0, -1}, Kinds: []string{"x"}}).Validate()
	require.Error(t, err)

	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve, 3)
	assert.Contains(t, err.Error(), "sizes[1]")
	assert.Contains(t, err.Error(), "kinds[0]")
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "pixbench.yaml", "sizes: [128, 256]\nkinds: [raw, slice]\n")
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []int{128, 256}, cfg.Sizes)
		assert.Equal(t, []string{"raw", "slice"}, cfg.Kinds)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "pixbench.json", `{"sizes": [64]}`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []int{64}, cfg.Sizes)
		assert.Equal(t, DefaultKinds, cfg.Kinds)
	})

	t.Run("missing fields use defaults", func(t *testing.T) {
		path := writeFile(t, "pixbench.yml", "kinds: [string]\n")
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultSizes, cfg.Sizes)
		assert.Equal(t, []string{"string"}, cfg.Kinds)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "sizes: [1, 2\n")
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "failed to parse YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadWithoutPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseSizes(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"256", []int{256}, false},
		{"256,512, 1024", []int{256, 512, 1024}, false},
		{" 8 ,,16,", []int{8, 16}, false},
		{"", nil, false},
		{"12a", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSizes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
