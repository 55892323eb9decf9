package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topgear/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topgear.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig_TuningOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "laps: 5\ntuning:\n  segment_length: 150\n  camera_height: 1000\n")
	c := config.Default()

	require.NoError(t, readConfig(viper.New(), path, c))

	assert.Equal(t, 150.0, c.Tuning.SegmentLength)
	assert.Equal(t, 1000.0, c.Tuning.CameraHeight)
	assert.Equal(t, config.DefaultTuning().RoadWidth, c.Tuning.RoadWidth)
	assert.Equal(t, config.DefaultTuning().Gears, c.Tuning.Gears)
}

func TestReadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"malformed file", writeConfig(t, "tuning: [unclosed\n")},
		{"bad tuning value", writeConfig(t, "tuning:\n  segment_length: fast\n")},
		{"named file missing", filepath.Join(t.TempDir(), "missing.yml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			assert.Error(t, readConfig(viper.New(), tt.file, c))
		})
	}
}

func TestReadConfig_NoDefaultFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c := config.Default()

	require.NoError(t, readConfig(viper.New(), "", c))
	assert.Equal(t, config.Default(), c)
}
