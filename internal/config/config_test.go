package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/goindicators/internal/adapter/render/raster"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

const sampleConfig = `
app:
  title: Dashboard
  frame_interval: 20ms
  columns: 2
indicators:
  - name: CPU
    shape: pie
    min: 10
    max: 110
    target: 35
    duration_ms: 250
    curve: linear
    start_angle: 90
    inner_radius_percent: 0
    colors:
      main: "#ff0000"
    text:
      suffix: "%"
      animate: true
  - shape: quarter_pie
    orientation: south_west
    direction: counter_clockwise
    radius: 80
    text:
      show: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "indicators.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "Dashboard", cfg.App.Title)
	assert.Equal(t, 20*time.Millisecond, cfg.App.FrameInterval)
	assert.Equal(t, 2, cfg.App.Columns)
	assert.Equal(t, DefaultDemoInterval, cfg.App.DemoInterval)
	assert.Equal(t, DefaultLogFormat, cfg.App.LogFormat)

	indicators, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, indicators, 2)

	cpu := indicators[0]
	assert.Equal(t, "CPU", cpu.Name)
	assert.Equal(t, domain.KindPie, cpu.Options.Kind)
	assert.Equal(t, domain.Range{Min: 10, Max: 110}, cpu.Options.Range)
	require.NotNil(t, cpu.Options.InitialTarget)
	assert.Equal(t, 35.0, *cpu.Options.InitialTarget)
	assert.Equal(t, 250*time.Millisecond, cpu.Options.Duration)
	assert.Equal(t, 90.0, cpu.Options.Shape.StartAngle)
	assert.Equal(t, 0, cpu.Options.Shape.InnerRadiusPercent, "explicit zero is kept")
	assert.True(t, cpu.Options.Label.Show)
	assert.True(t, cpu.Options.Label.Animate)
	assert.Equal(t, "%", cpu.Options.Label.Suffix)
	assert.Equal(t, colorful.Color{R: 1}, cpu.Palette.Main)
	assert.Equal(t, raster.DefaultPalette().Background, cpu.Palette.Background)

	quarter := indicators[1]
	assert.Equal(t, "quarter_pie 2", quarter.Name)
	assert.Equal(t, domain.SouthWest, quarter.Options.Shape.Orientation)
	assert.Equal(t, domain.CounterClockwise, quarter.Options.Shape.Direction)
	assert.Equal(t, 80.0, quarter.Options.Shape.Radius)
	assert.Equal(t, domain.DefaultInnerRadiusPercent, quarter.Options.Shape.InnerRadiusPercent)
	assert.Equal(t, domain.DefaultRange(), quarter.Options.Range)
	assert.Nil(t, quarter.Options.InitialTarget)
	assert.False(t, quarter.Options.Label.Show)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_InvalidIndicators(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  error
	}{
		{"unknown shape", "shape: hexagon", domain.ErrUnsupportedShape},
		{"inverted range", "{shape: circle, min: 5, max: 1}", domain.ErrInvalidRange},
		{"negative duration", "{shape: circle, duration_ms: -1}", domain.ErrInvalidDuration},
		{"unknown curve", "{shape: circle, curve: wobble}", domain.ErrUnknownCurve},
		{"negative radius", "{shape: pie, radius: -3}", domain.ErrInvalidSize},
		{"percent above 100", "{shape: pie, inner_radius_percent: 101}", domain.ErrInvalidPercent},
		{"start angle 360", "{shape: pie, start_angle: 360}", domain.ErrInvalidAngle},
		{"circular direction on a line", "{shape: line, direction: clockwise}", domain.ErrUnsupportedDirection},
		{"unknown direction", "{shape: line, direction: up}", domain.ErrUnsupportedDirection},
		{"diagonal on a half pie", "{shape: half_pie, orientation: north_east}", domain.ErrUnsupportedOrientation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte("indicators:\n  - "+tt.entry+"\n"), "test.yaml")

			var cfgErr *domain.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, 0, cfgErr.Index)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_InvalidColour(t *testing.T) {
	_, err := Parse([]byte("indicators:\n  - {shape: circle, colors: {hole: blue}}\n"), "test.yaml")

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "colors.hole", valErr.Field)
}

func TestParse_RequiresIndicators(t *testing.T) {
	_, err := Parse([]byte("app: {title: empty}\n"), "test.yaml")

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, -1, cfgErr.Index)
}

func TestParse_InvalidApp(t *testing.T) {
	_, err := Parse([]byte("app: {log_format: xml}\nindicators: [{shape: circle}]\n"), "test.yaml")
	assert.Error(t, err)

	_, err = Parse([]byte("app: {frame_interval: -1s}\nindicators: [{shape: circle}]\n"), "test.yaml")
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("indicators: [\n"), "test.yaml")

	var cfgErr *domain.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOINDICATORS_LOG_LEVEL", "DEBUG")
	t.Setenv("GOINDICATORS_LOG_FORMAT", "json")
	t.Setenv("GOINDICATORS_FRAME_INTERVAL", "33ms")
	t.Setenv("GOINDICATORS_DEMO_INTERVAL", "0s")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.App.LogFormat)
	assert.Equal(t, 33*time.Millisecond, cfg.App.FrameInterval)
	assert.Equal(t, time.Duration(0), cfg.App.DemoInterval)
	assert.Equal(t, "Dashboard", cfg.App.Title, "unset variables keep file values")
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("GOINDICATORS_COLUMNS", "many")

	_, err := Load(writeConfig(t, sampleConfig))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "env", cfgErr.Source)
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	t.Setenv("GOINDICATORS_CONFIG", writeConfig(t, sampleConfig))

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", cfg.App.Title)
}

func TestLoadFromEnv_FallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOINDICATORS_TITLE", "Overridden")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "Overridden", cfg.App.Title)
	assert.Len(t, cfg.Indicators, len(domain.Kinds()))
}

func TestDefault_Resolves(t *testing.T) {
	indicators, err := Default().Resolve()
	require.NoError(t, err)

	kinds := make([]domain.Kind, 0, len(indicators))
	for _, ind := range indicators {
		kinds = append(kinds, ind.Options.Kind)
	}
	assert.Equal(t, domain.Kinds(), kinds)
}
