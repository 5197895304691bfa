// Package config loads the showcase configuration: a yaml file describing the
// indicators plus environment overrides for the application section.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/tejashwikalptaru/goindicators/internal/adapter/render/raster"
	"github.com/tejashwikalptaru/goindicators/internal/animation"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/geometry"
	"github.com/tejashwikalptaru/goindicators/internal/service"
)

// EnvPrefix prefixes every environment override, e.g. GOINDICATORS_LOG_LEVEL.
const EnvPrefix = "GOINDICATORS"

// DefaultConfigPath is the file looked up when GOINDICATORS_CONFIG is not set.
const DefaultConfigPath = "indicators.yaml"

// Default values for optional fields.
const (
	DefaultTitle         = "Go Indicators"
	DefaultLogLevel      = "INFO"
	DefaultLogFormat     = "text"
	DefaultFrameInterval = animation.DefaultFrameInterval
	DefaultDemoInterval  = 2 * time.Second
	DefaultColumns       = 3
	DefaultWindowWidth   = 720
	DefaultWindowHeight  = 520
)

// sourceEnv names environment failures in a ConfigError.
const sourceEnv = "env"

// Config is the loaded configuration.
type Config struct {
	App        AppConfig         `yaml:"app"`
	Indicators []IndicatorConfig `yaml:"indicators"`

	// Source is the file the configuration came from, empty for built-in defaults.
	Source string `yaml:"-"`
}

// AppConfig contains the application settings. Fields tagged envconfig can be
// overridden from the environment. A DemoInterval of zero set from the environment
// turns the demo off.
type AppConfig struct {
	Title         string        `yaml:"title" envconfig:"TITLE"`
	LogLevel      string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat     string        `yaml:"log_format" envconfig:"LOG_FORMAT"`
	FrameInterval time.Duration `yaml:"frame_interval" envconfig:"FRAME_INTERVAL"`
	DemoInterval  time.Duration `yaml:"demo_interval" envconfig:"DEMO_INTERVAL"`
	Columns       int           `yaml:"columns" envconfig:"COLUMNS"`
	WindowWidth   float32       `yaml:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight  float32       `yaml:"window_height" envconfig:"WINDOW_HEIGHT"`
}

// IndicatorConfig describes one indicator. Unset fields take the indicator defaults.
type IndicatorConfig struct {
	Name               string       `yaml:"name"`
	Shape              string       `yaml:"shape"`
	Min                *float64     `yaml:"min"`
	Max                *float64     `yaml:"max"`
	Target             *float64     `yaml:"target"`
	DurationMS         *int         `yaml:"duration_ms"`
	Curve              string       `yaml:"curve"`
	Radius             float64      `yaml:"radius"`
	Width              float64      `yaml:"width"`
	Height             float64      `yaml:"height"`
	Direction          string       `yaml:"direction"`
	Orientation        string       `yaml:"orientation"`
	InnerRadiusPercent *int         `yaml:"inner_radius_percent"`
	StartAngle         float64      `yaml:"start_angle"`
	Colors             ColorsConfig `yaml:"colors"`
	Text               TextConfig   `yaml:"text"`
}

// ColorsConfig holds hex colours such as "#33b5e5". Empty keeps the default paint.
type ColorsConfig struct {
	Main       string `yaml:"main"`
	Background string `yaml:"background"`
	Hole       string `yaml:"hole"`
	Text       string `yaml:"text"`
}

// TextConfig configures the label.
type TextConfig struct {
	Show    *bool   `yaml:"show"`
	Animate bool    `yaml:"animate"`
	Decimal bool    `yaml:"decimal"`
	Prefix  string  `yaml:"prefix"`
	Suffix  string  `yaml:"suffix"`
	Size    float64 `yaml:"size"`
}

// Indicator is a validated indicator entry ready to build a controller from.
type Indicator struct {
	Name     string
	Options  service.Options
	Palette  raster.Palette
	TextSize float64
}

// locator finds the configuration file.
type locator struct {
	Config string `envconfig:"CONFIG"`
}

// LoadFromEnv reads an optional .env file, then loads the file named by
// GOINDICATORS_CONFIG. Without that variable DefaultConfigPath is tried, and the
// built-in showcase is used when it does not exist.
func LoadFromEnv() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	var loc locator
	if err := envconfig.Process(EnvPrefix, &loc); err != nil {
		return nil, domain.NewConfigError(sourceEnv, -1, "reading config location", err)
	}
	if loc.Config != "" {
		return Load(loc.Config)
	}

	cfg, err := Load(DefaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Load reads, validates and applies environment overrides to the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError(path, -1, "failed to read config file", err)
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes yaml data. source names the data in errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, domain.NewConfigError(source, -1, "failed to parse config file", err)
	}
	cfg.Source = source

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in showcase: one indicator of every shape.
func Default() *Config {
	target := func(v float64) *float64 { return &v }
	cfg := &Config{
		Indicators: []IndicatorConfig{
			{Name: "Circle", Shape: string(domain.KindCircle), Target: target(40), Text: TextConfig{Suffix: "%"}},
			{Name: "Line", Shape: string(domain.KindLine), Target: target(60), Height: 24, Text: TextConfig{Animate: true}},
			{Name: "Triangle", Shape: string(domain.KindTriangle), Target: target(75), Direction: domain.RightLeft.String()},
			{Name: "Pie", Shape: string(domain.KindPie), Target: target(30), StartAngle: 270, Text: TextConfig{Animate: true, Suffix: "%"}},
			{Name: "Half pie", Shape: string(domain.KindHalfPie), Target: target(50), Curve: animation.CurveDecelerate, Text: TextConfig{Decimal: true}},
			{Name: "Quarter pie", Shape: string(domain.KindQuarterPie), Target: target(90), Orientation: domain.SouthEast.String(), Curve: animation.CurveBounce},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.App.Title == "" {
		c.App.Title = DefaultTitle
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = DefaultLogLevel
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = DefaultLogFormat
	}
	if c.App.FrameInterval == 0 {
		c.App.FrameInterval = DefaultFrameInterval
	}
	if c.App.DemoInterval == 0 {
		c.App.DemoInterval = DefaultDemoInterval
	}
	if c.App.Columns == 0 {
		c.App.Columns = DefaultColumns
	}
	if c.App.WindowWidth == 0 {
		c.App.WindowWidth = DefaultWindowWidth
	}
	if c.App.WindowHeight == 0 {
		c.App.WindowHeight = DefaultWindowHeight
	}
	for i := range c.Indicators {
		ic := &c.Indicators[i]
		if ic.Name == "" {
			ic.Name = fmt.Sprintf("%s %d", ic.Shape, i+1)
		}
		if ic.Curve == "" {
			ic.Curve = animation.CurveAccelerateDecelerate
		}
	}
}

// applyEnv overrides the application section from GOINDICATORS_* variables.
func (c *Config) applyEnv() error {
	if err := envconfig.Process(EnvPrefix, &c.App); err != nil {
		return domain.NewConfigError(sourceEnv, -1, "invalid environment override", err)
	}
	return c.validateApp(sourceEnv)
}

// validate checks the whole configuration.
func (c *Config) validate() error {
	if err := c.validateApp(c.Source); err != nil {
		return err
	}
	if len(c.Indicators) == 0 {
		return domain.NewConfigError(c.Source, -1, "at least one indicator is required", nil)
	}
	for i, ic := range c.Indicators {
		if _, err := ic.Resolve(); err != nil {
			return domain.NewConfigError(c.Source, i, err.Error(), err)
		}
	}
	return nil
}

func (c *Config) validateApp(source string) error {
	switch {
	case c.App.FrameInterval <= 0:
		return domain.NewConfigError(source, -1, "frame_interval must be positive", domain.ErrInvalidDuration)
	case c.App.DemoInterval < 0:
		return domain.NewConfigError(source, -1, "demo_interval can't be negative", domain.ErrInvalidDuration)
	case c.App.Columns <= 0:
		return domain.NewConfigError(source, -1, "columns must be positive", domain.ErrInvalidSize)
	case c.App.LogFormat != "text" && c.App.LogFormat != "json":
		return domain.NewConfigError(source, -1, fmt.Sprintf("unknown log_format %q", c.App.LogFormat), nil)
	}
	return nil
}

// Resolve converts every indicator entry, in file order.
func (c *Config) Resolve() ([]Indicator, error) {
	out := make([]Indicator, 0, len(c.Indicators))
	for i, ic := range c.Indicators {
		ind, err := ic.Resolve()
		if err != nil {
			return nil, domain.NewConfigError(c.Source, i, err.Error(), err)
		}
		out = append(out, ind)
	}
	return out, nil
}

// Resolve converts the entry into controller options and paint.
func (ic IndicatorConfig) Resolve() (Indicator, error) {
	kind, err := domain.ParseKind(ic.Shape)
	if err != nil {
		return Indicator{}, err
	}

	opts := service.DefaultOptions(kind)
	if ic.Min != nil {
		opts.Range.Min = *ic.Min
	}
	if ic.Max != nil {
		opts.Range.Max = *ic.Max
	}
	if err := opts.Range.Validate(); err != nil {
		return Indicator{}, err
	}
	opts.InitialTarget = ic.Target

	if ic.DurationMS != nil {
		if *ic.DurationMS < 0 {
			return Indicator{}, domain.NewValidationError("duration_ms", *ic.DurationMS, "duration can't be negative", domain.ErrInvalidDuration)
		}
		opts.Duration = time.Duration(*ic.DurationMS) * time.Millisecond
	}
	if opts.Curve, err = animation.CurveByName(ic.Curve); err != nil {
		return Indicator{}, err
	}

	if opts.Shape, err = ic.shapeConfig(kind); err != nil {
		return Indicator{}, err
	}
	shape, err := geometry.New(kind)
	if err != nil {
		return Indicator{}, err
	}
	if err := shape.Validate(opts.Shape); err != nil {
		return Indicator{}, err
	}

	opts.Label = service.LabelFormat{
		Show:    ic.Text.Show == nil || *ic.Text.Show,
		Animate: ic.Text.Animate,
		Decimal: ic.Text.Decimal,
		Prefix:  ic.Text.Prefix,
		Suffix:  ic.Text.Suffix,
	}
	if ic.Text.Size < 0 {
		return Indicator{}, domain.NewValidationError("text.size", ic.Text.Size, "text size can't be negative", domain.ErrInvalidSize)
	}

	palette, err := ic.Colors.palette()
	if err != nil {
		return Indicator{}, err
	}
	return Indicator{Name: ic.Name, Options: opts, Palette: palette, TextSize: ic.Text.Size}, nil
}

func (ic IndicatorConfig) shapeConfig(kind domain.Kind) (geometry.Config, error) {
	cfg := geometry.DefaultConfig(kind)
	cfg.Radius = ic.Radius
	cfg.Width = ic.Width
	cfg.Height = ic.Height
	cfg.StartAngle = ic.StartAngle
	if ic.InnerRadiusPercent != nil {
		cfg.InnerRadiusPercent = *ic.InnerRadiusPercent
	}
	if ic.Direction != "" {
		d, err := domain.ParseDirection(ic.Direction)
		if err != nil {
			return cfg, err
		}
		cfg.Direction = d
	}
	if ic.Orientation != "" {
		o, err := domain.ParseOrientation(ic.Orientation)
		if err != nil {
			return cfg, err
		}
		cfg.Orientation = o
	}
	return cfg, nil
}

func (c ColorsConfig) palette() (raster.Palette, error) {
	p := raster.DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"colors.main", c.Main, &p.Main},
		{"colors.background", c.Background, &p.Background},
		{"colors.hole", c.Hole, &p.Hole},
		{"colors.text", c.Text, &p.Text},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return p, domain.NewValidationError(f.name, f.hex, "invalid hex colour", err)
		}
		*f.dst = col
	}
	return p, nil
}
