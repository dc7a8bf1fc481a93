package config

import (
	"io"
	"log/slog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithInputKind forces how inputs are read.
func (b *ConfigBuilder) WithInputKind(kind InputKind) *ConfigBuilder {
	b.cfg.Input.Kind = kind
	return b
}

// WithFiles sets the input files.
func (b *ConfigBuilder) WithFiles(files ...string) *ConfigBuilder {
	b.cfg.Input.Files = files
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithDiagram enables text diagrams under summaries.
func (b *ConfigBuilder) WithDiagram(enabled bool) *ConfigBuilder {
	b.cfg.Output.Diagram = enabled
	return b
}

// WithDetails enables attacker and escape lines under summaries.
func (b *ConfigBuilder) WithDetails(enabled bool) *ConfigBuilder {
	b.cfg.Output.Details = enabled
	return b
}

// WithSVGDir sets the directory receiving SVG diagrams.
func (b *ConfigBuilder) WithSVGDir(dir string) *ConfigBuilder {
	b.cfg.Output.SVGDir = dir
	return b
}

// WithTemplateDir sets the image template directory.
func (b *ConfigBuilder) WithTemplateDir(dir string) *ConfigBuilder {
	b.cfg.Vision.TemplateDir = dir
	return b
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Runtime.Workers = n
	return b
}

// WithBufferSize sets the work queue size.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Runtime.BufferSize = size
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level slog.Level) *ConfigBuilder {
	b.cfg.Runtime.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
