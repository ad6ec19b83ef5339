package config

import "io"

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

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fenStr string) *ConfigBuilder {
	b.cfg.FEN = fenStr
	return b
}

// WithMoves sets the moves played from the starting position.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append(b.cfg.Moves[:0:0], moves...)
	return b
}

// WithPerft enables perft to the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Depth = depth
	b.cfg.Divide = divide
	return b
}

// WithDetailed classifies perft leaves.
func (b *ConfigBuilder) WithDetailed(enabled bool) *ConfigBuilder {
	b.cfg.Detailed = enabled
	return b
}

// WithVerify enables the reference cross-check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Verify = enabled
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithHash enables a perft transposition table of n entries.
func (b *ConfigBuilder) WithHash(n int) *ConfigBuilder {
	b.cfg.HashEntries = n
	return b
}

// ShowBoard controls whether the board diagram is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.ShowBoard = show
	return b
}

// ListMoves controls whether the legal moves are listed.
func (b *ConfigBuilder) ListMoves(list bool) *ConfigBuilder {
	b.cfg.ListMoves = list
	return b
}

// WithNoColour disables ANSI colours in the diagram.
func (b *ConfigBuilder) WithNoColour(off bool) *ConfigBuilder {
	b.cfg.NoColour = off
	return b
}

// WithJSON selects JSON reports.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.JSON = enabled
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
