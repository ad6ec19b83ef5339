package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.FEN != fen.InitialFEN {
		t.Errorf("FEN = %q, want initial position", cfg.FEN)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log writers should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"max depth", func(c *Config) { c.Depth = MaxDepth }, false},
		{"depth too large", func(c *Config) { c.Depth = MaxDepth + 1 }, true},
		{"negative depth", func(c *Config) { c.Depth = -1 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative hash", func(c *Config) { c.HashEntries = -1 }, true},
		{"hash table", func(c *Config) { c.HashEntries = 1 << 16 }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"divide without depth", func(c *Config) { c.Divide = true }, true},
		{"verify with depth", func(c *Config) { c.Verify, c.Depth = true, 2 }, false},
		{"bad FEN", func(c *Config) { c.FEN = "8/8/8 w - - 0 1" }, true},
		{"no output", func(c *Config) { c.OutputFile = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"summary at summary", Summary, Summary, "perft 3\n"},
		{"commentary suppressed", Summary, Commentary, ""},
		{"silent", Silent, Summary, ""},
		{"commentary shown", Commentary, Commentary, "perft 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := NewConfig()
			cfg.LogFile = &buf
			cfg.Verbosity = tt.verbosity
			cfg.Logf(tt.level, "perft %d", 3)
			if buf.String() != tt.want {
				t.Errorf("log = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	t.Run("nil log writer", func(t *testing.T) {
		cfg := NewConfig()
		cfg.LogFile = nil
		cfg.Logf(Silent, "ignored")
	})
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg, err := NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithMoves("e1e2", "e8e7").
		WithPerft(3, true).
		WithDetailed(true).
		WithVerify(true).
		WithWorkers(2).
		ShowBoard(false).
		ListMoves(true).
		WithNoColour(true).
		WithJSON(true).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(Commentary).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if cfg.FEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if len(cfg.Moves) != 2 || cfg.Moves[0] != "e1e2" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if cfg.Depth != 3 || !cfg.Divide || !cfg.Detailed || !cfg.Verify {
		t.Errorf("perft settings = %d %v %v %v", cfg.Depth, cfg.Divide, cfg.Detailed, cfg.Verify)
	}
	if cfg.Workers != 2 || cfg.ShowBoard || !cfg.ListMoves || !cfg.NoColour || !cfg.JSON {
		t.Errorf("flags = %+v", cfg)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log || cfg.Verbosity != Commentary {
		t.Error("writers or verbosity not applied")
	}
}

func TestConfigBuilder_Invalid(t *testing.T) {
	_, err := NewConfigBuilder().WithPerft(MaxDepth+1, false).Build()
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
}
