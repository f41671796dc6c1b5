package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default OutputFormats is text only", func(t *testing.T) {
		t.Parallel()
		if len(cfg.OutputFormats) != 1 || cfg.OutputFormats[0] != FormatText {
			t.Errorf("expected OutputFormats to be [text], got %v", cfg.OutputFormats)
		}
	})

	t.Run("default Pause is true", func(t *testing.T) {
		t.Parallel()
		if !cfg.Pause {
			t.Error("expected Pause to be true")
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"TXT", FormatText},
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := ParseFormat("xml")
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts every listed format", func(t *testing.T) {
		t.Parallel()

		for _, f := range Formats {
			cfg := NewConfig()
			cfg.OutputFormats = []Format{f}
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected %s to be valid, got %v", f, err)
			}
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.OutputFormats = []Format{FormatText, Format("csv")}
		if err := cfg.Validate(); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestValidate_RequiresAFormat(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.OutputFormats = nil
	if err := cfg.Validate(); !errors.Is(err, ErrNoFormat) {
		t.Errorf("expected ErrNoFormat, got %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	t.Parallel()

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()

		got, err := ParseFormats([]string{"json", "TEXT", "yml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Format{FormatJSON, FormatText, FormatYAML}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseFormats([]string{"text", "xml"}); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}
