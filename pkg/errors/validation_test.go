package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"desktop", 1400, 900, false},
		{"small", 320, 480, false},

		{"zero width", 0, 900, true},
		{"negative height", 1400, -1, true},
		{"nan", math.NaN(), 900, true},
		{"inf", 1400, math.Inf(1), true},
		{"too large", MaxViewportDimension + 1, 900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewport(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewport(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidViewport) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidViewport)
			}
		})
	}
}

func TestValidateTopicID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"uuid", "3f2b8c1e-0d5a-4c8e-9b1a-2f6e7d8c9a0b", false},
		{"empty is allowed", "", false},
		{"unicode", "话题-1", false},

		{"too long", strings.Repeat("a", 300), true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopicID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTopicID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "topics.json", false},
		{"absolute", "/tmp/topics.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	if err := ValidateExtension("topics.JSON", ".json", ".toml"); err != nil {
		t.Errorf("ValidateExtension() unexpected error: %v", err)
	}
	err := ValidateExtension("topics.yaml", ".json", ".toml")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateExtension(yaml) = %v, want %v", err, ErrCodeInvalidFormat)
	}
}

func TestValidateFormat(t *testing.T) {
	supported := map[string]bool{"svg": true, "png": true}
	if err := ValidateFormat("svg", supported); err != nil {
		t.Errorf("ValidateFormat(svg) unexpected error: %v", err)
	}
	if err := ValidateFormat("pdf", supported); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want %v", err, ErrCodeInvalidFormat)
	}
}
