package errors

import (
	"strings"
	"testing"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Ana", false},
		{"with space", "Joao Pedro", false},
		{"accented", "Sérgio", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 200), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayerName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlayerName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPlayer) {
				t.Errorf("ValidatePlayerName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPlayer)
			}
		})
	}
}

func TestValidateMonth(t *testing.T) {
	for _, m := range []int{1, 6, 12} {
		if err := ValidateMonth(m); err != nil {
			t.Errorf("ValidateMonth(%d) = %v, want nil", m, err)
		}
	}
	for _, m := range []int{0, -1, 13} {
		if err := ValidateMonth(m); err == nil {
			t.Errorf("ValidateMonth(%d) = nil, want error", m)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "standings.svg", false},
		{"nested", "out/charts/standings.png", false},
		{"absolute", "/tmp/standings.svg", false},
		{"dot segment", "./out/a.svg", false},

		{"empty", "", true},
		{"traversal", "../secret.svg", true},
		{"nested traversal", "out/../../x.svg", true},
		{"control char", "a\x01.svg", true},
		{"too long", strings.Repeat("a", 600), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateArtifactID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0b7c1f3e-5d6a-4a51-9f3e-2c1d7e8f9a0b", false},
		{"0B7C1F3E-5D6A-4A51-9F3E-2C1D7E8F9A0B", false},
		{"", true},
		{"not-a-uuid", true},
		{"0b7c1f3e_5d6a_4a51_9f3e_2c1d7e8f9a0b", true},
		{"0b7c1f3e-5d6a-4a51-9f3e-2c1d7e8f9a0g", true},
	}

	for _, tt := range tests {
		err := ValidateArtifactID(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateArtifactID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
