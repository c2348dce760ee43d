package ui

import (
	"testing"
	"time"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"2w", 14 * 24 * time.Hour, false},
		{"6M", 180 * 24 * time.Hour, false},
		{"1y", 365 * 24 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"12h", 12 * time.Hour, false},
		{"", 0, true},
		{"d", 0, true},
		{"10x", 0, true},
		{"-5d", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAge(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAge(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAge(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"512", 512, false},
		{"512B", 512, false},
		{"1KB", 1024, false},
		{"50MB", 50 << 20, false},
		{"1.5GB", 1610612736, false},
		{"2tb", 2 << 40, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1MB", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
