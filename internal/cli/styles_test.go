package cli

import (
	"strings"
	"testing"
)

func TestFormatYen(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "¥0"},
		{1, "¥1"},
		{100, "¥100"},
		{1000, "¥1,000"},
		{1200, "¥1,200"},
		{12345, "¥12,345"},
		{123456, "¥123,456"},
		{1234567, "¥1,234,567"},
		{9999999, "¥9,999,999"},
	}
	for _, tt := range tests {
		if got := FormatYen(tt.amount); got != tt.want {
			t.Errorf("FormatYen(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatHelpersCarryMessage(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
	}{
		{"success", FormatSuccess},
		{"error", FormatError},
		{"warning", FormatWarning},
		{"info", FormatInfo},
		{"title", FormatTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format("メッセージ"); !strings.Contains(got, "メッセージ") {
				t.Errorf("formatted output %q missing message", got)
			}
		})
	}
}
