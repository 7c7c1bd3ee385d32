package chart

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/j-veylop/waka-box/internal/models"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Short", "Go", "Go"},
		{"Exact", "TypeScript", "TypeScript"},
		{"Long", "JavaScript React", "JavaScr..."},
		{"Multibyte", "Ünïcödé Lång", "Ünïcödé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateName(tt.input, NameWidth); got != tt.want {
				t.Errorf("TruncateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateName_LongNames(t *testing.T) {
	names := []string{"Objective-C++", "Visual Basic .NET", "Dockerfile2", "Protocol Buffer"}
	for _, n := range names {
		got := TruncateName(n, NameWidth)
		if utf8.RuneCountInString(got) != NameWidth {
			t.Errorf("TruncateName(%q) = %q, length %d, want %d", n, got, utf8.RuneCountInString(got), NameWidth)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("TruncateName(%q) = %q, want ... suffix", n, got)
		}
	}
}

func TestFormatLine(t *testing.T) {
	stat := models.LanguageStat{Name: "TypeScript", Percent: 60, Hours: 6}
	stat.RefreshDisplay()

	want := "TypeScript 6 hrs 0 mins   " +
		strings.Repeat("█", 12) + strings.Repeat("░", 8) +
		"  60.0%"

	got := FormatLine(stat)
	if got != want {
		t.Errorf("FormatLine() =\n%q\nwant\n%q", got, want)
	}
	if n := utf8.RuneCountInString(got); n != LineWidth {
		t.Errorf("line width = %d, want %d", n, LineWidth)
	}
}

func TestFormatLine_Width(t *testing.T) {
	stats := []models.LanguageStat{
		{Name: "Go", Text: "0 hrs 1 min", Percent: 0.4},
		{Name: "A Very Long Language Name", Text: "12 hrs 59 mins", Percent: 99.96},
		{Name: "YAML", Text: "1 hr 2 mins", Percent: 100},
	}

	for _, s := range stats {
		if n := utf8.RuneCountInString(FormatLine(s)); n != LineWidth {
			t.Errorf("FormatLine(%q) width = %d, want %d", s.Name, n, LineWidth)
		}
	}
}

func TestLineWidth(t *testing.T) {
	if LineWidth != 53 {
		t.Errorf("LineWidth = %d, want 53", LineWidth)
	}
}
