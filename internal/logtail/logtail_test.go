package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "panic: something broke",
			expected: "panic: something broke",
		},
		{
			name:     "json without msg passes through",
			input:    `{"level":"info"}`,
			expected: `{"level":"info"}`,
		},
		{
			name:     "info with fields",
			input:    `{"level":"info","ts":"2026-10-19T10:00:00.000Z","caller":"app/loader.go:42","msg":"countries loaded","count":250,"endpoint":"https://countries.trevorblades.com/graphql"}`,
			expected: `2026-10-19T10:00:00.000Z INFO  countries loaded count=250 endpoint=https://countries.trevorblades.com/graphql (app/loader.go:42)`,
		},
		{
			name:     "error with quoted value",
			input:    `{"level":"error","ts":"2026-10-19T10:00:01.000Z","msg":"fetch countries failed","error":"execute request: dial tcp: timeout","stacktrace":"goroutine 1"}`,
			expected: `2026-10-19T10:00:01.000Z ERROR fetch countries failed error="execute request: dial tcp: timeout"`,
		},
		{
			name:     "large integers stay integral",
			input:    `{"level":"info","msg":"countries loaded","count":250,"pid":1234567,"ratio":0.5}`,
			expected: `INFO  countries loaded count=250 pid=1234567 ratio=0.5`,
		},
		{
			name:     "nested values",
			input:    `{"level":"debug","msg":"toggle","codes":["SE","ES"],"selected":true}`,
			expected: `DEBUG toggle codes=["SE","ES"] selected=true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestColorizeKeepsText(t *testing.T) {
	line := `{"level":"warn","ts":"2026-10-19T10:00:00.000Z","msg":"slow fetch","elapsed":"3s"}`
	got := Colorize(line)
	for _, want := range []string{"2026-10-19T10:00:00.000Z", "WARN", "slow fetch", "elapsed", "3s"} {
		if !strings.Contains(got, want) {
			t.Errorf("Colorize() = %q, missing %q", got, want)
		}
	}
	if Colorize("not json") != "not json" {
		t.Errorf("Colorize() altered a non-JSON line")
	}
}

func TestFormatLines(t *testing.T) {
	input := []string{
		`{"level":"info","msg":"start"}`,
		"raw line",
	}
	got := FormatLines(input, false)
	want := []string{"INFO  start", "raw line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatLines() = %v, want %v", got, want)
	}
}
