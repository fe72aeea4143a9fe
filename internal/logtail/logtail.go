package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns the whole file.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded zap JSON line.
type Entry struct {
	Time    string
	Level   string
	Message string
	Caller  string
	Fields  map[string]any
}

// Parse decodes a zap production JSON line. ok is false for anything that is
// not a JSON object with a msg key.
func Parse(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	msg, ok := raw["msg"].(string)
	if !ok {
		return Entry{}, false
	}

	e := Entry{Message: msg}
	e.Time, _ = raw["ts"].(string)
	e.Level, _ = raw["level"].(string)
	e.Caller, _ = raw["caller"].(string)
	for _, k := range []string{"msg", "ts", "level", "caller", "stacktrace"} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		e.Fields = raw
	}
	return e, true
}

// Format renders a log line as "TIME LEVEL message key=value ...". Lines that
// are not zap JSON come back unchanged.
func Format(line string) string {
	e, ok := Parse(line)
	if !ok {
		return line
	}
	return render(e, plain)
}

// Colorize is Format with lipgloss styling for terminals.
func Colorize(line string) string {
	e, ok := Parse(line)
	if !ok {
		return line
	}
	return render(e, colored)
}

// FormatLines applies Format or Colorize to every line.
func FormatLines(lines []string, color bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if color {
			out[i] = Colorize(line)
		} else {
			out[i] = Format(line)
		}
	}
	return out
}

type palette struct {
	time   func(string) string
	level  func(string) string
	key    func(string) string
	caller func(string) string
}

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	callerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	levelStyles = map[string]lipgloss.Style{
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}

	identity = func(s string) string { return s }

	plain = palette{time: identity, level: identity, key: identity, caller: identity}

	colored = palette{
		time: func(s string) string { return timeStyle.Render(s) },
		level: func(s string) string {
			if st, ok := levelStyles[strings.TrimSpace(s)]; ok {
				return st.Render(s)
			}
			return s
		},
		key:    func(s string) string { return keyStyle.Render(s) },
		caller: func(s string) string { return callerStyle.Render(s) },
	}
)

func render(e Entry, p palette) string {
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(p.time(e.Time))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(p.level(fmt.Sprintf("%-5s", strings.ToUpper(e.Level))))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(p.key(k))
		b.WriteByte('=')
		b.WriteString(fieldValue(e.Fields[k]))
	}
	if e.Caller != "" {
		b.WriteString(" ")
		b.WriteString(p.caller("(" + e.Caller + ")"))
	}
	return b.String()
}

func fieldValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\"=") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return "null"
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
