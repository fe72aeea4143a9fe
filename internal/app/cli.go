package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/five82/passport/internal/config"
	"github.com/five82/passport/internal/countries"
	"github.com/five82/passport/internal/logtail"
	"github.com/five82/passport/internal/picker"
	"github.com/five82/passport/internal/state"
)

// fetch runs a one-shot load through a Loader so the CLI shares the TUI's
// logging and error handling.
func (e *env) fetch(ctx context.Context) ([]countries.Country, error) {
	loader := NewLoader(e.client, &state.Store{}, e.logger)
	list, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	return list, nil
}

// List prints the countries whose name contains filter as a table. A blank
// filter prints nothing, matching the picker.
func List(ctx context.Context, opts Options, filter string, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	list, err := e.fetch(ctx)
	if err != nil {
		return err
	}

	matches := picker.Filter(list, filter)
	e.logger.Info("list", zap.String("filter", filter), zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCURRENCY\tLANGUAGES")
	for _, c := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.Code,
			c.Name,
			orDash(strings.Join(c.Currencies(), ", ")),
			orDash(strings.Join(c.LanguageNames(), ", ")),
		)
	}
	return tw.Flush()
}

// Groups selects codes in order and prints the resulting groups. size <= 0
// falls back to the configured group size, then to a single group. Repeated
// codes are selected once.
func Groups(ctx context.Context, opts Options, size int, codes []string, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	list, err := e.fetch(ctx)
	if err != nil {
		return err
	}

	byCode := make(map[string]countries.Country, len(list))
	for _, c := range list {
		byCode[strings.ToUpper(c.Code)] = c
	}

	sel := picker.New(list)
	var unknown []string
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		c, ok := byCode[code]
		if !ok {
			unknown = append(unknown, raw)
			continue
		}
		if sel.IsSelected(c.Code) {
			continue
		}
		sel.Toggle(c)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown country code(s): %s", strings.Join(unknown, ", "))
	}

	if size <= 0 {
		size = e.cfg.GroupSize
	}
	if size > 0 {
		sel.SetGroupSize(strconv.Itoa(size))
	}

	groups := sel.Groups()
	e.logger.Info("groups",
		zap.Int("selected", len(sel.Selected())),
		zap.Int("size", size),
		zap.Int("groups", len(groups)),
	)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Group %d\n", i+1)
		for _, c := range g {
			fmt.Fprintf(w, "  %s  %s\n", c.Code, c.Name)
		}
	}
	return nil
}

// Log prints the last lines of the passport log file, pretty-printed.
func Log(opts Options, lines int, color bool, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load passport config: %w", err)
	}
	cfg = applyOverrides(cfg, Options{LogFile: opts.LogFile})
	if cfg.LogFile == "" || cfg.LogFile == "-" {
		return fmt.Errorf("logging is disabled")
	}

	entries, err := logtail.Read(cfg.LogFile, lines)
	if err != nil {
		return err
	}
	for _, line := range logtail.FormatLines(entries, color) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
