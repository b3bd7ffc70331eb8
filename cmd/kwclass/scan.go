package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/driver"
	"kwclass/internal/observ"
	"kwclass/internal/trace"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] path...",
	Short: "Classify every identifier in source files",
	Long: `Scan walks files and directories, picks each file's dialect from its
extension and counts the token categories of its identifiers. Files with
an unknown extension use --lang or the configured languages. With --watch
the scan reruns whenever a source file under the given paths changes.
--lexemes also lists every classified word with its position.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().String("lang", "", "dialects for files with an unknown extension")
	scanCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	scanCmd.Flags().Bool("watch", false, "rescan whenever a source file changes")
	scanCmd.Flags().Duration("debounce", driver.DefaultDebounce, "quiet period before a watch rescan")
	scanCmd.Flags().Bool("lexemes", false, "list every classified word as path:line:col word KIND")
}

type lexemeJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
	Word string `json:"word"`
	Kind string `json:"kind"`
}

type scanFileJSON struct {
	Path       string         `json:"path"`
	Dialect    string         `json:"dialect,omitempty"`
	Words      int            `json:"words"`
	Normalized string         `json:"normalized,omitempty"`
	Kinds      map[string]int `json:"kinds,omitempty"`
	Lexemes    []lexemeJSON   `json:"lexemes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

type scanJSON struct {
	Files    []scanFileJSON `json:"files"`
	Kinds    map[string]int `json:"kinds"`
	Patterns map[string]int `json:"patterns"`
	Failed   int            `json:"failed"`
}

func runScan(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	keepLexemes, err := cmd.Flags().GetBool("lexemes")
	if err != nil {
		return fmt.Errorf("failed to get lexemes flag: %w", err)
	}
	mode, err := readUIMode("ui", uiFlag)
	if err != nil {
		return err
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	// The fallback may stay empty: files with unknown extensions then fail.
	endConfig := timer.Begin("config")
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fallback, err := languages(lang, cfg, 0)
	if err != nil {
		return err
	}
	snapshots, extra, err := keywordFlags(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	reg, err := buildRegistry(cfg, snapshots, extra, trace.FromContext(ctx))
	if err != nil {
		return err
	}
	endConfig(fmt.Sprintf("%d custom keywords", reg.Len()))

	endList := timer.Begin("list")
	files, err := driver.ListFiles(args)
	if err != nil {
		return err
	}
	endList(fmt.Sprintf("%d files", len(files)))
	if len(files) == 0 {
		return errNoSources()
	}

	opts := driver.Options{Registry: reg, Fallback: fallback, Jobs: jobs, KeepLexemes: keepLexemes}
	var rep *driver.Report
	endScan := timer.Begin("scan")
	if shouldUseTUI(mode) {
		rep, err = runScanWithUI(ctx, "scanning", files, opts)
	} else {
		rep, err = driver.Scan(ctx, files, opts)
	}
	if err != nil {
		return err
	}
	endScan(fmt.Sprintf("%d failed", rep.Failed()))

	endRender := timer.Begin("render")
	if err := renderScan(cmd.OutOrStdout(), format, rep); err != nil {
		return err
	}
	endRender("")

	if watch {
		return watchScan(ctx, cmd, args, format, debounce, opts)
	}
	if n := rep.Failed(); n > 0 {
		return fmt.Errorf("%d of %d file(s) could not be scanned", n, len(rep.Files))
	}
	return nil
}

// errNoSources lists the extensions ListFiles picks up inside directories.
func errNoSources() error {
	exts := dialect.Extensions()
	sort.Strings(exts)
	return fmt.Errorf("no source files found (known extensions: %s)", strings.Join(exts, " "))
}

func renderScan(out io.Writer, format string, rep *driver.Report) error {
	if format == "json" {
		return renderScanJSON(out, rep)
	}
	renderScanPretty(out, rep)
	return nil
}

// watchScan rescans args after every batch of file changes until
// interrupted. Rescan failures are reported and watching goes on.
func watchScan(ctx context.Context, cmd *cobra.Command, args []string, format string, debounce time.Duration, opts driver.Options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "watching %s (debounce %s)\n", strings.Join(args, " "), debounce)
	return driver.Watch(ctx, args, debounce, func(changed []string) {
		fmt.Fprintf(stderr, "%s %d file(s) changed\n", color.New(color.FgCyan).Sprint("watch:"), len(changed))
		files, err := driver.ListFiles(args)
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return
		}
		rep, err := driver.Scan(ctx, files, opts)
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return
		}
		if err := renderScan(cmd.OutOrStdout(), format, rep); err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
		}
	})
}

// countKey is token.Kind or pattern.Class.
type countKey interface {
	comparable
	fmt.Stringer
}

type kindCount struct {
	name  string
	count int
}

// sortedCounts orders by count descending, then by name.
func sortedCounts[K countKey](m map[K]int) []kindCount {
	out := make([]kindCount, 0, len(m))
	for k, n := range m {
		out = append(out, kindCount{name: k.String(), count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func renderScanPretty(out io.Writer, rep *driver.Report) {
	pathWidth := 0
	for _, f := range rep.Files {
		pathWidth = max(pathWidth, runewidth.StringWidth(f.Path))
	}
	errColor := color.New(color.FgRed)
	for _, f := range rep.Files {
		path := runewidth.FillRight(f.Path, pathWidth)
		if f.Err != nil {
			fmt.Fprintf(out, "%s  %s\n", path, errColor.Sprint(f.Err))
			continue
		}
		fmt.Fprintf(out, "%s  %-8v %6d words", path, f.Mask, f.Words)
		if file := rep.FileSet.Get(f.FileID); file != nil && file.Flags != 0 {
			fmt.Fprintf(out, "  (%s)", file.Flags)
		}
		fmt.Fprintln(out)
	}
	renderLexemes(out, rep)

	header := color.New(color.Bold)
	fmt.Fprintln(out)
	fmt.Fprintln(out, header.Sprint("categories"))
	for _, kc := range sortedCounts(rep.Kinds) {
		fmt.Fprintf(out, "  %s %8d\n", runewidth.FillRight(kc.name, 20), kc.count)
	}
	if len(rep.Shapes) > 0 {
		fmt.Fprintln(out, header.Sprint("statement patterns"))
		for _, kc := range sortedCounts(rep.Shapes) {
			fmt.Fprintf(out, "  %s %8d\n", runewidth.FillRight(kc.name, 20), kc.count)
		}
	}
}

// renderLexemes prints one "path:line:col word KIND" line per kept lexeme.
func renderLexemes(out io.Writer, rep *driver.Report) {
	for _, f := range rep.Files {
		if f.Err != nil {
			continue
		}
		for _, lx := range f.Lexemes {
			start, _ := rep.FileSet.Resolve(lx.Span)
			fmt.Fprintf(out, "%s:%d:%d %s %s\n", f.Path, start.Line, start.Col, lx.Text, lx.Kind)
		}
	}
}

func renderScanJSON(out io.Writer, rep *driver.Report) error {
	payload := scanJSON{
		Files:    make([]scanFileJSON, 0, len(rep.Files)),
		Kinds:    countsByName(rep.Kinds),
		Patterns: countsByName(rep.Shapes),
		Failed:   rep.Failed(),
	}
	for _, f := range rep.Files {
		entry := scanFileJSON{Path: f.Path, Words: f.Words}
		if f.Err != nil {
			entry.Error = f.Err.Error()
		} else {
			entry.Dialect = f.Mask.String()
			entry.Kinds = countsByName(f.Kinds)
			if file := rep.FileSet.Get(f.FileID); file != nil {
				entry.Normalized = file.Flags.String()
			}
			for _, lx := range f.Lexemes {
				start, _ := rep.FileSet.Resolve(lx.Span)
				entry.Lexemes = append(entry.Lexemes, lexemeJSON{Line: start.Line, Col: start.Col, Word: lx.Text, Kind: lx.Kind.String()})
			}
		}
		payload.Files = append(payload.Files, entry)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func countsByName[K countKey](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, n := range m {
		out[k.String()] = n
	}
	return out
}
