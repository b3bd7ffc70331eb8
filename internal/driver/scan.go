// Package driver classifies many source files in parallel. Every file gets
// its own keywords.Session built for the file's dialect and seeded with a
// private copy of the configured registry; sessions share only the static
// table.
package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/pattern"
	"kwclass/internal/scan"
	"kwclass/internal/source"
	"kwclass/internal/token"
	"kwclass/internal/trace"
)

// ErrNoDialect reports a file whose extension is unknown while no fallback
// dialect is configured.
var ErrNoDialect = errors.New("cannot determine dialect")

// Options configures Scan.
type Options struct {
	// Registry is cloned into every file session. May be nil.
	Registry *keywords.Registry
	// Fallback is the dialect for files with an unknown extension.
	Fallback dialect.Mask
	// Jobs bounds the number of concurrent workers; <= 0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file events. May be nil.
	Progress ProgressSink
	// KeepLexemes stores every lexeme in the file reports.
	KeepLexemes bool
}

// FileReport is the outcome for one file.
type FileReport struct {
	Path    string
	FileID  source.FileID
	Mask    dialect.Mask
	Words   int
	Kinds   map[token.Kind]int
	Shapes  map[pattern.Class]int
	Lexemes []scan.Lexeme
	Elapsed time.Duration
	Err     error // load or dialect failure; the file was skipped
}

// Report aggregates a batch run. Files are in the order of ListFiles.
type Report struct {
	Files   []FileReport
	Kinds   map[token.Kind]int
	Shapes  map[pattern.Class]int
	FileSet *source.FileSet
	Elapsed time.Duration
}

// Failed counts files that could not be scanned.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Err != nil {
			n++
		}
	}
	return n
}

// Scan classifies every identifier of files. Per-file failures are recorded
// in the report; the returned error is reserved for cancellation and broken
// table invariants.
func Scan(ctx context.Context, files []string, opts Options) (*Report, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "scan", 0)
	started := time.Now()

	report := &Report{
		Files:   make([]FileReport, len(files)),
		Kinds:   make(map[token.Kind]int),
		Shapes:  make(map[pattern.Class]int),
		FileSet: source.NewFileSet(),
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fr, err := scanFile(report.FileSet, path, opts, tracer, span.ID())
			// индекс i уникален, мьютекс не нужен
			report.Files[i] = fr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		trace.Error(tracer, trace.ScopePass, "scan", err)
		span.End("failed")
		return report, err
	}

	for i := range report.Files {
		for k, n := range report.Files[i].Kinds {
			report.Kinds[k] += n
		}
		for c, n := range report.Files[i].Shapes {
			report.Shapes[c] += n
		}
	}
	report.Elapsed = time.Since(started)
	span.WithExtra("files", strconv.Itoa(len(files))).
		WithExtra("failed", strconv.Itoa(report.Failed())).
		End("")
	return report, nil
}

func scanFile(fileSet *source.FileSet, path string, opts Options, tracer trace.Tracer, parent uint64) (FileReport, error) {
	started := time.Now()
	fr := FileReport{Path: path}
	fail := func(stage Stage, err error) (FileReport, error) {
		fr.Err = err
		fr.Elapsed = time.Since(started)
		trace.Error(tracer, trace.ScopeFile, path, err)
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: fr.Elapsed})
		return fr, nil
	}

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	mask, ok := dialect.FromPath(path)
	if !ok {
		mask = opts.Fallback
	}
	if mask.Empty() {
		return fail(StageLoad, fmt.Errorf("%w for %s", ErrNoDialect, path))
	}
	id, err := fileSet.Load(path)
	if err != nil {
		return fail(StageLoad, err)
	}
	fr.FileID, fr.Mask = id, mask

	span := trace.Begin(tracer, trace.ScopeFile, "file", parent)
	emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusWorking})
	sess, err := keywords.NewSession(mask,
		keywords.WithTracer(tracer),
		keywords.WithRegistry(opts.Registry.Clone(tracer)),
	)
	if err != nil {
		// Only a broken table gets here; the whole run is unusable.
		span.End("failed")
		return fr, fmt.Errorf("%s: %w", path, err)
	}

	fr.Kinds = make(map[token.Kind]int)
	fr.Shapes = make(map[pattern.Class]int)
	sc := scan.New(fileSet.Get(id), sess, nil)
	for {
		lx, ok := sc.Next()
		if !ok {
			break
		}
		if lx.Kind == token.Preproc {
			continue
		}
		fr.Words++
		fr.Kinds[lx.Kind]++
		if shape := pattern.ShapeOf(lx.Kind); shape != pattern.None {
			fr.Shapes[shape]++
		}
		if opts.KeepLexemes {
			fr.Lexemes = append(fr.Lexemes, lx)
		}
	}

	fr.Elapsed = time.Since(started)
	span.WithExtra("path", path).WithExtra("dialect", mask.String()).End(strconv.Itoa(fr.Words))
	emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusDone, Words: fr.Words, Elapsed: fr.Elapsed})
	return fr, nil
}
