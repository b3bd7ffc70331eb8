package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/token"
	"kwclass/internal/trace"
)

const configFileName = "kwclass.toml"

// fileConfig mirrors kwclass.toml:
//
//	[dialect]
//	languages = ["c", "cpp"]
//
//	[keywords]
//	files = ["types.txt"]
//
//	[keywords.set]
//	MACRO_OPEN = ["BEGIN_MESSAGE_MAP"]
type fileConfig struct {
	Dialect  dialectConfig  `toml:"dialect"`
	Keywords keywordsConfig `toml:"keywords"`
}

type dialectConfig struct {
	Languages []string `toml:"languages"`
}

type keywordsConfig struct {
	Files []string            `toml:"files"`
	Set   map[string][]string `toml:"set"`
}

// config is the validated configuration. Paths are absolute.
type config struct {
	Path      string // "" when no file was found
	Languages dialect.Mask
	Files     []string
	Set       map[token.Kind][]string
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (*config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := &config{Path: path, Set: make(map[token.Kind][]string)}
	if meta.IsDefined("dialect", "languages") {
		if len(raw.Dialect.Languages) == 0 {
			return nil, fmt.Errorf("%s: [dialect].languages is empty", path)
		}
		cfg.Languages, err = dialect.ParseNames(raw.Dialect.Languages)
		if err != nil {
			return nil, fmt.Errorf("%s: [dialect].languages: %w", path, err)
		}
	}

	root := filepath.Dir(path)
	for _, f := range raw.Keywords.Files {
		if strings.TrimSpace(f) == "" {
			return nil, fmt.Errorf("%s: [keywords].files has an empty entry", path)
		}
		if !filepath.IsAbs(f) {
			f = filepath.Join(root, filepath.FromSlash(f))
		}
		cfg.Files = append(cfg.Files, f)
	}
	for name, tags := range raw.Keywords.Set {
		kind, err := token.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%s: [keywords.set]: %w", path, err)
		}
		cfg.Set[kind] = append(cfg.Set[kind], tags...)
	}
	return cfg, nil
}

// resolveConfig loads the file named by --config, or the nearest
// kwclass.toml above the working directory. No file is not an error.
func resolveConfig(cmd *cobra.Command) (*config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			return &config{Set: map[token.Kind][]string{}}, nil
		}
		path = found
	}
	return loadConfig(path)
}

// keywordFlags reads the persistent --keywords-snapshot and --keywords
// values.
func keywordFlags(cmd *cobra.Command) (snapshots, extra []string, err error) {
	flags := cmd.Root().PersistentFlags()
	if snapshots, err = flags.GetStringArray("keywords-snapshot"); err != nil {
		return nil, nil, fmt.Errorf("failed to get keywords-snapshot flag: %w", err)
	}
	if extra, err = flags.GetStringArray("keywords"); err != nil {
		return nil, nil, fmt.Errorf("failed to get keywords flag: %w", err)
	}
	return snapshots, extra, nil
}

// buildRegistry applies the configuration to a fresh registry: msgpack
// snapshots first, then keyword files from the config, then extra files,
// then [keywords.set] entries, so an explicit set overrides a file.
func buildRegistry(cfg *config, snapshots, extra []string, tracer trace.Tracer) (*keywords.Registry, error) {
	reg := keywords.NewRegistry(tracer)
	for _, path := range snapshots {
		span := trace.Begin(tracer, trace.ScopePass, "keywords:snapshot", 0)
		n, err := keywords.LoadSnapshotFile(reg, path)
		if err != nil {
			span.End("failed")
			return nil, err
		}
		span.WithExtra("path", path).WithExtra("count", fmt.Sprint(n)).End("")
	}

	files := append(append([]string(nil), cfg.Files...), extra...)
	for _, path := range files {
		span := trace.Begin(tracer, trace.ScopePass, "keywords:load", 0)
		n, err := keywords.LoadKeywordFile(reg, path)
		if err != nil {
			span.End("failed")
			return nil, err
		}
		span.WithExtra("path", path).WithExtra("count", fmt.Sprint(n)).End("")
	}

	kinds := make([]token.Kind, 0, len(cfg.Set))
	for kind := range cfg.Set {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		for _, tag := range cfg.Set[kind] {
			reg.Upsert(tag, kind)
		}
	}
	return reg, nil
}

// languages picks the dialect: an explicit flag value, then the config,
// then def.
func languages(flag string, cfg *config, def dialect.Mask) (dialect.Mask, error) {
	if strings.TrimSpace(flag) != "" {
		return dialect.Parse(flag)
	}
	if cfg != nil && !cfg.Languages.Empty() {
		return cfg.Languages, nil
	}
	return def, nil
}
