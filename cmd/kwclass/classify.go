package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/pattern"
	"kwclass/internal/token"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] word...",
	Short: "Print the token category of each word",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().String("lang", "", "dialects, e.g. c,cpp (default: config, then all)")
	classifyCmd.Flags().Bool("pp", false, "classify as inside a preprocessor directive")
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type classification struct {
	Word    string `json:"word"`
	Kind    string `json:"kind"`
	Pattern string `json:"pattern,omitempty"`
	Preproc string `json:"preproc"`

	kind token.Kind
}

func runClassify(cmd *cobra.Command, args []string) error {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	inPP, err := cmd.Flags().GetBool("pp")
	if err != nil {
		return fmt.Errorf("failed to get pp flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	e, err := loadEnv(cmd, lang, dialect.All)
	if err != nil {
		return err
	}
	start := keywords.PreprocNone
	if inPP {
		start = keywords.PreprocDirective
	}
	results := classifyWords(e.sess, args, start)

	switch strings.ToLower(format) {
	case "pretty":
		renderClassifyPretty(cmd.OutOrStdout(), results)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// classifyWords classifies each word on its own, starting from start.
func classifyWords(sess *keywords.Session, words []string, start keywords.Preproc) []classification {
	out := make([]classification, 0, len(words))
	for _, w := range words {
		kind, state := sess.ClassifyAs(w, sess.Mask(), start)
		c := classification{Word: w, Kind: kind.String(), Preproc: state.String(), kind: kind}
		if shape := pattern.ShapeOf(kind); shape != pattern.None {
			c.Pattern = shape.String()
		}
		out = append(out, c)
	}
	return out
}

var (
	keywordColor   = color.New(color.FgCyan, color.Bold)
	directiveColor = color.New(color.FgMagenta, color.Bold)
)

// kindColor picks the colour for a category; plain words stay uncoloured.
func kindColor(kind token.Kind) *color.Color {
	switch {
	case kind == token.Word || kind == token.None:
		return nil
	case kind.IsPreproc() || kind == token.Preproc:
		return directiveColor
	default:
		return keywordColor
	}
}

func renderClassifyPretty(out io.Writer, results []classification) {
	width := 0
	for _, r := range results {
		width = max(width, runewidth.StringWidth(r.Word))
	}
	for _, r := range results {
		kind := r.Kind
		if c := kindColor(r.kind); c != nil {
			kind = c.Sprint(kind)
		}
		line := runewidth.FillRight(r.Word, width) + "  " + kind
		if r.Pattern != "" {
			line += "  (" + r.Pattern + ")"
		}
		fmt.Fprintln(out, line)
	}
}
