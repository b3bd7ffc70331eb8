package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] word...",
	Short: "Show every category a word can take and which one applies",
	Long: `Explain lists the static table entries for each word across all dialects.
A '*' marks the entry chosen for the active dialects, once for ordinary
code and once inside a directive. A user-defined keyword overrides all of
them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().String("lang", "", "dialects, e.g. c,cpp (default: config, then all)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	e, err := loadEnv(cmd, lang, dialect.All)
	if err != nil {
		return err
	}
	for i, word := range args {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		renderExplain(cmd.OutOrStdout(), e.sess, word)
	}
	return nil
}

func renderExplain(out io.Writer, sess *keywords.Session, word string) {
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s (dialects %v)\n", bold.Sprint(word), sess.Mask())
	if kind, ok := sess.Registry().Lookup(word); ok {
		fmt.Fprintf(out, "* %-16s user keyword\n", kind)
	}
	desc := sess.Describe(word)
	if desc == "" {
		fmt.Fprintln(out, "  no static entry")
		return
	}
	fmt.Fprint(out, desc)
}
