package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/trace"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the built-in keyword table",
	Long: `Check verifies that the static keyword table is sorted, that no word has
two entries competing for the same dialect, and that every dialect view
fits the view capacity.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tracer := trace.FromContext(cmd.Context())
		span := trace.Begin(tracer, trace.ScopePass, "check", 0)
		err := runCheck(cmd.OutOrStdout())
		if err != nil {
			trace.Error(tracer, trace.ScopePass, "check", err)
			span.End("failed")
			return err
		}
		span.End("")
		return nil
	},
}

var checkMasks = []dialect.Mask{
	dialect.C, dialect.CPP, dialect.D, dialect.CS, dialect.Java,
	dialect.OC, dialect.Vala, dialect.Pawn, dialect.ECMA, dialect.All,
}

func runCheck(out io.Writer) error {
	if err := keywords.Verify(); err != nil {
		return err
	}
	ok := color.New(color.FgGreen).Sprint("ok")
	fmt.Fprintf(out, "table   %d entries, sorted, unambiguous  %s\n", len(keywords.Static()), ok)
	for _, mask := range checkMasks {
		v, err := keywords.BuildView(mask)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-6s  %3d/%d keywords  %s\n", mask, v.Len(), keywords.MaxKeywords, ok)
	}
	return nil
}
