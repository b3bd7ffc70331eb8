package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags]",
	Short: "Export the user-defined keywords",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "text", "output format (text|msgpack)")
	dumpCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runDump(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	e, err := loadEnv(cmd, "", dialect.All)
	if err != nil {
		return err
	}

	if output != "" {
		return writeDumpFile(output, e.reg, format)
	}
	return writeDump(cmd.OutOrStdout(), e.reg, format)
}

// writeDumpFile writes the dump to path; a failed Close counts as a failed
// write.
func writeDumpFile(path string, reg *keywords.Registry, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()
	return writeDump(f, reg, format)
}

func writeDump(w io.Writer, reg *keywords.Registry, format string) error {
	switch strings.ToLower(format) {
	case "text":
		return keywords.DumpKeywords(w, reg)
	case "msgpack":
		return keywords.EncodeSnapshot(w, reg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
