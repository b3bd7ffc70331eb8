package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kwclass/internal/keywords"
	"kwclass/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kwclass",
	Short: "Keyword classification for C-family source code",
	Long: `kwclass tells which token category a word denotes in C, C++, C#, D, Java,
Objective-C, Vala, Pawn and ECMAScript, inside or outside preprocessor
directives, with user-defined keywords taking precedence.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

var (
	traceCleanup   = func() {}
	profileCleanup = func() {}
)

func setupRun(cmd *cobra.Command, _ []string) error {
	// самопроверка таблицы до любой классификации
	if err := keywords.CheckTable(); err != nil {
		return err
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readUIMode("color", colorFlag)
	if err != nil {
		return err
	}
	applyColorMode(mode)

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	profileCleanup = stopProfiling
	return nil
}

// main registers subcommands and persistent flags, executes the root
// command and exits with keywords.ExitCode of the returned error.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to kwclass.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().StringArray("keywords", nil, "extra keyword file registering its words as TYPE (repeatable)")
	rootCmd.PersistentFlags().StringArray("keywords-snapshot", nil, "msgpack registry snapshot written by dump --format msgpack (repeatable)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept by the ring tracer")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")

	err := rootCmd.Execute()
	profileCleanup()
	traceCleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kwclass: %v\n", err)
		os.Exit(keywords.ExitCode(err))
	}
}
