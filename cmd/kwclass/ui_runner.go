package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"kwclass/internal/driver"
	"kwclass/internal/ui"
)

type scanOutcome struct {
	report *driver.Report
	err    error
}

func runScanWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.Report, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		rep, err := driver.Scan(ctx, files, opts)
		outcomeCh <- scanOutcome{report: rep, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the workers from blocking on a full channel
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
