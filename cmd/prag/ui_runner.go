package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"prag/internal/driver"
	"prag/internal/ui"
)

type scanOutcome struct {
	result *driver.ScanResult
	err    error
}

func runScanWithUI(ctx context.Context, title string, files []string, root string, opts driver.Options) (*driver.ScanResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.Scan(ctx, root, opts)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
