package driver

import "time"

// Stage describes a scan pipeline phase.
type Stage string

const (
	// StageLoad covers reading and decoding source files.
	StageLoad Stage = "load"
	// StageExtract covers lifting logical directive lines out of files.
	StageExtract Stage = "extract"
	// StageParse covers parsing extracted directives.
	StageParse Stage = "parse"
	// StageCache covers serving a file from the scan cache.
	StageCache Stage = "cache"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates a worker is on the file.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the file produced errors.
	StatusError Status = "error"
)

// Event reports progress for a file, or for the overall scan when File
// is empty.
type Event struct {
	File       string
	Stage      Stage
	Status     Status
	Err        error
	Elapsed    time.Duration
	FromCache  bool
	Directives int
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func (o Options) emit(evt Event) {
	if o.Sink != nil {
		o.Sink.OnEvent(evt)
	}
}

func (o Options) observe(evt PhaseEvent) {
	if o.Observer != nil {
		o.Observer(evt)
	}
}
