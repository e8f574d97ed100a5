package vterm

// BellSink receives BEL notifications. Grounded on the teacher corpus's
// Provider/Noop pattern (go-headless-term's BellProvider/NoopBell): the
// core never decides how a bell is presented, it only calls the sink.
type BellSink interface {
	Bell()
}

// TitleSink receives OSC 0/1/2 window-title updates.
type TitleSink interface {
	SetTitle(title string)
}

// NoopBell is the default BellSink: silently discards the notification.
type NoopBell struct{}

func (NoopBell) Bell() {}

// NoopTitle is the default TitleSink.
type NoopTitle struct{}

func (NoopTitle) SetTitle(string) {}

// Responder receives bytes the core must write back to the PTY on the
// application's behalf (e.g. a DSR cursor-position report). The core never
// owns the PTY file descriptor itself (internal/ptysession does); this is
// the seam the frontend plugs a real writer into once both the Terminal
// and its Session exist (internal/tui.New, via Terminal.SetResponder).
type Responder interface {
	Respond(data []byte)
}

// NoopResponder discards responses; useful for tests that don't care about
// DSR replies.
type NoopResponder struct{}

func (NoopResponder) Respond([]byte) {}

