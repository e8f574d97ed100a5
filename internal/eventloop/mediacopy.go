package eventloop

import "github.com/quietvt/vterm/internal/vterm"

// MediaCopyKind identifies which ANSI Media Copy (MC) request a piped-stdin
// stream asked for (spec.md §4.6 Media Copy interception).
type MediaCopyKind int

const (
	// MediaCopySnapshot is ESC[5i: capture the current visible grid.
	MediaCopySnapshot MediaCopyKind = iota
	// MediaCopyPrintStyled is ESC[4i: "print" the screen with attributes.
	MediaCopyPrintStyled
	// MediaCopyPrintPlain is ESC[4;0i: "print" the screen as plain text.
	MediaCopyPrintPlain
)

// SnapshotSink receives intercepted Media Copy requests. The event loop
// never forwards these three sequences to the PTY; it calls Capture
// instead and drops the bytes.
type SnapshotSink interface {
	Capture(kind MediaCopyKind, snap vterm.Snapshot)
}

// NoopSnapshotSink discards Media Copy requests.
type NoopSnapshotSink struct{}

func (NoopSnapshotSink) Capture(MediaCopyKind, vterm.Snapshot) {}

// maxMediaCopyBuf bounds an in-flight escape sequence; a run of garbage
// bytes that never reaches a final byte is flushed through rather than
// buffered forever.
const maxMediaCopyBuf = 64

type mcState int

const (
	mcNormal mcState = iota
	mcEsc
	mcCSI
)

// MediaCopyFilter scans bytes read from piped stdin for ESC[5i, ESC[4i and
// ESC[4;0i, in up-to-256-byte chunks per spec.md §4.6 step 3. Matches are
// intercepted (routed to the sink) rather than forwarded to the PTY; every
// other byte, including any other escape sequence, passes through
// unmodified. The scanner carries state across Filter calls so a sequence
// split across two reads is still recognized.
type MediaCopyFilter struct {
	state mcState
	buf   []byte
	term  *vterm.Terminal
	sink  SnapshotSink
}

// NewMediaCopyFilter grounds captured snapshots in term and routes
// intercepted requests to sink.
func NewMediaCopyFilter(term *vterm.Terminal, sink SnapshotSink) *MediaCopyFilter {
	if sink == nil {
		sink = NoopSnapshotSink{}
	}
	return &MediaCopyFilter{term: term, sink: sink}
}

// Filter returns data with any Media Copy request sequences removed.
func (f *MediaCopyFilter) Filter(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch f.state {
		case mcNormal:
			if b == 0x1B {
				f.state = mcEsc
				f.buf = append(f.buf[:0], b)
				continue
			}
			out = append(out, b)
		case mcEsc:
			f.buf = append(f.buf, b)
			if b == '[' {
				f.state = mcCSI
			} else {
				out = append(out, f.buf...)
				f.state = mcNormal
			}
		case mcCSI:
			f.buf = append(f.buf, b)
			if b >= 0x40 && b <= 0x7E {
				if b == 'i' && f.dispatch() {
					// intercepted, drop the bytes
				} else {
					out = append(out, f.buf...)
				}
				f.state = mcNormal
			} else if len(f.buf) >= maxMediaCopyBuf {
				out = append(out, f.buf...)
				f.state = mcNormal
			}
		}
	}
	return out
}

// dispatch inspects a complete ESC [ params 'i' sequence in f.buf and
// routes recognized Media Copy params to the sink. Returns true if the
// sequence was a Media Copy request (and should be dropped).
func (f *MediaCopyFilter) dispatch() bool {
	params := string(f.buf[2 : len(f.buf)-1])
	var kind MediaCopyKind
	switch params {
	case "5":
		kind = MediaCopySnapshot
	case "4":
		kind = MediaCopyPrintStyled
	case "4;0":
		kind = MediaCopyPrintPlain
	default:
		return false
	}
	f.sink.Capture(kind, f.term.Snapshot())
	return true
}
