package eventloop

import (
	"testing"

	"github.com/quietvt/vterm/internal/vterm"
)

type recordingSink struct {
	kinds []MediaCopyKind
}

func (r *recordingSink) Capture(kind MediaCopyKind, _ vterm.Snapshot) {
	r.kinds = append(r.kinds, kind)
}

func TestMediaCopyFilter_InterceptsKnownSequences(t *testing.T) {
	term := vterm.New(5, 10)
	sink := &recordingSink{}
	f := NewMediaCopyFilter(term, sink)

	in := []byte("abc\x1b[5idef\x1b[4ighi\x1b[4;0ijkl")
	out := f.Filter(in)

	if string(out) != "abcdefghijkl" {
		t.Fatalf("Filter output = %q, want %q", out, "abcdefghijkl")
	}
	want := []MediaCopyKind{MediaCopySnapshot, MediaCopyPrintStyled, MediaCopyPrintPlain}
	if len(sink.kinds) != len(want) {
		t.Fatalf("sink captured %d requests, want %d", len(sink.kinds), len(want))
	}
	for i, k := range want {
		if sink.kinds[i] != k {
			t.Fatalf("sink.kinds[%d] = %v, want %v", i, sink.kinds[i], k)
		}
	}
}

func TestMediaCopyFilter_PassesThroughOtherCSI(t *testing.T) {
	term := vterm.New(5, 10)
	f := NewMediaCopyFilter(term, NoopSnapshotSink{})

	in := []byte("x\x1b[2Jy\x1b[12iz")
	out := f.Filter(in)
	if string(out) != string(in) {
		t.Fatalf("Filter output = %q, want unchanged %q", out, in)
	}
}

func TestMediaCopyFilter_UnterminatedSequenceIsBounded(t *testing.T) {
	term := vterm.New(5, 10)
	f := NewMediaCopyFilter(term, NoopSnapshotSink{})

	garbage := make([]byte, 0, 2+maxMediaCopyBuf*2)
	garbage = append(garbage, 0x1B, '[')
	for i := 0; i < maxMediaCopyBuf*2; i++ {
		garbage = append(garbage, '0')
	}
	out := f.Filter(garbage)
	if len(out) == 0 {
		t.Fatal("expected an unterminated CSI run to eventually flush through")
	}
}

func TestMediaCopyFilter_SplitAcrossCalls(t *testing.T) {
	term := vterm.New(5, 10)
	sink := &recordingSink{}
	f := NewMediaCopyFilter(term, sink)

	out1 := f.Filter([]byte("a\x1b[5"))
	out2 := f.Filter([]byte("ib"))

	if string(out1)+string(out2) != "ab" {
		t.Fatalf("got %q+%q, want ab", out1, out2)
	}
	if len(sink.kinds) != 1 || sink.kinds[0] != MediaCopySnapshot {
		t.Fatalf("sink.kinds = %v, want one MediaCopySnapshot", sink.kinds)
	}
}
