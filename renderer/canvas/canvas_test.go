package canvas

import (
	"testing"

	"github.com/ByLCY/typeset/typeset"
)

func TestRenderProducesPDFBytes(t *testing.T) {
	line := typeset.HBox(typeset.List{typeset.NewRule(10, 5, 1)}, 10)
	var vlist typeset.List
	prevDepth := 0.0
	typeset.PushBack(&vlist, line, &prevDepth, typeset.Glue{Space: 12}, typeset.Glue{Space: 1}, 0)

	r := NewRenderer()
	if err := r.Render(vlist); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Bytes()) == 0 {
		t.Fatal("expected non-empty PDF bytes")
	}
	// A PDF stream always starts with the file signature.
	if got := string(r.Bytes()[:5]); got != "%PDF-" {
		t.Errorf("expected PDF signature, got %q", got)
	}
}

func TestRenderRejectsEmptyList(t *testing.T) {
	r := NewRenderer()
	if err := r.Render(nil); err == nil {
		t.Fatal("expected an error for an empty vertical list")
	}
}
