package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/ByLCY/typeset/typeset"
)

func word(w float64) *typeset.Box { return typeset.NewRule(w, 10, 0) }

func TestTypesetAllRunsJobsConcurrentlyAndPreservesOrder(t *testing.T) {
	cfg := typeset.Paragraph{HSize: 40, Tolerance: 200, LinePenalty: 10, AdjDemerits: 10000}
	space := typeset.Glue{Space: 5, Stretch: 2, Shrink: 2}
	jobs := []Job{
		{Name: "a", HList: typeset.List{word(10), &space, word(10)}, Config: cfg},
		{Name: "b", HList: typeset.List{word(20), &space, word(20)}, Config: cfg},
	}
	results, err := TypesetAll(context.Background(), jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].Name != "a" || results[1].Name != "b" {
		t.Fatalf("results out of order: %+v", results)
	}
	for _, r := range results {
		if len(r.VList) == 0 {
			t.Errorf("job %s produced an empty vlist", r.Name)
		}
	}
}

func TestTypesetAllSurfacesFirstError(t *testing.T) {
	cfg := typeset.Paragraph{HSize: 5, Tolerance: 200}
	jobs := []Job{
		{Name: "infeasible", HList: typeset.List{word(50)}, Config: cfg},
	}
	_, err := TypesetAll(context.Background(), jobs)
	if !errors.Is(err, typeset.ErrCannotTypeset) {
		t.Fatalf("expected ErrCannotTypeset, got %v", err)
	}
}
