package lines

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/source"
)

func TestRegistered(t *testing.T) {
	ctor, err := source.Get("lines")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if _, ok := ctor().(*Source); !ok {
		t.Fatal("registered constructor returned wrong type")
	}
}

func TestRead(t *testing.T) {
	in := "# scenarios for the semi-final\n" +
		"India needs 20 runs in 6 balls\n" +
		"\n" +
		"   \n" +
		"abc\n" +
		"Australia chasing 280, 220/4 after 40 overs"

	got, err := (&Source{}).Read(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	want := []model.RawScenario{
		{Text: "India needs 20 runs in 6 balls", Source: "lines", Line: 2},
		{Text: "abc", Source: "lines", Line: 5},
		{Text: "Australia chasing 280, 220/4 after 40 overs", Source: "lines", Line: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEmpty(t *testing.T) {
	got, err := (&Source{}).Read(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Source{}).Read(ctx, strings.NewReader("one scenario\n"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	long := strings.Repeat("x", maxLineSize+1)
	_, err := (&Source{}).Read(context.Background(), strings.NewReader(long))
	if err == nil {
		t.Fatal("expected error for oversized line")
	}
	if !strings.Contains(err.Error(), "lines source") {
		t.Fatalf("expected error to name the source, got %v", err)
	}
}
