package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hejijunhao/crease/internal/output"
)

func testRecord() output.Record {
	analysis := "This is a knife-edge finish. At just 3%, this is a long shot."
	p := 3
	runs := 20
	return output.Record{
		Line:           1,
		Scenario:       "India needs 20 runs in 6 balls, 2 wickets left",
		Analysis:       &analysis,
		WinProbability: &p,
		Band:           "Long Shot",
		Parsed:         &output.Parsed{Runs: &runs, IsBatting: true},
	}
}

func rejection() output.Record {
	msg := "Please enter a match scenario with enough detail to analyze."
	return output.Record{Line: 2, Scenario: "abc", Error: &msg}
}

func TestOutputCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, JSON, output.Standard, false)
	if err := out.Write(context.Background(), testRecord()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["winProbability"] != float64(3) {
		t.Fatalf("expected winProbability=3, got %v", m["winProbability"])
	}
	if v, ok := m["error"]; !ok || v != nil {
		t.Fatalf("expected error:null, got %v (present=%v)", v, ok)
	}
	if _, ok := m["parsed"]; ok {
		t.Fatal("parsed should be omitted at Standard")
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, JSON, output.Standard, true)
	out.Write(context.Background(), testRecord())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputMinimalOmitsFields(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, JSON, output.Minimal, false)
	out.Write(context.Background(), testRecord())

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, k := range []string{"scenario", "line", "parsed"} {
		if _, ok := m[k]; ok {
			t.Errorf("%s should be omitted at Minimal", k)
		}
	}
	if m["band"] != "Long Shot" {
		t.Errorf("band should be preserved, got %v", m["band"])
	}
}

func TestOutputRejectionJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, JSON, output.Minimal, false)
	out.Write(context.Background(), rejection())

	want := `{"analysis":null,"winProbability":null,"error":"Please enter a match scenario with enough detail to analyze."}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, YAML, output.Full, false)
	ctx := context.Background()
	if err := out.Write(ctx, testRecord()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Write(ctx, rejection()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	dec := yaml.NewDecoder(&buf)
	var docs []map[string]any
	for {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			break
		}
		docs = append(docs, m)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 YAML documents, got %d", len(docs))
	}
	if docs[0]["winProbability"] != 3 {
		t.Errorf("winProbability = %v, want 3", docs[0]["winProbability"])
	}
	parsed, ok := docs[0]["parsed"].(map[string]any)
	if !ok || parsed["runs"] != 20 {
		t.Errorf("parsed = %v, want runs 20", docs[0]["parsed"])
	}
	if docs[1]["error"] == nil || docs[1]["analysis"] != nil {
		t.Errorf("rejection document = %v", docs[1])
	}
}
