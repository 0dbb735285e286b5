package stalkermap

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRawFormatterRendersBytesAndIdleIsDistinct(t *testing.T) {
	f := NewRawFormatter()
	got := f.Format(ResultMap{"x": "y"}, []byte("hello"))
	if !bytes.Equal(got.Data, []byte("hello")) {
		t.Fatalf("Format.Data = %q, want %q", got.Data, "hello")
	}
	if f.IsIdle(got) {
		t.Fatalf("real output must not be idle")
	}
	if !f.IsIdle(f.IdleOutput()) {
		t.Fatalf("IdleOutput must be idle")
	}
	empty := f.Format(nil, nil)
	if f.IsIdle(empty) {
		t.Fatalf("an empty real read must not be mistaken for idle")
	}
}

func TestRawFormatterPreservesNonUTF8Bytes(t *testing.T) {
	f := NewRawFormatter()
	raw := []byte{0xff, 0xfe, 0x00, 0x80, 'o', 'k'}
	got := f.Format(nil, raw)
	if !bytes.Equal(got.Data, raw) {
		t.Fatalf("Format.Data = %v, want byte-for-byte %v (no UTF-8 repair)", got.Data, raw)
	}
}

func TestStructuredFormatterCopiesResultsAndMarksIdle(t *testing.T) {
	f := NewStructuredFormatter()
	src := ResultMap{"IsPortOpen": "open"}
	rec := f.Format(src, []byte("hi"))
	if rec.Data != "hi" || rec.Results["IsPortOpen"] != "open" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	src["IsPortOpen"] = "mutated"
	if rec.Results["IsPortOpen"] != "open" {
		t.Fatalf("Format must copy the result map, got mutation leak: %+v", rec.Results)
	}
	if f.IsIdle(rec) {
		t.Fatalf("real record must not be idle")
	}
	if !f.IsIdle(f.IdleOutput()) {
		t.Fatalf("IdleOutput must be idle")
	}
}

func TestJSONFormatterMatchesWireShape(t *testing.T) {
	f := NewJSONFormatter()
	out := f.Format(ResultMap{"IsPortOpen": "open"}, []byte("banner"))

	var decoded struct {
		HeaderResponse struct {
			ActionsResults map[string]string `json:"actions_results"`
		} `json:"header_response"`
		Data string `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Data != "banner" || decoded.HeaderResponse.ActionsResults["IsPortOpen"] != "open" {
		t.Fatalf("unexpected decoded shape: %+v", decoded)
	}

	idle := f.IdleOutput()
	if idle != `{"type":"idle"}` {
		t.Fatalf("idle output = %q, want %q", idle, `{"type":"idle"}`)
	}
	if !f.IsIdle(idle) || f.IsIdle(out) {
		t.Fatalf("IsIdle misclassified idle=%q real=%q", idle, out)
	}
}
