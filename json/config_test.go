package json

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
)

func TestDefaultConfigKeepsPatternsReadable(t *testing.T) {
	payload := map[string]string{"pattern": `(?<=a)b`}

	got, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	const want = `{"pattern":"(?<=a)b"}`
	if string(got) != want {
		t.Fatalf("marshal = %q, want %q", string(got), want)
	}
}

func TestSetConfigUpdatesAPI(t *testing.T) {
	t.Cleanup(func() {
		SetConfig(&DefaultConfig)
	})

	payload := map[string]string{"value": "<tag>"}

	SetConfig(&sonic.Config{
		EscapeHTML:       true,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
	})

	escaped, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal after SetConfig returned error: %v", err)
	}
	const want = "{\"value\":\"\\u003ctag\\u003e\"}"
	if string(escaped) != want {
		t.Fatalf("marshal after SetConfig = %q, want %q", string(escaped), want)
	}
}

func TestDecodeIntoAny(t *testing.T) {
	var v any
	if err := Unmarshal([]byte(`{"steps":["digit",{"backreference":1}]}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	steps, ok := m["steps"].([]any)
	if !ok || len(steps) != 2 || steps[0] != "digit" {
		t.Fatalf("unexpected steps: %#v", m["steps"])
	}
}

func TestEncoderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(map[string]int{"n": 3}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out map[string]int
	if err := NewDecoder(&buf).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["n"] != 3 {
		t.Fatalf("decode = %v", out)
	}
}
