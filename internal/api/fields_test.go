package api

import (
	"strings"
	"testing"

	"github.com/joestump/content-genius/internal/llm"
)

func TestDecodeFields_PreservesOrder(t *testing.T) {
	body := `{"contentType":"blog-post","topic":"cats","aiModel":"GPT-4","length":200,"draft":true,"notes":null,"tags":[ "a", "b" ]}`

	fields, err := decodeFields(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodeFields: %v", err)
	}

	want := llm.Fields{
		{Key: "contentType", Value: "blog-post"},
		{Key: "topic", Value: "cats"},
		{Key: "aiModel", Value: "GPT-4"},
		{Key: "length", Value: "200"},
		{Key: "draft", Value: "true"},
		{Key: "notes", Value: "null"},
		{Key: "tags", Value: `["a","b"]`},
	}
	if len(fields) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(fields), len(want), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
		}
	}
}

func TestDecodeFields_RepeatedKeyLastValueWins(t *testing.T) {
	body := `{"contentType":"blog-post","topic":"first","tone":"dry","topic":"last","contentType":"social-media"}`

	fields, err := decodeFields(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodeFields: %v", err)
	}

	want := llm.Fields{
		{Key: "contentType", Value: "social-media"},
		{Key: "topic", Value: "last"},
		{Key: "tone", Value: "dry"},
	}
	if len(fields) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(fields), len(want), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
		}
	}
}

func TestDecodeFields_KeepsNumberText(t *testing.T) {
	fields, err := decodeFields(strings.NewReader(`{"length": 1.50e3}`))
	if err != nil {
		t.Fatalf("decodeFields: %v", err)
	}
	if v, _ := fields.Get("length"); v != "1.50e3" {
		t.Errorf("length = %q, want %q", v, "1.50e3")
	}
}

func TestDecodeFields_Rejects(t *testing.T) {
	for _, body := range []string{``, `[]`, `"x"`, `{"a":}`, `{"a":"b"`} {
		if _, err := decodeFields(strings.NewReader(body)); err == nil {
			t.Errorf("decodeFields(%q): expected error", body)
		}
	}
}

func TestDecodeFields_EmptyObject(t *testing.T) {
	fields, err := decodeFields(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("decodeFields: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("fields = %v, want none", fields)
	}
}
