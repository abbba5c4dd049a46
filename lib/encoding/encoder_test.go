package encoding

import (
	"bytes"
	"errors"
	"testing"
)

type testDoc struct {
	Name  string         `msgpack:"name"`
	Items []string       `msgpack:"items"`
	Class any            `msgpack:"class"`
	Flags map[string]any `msgpack:"flags"`
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}

	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-sign!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}

	if _, err := NewEncoder(nil); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("NewEncoder(nil) error = %v, want ErrEmptyKey", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := testDoc{
		Name:  "Button",
		Items: []string{"a", "b"},
		Class: []any{"btn", "btn--lg"},
		Flags: map[string]any{"on": true},
	}

	bundle, err := enc.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Contains(bundle, []byte(".")) {
		t.Errorf("bundle %q has no signature separator", bundle)
	}

	var decoded testDoc
	if err := enc.Decode(append(bundle, '\n'), &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Name != original.Name || len(decoded.Items) != 2 || decoded.Items[1] != "b" {
		t.Errorf("decoded = %+v", decoded)
	}
	class, ok := decoded.Class.([]any)
	if !ok || len(class) != 2 || class[0] != "btn" {
		t.Errorf("decoded class = %#v", decoded.Class)
	}
	if decoded.Flags["on"] != true {
		t.Errorf("decoded flags = %#v", decoded.Flags)
	}
}

func TestDecodeTampered(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	bundle, err := enc.Encode(testDoc{Name: "x"})
	if err != nil {
		t.Fatal(err)
	}

	other, _ := NewEncoder([]byte("other-key"))
	var out testDoc
	if err := other.Decode(bundle, &out); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode with wrong key error = %v, want ErrSignatureInvalid", err)
	}

	tampered := append([]byte("A"), bundle...)
	if err := enc.Decode(tampered, &out); err == nil {
		t.Error("Decode of tampered bundle succeeded")
	}
}

func TestDecodeInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name   string
		bundle string
	}{
		{"no separator", "abc"},
		{"bad payload", "!!!.abc"},
		{"bad signature", "YWJj.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out testDoc
			err := enc.Decode([]byte(tt.bundle), &out)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}
