// Package encoding packs values into signed msgpack bundles.
//
// A bundle is "payload.signature" where payload is base64url msgpack and
// signature is a truncated HMAC-SHA256 of the msgpack bytes. Bundles are
// readable but tamper-evident.
package encoding

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for bundle decoding.
var (
	ErrEmptyKey         = errors.New("encoding: empty key")
	ErrInvalidFormat    = errors.New("encoding: invalid bundle format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
)

// Encoder signs and verifies bundles with one key.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}, nil
}

// Encode marshals v with msgpack and signs the result.
func (e *Encoder) Encode(v any) ([]byte, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding: marshal: %w", err)
	}
	return e.sign(packed), nil
}

// Decode verifies a bundle and unmarshals its payload into v.
func (e *Encoder) Decode(bundle []byte, v any) error {
	packed, err := e.verify(bytes.TrimSpace(bundle))
	if err != nil {
		return err
	}
	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) []byte {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(data))
	return []byte(b64 + "." + sig)
}

// verify checks the signature and returns the raw payload.
func (e *Encoder) verify(bundle []byte) ([]byte, error) {
	payload, signature, ok := bytes.Cut(bundle, []byte("."))
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(string(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(string(signature))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:16] // 16 bytes = 128 bits
}
