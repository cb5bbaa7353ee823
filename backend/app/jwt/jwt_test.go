package jwtutil

import (
	"errors"
	"testing"

	"inkwell/backend/app/errs"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("test-secret"), Issuer: "inkwell", ExpHours: 24}
	token, err := s.Sign("alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	username, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if username != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", username, "alice")
	}
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("test-secret"), Issuer: "inkwell", ExpHours: -1}
	token, err := s.Sign("alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	_, err = s.Parse(token)
	if !errors.Is(err, errs.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseWrongKey(t *testing.T) {
	t.Parallel()

	signer := &Signer{Secret: []byte("right-key"), Issuer: "inkwell", ExpHours: 1}
	token, err := signer.Sign("alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	verifier := &Signer{Secret: []byte("wrong-key"), Issuer: "inkwell", ExpHours: 1}
	_, err = verifier.Parse(token)
	if !errors.Is(err, errs.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong key, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("k"), Issuer: "inkwell", ExpHours: 1}
	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb"} {
		if _, err := s.Parse(tok); !errors.Is(err, errs.ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
