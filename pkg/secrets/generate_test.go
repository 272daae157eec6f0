/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package secrets

import (
	"regexp"
	"strings"
	"testing"

	"github.com/hostk8s/hostk8s/pkg/contract"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGeneratePassword(t *testing.T) {
	for range 20 {
		v, err := Generate(contract.GeneratePassword, 16)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v) != 16 {
			t.Fatalf("expected 16 characters, got %d (%q)", len(v), v)
		}
		for _, r := range v {
			if !strings.ContainsRune(passwordChars, r) {
				t.Fatalf("character %q outside password set in %q", r, v)
			}
		}
	}
}

func TestGenerateToken(t *testing.T) {
	v, err := Generate(contract.GenerateToken, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(v))
	}
	for _, r := range v {
		if !strings.ContainsRune(alphanumericChars, r) {
			t.Fatalf("character %q outside alphanumeric set in %q", r, v)
		}
	}
}

func TestGenerateHex(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{32, 32},
		{16, 16},
		// Odd lengths round down: length/2 bytes hex-encode to length-1 chars.
		{15, 14},
	}

	for _, tt := range tests {
		v, err := Generate(contract.GenerateHex, tt.length)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v) != tt.want {
			t.Errorf("length %d: expected %d characters, got %d", tt.length, tt.want, len(v))
		}
		if !regexp.MustCompile(`^[0-9a-f]*$`).MatchString(v) {
			t.Errorf("non-hex characters in %q", v)
		}
	}
}

func TestGenerateUUID(t *testing.T) {
	for range 20 {
		v, err := Generate(contract.GenerateUUID, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !uuidV4Pattern.MatchString(v) {
			t.Fatalf("not a lowercase UUIDv4: %q", v)
		}
	}
}

func TestGenerateUnknownStrategy(t *testing.T) {
	if _, err := Generate(contract.GenerateType("base64"), 8); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestGenerateUniqueness(t *testing.T) {
	a, err := Generate(contract.GenerateToken, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(contract.GenerateToken, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("two generated tokens should not collide: %q", a)
	}
}

func TestResolveValuePrecedence(t *testing.T) {
	entry := &contract.DataEntry{
		Key:      "password",
		Value:    "static-value",
		Generate: contract.GeneratePassword,
		Length:   64,
	}

	v, err := Resolve(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "static-value" {
		t.Errorf("value should win over generate, got %q", v)
	}
}

func TestResolveDefaultLength(t *testing.T) {
	v, err := Resolve(&contract.DataEntry{Key: "token", Generate: contract.GenerateToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != contract.DefaultGenerateLength {
		t.Errorf("expected default length %d, got %d", contract.DefaultGenerateLength, len(v))
	}
}

func TestResolveData(t *testing.T) {
	values, err := ResolveData([]contract.DataEntry{
		{Key: "username", Value: "app"},
		{Key: "password", Generate: contract.GeneratePassword, Length: 24},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if values["username"] != "app" {
		t.Errorf("unexpected username: %q", values["username"])
	}
	if len(values["password"]) != 24 {
		t.Errorf("unexpected password length: %d", len(values["password"]))
	}
}
