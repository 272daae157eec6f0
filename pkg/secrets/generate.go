/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/hostk8s/hostk8s/pkg/contract"
)

// Character sets for the generate strategies. These match the sets the
// provisioning shell tooling historically used, so regenerated stacks keep
// producing values existing consumers accept.
const (
	alphanumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordChars     = alphanumericChars + "!@#$%^&*"
)

// Generate produces a random secret value using the given strategy. Length
// is ignored by the uuid strategy; hex encodes length/2 random bytes, so an
// odd length yields length-1 characters.
func Generate(strategy contract.GenerateType, length int) (string, error) {
	switch strategy {
	case contract.GeneratePassword:
		return randomString(passwordChars, length)
	case contract.GenerateToken:
		return randomString(alphanumericChars, length)
	case contract.GenerateHex:
		buf := make([]byte, length/2)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate hex value: %w", err)
		}
		return hex.EncodeToString(buf), nil
	case contract.GenerateUUID:
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("failed to generate uuid: %w", err)
		}
		return strings.ToLower(id.String()), nil
	default:
		return "", fmt.Errorf("unknown generate strategy %q", strategy)
	}
}

// Resolve produces the value for one data entry. A static value wins over a
// generate strategy when both are set.
func Resolve(entry *contract.DataEntry) (string, error) {
	if entry.Value != "" {
		return entry.Value, nil
	}

	length := entry.Length
	if length <= 0 {
		length = contract.DefaultGenerateLength
	}
	return Generate(entry.Generate, length)
}

// ResolveData resolves every entry of a secret into a flat key/value map
// ready for Vault.
func ResolveData(data []contract.DataEntry) (map[string]string, error) {
	values := make(map[string]string, len(data))
	for i := range data {
		v, err := Resolve(&data[i])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", data[i].Key, err)
		}
		values[data[i].Key] = v
	}
	return values, nil
}

func randomString(charset string, length int) (string, error) {
	max := big.NewInt(int64(len(charset)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random value: %w", err)
		}
		b[i] = charset[n.Int64()]
	}
	return string(b), nil
}
