// This file is part of enaa - https://github.com/nthery/enaa
//
// Copyright 2026 The enaa authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package caesar_test

import (
	"strings"
	"testing"

	"github.com/nthery/enaa/asm"
	"github.com/nthery/enaa/lang/caesar"
)

// encrypt applies the rolling cipher the decoder undoes: shift each
// character back in the alphabet, starting at Seed and increasing the shift
// by one per character modulo 26.
func encrypt(plain string) string {
	shift := caesar.Seed
	b := []byte(plain)
	for k, c := range b {
		b[k] = 'a' + byte((int(c-'a')-shift+26)%26)
		shift = (shift + 1) % 26
	}
	return string(b)
}

func TestDecrypt(t *testing.T) {
	// long enough for the shift to wrap past 25
	plain := "thequickbrownfoxjumpsoverthelazydog"
	cipher := encrypt(plain)
	if cipher == plain {
		t.Fatalf("encrypt is the identity on %q", plain)
	}
	got, err := caesar.Decrypt(cipher)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got != plain {
		t.Errorf("expected %q, got %q", plain, got)
	}
}

func TestDecrypt_wrapAroundZ(t *testing.T) {
	// 'w' + Seed lands past 'z': exercises the fold-back branch.
	got, err := caesar.Decrypt("w")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
}

// The decoder halts as soon as in reports end of input.
func TestDecrypt_empty(t *testing.T) {
	got, err := caesar.Decrypt("")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestDecrypter_assembles(t *testing.T) {
	code, err := asm.Assemble(caesar.Decrypter)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	var want int
	for _, n := range caesar.Decrypter {
		want += n.Op().Size()
	}
	if len(code) != want {
		t.Errorf("expected %d bytes, got %d", want, len(code))
	}
}

func TestDecrypter_listing(t *testing.T) {
	var b strings.Builder
	if err := asm.PrettyPrint(caesar.Decrypter, &b); err != nil {
		t.Fatalf("%+v", err)
	}
	if n := strings.Count(b.String(), "\n"); n != len(caesar.Decrypter) {
		t.Errorf("expected %d lines, got %d", len(caesar.Decrypter), n)
	}
	for _, label := range []string{"loop:", "decode:", "out:", "wrap:"} {
		if !strings.Contains(b.String(), label) {
			t.Errorf("listing is missing label %q", label)
		}
	}
}
