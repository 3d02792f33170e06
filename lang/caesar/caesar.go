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

// Package caesar provides the canonical enaa example program: a decoder for
// a rolling Caesar cipher over lowercase ASCII text.
//
// The cipher shifts the first plaintext character back by Seed positions in
// the alphabet, wrapping below 'a', and increases the shift by one for every
// following character, wrapping the shift itself past 25 back to 0. The
// decoder program undoes this: it adds the current shift to each input
// character, folds the result back below 'z', and steps the shift held in
// the auxiliary register.
package caesar

import (
	"github.com/pkg/errors"

	"github.com/nthery/enaa/asm"
	"github.com/nthery/enaa/vm"
)

// Seed is the shift applied to the first character.
const Seed = 4

// Decrypter is the decoder program. It loops reading one character per
// iteration and halts when the input is exhausted (in yields 0).
var Decrypter = []asm.Insn{
	asm.New(vm.OpPush).Value(Seed),
	asm.New(vm.OpPopa),
	asm.New(vm.OpIn).Label("loop"),
	asm.New(vm.OpDup),
	asm.New(vm.OpBne).Target("decode"),
	asm.New(vm.OpExit),
	// decode: add the current shift, wrap past 'z'
	asm.New(vm.OpPusha).Label("decode"),
	asm.New(vm.OpAdd),
	asm.New(vm.OpDup),
	asm.New(vm.OpPush).Value('z'),
	asm.New(vm.OpBle).Target("out"),
	asm.New(vm.OpPush).Value(26),
	asm.New(vm.OpSub),
	// out: emit, then step the shift modulo 26
	asm.New(vm.OpOut).Label("out"),
	asm.New(vm.OpPusha),
	asm.New(vm.OpPush).Value(1),
	asm.New(vm.OpAdd),
	asm.New(vm.OpDup),
	asm.New(vm.OpPush).Value(25),
	asm.New(vm.OpBgt).Target("wrap"),
	asm.New(vm.OpPopa),
	asm.New(vm.OpJmp).Target("loop"),
	asm.New(vm.OpPush).Value(0).Label("wrap"),
	asm.New(vm.OpPopa),
	asm.New(vm.OpJmp).Target("loop"),
}

// Decrypt assembles Decrypter and runs it over cipher, returning the
// recovered plaintext.
func Decrypt(cipher string) (string, error) {
	code, err := asm.Assemble(Decrypter)
	if err != nil {
		return "", errors.Wrap(err, "assembling decrypter")
	}
	out, err := vm.Run(code, cipher)
	if err != nil {
		return "", errors.Wrap(err, "running decrypter")
	}
	return out, nil
}
