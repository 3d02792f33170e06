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

package vm

import "strconv"

// Opcode is a single instruction kind. The constant values below are the wire
// encoding: an Opcode is stored as one byte in a program, optionally followed
// by one operand byte (see Size).
//
// Adding an opcode requires updating opNames, Size and the dispatch switch in
// Run together.
type Opcode byte

// enaa Virtual Machine opcodes.
const (
	OpIn    Opcode = iota // push code point of next input char, 0 at end of input
	OpOut                 // pop code point, append to output
	OpDup                 // duplicate top of stack
	OpAdd                 // pop y, pop x, push x+y
	OpSub                 // pop y, pop x, push x-y
	OpBne                 // pop x, jump if x != 0
	OpBlt                 // pop y, pop x, jump if x < y
	OpExit                // halt
	OpPush                // push operand byte
	OpJmp                 // unconditional jump
	OpBeq                 // pop y, pop x, jump if x == y
	OpPusha               // push aux register
	OpPopa                // pop into aux register
	OpBgt                 // pop y, pop x, jump if x > y
	OpBle                 // pop y, pop x, jump if x <= y

	opCount
)

var opNames = [...]string{
	"in",
	"out",
	"dup",
	"add",
	"sub",
	"bne",
	"blt",
	"exit",
	"push",
	"jmp",
	"beq",
	"pusha",
	"popa",
	"bgt",
	"ble",
}

// Valid reports whether op is a defined opcode.
func (op Opcode) Valid() bool {
	return op < opCount
}

// Size returns the encoded size of op and its operand in bytes: 2 for
// instructions carrying an operand byte, 1 otherwise.
func (op Opcode) Size() int {
	switch op {
	case OpBne, OpBlt, OpBgt, OpBle, OpBeq, OpJmp, OpPush:
		return 2
	}
	return 1
}

// String returns the canonical mnemonic for op. Undefined opcode values are
// rendered numerically.
func (op Opcode) String() string {
	if !op.Valid() {
		return "invalid:" + strconv.Itoa(int(op))
	}
	return opNames[op]
}
