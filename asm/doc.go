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

// Package asm assembles symbolic enaa VM programs into bytecode and renders
// programs back into readable mnemonic form.
//
// A program is an ordered slice of Insn values. Each instruction carries an
// opcode, optionally a label naming its position, and optionally one
// operand: either a target (a reference to a label defined somewhere in the
// same program) or an immediate byte value. For example, the following loop
// copies its input to its output:
//
//	prog := []asm.Insn{
//		asm.New(vm.OpIn).Label("loop"),
//		asm.New(vm.OpDup),
//		asm.New(vm.OpBne).Target("echo"),
//		asm.New(vm.OpExit),
//		asm.New(vm.OpOut).Label("echo"),
//		asm.New(vm.OpJmp).Target("loop"),
//	}
//	code, err := asm.Assemble(prog)
//
// Assemble resolves every target to the absolute byte offset of its label,
// supporting forward references. Label names are scoped to the program being
// assembled and each may be defined at most once.
//
// There is no textual assembly syntax: programs are built in Go.
// PrettyPrint and Disassemble only go the other way, from a program or its
// bytecode to text, as a debugging aid.
package asm
