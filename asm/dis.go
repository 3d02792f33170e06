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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nthery/enaa/internal/eni"
	"github.com/nthery/enaa/vm"
)

// PrettyPrint writes a listing of the symbolic program to w, one line per
// instruction in program order: the label definition (if any) followed by a
// tab, the opcode mnemonic and the operand (target label name or decimal
// immediate). The output is meant for human inspection; nothing re-parses
// it.
func PrettyPrint(prog []Insn, w io.Writer) error {
	ew := eni.NewErrWriter(w)
	for _, n := range prog {
		if n.label != "" {
			ew.WriteString(n.label)
			ew.WriteByte(':')
		}
		ew.WriteByte('\t')
		ew.WriteString(n.op.String())
		switch n.operand {
		case operandTarget:
			ew.WriteByte(' ')
			ew.WriteString(n.target)
		case operandValue:
			ew.WriteByte(' ')
			ew.WriteString(strconv.Itoa(int(n.value)))
		}
		ew.WriteByte('\n')
	}
	return ew.Err
}

// Disassemble writes a disassembly of the instruction at offset pc in the
// given bytecode to w and returns the offset of the next instruction along
// with any write error. Operand bytes are rendered as decimal numbers; a
// missing trailing operand is rendered as "???".
func Disassemble(code []byte, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*eni.ErrWriter)
	if ew == nil {
		ew = eni.NewErrWriter(w)
	}

	op := vm.Opcode(code[pc])
	ew.WriteString(op.String())
	pc++
	if op.Valid() && op.Size() == 2 {
		if pc < len(code) {
			ew.WriteByte(' ')
			ew.WriteString(strconv.Itoa(int(code[pc])))
			return pc + 1, ew.Err
		}
		ew.WriteString(" ???")
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of the whole bytecode program to w,
// prefixing each instruction with its byte offset. It will return any write
// error.
func DisassembleAll(code []byte, w io.Writer) error {
	ew := eni.NewErrWriter(w)
	for pc := 0; pc < len(code); {
		fmt.Fprintf(ew, "% 4d\t", pc)
		pc, _ = Disassemble(code, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
