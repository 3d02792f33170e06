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
	"github.com/pkg/errors"

	"github.com/nthery/enaa/vm"
)

// operand kinds
const (
	operandNone = iota
	operandTarget
	operandValue
)

// Insn is a single symbolic instruction: an opcode with an optional label
// naming its position and an optional operand. Insn values are built by
// chaining New with Label, Target or Value:
//
//	asm.New(vm.OpPush).Value(4)
//	asm.New(vm.OpIn).Label("loop")
//	asm.New(vm.OpJmp).Target("loop")
type Insn struct {
	label   string
	op      vm.Opcode
	operand int
	target  string
	value   byte
}

// New returns an instruction with the given opcode, no label and no operand.
func New(op vm.Opcode) Insn {
	return Insn{op: op}
}

// Label returns n carrying a label definition for its position.
func (n Insn) Label(name string) Insn {
	n.label = name
	return n
}

// Target returns n with the named label as jump target operand.
func (n Insn) Target(name string) Insn {
	n.operand = operandTarget
	n.target = name
	return n
}

// Value returns n with v as immediate operand.
func (n Insn) Value(v byte) Insn {
	n.operand = operandValue
	n.value = v
	return n
}

// Op returns the instruction's opcode.
func (n Insn) Op() vm.Opcode {
	return n.op
}

// reloc is an operand byte at offset awaiting the address of label.
type reloc struct {
	label  string
	offset int
}

// maxAddr is the largest program offset a one-byte jump operand can encode.
const maxAddr = 255

func checkOperand(n Insn) error {
	if !n.op.Valid() {
		return errors.Errorf("invalid opcode %d", byte(n.op))
	}
	switch {
	case n.op.Size() == 1 && n.operand != operandNone:
		return errors.Errorf("%v takes no operand", n.op)
	case n.op.Size() == 2 && n.operand == operandNone:
		return errors.Errorf("%v requires an operand", n.op)
	case n.op == vm.OpPush && n.operand == operandTarget:
		return errors.Errorf("push requires an immediate operand")
	}
	return nil
}

// Assemble encodes the given program into runnable bytecode, resolving label
// references to absolute byte offsets.
//
// Encoding is done in two passes: a single forward pass emits opcode and
// operand bytes, records the offset of every label definition and leaves a
// relocation behind for every target operand; a second pass then patches
// each relocation with the offset of its label. Forward references are
// therefore fine.
//
// Assemble fails, returning no bytecode, if a target references an undefined
// label, a label is defined twice, an operand does not match its opcode's
// arity, or a referenced label lands past offset 255 (one-byte jump operands
// cannot reach further).
func Assemble(prog []Insn) ([]byte, error) {
	labels := make(map[string]int)
	var relocs []reloc
	code := make([]byte, 0, 2*len(prog))

	for _, n := range prog {
		if err := checkOperand(n); err != nil {
			return nil, err
		}
		if n.label != "" {
			if _, ok := labels[n.label]; ok {
				return nil, errors.Errorf("duplicate label %q", n.label)
			}
			labels[n.label] = len(code)
		}
		code = append(code, byte(n.op))
		switch n.operand {
		case operandTarget:
			relocs = append(relocs, reloc{n.target, len(code)})
			code = append(code, 0)
		case operandValue:
			code = append(code, n.value)
		}
	}

	for _, r := range relocs {
		addr, ok := labels[r.label]
		if !ok {
			return nil, errors.Errorf("undefined label %q", r.label)
		}
		if addr > maxAddr {
			return nil, errors.Errorf("label %q at offset %d is out of jump range", r.label, addr)
		}
		code[r.offset] = byte(addr)
	}

	return code, nil
}
