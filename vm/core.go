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

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	errUnderflow = errors.New("stack underflow")
	errTruncated = errors.New("truncated operand")
)

// arg returns the operand byte of the instruction at the current PC.
func (i *Instance) arg() int {
	if i.PC+1 >= len(i.code) {
		panic(errTruncated)
	}
	return int(i.code[i.PC+1])
}

// Run starts execution of the VM at the current PC and returns when an Exit
// instruction is reached or a runtime error occurs.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "pc=%d/%d, stack %d", i.PC, len(i.code), len(i.data))
			default:
				panic(e)
			}
		}
	}()
	i.insCount = 0
	for {
		if i.PC >= len(i.code) {
			return errors.Errorf("pc %d out of range 0..%d", i.PC, len(i.code)-1)
		}
		op := Opcode(i.code[i.PC])
		switch op {
		case OpIn:
			r, _, err := i.input.ReadRune()
			if err == io.EOF {
				r = 0 // end-of-input value, not an error
			} else if err != nil {
				return errors.Wrapf(err, "pc=%d: reading input", i.PC)
			}
			i.Push(Word(r))
			i.PC++
		case OpOut:
			v := i.pop()
			if !utf8.ValidRune(rune(v)) {
				return errors.Errorf("pc=%d: invalid code point %d", i.PC, v)
			}
			i.output.WriteRune(rune(v))
			i.PC++
		case OpDup:
			if len(i.data) == 0 {
				return errors.Wrapf(errUnderflow, "pc=%d: dup", i.PC)
			}
			i.Push(i.data[len(i.data)-1])
			i.PC++
		case OpAdd:
			y, x := i.pop(), i.pop()
			i.Push(x + y)
			i.PC++
		case OpSub:
			y, x := i.pop(), i.pop()
			i.Push(x - y)
			i.PC++
		case OpBne:
			if a := i.arg(); i.pop() != 0 {
				i.PC = a
			} else {
				i.PC += 2
			}
		case OpBlt:
			if a, y, x := i.arg(), i.pop(), i.pop(); x < y {
				i.PC = a
			} else {
				i.PC += 2
			}
		case OpBgt:
			if a, y, x := i.arg(), i.pop(), i.pop(); x > y {
				i.PC = a
			} else {
				i.PC += 2
			}
		case OpBle:
			if a, y, x := i.arg(), i.pop(), i.pop(); x <= y {
				i.PC = a
			} else {
				i.PC += 2
			}
		case OpBeq:
			if a, y, x := i.arg(), i.pop(), i.pop(); x == y {
				i.PC = a
			} else {
				i.PC += 2
			}
		case OpExit:
			i.insCount++
			return nil
		case OpPush:
			i.Push(Word(i.arg()))
			i.PC += 2
		case OpJmp:
			i.PC = i.arg()
		case OpPusha:
			i.Push(i.aux)
			i.PC++
		case OpPopa:
			i.aux = i.pop()
			i.PC++
		default:
			return errors.Errorf("pc=%d: invalid opcode %d", i.PC, byte(op))
		}
		i.insCount++
	}
}

// Run executes the given program with input as the character stream consumed
// by In, and returns the accumulated output. The program must not be empty.
//
// On error no output is returned, even if some characters had already been
// emitted.
func Run(code []byte, input string) (string, error) {
	i, err := New(code, Input(strings.NewReader(input)))
	if err != nil {
		return "", err
	}
	if err := i.Run(); err != nil {
		return "", err
	}
	return i.Output(), nil
}
