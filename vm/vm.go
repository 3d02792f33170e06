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
)

// Word is the raw type stored in a data stack slot and in the auxiliary
// register.
type Word uint32

const defaultDataSize = 16

// Instance represents an enaa VM instance.
//
// An Instance owns its stack, auxiliary register and output buffer
// exclusively; the program passed to New is borrowed and never written to.
// Instances are not meant to be reused across runs: create a new one per
// execution.
type Instance struct {
	PC       int // Program Counter (byte offset into the program)
	code     []byte
	data     []Word
	aux      Word
	input    io.RuneReader
	output   strings.Builder
	insCount int64
}

// Option interface
type Option func(*Instance) error

// DataSize sets the initial capacity of the data stack, in words. This is a
// performance hint only: the stack grows as needed. The default is 16 words.
func DataSize(size int) Option {
	return func(i *Instance) error {
		if size < len(i.data) {
			size = len(i.data)
		}
		d := make([]Word, len(i.data), size)
		copy(d, i.data)
		i.data = d
		return nil
	}
}

// Input sets the reader the In instruction consumes characters from. The
// default is an empty input, for which In always yields the end-of-input
// value 0.
func Input(r io.RuneReader) Option {
	return func(i *Instance) error {
		i.input = r
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new enaa Virtual Machine instance executing the given
// program.
//
// The code parameter is the bytecode to run, usually built with the asm
// package. The VM treats it as read-only.
//
// Options will be set by calling SetOptions.
func New(code []byte, opts ...Option) (*Instance, error) {
	i := &Instance{
		code:  code,
		input: strings.NewReader(""),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.data == nil {
		i.data = make([]Word, 0, defaultDataSize)
	}
	return i, nil
}

// Data returns the data stack, bottom first. Note that value changes will be
// reflected in the instance's stack, but re-slicing will not affect it.
func (i *Instance) Data() []Word {
	return i.data
}

// Depth returns the data stack depth.
func (i *Instance) Depth() int {
	return len(i.data)
}

// Aux returns the value of the auxiliary register.
func (i *Instance) Aux() Word {
	return i.aux
}

// Output returns the characters accumulated by Out so far.
func (i *Instance) Output() string {
	return i.output.String()
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Push pushes the argument on top of the data stack.
func (i *Instance) Push(v Word) {
	i.data = append(i.data, v)
}

func (i *Instance) pop() Word {
	l := len(i.data)
	if l == 0 {
		panic(errUnderflow)
	}
	v := i.data[l-1]
	i.data = i.data[:l-1]
	return v
}
