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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/nthery/enaa/asm"
	"github.com/nthery/enaa/vm"
)

// The smallest program producing output: push a code point, emit it, halt.
func ExampleRun() {
	code, err := asm.Assemble([]asm.Insn{
		asm.New(vm.OpPush).Value('a'),
		asm.New(vm.OpOut),
		asm.New(vm.OpExit),
	})
	if err != nil {
		panic(err)
	}
	out, err := vm.Run(code, "any input, ignored")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// a
}

// An echo loop: copy the input stream to the output until the end-of-input
// value 0 comes up.
func ExampleInstance_Run() {
	code, err := asm.Assemble([]asm.Insn{
		asm.New(vm.OpIn).Label("loop"),
		asm.New(vm.OpDup),
		asm.New(vm.OpBne).Target("echo"),
		asm.New(vm.OpExit),
		asm.New(vm.OpOut).Label("echo"),
		asm.New(vm.OpJmp).Target("loop"),
	})
	if err != nil {
		panic(err)
	}
	i, err := vm.New(code, vm.Input(strings.NewReader("hello")))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Output())
	fmt.Println(i.InstructionCount())

	// Output:
	// hello
	// 29
}
