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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/nthery/enaa/asm"
	"github.com/nthery/enaa/lang/caesar"
	"github.com/nthery/enaa/vm"
)

var (
	debug    bool
	rawBytes bool
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:

	enaa [flags] dis
	enaa [flags] decrypt <file>

Commands:
	dis		print a listing of the built-in decoder program
	decrypt		run the built-in decoder with the file contents as input

Flags:
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, Stack: %v, Aux: %v\n", i.PC, i.Data(), i.Aux())
		fmt.Fprintf(os.Stderr, "Output so far: %q\n", i.Output())
	}
	os.Exit(1)
}

func dis() error {
	if !rawBytes {
		return asm.PrettyPrint(caesar.Decrypter, os.Stdout)
	}
	code, err := asm.Assemble(caesar.Decrypter)
	if err != nil {
		return err
	}
	return asm.DisassembleAll(code, os.Stdout)
}

func decrypt(path string) (*vm.Instance, error) {
	cipher, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading cipher")
	}
	code, err := asm.Assemble(caesar.Decrypter)
	if err != nil {
		return nil, err
	}
	i, err := vm.New(code, vm.Input(strings.NewReader(string(cipher))))
	if err != nil {
		return nil, err
	}
	if err := i.Run(); err != nil {
		return i, err
	}
	fmt.Println(i.Output())
	return i, nil
}

func main() {
	flag.Usage = usage
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&rawBytes, "b", false, "dis: list assembled bytecode instead of the symbolic program")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}
	switch args[0] {
	case "dis":
		atExit(nil, dis())
	case "decrypt":
		if len(args) != 2 {
			usage()
		}
		i, err := decrypt(args[1])
		atExit(i, err)
	default:
		usage()
	}
}
