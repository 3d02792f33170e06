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

// Command enaa runs the built-in rolling Caesar decoder on the enaa virtual
// machine.
//
// Usage:
//
//	enaa [flags] dis
//	enaa [flags] decrypt <file>
//
// The dis command prints a listing of the decoder program; with -b it
// assembles the program first and lists the resulting bytecode with byte
// offsets. The decrypt command reads the named file, feeds its contents to
// the decoder as the VM input stream and prints the decoded text.
//
// Any failure (unreadable file, assembly error, VM runtime error) is
// reported on standard error and the process exits with a non-zero status.
// The -debug flag adds error stack traces and a dump of the VM registers and
// data stack.
package main
