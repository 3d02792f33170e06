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

// Package vm implements the enaa virtual machine.
//
// The VM is a stack machine operating on 32-bit unsigned words. It executes a
// flat byte program where each instruction is one opcode byte optionally
// followed by one operand byte (a jump address or an immediate). Besides the
// data stack it has a single auxiliary register, a read-only character input
// stream consumed by the in instruction, and an output buffer appended to by
// the out instruction.
//
// Supported opcodes:
//
//	TOS is the value on top of the data stack. NOS is the next value on the
//	data stack. Instructions with a check mark in the "arg" column are
//	followed by an operand byte.
//
//	opcode	asm	arg	stack	description
//	------	-----	---	-----	--------------------------------------------------------
//	0	in			-n	push code point of next input char, or 0 at end of input
//	1	out		n-	pop TOS and append it to the output as a character
//	2	dup		n-nn	duplicate TOS
//	3	add		xy-z	pop TOS and NOS, push NOS+TOS
//	4	sub		xy-z	pop TOS and NOS, push NOS-TOS
//	5	bne	✓	n-	pop TOS, jump to operand address if it is not 0
//	6	blt	✓	xy-	pop TOS and NOS, jump if NOS < TOS
//	7	exit			halt execution
//	8	push	✓	-n	push operand byte
//	9	jmp	✓		jump to operand address
//	10	beq	✓	xy-	pop TOS and NOS, jump if NOS == TOS
//	11	pusha		-n	push the auxiliary register
//	12	popa		n-	pop TOS into the auxiliary register
//	13	bgt	✓	xy-	pop TOS and NOS, jump if NOS > TOS
//	14	ble	✓	xy-	pop TOS and NOS, jump if NOS <= TOS
//
// Jump operands are absolute byte offsets into the program, so a program may
// not grow past 256 bytes. Add and sub wrap around modulo 2^32. A branch
// always pops its stack arguments and always consumes its operand byte, taken
// or not.
//
// Any pop from an empty stack, any opcode byte outside the table above and
// any out of a word that is not a valid Unicode code point stops execution
// with an error. The only end-of-data condition that is not an error is
// exhaustion of the input stream, which in reports as the value 0.
package vm
