// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0


package a

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

func readBeforeAssign() int {
	var x int
	fmt.Println(x) // want `variable 'x' is read before it is assigned \(if:rba\)`

	x = 1

	return x
}

func assignedBeforeRead() int {
	var x int
	x = 1

	return x
}

func errorChecked(name string) error {
	var err error
	if err != nil { // want `variable 'err' is read before it is assigned \(if:rba\)`
		return err
	}

	err = os.Remove(name)

	return err
}

func conditional(c bool) int {
	var x int
	if c {
		x = 1
	}

	return x
}

func bothBranches(c bool) int {
	var x int
	if c {
		x = 1
	} else {
		x = 2
	}

	return x
}

func loopBeforeAssign(n int) int {
	var x int
	for i := 0; i < n; i++ {
		fmt.Println(x) // want `variable 'x' is read before it is assigned \(if:rba\)`
	}

	x = n

	return x
}

func switchDefault(k int) string {
	var s string
	switch k {
	case 0:
		s = "zero"

	case 1:
		fmt.Println(s) // want `variable 's' is read before it is assigned \(if:rba\)`

		fallthrough

	default:
		s = "other"
	}

	return s
}

func unreachableRead(c bool) int {
	var x int
	if c {
		x = 1

		return x
	}

	panic("no value")

	return x
}

func exited(c bool) int {
	var x int
	if !c {
		os.Exit(1)
	}

	x = 1

	return x
}

func zeroValueUsed() {
	var n int
	n++
	n = 0

	var s []int
	s = append(s, 1)

	var buf bytes.Buffer
	buf.WriteString("x")
	buf = bytes.Buffer{}

	var v int
	parse(&v)
	v = 1

	var p struct{ a int }
	p.a = 1
	p = struct{ a int }{}

	var sum int
	sum += 2
	sum = 0

	fmt.Println(n, s, buf.Len(), v, p, sum)
}

func parse(p *int) { *p = 1 }

func shortDeclared() (result int) {
	x := 0
	fmt.Println(x, result)

	result = 1

	return result
}

func closureRead() int {
	var x int
	show := func() { fmt.Println(x) }

	x = 1
	show()

	return x
}

func assignedInClosure() int {
	var x int
	set := func() { x = 1 }
	set()

	return x
}

func selected(ch chan int) int {
	var x int
	select {
	case x = <-ch:
	default:
		fmt.Println(x) // want `variable 'x' is read before it is assigned \(if:rba\)`
		x = 2
	}

	return x
}

func rangeAssigned(items []int) int {
	var last int
	for _, last = range items {
	}

	return last
}

func suppressed() int {
	var x int
	fmt.Println(x) //nolint:initflow

	x = 1

	return x
}

//nolint:initflow
func suppressedFunc() int {
	var x int
	fmt.Println(x)

	x = 1

	return x
}

var errEmpty = errors.New("empty")

func packageLevel() error {
	fmt.Println(errEmpty)

	return errEmpty
}
