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


package maybe

import "fmt"

func conditional(c bool) int {
	var x int
	if c {
		x = 1
	}

	return x // want `variable 'x' may be read before it is assigned \(if:mba\)`
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

func partialChain(c, d bool) int {
	var x int
	if c {
		x = 1
	} else if d {
		x = 2
	}

	return x
}

func loopDeclared(items []string) {
	for _, item := range items {
		var name string
		if item != "" {
			name = item
		}

		fmt.Println(name) // want `variable 'name' may be read before it is assigned \(if:mba\)`
	}
}

func assignedInClosure() int {
	var x int
	set := func() { x = 1 }
	set()

	return x // want `variable 'x' may be read before it is assigned \(if:mba\)`
}

func readBeforeAssign(c bool) int {
	var x int
	fmt.Println(x) // want `variable 'x' is read before it is assigned \(if:rba\)`

	if c {
		x = 1
	}

	return x // want `variable 'x' may be read before it is assigned \(if:mba\)`
}
