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


package union

type config struct {
	name string
	size int
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

	return x // want `variable 'x' may be read before it is assigned \(if:mba\)`
}

//initflow:init
func (cfg *config) init(c, d bool) { // want `field 'name' is not initialized on all paths \(if:pin\)`
	if c {
		cfg.name = "c"
	} else if d {
		cfg.name = "d"
	}

	if c {
		cfg.size = 1
	} else {
		cfg.size = 2
	}
}
