// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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


// Package analyzer implements the initflow static analysis pass.
//
// # Overview
//
// Initflow detects variables that are read before any path has assigned them, and fields
// that an initializing method assigns on some but not all paths.
//
// # Local Variables
//
// A variable declared without a value and assigned later is tracked through the function's
// control flow:
//
//	func lookup(m map[string]int, key string) int {
//	    var v int
//	    if v > 0 {  // variable 'v' is read before it is assigned
//	        return v
//	    }
//	    v = m[key]
//	    return v
//	}
//
// Variables whose zero value is used on purpose are not tracked, like those updated with
// += or ++, those whose address is taken and those partially written.
//
// # Initializing Methods
//
// Methods with an //initflow:init directive must assign the receiver's fields they set
// on every path:
//
//	//initflow:init
//	func (s *server) init(addr string) {  // field 'addr' is not initialized on all paths
//	    if addr != "" {
//	        s.addr = addr
//	    }
//	}
//
// # Options
//
// With -maybe, reads where only some paths assigned the variable are also reported.
// With -union, a variable assigned once on each branch of a conditional counts as assigned exactly once,
// otherwise the branches add up to an unknown number of assignments.
package analyzer
