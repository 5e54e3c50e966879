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


package graph

func closure() {
	var to int

	f := func() {
		var from int
		_ = from
	}
	f()

	_ = to // want "is reachable"
}

func closureBefore() {
	var to int
	_ = to // want "unreachable"

	func() {
		from := 0
		_ = from
	}()
}

func deferred(from int) (to int) {
	defer func() {
		to = 1 // want "unreachable"
	}()

	return 0
}

func gotoForward(from, to int) {
	goto done

	_ = to // want "unreachable"

done:
}

func labeledContinue(from, to int) {
outer:
	for i := 0; i < 3; i++ {
		for {
			continue outer
		}
	}

	_ = to // want "is reachable"
}
