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

package initinfo

import (
	"slices"

	"fillmore-labs.com/initflow/internal/cfg"
)

// DeclaredVariables records the variables declared inside each loop, including nested loops.
type DeclaredVariables struct {
	open     []cfg.LoopID
	declared map[cfg.LoopID][]cfg.Symbol
}

// NewDeclaredVariables returns an empty collector.
func NewDeclaredVariables() *DeclaredVariables {
	return &DeclaredVariables{declared: make(map[cfg.LoopID][]cfg.Symbol)}
}

// EnterLoop opens a frame for loop.
func (d *DeclaredVariables) EnterLoop(loop cfg.LoopID) {
	d.open = append(d.open, loop)
	if _, ok := d.declared[loop]; !ok {
		d.declared[loop] = nil
	}
}

// ExitLoop closes the frame of loop and of all loops opened inside it.
// Closing a loop that is not open does nothing.
func (d *DeclaredVariables) ExitLoop(loop cfg.LoopID) {
	if i := slices.Index(d.open, loop); i >= 0 {
		d.open = d.open[:i]
	}
}

// Declare records v as declared in every open loop.
func (d *DeclaredVariables) Declare(v cfg.Symbol) {
	for _, loop := range d.open {
		if vars := d.declared[loop]; !slices.Contains(vars, v) {
			d.declared[loop] = append(vars, v)
		}
	}
}

// Declared returns the variables declared inside loop, in declaration order.
func (d *DeclaredVariables) Declared(loop cfg.LoopID) []cfg.Symbol {
	return d.declared[loop]
}

// Open returns the number of open loops.
func (d *DeclaredVariables) Open() int { return len(d.open) }
