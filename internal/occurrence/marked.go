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

package occurrence

import (
	"fmt"

	"fillmore-labs.com/initflow/internal/cfg"
)

// Marked is a [Range] tagged with the node where the latest relevant event was observed.
// The marker is for diagnostics only and does not take part in the lattice.
type Marked struct {
	Range Range
	Node  cfg.NodeID
}

// At tags the range with a node.
func (r Range) At(node cfg.NodeID) Marked {
	return Marked{Range: r, Node: node}
}

// Unmarked returns the range without a node.
func Unmarked(r Range) Marked {
	return Marked{Range: r, Node: cfg.NoNode}
}

// HasNode reports whether a node is attached.
func (m Marked) HasNode() bool { return m.Node.Valid() }

// Add sums the range with an event observed later, adopting the event's marker.
func (m Marked) Add(event Marked) Marked {
	return Marked{Range: Join(m.Range, event.Range), Node: event.Node}
}

func (m Marked) String() string {
	if !m.HasNode() {
		return m.Range.String()
	}

	return fmt.Sprintf("%s@%d", m.Range, m.Node)
}
