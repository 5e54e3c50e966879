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
	"context"
	"sync"

	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/dataflow"
	"fillmore-labs.com/initflow/internal/occurrence"
	"fillmore-labs.com/initflow/internal/pathinfo"
)

// Option configures [New].
type Option func(*options)

type options struct {
	merge       occurrence.Merge
	conditional map[cfg.Symbol]struct{}
}

// WithMerge selects how facts of alternative paths are merged. The default is [occurrence.MergeSum].
func WithMerge(merge occurrence.Merge) Option {
	return func(o *options) { o.merge = merge }
}

// WithConditionallyInitialized marks properties whose initialization depends on a condition
// outside the analyzed graph. [Data.Initialized] reports them as at most once initialized.
func WithConditionallyInitialized(properties ...cfg.Symbol) Option {
	return func(o *options) {
		if o.conditional == nil {
			o.conditional = make(map[cfg.Symbol]struct{}, len(properties))
		}

		for _, p := range properties {
			o.conditional[p] = struct{}{}
		}
	}
}

// Data holds the initialization facts of one graph. They are computed on first use.
//
// Data is safe for concurrent use.
type Data struct {
	graph       *cfg.Graph
	receiver    cfg.Symbol
	conditional map[cfg.Symbol]struct{}
	result      func() *dataflow.Result[pathinfo.Table]
}

// New prepares the analysis of properties in graph g, assigned through receiver.
// A nil receiver analyzes local variable flow.
func New(ctx context.Context, g *cfg.Graph, properties []cfg.Symbol, receiver cfg.Symbol, opts ...Option) *Data {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := NewCollector(properties, receiver, o.merge)

	return &Data{
		graph:       g,
		receiver:    receiver,
		conditional: o.conditional,
		result: sync.OnceValue(func() *dataflow.Result[pathinfo.Table] {
			return dataflow.Forward(ctx, g, c)
		}),
	}
}

// Graph returns the analyzed graph.
func (d *Data) Graph() *cfg.Graph { return d.graph }

// Receiver returns the expected receiver, or nil.
func (d *Data) Receiver() cfg.Symbol { return d.receiver }

// Result returns the computed fixed point.
func (d *Data) Result() *dataflow.Result[pathinfo.Table] { return d.result() }

// Value returns the facts after node. It panics for nodes without facts.
func (d *Data) Value(node cfg.NodeID) pathinfo.Table { return d.result().Value(node) }

// Input returns the facts before node. It panics for nodes without facts.
func (d *Data) Input(node cfg.NodeID) pathinfo.Table { return d.result().Input(node) }

// Lookup returns the facts after node and whether the node was reached.
func (d *Data) Lookup(node cfg.NodeID) (pathinfo.Table, bool) { return d.result().Lookup(node) }

// Initialized returns the initialization range of v before node on paths with label.
// An absent fact is [occurrence.Zero]. Conditionally initialized properties are capped at [occurrence.AtMostOnce].
func (d *Data) Initialized(node cfg.NodeID, label cfg.Label, v cfg.Symbol) occurrence.Marked {
	r, ok := d.Input(node).Get(label, v)
	if !ok {
		r = occurrence.Unmarked(occurrence.Zero)
	}

	if _, cond := d.conditional[v]; cond && (r.Range == occurrence.ExactlyOnce || r.Range == occurrence.Zero) {
		r.Range = occurrence.AtMostOnce
	}

	return r
}
