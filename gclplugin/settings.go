// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import initflow "fillmore-labs.com/initflow/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Local enables checks of local variables.
	Local *bool `json:"local,omitzero"`
	// Member enables checks of fields assigned by initializing methods.
	Member *bool `json:"member,omitzero"`
	// Union merges alternative paths by union instead of sum.
	Union *bool `json:"union,omitzero"`
	// Maybe reports reads of variables assigned on some paths only.
	Maybe *bool `json:"maybe,omitzero"`
}

// Options converts [Settings] into a list of [initflow.Option] for the initflow analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []initflow.Option {
	var opts []initflow.Option

	opts = appendOption(opts, s.Local, initflow.WithLocal)
	opts = appendOption(opts, s.Member, initflow.WithMember)
	opts = appendOption(opts, s.Union, initflow.WithUnionMerge)
	opts = appendOption(opts, s.Maybe, initflow.WithMaybe)

	return opts
}

// appendOption appends a non-nil setting to a [initflow.Option] list.
func appendOption[T any](opts []initflow.Option, value *T, constructor func(T) initflow.Option) []initflow.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
