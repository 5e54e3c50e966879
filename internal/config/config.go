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

package config

// AnalyzerFlags represents specific analyzers.
type AnalyzerFlags uint8

const (
	// LocalAnalyzer enables the detection of local variables read before they are assigned.
	LocalAnalyzer AnalyzerFlags = 1 << iota

	// MemberAnalyzer enables the analysis of fields initialized by annotated methods.
	MemberAnalyzer
)

// Config represents configuration options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// UnionMerge merges alternative paths by union instead of sum.
	UnionMerge

	// ReportMaybe reports reads of variables that are assigned on some paths only.
	ReportMaybe
)

type (
	// Analyzers is the set of enabled analyzers.
	Analyzers = BitMask[AnalyzerFlags]

	// Behavior is the set of enabled options.
	Behavior = BitMask[Config]
)

// DefaultAnalyzers returns the analyzers enabled by default.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(LocalAnalyzer, MemberAnalyzer)
}

// DefaultBehavior returns the options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
