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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/initflow/internal/config"
	"fillmore-labs.com/initflow/internal/run"
)

// Option configures specific behavior of a [New] initflow analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithLocal is an [Option] to configure whether local variables are checked.
func WithLocal(local bool) Option { return localOption{local: local} }

type localOption struct{ local bool }

func (o localOption) apply(r *run.Options) {
	r.Analyzers.Set(config.LocalAnalyzer, o.local)
}

func (o localOption) LogAttr() slog.Attr {
	return slog.Bool("local", o.local)
}

// WithMember is an [Option] to configure whether fields assigned by //initflow:init methods are checked.
func WithMember(member bool) Option { return memberOption{member: member} }

type memberOption struct{ member bool }

func (o memberOption) apply(r *run.Options) {
	r.Analyzers.Set(config.MemberAnalyzer, o.member)
}

func (o memberOption) LogAttr() slog.Attr {
	return slog.Bool("member", o.member)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithUnionMerge is an [Option] to merge alternative paths by union instead of sum,
// so that a symbol assigned once on every branch counts as assigned exactly once.
func WithUnionMerge(union bool) Option { return unionOption{union: union} }

type unionOption struct{ union bool }

func (o unionOption) apply(r *run.Options) {
	r.Behavior.Set(config.UnionMerge, o.union)
}

func (o unionOption) LogAttr() slog.Attr {
	return slog.Bool("union", o.union)
}

// WithMaybe is an [Option] to also report reads where only some paths assigned the symbol.
func WithMaybe(maybe bool) Option { return maybeOption{maybe: maybe} }

type maybeOption struct{ maybe bool }

func (o maybeOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportMaybe, o.maybe)
}

func (o maybeOption) LogAttr() slog.Attr {
	return slog.Bool("maybe", o.maybe)
}
