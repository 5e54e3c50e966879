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


// Package report emits the diagnostics of initialization findings.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/initflow/internal/astutil"
	"fillmore-labs.com/initflow/internal/initcheck"
)

// ProcessDiagnostics reports the findings of a function.
//
// Findings on a line with a //nolint:initflow comment are suppressed.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []initcheck.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		if currentFile.NoLintComment(f.Node.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     f.Node.Pos(),
			End:     f.Node.End(),
			Message: createMessage(f),
			Related: []analysis.RelatedInformation{{
				Pos:     f.Var.Pos(),
				Message: "Declared here",
			}},
		})
	}
}

// createMessage constructs the diagnostic message.
func createMessage(f initcheck.Finding) string {
	symbol := "variable"
	if f.Var.IsField() {
		symbol = "field"
	}

	var format string

	switch f.Kind {
	case initcheck.ReadBeforeAssign:
		format = "%s '%s' is read before it is assigned (if:%s)"

	case initcheck.MaybeReadBeforeAssign:
		format = "%s '%s' may be read before it is assigned (if:%s)"

	case initcheck.NotInitialized:
		format = "%s '%s' is not initialized on all paths (if:%s)"

	default:
		format = "%s '%s' has an unknown problem (if:%s)"
	}

	return fmt.Sprintf(format, symbol, f.Var.Name(), f.Kind.Code())
}
