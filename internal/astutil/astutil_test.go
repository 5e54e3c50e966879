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


package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/initflow/internal/astutil"
)

func TestHasDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		comments []string
		want     bool
	}{
		{"directive", []string{"// init sets up t.", "//initflow:init"}, true},
		{"with argument", []string{"//initflow:init all"}, true},
		{"spaced", []string{"// initflow:init"}, false},
		{"other name", []string{"//initflow:initialize"}, false},
		{"other linter", []string{"//otherlint:init"}, false},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc *ast.CommentGroup
			if tt.comments != nil {
				doc = &ast.CommentGroup{}
				for _, text := range tt.comments {
					doc.List = append(doc.List, &ast.Comment{Text: text})
				}
			}

			if got := HasDirective(doc, "init"); got != tt.want {
				t.Errorf("Got HasDirective(%q) = %t, expected %t", tt.comments, got, tt.want)
			}
		})
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:initflow", true},
		{"// nolint:errcheck,initflow", true},
		{"//nolint:all", true},
		{"//nolint:errcheck", false},
		{"// initflow", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, expected %t", tt.text, got, tt.want)
		}
	}
}
