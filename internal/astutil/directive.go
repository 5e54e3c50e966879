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


package astutil

import (
	"go/ast"
	"strings"
)

// HasDirective reports whether the comment group contains the directive //initflow:name.
//
// Like other Go directives, the comment has no space after the slashes and may carry arguments.
func HasDirective(doc *ast.CommentGroup, name string) bool {
	if doc == nil {
		return false
	}

	prefix := "//" + initflow + ":" + name

	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, prefix)
		if ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			return true
		}
	}

	return false
}
