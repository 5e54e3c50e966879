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

package gocfg

import (
	"fmt"
	"go/token"

	"fillmore-labs.com/initflow/internal/cfg"
)

// labelTarget holds the nodes a labeled statement's branches jump to.
type labelTarget struct {
	statement      cfg.NodeID // The labeled statement itself
	breakTarget    cfg.NodeID // Where to jump on 'break label'
	continueTarget cfg.NodeID // Where to jump on 'continue label'
}

func newLabelTarget(statement cfg.NodeID) *labelTarget {
	return &labelTarget{statement: statement, breakTarget: cfg.NoNode, continueTarget: cfg.NoNode}
}

func (l *labelTarget) branchTarget(tok token.Token) cfg.NodeID {
	switch tok {
	case token.BREAK:
		return l.breakTarget

	case token.CONTINUE:
		return l.continueTarget

	case token.GOTO:
		return l.statement

	default:
		panic(fmt.Errorf("unexpected labeled branch token: %s", tok))
	}
}

// setBreak and setContinue accept a nil receiver for unlabeled statements.
func (l *labelTarget) setBreak(n cfg.NodeID) {
	if l != nil {
		l.breakTarget = n
	}
}

func (l *labelTarget) setContinue(n cfg.NodeID) {
	if l != nil {
		l.continueTarget = n
	}
}

// branchTargetScopes are the targets of unlabeled break, continue and fallthrough statements.
type branchTargetScopes struct {
	currentBreak       cfg.NodeID
	currentContinue    cfg.NodeID
	currentFallthrough cfg.NodeID
}

func newBranchTargetScopes() branchTargetScopes {
	return branchTargetScopes{currentBreak: cfg.NoNode, currentContinue: cfg.NoNode, currentFallthrough: cfg.NoNode}
}

func (s *branchTargetScopes) branchTarget(tok token.Token) cfg.NodeID {
	switch tok {
	case token.BREAK:
		return s.currentBreak

	case token.CONTINUE:
		return s.currentContinue

	case token.FALLTHROUGH:
		return s.currentFallthrough

	default:
		panic(fmt.Errorf("unexpected branch token: %s", tok))
	}
}

func (s *branchTargetScopes) pushBreak(n cfg.NodeID) (old cfg.NodeID) {
	old, s.currentBreak = s.currentBreak, n
	return old
}

func (s *branchTargetScopes) popBreak(old cfg.NodeID) {
	s.currentBreak = old
}

func (s *branchTargetScopes) pushContinue(n cfg.NodeID) (old cfg.NodeID) {
	old, s.currentContinue = s.currentContinue, n
	return old
}

func (s *branchTargetScopes) popContinue(old cfg.NodeID) {
	s.currentContinue = old
}

func (s *branchTargetScopes) pushFallthrough(n cfg.NodeID) (old cfg.NodeID) {
	old, s.currentFallthrough = s.currentFallthrough, n
	return old
}

func (s *branchTargetScopes) popFallthrough(old cfg.NodeID) {
	s.currentFallthrough = old
}
