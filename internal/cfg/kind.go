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

package cfg

// NodeKind selects which payload fields of a [Node] are meaningful.
type NodeKind uint8

//go:generate go tool stringer -type NodeKind,EdgeKind,GraphKind -linecomment -output kind_string.go
const (
	// Plain is a node without data flow effect.
	Plain NodeKind = iota // plain

	// Enter is the unique entry node of a graph.
	Enter // enter

	// Exit is an exit node of a graph.
	Exit // exit

	// Assignment assigns [Node.Var], optionally through [Node.Receiver].
	Assignment // assignment

	// Declaration introduces the local variable [Node.Var].
	Declaration // declaration

	// Read reads [Node.Var], optionally through [Node.Receiver].
	Read // read

	// InitializerEnter opens the initializer of property [Node.Var].
	InitializerEnter // initializer enter

	// InitializerExit closes the initializer of property [Node.Var].
	InitializerExit // initializer exit

	// LoopEnter opens loop [Node.Loop].
	LoopEnter // loop enter

	// LoopConditionEnter opens the condition check of loop [Node.Loop].
	LoopConditionEnter // loop condition enter

	// LoopBlockEnter opens the body of loop [Node.Loop].
	LoopBlockEnter // loop block enter

	// LoopExit closes loop [Node.Loop].
	LoopExit // loop exit

	// FinallyEnter joins labeled flows into a finally block.
	FinallyEnter // finally enter

	// FinallyExit splits a finally block's flow by label.
	FinallyExit // finally exit
)

// IsLoopBoundary reports whether the node kind is a target of a loop's back edge.
func (k NodeKind) IsLoopBoundary() bool {
	switch k {
	case LoopEnter, LoopConditionEnter, LoopBlockEnter:
		return true

	default:
		return false
	}
}

// EdgeKind classifies an [Edge].
type EdgeKind uint8

const (
	// Forward is a normal forward edge.
	Forward EdgeKind = iota // forward

	// Back closes a cycle, its target was visited earlier in the same forward pass.
	Back // back

	// DeadForward is a forward edge on a path that cannot be taken.
	DeadForward // dead forward

	// DeadBack is a back edge on a path that cannot be taken.
	DeadBack // dead back

	// DataOnly carries data flow information only and is ignored by control-flow analysis.
	DataOnly // data only
)

// IsBack reports whether the edge closes a cycle.
func (k EdgeKind) IsBack() bool { return k == Back || k == DeadBack }

// UsedInControlFlow reports whether facts flow along this edge kind.
func (k EdgeKind) UsedInControlFlow() bool { return k != DataOnly }

// GraphKind classifies a [Graph].
type GraphKind uint8

const (
	// Function is the body of a named function or method.
	Function GraphKind = iota // function

	// Lambda is the body of an anonymous function.
	Lambda // lambda

	// Class is the initialization flow of a class-like declaration.
	Class // class

	// PropertyInitializer is the initializer expression of a single property.
	PropertyInitializer // property initializer

	// Init is an anonymous initializer block.
	Init // init
)

// Callable reports whether the graph represents code that may run at an arbitrary later time.
func (k GraphKind) Callable() bool { return k == Function || k == Lambda }
