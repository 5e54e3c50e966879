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

package tracker

import (
	"go/types"
)

// FuncName identifies a function or method independent of type checker instances.
type FuncName struct {
	Path     string // Package path of the function or the receiver's type
	Receiver string // Receiver type name, without pointer
	Name     string
}

// FuncNameOf returns the [FuncName] of fun. Methods of aliased, pointer or generic receivers
// are named after the origin of the receiver type.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	path, receiver := receiverName(sig.Recv().Type())

	return FuncName{Path: path, Receiver: receiver, Name: fun.Name()}
}

func receiverName(recv types.Type) (path, name string) {
	recv = types.Unalias(recv)
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch recv := recv.(type) {
	case *types.Named:
		obj := recv.Origin().Obj()
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return path, obj.Name()

	case *types.Interface:
		return "", "interface"

	default:
		return "", "<invalid>"
	}
}

func (f FuncName) String() string {
	name := f.Name
	if f.Receiver != "" {
		name = "(" + qualify(f.Path, f.Receiver) + ")." + name

		return name
	}

	return qualify(f.Path, name)
}

func qualify(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
