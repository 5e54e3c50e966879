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


package a

import (
	"fmt"
	"sync"
)

type server struct {
	addr    string
	port    int
	handler func()
	mu      sync.Mutex
	count   int
}

//initflow:init
func (s *server) init(addr string) { // want `field 'addr' is not initialized on all paths \(if:pin\)`
	if addr != "" {
		s.addr = addr
	}

	s.port = 80
}

// setup prepares the server.
//
//initflow:init
func (s *server) setup() {
	fmt.Println(s.port) // want `field 'port' is read before it is assigned \(if:rba\)`

	s.port = 8080
	s.count++

	s.mu.Lock()
	defer s.mu.Unlock()
}

//initflow:init
func (s *server) complete(addr string) {
	if addr == "" {
		s.addr = "localhost"

		return
	}

	s.addr = addr
}

//initflow:init
func (s *server) failing(addr string) {
	if addr == "" {
		panic("no address")
	}

	s.addr = addr
}

//initflow:init
func (s *server) escaping(c bool) {
	s.register()

	if c {
		s.addr = "localhost"
	}
}

func (s *server) register() {}

//initflow:init
func (s *server) lazy() {
	s.handler = func() { s.count = 1 }
}

func (s *server) notAnnotated(c bool) {
	if c {
		s.addr = "localhost"
	}

	fmt.Println(s.port)
}

//initflow:init
func (s *server) suppressed(c bool) { //nolint:initflow
	if c {
		s.addr = "localhost"
	}
}

//initflow:init
func (s *server) localsToo(c bool) { // want `field 'port' is not initialized on all paths \(if:pin\)`
	var p int
	if c {
		p = 1
		s.port = p
	}

	fmt.Println(p)
}
