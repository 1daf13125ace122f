/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package modules

import "slices"

// Sequential is a generic container used to compose model trees out of
// named sub-modules. It has no sharding behavior of its own: the planner
// recurses through it.
type Sequential struct {
	children []Named
}

// NewSequential creates a container with the given named children.
func NewSequential(children ...Named) *Sequential {
	return &Sequential{children: slices.Clone(children)}
}

// Add appends a named child and returns the container for chaining.
func (s *Sequential) Add(name string, module Module) *Sequential {
	s.children = append(s.children, Named{Name: name, Module: module})
	return s
}

func (s *Sequential) Kind() string           { return KindSequential }
func (s *Sequential) NamedChildren() []Named { return slices.Clone(s.children) }
