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

// Package modules defines the model tree the sharding planner walks: a tree of
// named Module nodes, with embedding tables held by leaf modules
// (Embedding and EmbeddingBag), grouped into collections
// (EmbeddingCollection and EmbeddingBagCollection) and, optionally, into
// towers (Tower and TowerCollection) whose tables must be co-placed.
//
// The planner never inspects module internals beyond this package's
// interfaces: a module reports its kind (a stable type identifier matched
// against the sharder registry) and its named children. Trees are assumed
// finite and acyclic; that is the caller's contract, not verified here.
package modules

import (
	"github.com/gomlx/gomlx/types/xslices"
)

// Module is one node of the model tree.
type Module interface {
	// Kind returns the stable type identifier of the module, used for
	// exact-match lookup in the planner's sharder registry.
	Kind() string

	// NamedChildren lists the direct sub-modules with their local names.
	// Order carries no meaning. Leaf modules return nil.
	NamedChildren() []Named
}

// Named pairs a module with a name: the local name within its parent, or,
// when returned by NamedModules, the full dotted path from the root.
type Named struct {
	Name   string
	Module Module
}

// Kind identifiers of the module types defined in this package.
const (
	KindEmbedding                = "Embedding"
	KindEmbeddingBag             = "EmbeddingBag"
	KindEmbeddingCollection      = "EmbeddingCollection"
	KindEmbeddingBagCollection   = "EmbeddingBagCollection"
	KindEmbeddingTower           = "EmbeddingTower"
	KindEmbeddingTowerCollection = "EmbeddingTowerCollection"
	KindSequential               = "Sequential"
)

// JoinPath joins a parent path and a child name with a dot.
// An empty parent path contributes no separator.
func JoinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

// NamedModules returns every module reachable from root paired with its
// dotted path. The root itself is included with an empty path. Order is
// unspecified; every node of a finite acyclic tree appears exactly once.
func NamedModules(root Module) []Named {
	var result []Named
	stack := []Named{{Name: "", Module: root}}
	for len(stack) > 0 {
		var current Named
		current, stack = xslices.Pop(stack)
		result = append(result, current)
		for _, child := range current.Module.NamedChildren() {
			stack = append(stack, Named{
				Name:   JoinPath(current.Name, child.Name),
				Module: child.Module,
			})
		}
	}
	return result
}

// IsPooled reports whether the embedding tables under root produce pooled
// outputs. A subtree containing any sequence (unpooled) embedding leaf is
// classified unpooled; everything else, including trees with no embedding
// leaves at all, defaults to pooled.
func IsPooled(root Module) bool {
	for _, named := range NamedModules(root) {
		if leaf, ok := named.Module.(EmbeddingModule); ok && !leaf.Pooled() {
			return false
		}
	}
	return true
}
