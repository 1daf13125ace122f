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

import (
	"strconv"

	"github.com/gomlx/exceptions"
)

// Tower pairs embedding modules with the interaction computation that
// consumes their output. Because the interaction runs where the embeddings
// live, all tables under a tower must be placed on the same device group --
// the planner tags their sharding candidates with the tower's path as a
// shared dependency key.
type Tower struct {
	embedding   Module
	interaction Module
}

// NewTower creates a tower over the given embedding module. The interaction
// module may be nil when it is modeled outside the planner's tree.
func NewTower(embedding, interaction Module) *Tower {
	if embedding == nil {
		exceptions.Panicf("modules.NewTower: embedding module must not be nil")
	}
	return &Tower{embedding: embedding, interaction: interaction}
}

func (t *Tower) Kind() string { return KindEmbeddingTower }

func (t *Tower) NamedChildren() []Named {
	children := []Named{{Name: "embedding", Module: t.embedding}}
	if t.interaction != nil {
		children = append(children, Named{Name: "interaction", Module: t.interaction})
	}
	return children
}

// Embedding returns the tower's embedding module.
func (t *Tower) Embedding() Module { return t.embedding }

// TowerCollection groups towers. Children are named "towers.<index>", and the
// index also names the per-tower dependency key the planner derives
// ("<collection path>.tower_<index>").
type TowerCollection struct {
	towers []*Tower
}

// NewTowerCollection creates a collection of the given towers.
func NewTowerCollection(towers ...*Tower) *TowerCollection {
	return &TowerCollection{towers: towers}
}

func (c *TowerCollection) Kind() string { return KindEmbeddingTowerCollection }

func (c *TowerCollection) NamedChildren() []Named {
	children := make([]Named, 0, len(c.towers))
	for i, tower := range c.towers {
		children = append(children, Named{Name: "towers." + strconv.Itoa(i), Module: tower})
	}
	return children
}

// Towers returns the towers in index order.
func (c *TowerCollection) Towers() []*Tower { return c.towers }
