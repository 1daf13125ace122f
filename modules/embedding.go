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
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/types/shapes"
)

// TableConfig describes one embedding table: its name, its
// (rows, embedding dimension) shape and the input features that look it up.
type TableConfig struct {
	Name         string
	Shape        shapes.Shape
	FeatureNames []string
}

func validateTable(table TableConfig) {
	if table.Name == "" {
		exceptions.Panicf("modules: embedding table must have a name")
	}
	if table.Shape.Rank() != 2 {
		exceptions.Panicf("modules: embedding table %q must be rank-2 (rows, embedding dim), got shape %s",
			table.Name, table.Shape)
	}
}

// EmbeddingModule is implemented by the leaf modules owning a single
// embedding table: EmbeddingBag (pooled) and Embedding (sequence).
type EmbeddingModule interface {
	Module

	// Table returns the configuration of the owned table.
	Table() TableConfig

	// Pooled reports whether lookups are aggregated (pooled) per example,
	// as opposed to returning one embedding per sequence element.
	Pooled() bool
}

// EmbeddingBag is a leaf module owning one pooled embedding table.
type EmbeddingBag struct {
	table TableConfig
}

// NewEmbeddingBag creates a pooled embedding leaf for the given table.
// It panics if the table has no name or a shape that is not rank-2.
func NewEmbeddingBag(table TableConfig) *EmbeddingBag {
	validateTable(table)
	return &EmbeddingBag{table: table}
}

func (e *EmbeddingBag) Kind() string           { return KindEmbeddingBag }
func (e *EmbeddingBag) NamedChildren() []Named { return nil }
func (e *EmbeddingBag) Table() TableConfig     { return e.table }
func (e *EmbeddingBag) Pooled() bool           { return true }

// Embedding is a leaf module owning one sequence embedding table: lookups
// return one embedding per sequence element, unpooled.
type Embedding struct {
	table TableConfig
}

// NewEmbedding creates a sequence embedding leaf for the given table.
// It panics if the table has no name or a shape that is not rank-2.
func NewEmbedding(table TableConfig) *Embedding {
	validateTable(table)
	return &Embedding{table: table}
}

func (e *Embedding) Kind() string           { return KindEmbedding }
func (e *Embedding) NamedChildren() []Named { return nil }
func (e *Embedding) Table() TableConfig     { return e.table }
func (e *Embedding) Pooled() bool           { return false }

// EmbeddingBagCollection groups pooled embedding tables. Each table is held
// by an EmbeddingBag child named after the table, so a table's leaf path
// always ends in the table name.
type EmbeddingBagCollection struct {
	bags []Named
}

// NewEmbeddingBagCollection creates a collection with one pooled table per config.
func NewEmbeddingBagCollection(tables ...TableConfig) *EmbeddingBagCollection {
	c := &EmbeddingBagCollection{bags: make([]Named, 0, len(tables))}
	for _, table := range tables {
		c.bags = append(c.bags, Named{Name: table.Name, Module: NewEmbeddingBag(table)})
	}
	return c
}

func (c *EmbeddingBagCollection) Kind() string           { return KindEmbeddingBagCollection }
func (c *EmbeddingBagCollection) NamedChildren() []Named { return slices.Clone(c.bags) }

// Tables lists the configurations of the tables in the collection.
func (c *EmbeddingBagCollection) Tables() []TableConfig {
	tables := make([]TableConfig, 0, len(c.bags))
	for _, bag := range c.bags {
		tables = append(tables, bag.Module.(*EmbeddingBag).Table())
	}
	return tables
}

// EmbeddingCollection groups sequence embedding tables, one Embedding child
// per table, named after the table.
type EmbeddingCollection struct {
	children []Named
}

// NewEmbeddingCollection creates a collection with one sequence table per config.
func NewEmbeddingCollection(tables ...TableConfig) *EmbeddingCollection {
	c := &EmbeddingCollection{children: make([]Named, 0, len(tables))}
	for _, table := range tables {
		c.children = append(c.children, Named{Name: table.Name, Module: NewEmbedding(table)})
	}
	return c
}

func (c *EmbeddingCollection) Kind() string           { return KindEmbeddingCollection }
func (c *EmbeddingCollection) NamedChildren() []Named { return slices.Clone(c.children) }

// Tables lists the configurations of the tables in the collection.
func (c *EmbeddingCollection) Tables() []TableConfig {
	tables := make([]TableConfig, 0, len(c.children))
	for _, child := range c.children {
		tables = append(tables, child.Module.(*Embedding).Table())
	}
	return tables
}
