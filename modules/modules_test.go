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
	"testing"

	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(name string, rows, cols int) TableConfig {
	return TableConfig{Name: name, Shape: shapes.Make(dtypes.Float32, rows, cols)}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "child", JoinPath("", "child"))
	assert.Equal(t, "parent.child", JoinPath("parent", "child"))
	assert.Equal(t, "a.b.c", JoinPath("a.b", "c"))
}

func TestNamedModules(t *testing.T) {
	root := NewSequential().
		Add("a", NewEmbeddingBagCollection(table("t1", 100, 64), table("t2", 200, 64))).
		Add("b", NewSequential().Add("c", NewEmbeddingCollection(table("t3", 50, 32))))

	paths := make(map[string]Module)
	for _, named := range NamedModules(root) {
		_, seen := paths[named.Name]
		require.Falsef(t, seen, "path %q visited twice", named.Name)
		paths[named.Name] = named.Module
	}
	assert.Len(t, paths, 7)
	for _, want := range []string{"", "a", "a.t1", "a.t2", "b", "b.c", "b.c.t3"} {
		assert.Containsf(t, paths, want, "missing path %q", want)
	}
	assert.IsType(t, &EmbeddingBag{}, paths["a.t1"])
	assert.IsType(t, &Embedding{}, paths["b.c.t3"])
}

func TestIsPooled(t *testing.T) {
	pooled := NewEmbeddingBagCollection(table("t1", 100, 64))
	sequence := NewEmbeddingCollection(table("t2", 100, 64))

	assert.True(t, IsPooled(pooled))
	assert.False(t, IsPooled(sequence))

	// A sequence leaf anywhere in the subtree makes it unpooled.
	mixed := NewSequential().Add("p", pooled).Add("s", sequence)
	assert.False(t, IsPooled(mixed))

	// No embedding leaves at all defaults to pooled.
	assert.True(t, IsPooled(NewSequential()))

	// Towers classify by their contents.
	assert.False(t, IsPooled(NewTower(sequence, nil)))
	assert.True(t, IsPooled(NewTower(pooled, NewSequential())))
}

func TestTowerChildren(t *testing.T) {
	embedding := NewEmbeddingBagCollection(table("t1", 100, 64))
	interaction := NewSequential()

	tower := NewTower(embedding, interaction)
	children := tower.NamedChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "embedding", children[0].Name)
	assert.Equal(t, "interaction", children[1].Name)

	bare := NewTower(embedding, nil)
	require.Len(t, bare.NamedChildren(), 1)

	collection := NewTowerCollection(tower, bare)
	names := make([]string, 0, 2)
	for _, child := range collection.NamedChildren() {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"towers.0", "towers.1"}, names)
	assert.Len(t, collection.Towers(), 2)
}

func TestCollectionTables(t *testing.T) {
	c := NewEmbeddingBagCollection(table("t1", 100, 64), table("t2", 200, 32))
	tables := c.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "t1", tables[0].Name)
	assert.Equal(t, []int{200, 32}, tables[1].Shape.Dimensions)
}

func TestTableValidation(t *testing.T) {
	require.Panics(t, func() {
		NewEmbeddingBag(TableConfig{Name: "bad", Shape: shapes.Make(dtypes.Float32, 100)})
	})
	require.Panics(t, func() {
		NewEmbedding(TableConfig{Shape: shapes.Make(dtypes.Float32, 100, 64)})
	})
	require.Panics(t, func() {
		NewTower(nil, nil)
	})
}
