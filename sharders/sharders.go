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

// Package sharders provides stock planner.Sharder implementations for the
// embedding module kinds defined in package modules: plain collections
// (pooled and sequence) and tower containers whose tables are enumerated as
// one co-placed unit.
package sharders

import (
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/shardplan/modules"
	"github.com/gomlx/shardplan/planner"
)

// base carries the sharding-type and kernel tables shared by all embedding
// sharders; concrete sharders only differ in which modules they match and
// how they collect shardable parameters.
type base struct {
	kind string
	name string
}

func (s base) ModuleKind() string { return s.kind }
func (s base) Name() string       { return s.name }

// ShardingTypes implements planner.Sharder. Column-wise splits require
// accelerator kernels, so CPU clusters only get the row and table splits.
func (s base) ShardingTypes(device planner.ComputeDevice) []planner.ShardingType {
	if device == planner.ComputeDeviceCUDA {
		return []planner.ShardingType{
			planner.ShardingTypeDataParallel,
			planner.ShardingTypeTableWise,
			planner.ShardingTypeColumnWise,
			planner.ShardingTypeRowWise,
			planner.ShardingTypeTableRowWise,
			planner.ShardingTypeTableColumnWise,
		}
	}
	return []planner.ShardingType{
		planner.ShardingTypeDataParallel,
		planner.ShardingTypeTableWise,
		planner.ShardingTypeRowWise,
		planner.ShardingTypeTableRowWise,
	}
}

// ComputeKernels implements planner.Sharder. Data-parallel replicas only
// support the dense kernel -- fused optimizer updates cannot be replicated.
// Everything else gets dense and fused, plus the UVM variants on CUDA.
func (s base) ComputeKernels(shardingType planner.ShardingType, device planner.ComputeDevice) []planner.ComputeKernel {
	if shardingType == planner.ShardingTypeDataParallel {
		return []planner.ComputeKernel{planner.ComputeKernelDense}
	}
	kernels := []planner.ComputeKernel{
		planner.ComputeKernelDense,
		planner.ComputeKernelFused,
	}
	if device == planner.ComputeDeviceCUDA {
		kernels = append(kernels,
			planner.ComputeKernelFusedUvm,
			planner.ComputeKernelFusedUvmCaching)
	}
	return kernels
}

// subtreeTables collects every embedding table under m, keyed by table name.
func subtreeTables(m modules.Module) map[string]shapes.Shape {
	params := make(map[string]shapes.Shape)
	for _, named := range modules.NamedModules(m) {
		if leaf, ok := named.Module.(modules.EmbeddingModule); ok {
			table := leaf.Table()
			params[table.Name] = table.Shape
		}
	}
	return params
}

// EmbeddingBagCollectionSharder shards pooled embedding bag collections.
type EmbeddingBagCollectionSharder struct{ base }

// NewEmbeddingBagCollection creates the sharder for
// modules.EmbeddingBagCollection.
func NewEmbeddingBagCollection() *EmbeddingBagCollectionSharder {
	return &EmbeddingBagCollectionSharder{base{
		kind: modules.KindEmbeddingBagCollection,
		name: "EmbeddingBagCollectionSharder",
	}}
}

// ShardableParameters implements planner.Sharder.
func (s *EmbeddingBagCollectionSharder) ShardableParameters(m modules.Module) map[string]shapes.Shape {
	return subtreeTables(m)
}

// EmbeddingCollectionSharder shards sequence embedding collections.
type EmbeddingCollectionSharder struct{ base }

// NewEmbeddingCollection creates the sharder for modules.EmbeddingCollection.
func NewEmbeddingCollection() *EmbeddingCollectionSharder {
	return &EmbeddingCollectionSharder{base{
		kind: modules.KindEmbeddingCollection,
		name: "EmbeddingCollectionSharder",
	}}
}

// ShardableParameters implements planner.Sharder.
func (s *EmbeddingCollectionSharder) ShardableParameters(m modules.Module) map[string]shapes.Shape {
	return subtreeTables(m)
}

// TowerSharder shards a modules.Tower as a single unit: all tables under the
// tower are enumerated at the tower node, so they share its dependency key.
type TowerSharder struct{ base }

// NewTower creates the sharder for modules.Tower.
func NewTower() *TowerSharder {
	return &TowerSharder{base{
		kind: modules.KindEmbeddingTower,
		name: "TowerSharder",
	}}
}

// ShardableParameters implements planner.Sharder.
func (s *TowerSharder) ShardableParameters(m modules.Module) map[string]shapes.Shape {
	return subtreeTables(m)
}

// TowerCollectionSharder shards a modules.TowerCollection as a single unit:
// all tables of all towers are enumerated at the collection node, each tagged
// with the dependency key of its owning tower.
type TowerCollectionSharder struct{ base }

// NewTowerCollection creates the sharder for modules.TowerCollection.
func NewTowerCollection() *TowerCollectionSharder {
	return &TowerCollectionSharder{base{
		kind: modules.KindEmbeddingTowerCollection,
		name: "TowerCollectionSharder",
	}}
}

// ShardableParameters implements planner.Sharder.
func (s *TowerCollectionSharder) ShardableParameters(m modules.Module) map[string]shapes.Shape {
	return subtreeTables(m)
}
