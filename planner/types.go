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

package planner

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/shardplan/modules"
)

// Shard is one piece of a sharded table: its per-axis sizes and offsets
// within the full (rows, embedding dim) tensor. Storage and Perf start nil
// and are filled in by estimators; Rank is assigned later by the plan
// optimizer.
type Shard struct {
	Size   []int
	Offset []int

	Storage *Storage
	Perf    *Perf
	Rank    *int
}

// Storage is the memory footprint of a shard or a whole sharding option,
// split by memory tier.
type Storage struct {
	HBM int64
	DDR int64
}

// Add returns the element-wise sum of two storages.
func (s Storage) Add(other Storage) Storage {
	return Storage{HBM: s.HBM + other.HBM, DDR: s.DDR + other.DDR}
}

// String implements fmt.Stringer.
func (s Storage) String() string {
	return fmt.Sprintf("Storage(hbm=%s, ddr=%s)",
		humanize.IBytes(uint64(s.HBM)), humanize.IBytes(uint64(s.DDR)))
}

// Perf is the estimated wall time breakdown, in seconds, of one training
// iteration for a shard or a whole sharding option.
type Perf struct {
	FwdCompute      float64
	FwdComms        float64
	BwdCompute      float64
	BwdComms        float64
	PrefetchCompute float64
}

// Total returns the summed wall time of all phases.
func (p Perf) Total() float64 {
	return p.FwdCompute + p.FwdComms + p.BwdCompute + p.BwdComms + p.PrefetchCompute
}

// Add returns the element-wise sum of two perfs.
func (p Perf) Add(other Perf) Perf {
	return Perf{
		FwdCompute:      p.FwdCompute + other.FwdCompute,
		FwdComms:        p.FwdComms + other.FwdComms,
		BwdCompute:      p.BwdCompute + other.BwdCompute,
		BwdComms:        p.BwdComms + other.BwdComms,
		PrefetchCompute: p.PrefetchCompute + other.PrefetchCompute,
	}
}

// CacheParams is tuning for the caching compute kernels. The enumerator
// passes it through untouched; only caching-aware estimators and the runtime
// interpret it.
type CacheParams struct {
	Algorithm        string
	LoadFactor       *float64
	ReservedMemory   *float64
	Precision        *dtypes.DType
	PrefetchPipeline *bool
}

// ParameterConstraints restricts and annotates the sharding candidates
// produced for one table. All fields are optional; zero values mean
// "no constraint" and nil pointers mean "unset".
type ParameterConstraints struct {
	// ShardingTypes restricts which sharding types may be considered.
	// Empty means all types the sharder allows.
	ShardingTypes []ShardingType

	// ComputeKernels restricts which compute kernels may be considered.
	// Empty means all kernels the sharder allows.
	ComputeKernels []ComputeKernel

	// MinPartition is the column-wise split width; 0 selects the default
	// (MinColumnWiseDim).
	MinPartition int

	// PoolingFactors holds the expected lookups per input feature group;
	// nil defaults to a single DefaultPoolingFactor.
	PoolingFactors []float64

	CacheParams        *CacheParams
	EnforceHBM         *bool
	StochasticRounding *bool
	BoundsCheckMode    *BoundsCheckMode
	FeatureNames       []string
}

// ShardingOption is one valid (sharding type, compute kernel, shard layout)
// candidate for a table. Instances are pure data once constructed; only
// estimators mutate them afterward, filling the per-shard Storage and Perf.
type ShardingOption struct {
	// Name of the embedding table.
	Name string

	// TensorShape is the full (rows, embedding dim) shape of the table.
	TensorShape shapes.Shape

	// ModulePath is the dotted path of the owning module; Module is the
	// owning module itself.
	ModulePath string
	Module     modules.Module

	// InputLengths holds the resolved pooling factors, one per input
	// feature group.
	InputLengths []float64

	BatchSize     int
	ShardingType  ShardingType
	ComputeKernel ComputeKernel
	PartitionBy   PartitionBy

	// Shards partition the table along the sharded axis: sizes sum exactly
	// to the sharded dimension and offsets are contiguous from zero.
	Shards []Shard

	CacheParams        *CacheParams
	EnforceHBM         *bool
	StochasticRounding *bool
	BoundsCheckMode    *BoundsCheckMode

	// Dependency links options whose tables must be co-placed (towers).
	// Empty means unconstrained.
	Dependency string

	// IsPooled is the pooling classification of the owning module, shared
	// by every table of that module.
	IsPooled bool

	FeatureNames []string
}

// FQN returns the fully qualified table name: "<module path>.<table name>".
func (so *ShardingOption) FQN() string {
	return modules.JoinPath(so.ModulePath, so.Name)
}

// NumShards returns the number of shards of the candidate layout.
func (so *ShardingOption) NumShards() int { return len(so.Shards) }

// NumInputs returns the number of input feature groups.
func (so *ShardingOption) NumInputs() int { return len(so.InputLengths) }

// TotalStorage sums the estimator-populated storage of all shards.
// Shards not yet populated contribute nothing.
func (so *ShardingOption) TotalStorage() Storage {
	var total Storage
	for i := range so.Shards {
		if so.Shards[i].Storage != nil {
			total = total.Add(*so.Shards[i].Storage)
		}
	}
	return total
}

// TotalPerf sums the estimator-populated perf of all shards.
// Shards not yet populated contribute nothing.
func (so *ShardingOption) TotalPerf() Perf {
	var total Perf
	for i := range so.Shards {
		if so.Shards[i].Perf != nil {
			total = total.Add(*so.Shards[i].Perf)
		}
	}
	return total
}

// CacheLoadFactor returns the cache load factor for caching kernels, or the
// default when unset.
func (so *ShardingOption) CacheLoadFactor() float64 {
	if so.CacheParams != nil && so.CacheParams.LoadFactor != nil {
		return *so.CacheParams.LoadFactor
	}
	return DefaultCacheLoadFactor
}

// String implements fmt.Stringer.
func (so *ShardingOption) String() string {
	return fmt.Sprintf("ShardingOption(%s, type=%s, kernel=%s, partitionBy=%s, shards=%d)",
		so.FQN(), so.ShardingType, so.ComputeKernel, so.PartitionBy, so.NumShards())
}

// Sharder describes how the tables of one module kind may be sharded. It is
// the capability object the enumerator consults per matched module.
type Sharder interface {
	// ModuleKind returns the module type identifier this sharder handles;
	// modules whose Kind matches are treated as sharding units.
	ModuleKind() string

	// Name identifies the sharder in diagnostics and errors.
	Name() string

	// ShardingTypes lists the sharding types supported on the given device
	// class.
	ShardingTypes(device ComputeDevice) []ShardingType

	// ComputeKernels lists the kernels supported for the given sharding
	// type on the given device class.
	ComputeKernels(shardingType ShardingType, device ComputeDevice) []ComputeKernel

	// ShardableParameters maps table names to their shapes for a module of
	// the handled kind.
	ShardableParameters(m modules.Module) map[string]shapes.Shape
}

// Estimator attaches size or performance estimates to sharding options,
// mutating them in place. Estimators run sequentially in pipeline order;
// later estimators may rely on fields populated by earlier ones.
type Estimator interface {
	Estimate(options []*ShardingOption, sharders map[string]Sharder)
}
