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

// Package planner enumerates the valid sharding candidates for the embedding
// tables of a model: for every table found under a module tree it produces
// one ShardingOption per surviving (sharding type, compute kernel)
// combination, each annotated with shard geometry, partition granularity and
// co-placement dependencies, and populated by an estimator pipeline with
// storage and performance figures. A downstream optimizer picks one option
// per table; this package only enumerates.
//
// Enumeration is single-threaded and purely in-memory: inputs (Topology,
// constraints, the module tree) are read-only for the duration of a call,
// and estimators are the only mutators of the produced options.
package planner

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/types/xslices"
	"github.com/gomlx/shardplan/modules"
	"github.com/pkg/errors"
)

// Enumerator produces every valid sharding candidate for the embedding
// tables found under a module tree. Create it with NewEnumerator, optionally
// chain WithConstraints, WithEstimators and WithDiagnostics, then call
// Enumerate.
type Enumerator struct {
	topology    *Topology
	batchSize   int
	constraints map[string]*ParameterConstraints
	estimators  []Estimator
	diagnostics Diagnostics

	sharderRegistry map[string]Sharder
}

// NewEnumerator creates an Enumerator for the given cluster topology and
// global batch size. By default options are populated by a PerfEstimator
// followed by a StorageEstimator, and warnings go to klog.
//
// It panics if topology is nil or batchSize is not positive.
func NewEnumerator(topology *Topology, batchSize int) *Enumerator {
	if topology == nil {
		exceptions.Panicf("planner.NewEnumerator: topology must not be nil")
	}
	if batchSize <= 0 {
		exceptions.Panicf("planner.NewEnumerator: batchSize must be positive, got %d", batchSize)
	}
	return &Enumerator{
		topology:  topology,
		batchSize: batchSize,
		estimators: []Estimator{
			NewPerfEstimator(topology),
			NewStorageEstimator(topology),
		},
		diagnostics: DefaultDiagnostics(),
	}
}

// WithConstraints sets the per-table user constraints. It returns the
// Enumerator for chaining.
func (e *Enumerator) WithConstraints(constraints map[string]*ParameterConstraints) *Enumerator {
	e.constraints = constraints
	return e
}

// WithEstimators replaces the estimator pipeline. Estimators run in the
// given order; later estimators may rely on fields filled by earlier ones.
// It returns the Enumerator for chaining.
func (e *Enumerator) WithEstimators(estimators ...Estimator) *Enumerator {
	e.estimators = estimators
	return e
}

// WithDiagnostics replaces the warning sink. It returns the Enumerator for
// chaining.
func (e *Enumerator) WithDiagnostics(sink Diagnostics) *Enumerator {
	e.diagnostics = sink
	return e
}

// Enumerate walks the module tree and returns one ShardingOption per valid
// (table, sharding type, compute kernel) combination, with estimates
// populated.
//
// Modules whose Kind matches a sharder are treated as sharding units; other
// modules are recursed into. A table left with zero candidates after
// constraint filtering is an error: an incomplete plan is worse than no
// plan, so nothing is returned in that case.
func (e *Enumerator) Enumerate(module modules.Module, sharders []Sharder) ([]*ShardingOption, error) {
	e.sharderRegistry = make(map[string]Sharder, len(sharders))
	for _, sharder := range sharders {
		e.sharderRegistry[sharder.ModuleKind()] = sharder
	}

	var options []*ShardingOption
	worklist := []modules.Named{{Name: "", Module: module}}
	for len(worklist) > 0 {
		var current modules.Named
		current, worklist = xslices.Pop(worklist)
		sharder := e.sharderRegistry[current.Module.Kind()]
		if sharder == nil {
			for _, child := range current.Module.NamedChildren() {
				worklist = append(worklist, modules.Named{
					Name:   modules.JoinPath(current.Name, child.Name),
					Module: child.Module,
				})
			}
			continue
		}

		// Pooling is a property of the module, not of each table: computing
		// it once here keeps enumeration linear in the number of tables,
		// instead of every option re-walking the module subtree.
		isPooled := modules.IsPooled(current.Module)

		params := sharder.ShardableParameters(current.Module)
		for _, name := range slices.Sorted(maps.Keys(params)) {
			shape := params[name]
			resolved := resolveConstraints(e.constraints, name)

			var perTable []*ShardingOption
			for _, shardingType := range e.filterShardingTypes(name, sharder.ShardingTypes(e.topology.ComputeDevice())) {
				allowedKernels := sharder.ComputeKernels(shardingType, e.topology.ComputeDevice())
				for _, kernel := range e.filterComputeKernels(name, allowedKernels, shardingType) {
					sizes, offsets, err := ShardSizesAndOffsets(shape,
						e.topology.WorldSize(), e.topology.LocalWorldSize(),
						shardingType, resolved.colWiseShardDim)
					if err != nil {
						return nil, errors.Wrapf(err, "table %q", name)
					}
					partitionBy, err := PartitionByType(shardingType)
					if err != nil {
						return nil, errors.Wrapf(err, "table %q", name)
					}
					dependency, err := resolveDependency(current, name)
					if err != nil {
						return nil, err
					}
					shards := make([]Shard, len(sizes))
					for i := range shards {
						shards[i] = Shard{Size: sizes[i], Offset: offsets[i]}
					}
					perTable = append(perTable, &ShardingOption{
						Name:               name,
						TensorShape:        shape,
						ModulePath:         current.Name,
						Module:             current.Module,
						InputLengths:       resolved.poolingFactors,
						BatchSize:          e.batchSize,
						ShardingType:       shardingType,
						ComputeKernel:      kernel,
						PartitionBy:        partitionBy,
						Shards:             shards,
						CacheParams:        resolved.cacheParams,
						EnforceHBM:         resolved.enforceHBM,
						StochasticRounding: resolved.stochasticRounding,
						BoundsCheckMode:    resolved.boundsCheckMode,
						Dependency:         dependency,
						IsPooled:           isPooled,
						FeatureNames:       resolved.featureNames,
					})
				}
			}
			if len(perTable) == 0 {
				return nil, errors.Errorf(
					"no available sharding type and compute kernel combination after applying user provided constraints for table %q (module kind %q, sharder %q, compute device %s); "+
						"check the warnings emitted for this table's sharding types and compute kernels",
					name, current.Module.Kind(), sharder.Name(), e.topology.ComputeDevice())
			}
			options = append(options, perTable...)
		}
	}

	e.PopulateEstimates(options)
	return options, nil
}

// PopulateEstimates runs the estimator pipeline, in order, over options.
// Enumerate calls it automatically; callers that re-filter or mutate options
// between planning passes can re-run it standalone.
func (e *Enumerator) PopulateEstimates(options []*ShardingOption) {
	for _, estimator := range e.estimators {
		estimator.Estimate(options, e.sharderRegistry)
	}
}

// filterShardingTypes intersects the sharder's allowed sharding types with
// the table's constrained ones, preserving the allowed-list order. An empty
// intersection is reported to the diagnostics sink but returned as-is: the
// caller decides whether the table is a lost cause.
func (e *Enumerator) filterShardingTypes(name string, allowed []ShardingType) []ShardingType {
	c := e.constraints[name]
	if c == nil || len(c.ShardingTypes) == 0 {
		return allowed
	}
	filtered := make([]ShardingType, 0, len(allowed))
	for _, shardingType := range allowed {
		if slices.Contains(c.ShardingTypes, shardingType) {
			filtered = append(filtered, shardingType)
		}
	}
	if len(filtered) == 0 {
		e.diagnostics.Warningf(
			"no available sharding types after applying user provided constraints for table %q: constrained %v, allowed by sharder %v",
			name, c.ShardingTypes, allowed)
	}
	return filtered
}

// filterComputeKernels intersects the sharder's allowed kernels for a
// sharding type with the table's constrained ones, preserving the
// allowed-list order, then drops the dense kernel when the fused kernel also
// survived: fused strictly dominates dense whenever both are legal. Note the
// constraint intersection runs first, so a dense-only constraint is honored
// (it excludes fused before the rule applies). An empty result is reported
// to the diagnostics sink but returned as-is.
func (e *Enumerator) filterComputeKernels(name string, allowed []ComputeKernel, shardingType ShardingType) []ComputeKernel {
	filtered := allowed
	if c := e.constraints[name]; c != nil && len(c.ComputeKernels) > 0 {
		filtered = make([]ComputeKernel, 0, len(allowed))
		for _, kernel := range allowed {
			if slices.Contains(c.ComputeKernels, kernel) {
				filtered = append(filtered, kernel)
			}
		}
	}
	if slices.Contains(filtered, ComputeKernelFused) {
		// Never true for data-parallel, which only offers the dense kernel.
		if idx := slices.Index(filtered, ComputeKernelDense); idx >= 0 {
			filtered = slices.Delete(slices.Clone(filtered), idx, idx+1)
		}
	}
	if len(filtered) == 0 {
		e.diagnostics.Warningf(
			"no available compute kernels after applying user provided constraints for table %q: allowed by sharder %v, sharding type %s",
			name, allowed, shardingType)
	}
	return filtered
}

// resolveDependency returns the co-placement key for tables owned by towers:
// the tower's own path, or, within a tower collection, the collection path
// suffixed with the index of the owning tower. Tables outside towers get no
// dependency.
func resolveDependency(node modules.Named, tableName string) (string, error) {
	switch m := node.Module.(type) {
	case *modules.Tower:
		return node.Name, nil
	case *modules.TowerCollection:
		index, err := towerIndex(m, tableName)
		if err != nil {
			return "", errors.Wrapf(err, "tower collection %q", node.Name)
		}
		return fmt.Sprintf("%s.tower_%d", node.Name, index), nil
	}
	return "", nil
}

// towerIndex finds which tower of the collection owns the named table, by
// scanning each tower's embedding leaf modules for a path whose last segment
// equals the table name.
func towerIndex(collection *modules.TowerCollection, tableName string) (int, error) {
	for i, tower := range collection.Towers() {
		for _, named := range modules.NamedModules(tower) {
			if _, ok := named.Module.(modules.EmbeddingModule); !ok {
				continue
			}
			segments := strings.Split(named.Name, ".")
			if segments[len(segments)-1] == tableName {
				return i, nil
			}
		}
	}
	return 0, errors.Errorf("no tower owns table %q", tableName)
}
