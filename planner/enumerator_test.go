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

package planner_test

import (
	"fmt"
	"testing"

	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/shardplan/modules"
	"github.com/gomlx/shardplan/planner"
	"github.com/gomlx/shardplan/sharders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(name string, rows, cols int) modules.TableConfig {
	return modules.TableConfig{Name: name, Shape: shapes.Make(dtypes.Float32, rows, cols)}
}

// recordingDiagnostics captures warnings for assertions.
type recordingDiagnostics struct {
	warnings []string
}

func (d *recordingDiagnostics) Warningf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// fakeSharder lets tests pick exact sharding-type and kernel tables.
type fakeSharder struct {
	kind    string
	types   []planner.ShardingType
	kernels map[planner.ShardingType][]planner.ComputeKernel
	params  map[string]shapes.Shape // if nil, collects the module's embedding leaves
}

func (s *fakeSharder) ModuleKind() string { return s.kind }
func (s *fakeSharder) Name() string       { return "fakeSharder" }

func (s *fakeSharder) ShardingTypes(planner.ComputeDevice) []planner.ShardingType {
	return s.types
}

func (s *fakeSharder) ComputeKernels(shardingType planner.ShardingType, _ planner.ComputeDevice) []planner.ComputeKernel {
	return s.kernels[shardingType]
}

func (s *fakeSharder) ShardableParameters(m modules.Module) map[string]shapes.Shape {
	if s.params != nil {
		return s.params
	}
	params := make(map[string]shapes.Shape)
	for _, named := range modules.NamedModules(m) {
		if leaf, ok := named.Module.(modules.EmbeddingModule); ok {
			params[leaf.Table().Name] = leaf.Table().Shape
		}
	}
	return params
}

func optionsByTable(options []*planner.ShardingOption) map[string][]*planner.ShardingOption {
	byTable := make(map[string][]*planner.ShardingOption)
	for _, opt := range options {
		byTable[opt.Name] = append(byTable[opt.Name], opt)
	}
	return byTable
}

func TestEnumerateEndToEnd(t *testing.T) {
	// One table of embedding dimension 128, world size 8, local world size 4,
	// no constraints, a sharder offering two sharding types with two kernels
	// each: expect exactly 2x2 candidates with correct geometry and
	// classification.
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("products", 100, 128)))
	sharder := &fakeSharder{
		kind:  modules.KindEmbeddingBagCollection,
		types: []planner.ShardingType{planner.ShardingTypeTableWise, planner.ShardingTypeRowWise},
		kernels: map[planner.ShardingType][]planner.ComputeKernel{
			planner.ShardingTypeTableWise: {planner.ComputeKernelFused, planner.ComputeKernelFusedUvm},
			planner.ShardingTypeRowWise:   {planner.ComputeKernelDense, planner.ComputeKernelQuant},
		},
	}
	diags := &recordingDiagnostics{}

	options, err := planner.NewEnumerator(topology, 512).
		WithDiagnostics(diags).
		Enumerate(root, []planner.Sharder{sharder})
	require.NoError(t, err)
	require.Len(t, options, 4)
	assert.Empty(t, diags.warnings)

	for _, opt := range options {
		assert.Equal(t, "products", opt.Name)
		assert.Equal(t, "sparse", opt.ModulePath)
		assert.Equal(t, "sparse.products", opt.FQN())
		assert.Equal(t, 512, opt.BatchSize)
		assert.Equal(t, []float64{planner.DefaultPoolingFactor}, opt.InputLengths)
		assert.True(t, opt.IsPooled)
		assert.Empty(t, opt.Dependency)

		switch opt.ShardingType {
		case planner.ShardingTypeTableWise:
			assert.Equal(t, planner.PartitionByDevice, opt.PartitionBy)
			require.Equal(t, 1, opt.NumShards())
			assert.Equal(t, []int{100, 128}, opt.Shards[0].Size)
			assert.Contains(t, []planner.ComputeKernel{
				planner.ComputeKernelFused, planner.ComputeKernelFusedUvm}, opt.ComputeKernel)
		case planner.ShardingTypeRowWise:
			assert.Equal(t, planner.PartitionByUniform, opt.PartitionBy)
			require.Equal(t, 8, opt.NumShards())
			rows := 0
			for _, shard := range opt.Shards {
				rows += shard.Size[0]
			}
			assert.Equal(t, 100, rows)
			assert.Contains(t, []planner.ComputeKernel{
				planner.ComputeKernelDense, planner.ComputeKernelQuant}, opt.ComputeKernel)
		default:
			t.Fatalf("unexpected sharding type %s", opt.ShardingType)
		}
	}
}

func TestEnumerateStockSharders(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(
			table("t1", 1000, 128), table("t2", 2000, 64)))

	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.NoError(t, err)

	// Per table: data-parallel offers only dense; the 5 other sharding types
	// offer {dense, fused, fused_uvm, fused_uvm_caching} with dense removed.
	byTable := optionsByTable(options)
	require.Len(t, byTable, 2)
	assert.Len(t, byTable["t1"], 1+5*3)
	assert.Len(t, byTable["t2"], 1+5*3)

	for _, opt := range options {
		// Dense survives only where fused is not offered.
		if opt.ComputeKernel == planner.ComputeKernelDense {
			assert.Equal(t, planner.ShardingTypeDataParallel, opt.ShardingType)
		}
		assert.True(t, opt.IsPooled)
		// Default estimators ran.
		for i := range opt.Shards {
			require.NotNil(t, opt.Shards[i].Storage)
			require.NotNil(t, opt.Shards[i].Perf)
		}
		assert.Greater(t, opt.TotalPerf().Total(), 0.0)
	}
}

func TestEnumerateShardingTypeConstraint(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))
	diags := &recordingDiagnostics{}

	options, err := planner.NewEnumerator(topology, 256).
		WithConstraints(map[string]*planner.ParameterConstraints{
			"t1": {ShardingTypes: []planner.ShardingType{planner.ShardingTypeRowWise}},
		}).
		WithDiagnostics(diags).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.NoError(t, err)
	assert.Empty(t, diags.warnings)

	require.Len(t, options, 3) // fused, fused_uvm, fused_uvm_caching
	for _, opt := range options {
		assert.Equal(t, planner.ShardingTypeRowWise, opt.ShardingType)
	}
}

func TestEnumerateImpossibleConstraintFails(t *testing.T) {
	// Column-wise is not offered on CPU, so a column-wise-only constraint
	// empties the only sharding-type set this table has: a warning at the
	// filter stage, then a configuration error for the table.
	topology := planner.NewTopology(planner.ComputeDeviceCPU, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))
	diags := &recordingDiagnostics{}

	_, err := planner.NewEnumerator(topology, 256).
		WithConstraints(map[string]*planner.ParameterConstraints{
			"t1": {ShardingTypes: []planner.ShardingType{planner.ShardingTypeColumnWise}},
		}).
		WithDiagnostics(diags).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "t1")
	assert.Contains(t, err.Error(), "cpu")
	require.Len(t, diags.warnings, 1)
	assert.Contains(t, diags.warnings[0], "sharding types")
}

func TestEnumerateKernelConstraintPartialSurvival(t *testing.T) {
	// A fused-only kernel constraint empties the data-parallel kernel set
	// (warning, recoverable) but every other sharding type survives with
	// exactly the fused kernel.
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))
	diags := &recordingDiagnostics{}

	options, err := planner.NewEnumerator(topology, 256).
		WithConstraints(map[string]*planner.ParameterConstraints{
			"t1": {ComputeKernels: []planner.ComputeKernel{planner.ComputeKernelFused}},
		}).
		WithDiagnostics(diags).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.NoError(t, err)

	require.Len(t, options, 5)
	for _, opt := range options {
		assert.Equal(t, planner.ComputeKernelFused, opt.ComputeKernel)
		assert.NotEqual(t, planner.ShardingTypeDataParallel, opt.ShardingType)
	}
	require.Len(t, diags.warnings, 1)
	assert.Contains(t, diags.warnings[0], "compute kernels")
}

func TestEnumerateDenseFusedExclusion(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))
	sharder := &fakeSharder{
		kind:  modules.KindEmbeddingBagCollection,
		types: []planner.ShardingType{planner.ShardingTypeTableWise},
		kernels: map[planner.ShardingType][]planner.ComputeKernel{
			planner.ShardingTypeTableWise: {planner.ComputeKernelDense, planner.ComputeKernelFused},
		},
	}

	// Both legal: dense is removed, fused wins.
	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharder})
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, planner.ComputeKernelFused, options[0].ComputeKernel)

	// An explicit dense-only constraint excludes fused at the intersection
	// stage first, so dense survives.
	options, err = planner.NewEnumerator(topology, 256).
		WithConstraints(map[string]*planner.ParameterConstraints{
			"t1": {ComputeKernels: []planner.ComputeKernel{planner.ComputeKernelDense}},
		}).
		Enumerate(root, []planner.Sharder{sharder})
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, planner.ComputeKernelDense, options[0].ComputeKernel)
}

func TestEnumerateColumnWiseMinPartition(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))

	options, err := planner.NewEnumerator(topology, 256).
		WithConstraints(map[string]*planner.ParameterConstraints{
			"t1": {
				ShardingTypes: []planner.ShardingType{planner.ShardingTypeColumnWise},
				MinPartition:  64,
			},
		}).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.NoError(t, err)
	require.NotEmpty(t, options)
	for _, opt := range options {
		require.Equal(t, 2, opt.NumShards())
		assert.Equal(t, []int{1000, 64}, opt.Shards[0].Size)
		assert.Equal(t, []int{0, 64}, opt.Shards[1].Offset)
	}
}

func TestEnumerateTowerDependency(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	tower := modules.NewTower(modules.NewEmbeddingBagCollection(table("t1", 1000, 128)), nil)
	root := modules.NewSequential().Add("tower", tower)

	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharders.NewTower()})
	require.NoError(t, err)
	require.NotEmpty(t, options)
	for _, opt := range options {
		assert.Equal(t, "tower", opt.Dependency)
	}
}

func TestEnumerateTowerCollectionDependencies(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	tower0 := modules.NewTower(modules.NewEmbeddingBagCollection(
		table("t1", 1000, 128), table("t2", 500, 128)), nil)
	tower1 := modules.NewTower(modules.NewEmbeddingBagCollection(
		table("t3", 2000, 64)), nil)
	root := modules.NewSequential().
		Add("encoder", modules.NewSequential().
			Add("towers", modules.NewTowerCollection(tower0, tower1)))

	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharders.NewTowerCollection()})
	require.NoError(t, err)

	byTable := optionsByTable(options)
	require.Len(t, byTable, 3)
	wantDependency := map[string]string{
		"t1": "encoder.towers.tower_0",
		"t2": "encoder.towers.tower_0",
		"t3": "encoder.towers.tower_1",
	}
	for name, tableOptions := range byTable {
		for _, opt := range tableOptions {
			assert.Equalf(t, wantDependency[name], opt.Dependency, "table %s", name)
			assert.Equal(t, "encoder.towers", opt.ModulePath)
		}
	}
}

func TestEnumerateTowerCollectionUnknownTable(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	collection := modules.NewTowerCollection(
		modules.NewTower(modules.NewEmbeddingBagCollection(table("t1", 1000, 128)), nil))
	root := modules.NewSequential().Add("towers", collection)

	// A sharder claiming a table no tower owns must fail resolution.
	sharder := &fakeSharder{
		kind:  modules.KindEmbeddingTowerCollection,
		types: []planner.ShardingType{planner.ShardingTypeTableWise},
		kernels: map[planner.ShardingType][]planner.ComputeKernel{
			planner.ShardingTypeTableWise: {planner.ComputeKernelFused},
		},
		params: map[string]shapes.Shape{"ghost": shapes.Make(dtypes.Float32, 10, 16)},
	}
	_, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharder})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tower owns table")
	assert.Contains(t, err.Error(), "ghost")
}

func TestEnumerateUnpooledSharedPerModule(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("seq", modules.NewEmbeddingCollection(
			table("t1", 1000, 128), table("t2", 500, 64)))

	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingCollection()})
	require.NoError(t, err)
	require.NotEmpty(t, options)
	// Both tables live in the same sequence collection: every option shares
	// the module-level unpooled classification.
	for _, opt := range options {
		assert.False(t, opt.IsPooled)
	}
}

// orderedEstimator records its pipeline position on every run.
type orderedEstimator struct {
	id  int
	log *[]int
}

func (e *orderedEstimator) Estimate(options []*planner.ShardingOption, sharders map[string]planner.Sharder) {
	*e.log = append(*e.log, e.id)
}

func TestPopulateEstimatesOrder(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))

	var log []int
	enumerator := planner.NewEnumerator(topology, 256).
		WithEstimators(&orderedEstimator{id: 1, log: &log}, &orderedEstimator{id: 2, log: &log})
	options, err := enumerator.Enumerate(root, []planner.Sharder{sharders.NewEmbeddingBagCollection()})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, log)

	// Re-running the pipeline standalone repeats the same order.
	enumerator.PopulateEstimates(options)
	assert.Equal(t, []int{1, 2, 1, 2}, log)
}

func TestEnumerateNoSharderMatch(t *testing.T) {
	topology := planner.NewTopology(planner.ComputeDeviceCUDA, 8, 4)
	root := modules.NewSequential().
		Add("sparse", modules.NewEmbeddingBagCollection(table("t1", 1000, 128)))

	// No sharder matches any module kind: nothing to shard, no error.
	options, err := planner.NewEnumerator(topology, 256).
		Enumerate(root, []planner.Sharder{sharders.NewEmbeddingCollection()})
	require.NoError(t, err)
	assert.Empty(t, options)
}
