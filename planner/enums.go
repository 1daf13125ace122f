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

import "github.com/pkg/errors"

// ShardingType is the strategy used to split an embedding table's storage
// and compute across devices.
type ShardingType int

const (
	// ShardingTypeDataParallel replicates the full table on every device.
	ShardingTypeDataParallel ShardingType = iota

	// ShardingTypeTableWise places the whole table on a single device.
	ShardingTypeTableWise

	// ShardingTypeColumnWise splits the table along the embedding dimension,
	// one shard per device.
	ShardingTypeColumnWise

	// ShardingTypeRowWise splits the table's rows uniformly across all devices.
	ShardingTypeRowWise

	// ShardingTypeTableRowWise splits the table's rows across the devices of
	// a single host.
	ShardingTypeTableRowWise

	// ShardingTypeTableColumnWise splits the table along the embedding
	// dimension across the devices of a single host.
	ShardingTypeTableColumnWise
)

//go:generate go tool enumer -type=ShardingType -trimprefix=ShardingType -transform=snake -values -text -output=gen_shardingtype_enumer.go enums.go

// ComputeKernel is the execution strategy for a shard once placed.
type ComputeKernel int

const (
	// ComputeKernelDense is the unfused fallback kernel: a plain lookup with
	// a separate optimizer step.
	ComputeKernelDense ComputeKernel = iota

	// ComputeKernelFused fuses lookup and optimizer update; it strictly
	// dominates ComputeKernelDense whenever both are legal.
	ComputeKernelFused

	// ComputeKernelFusedUvm is the fused kernel with the table resident in
	// unified (host) memory.
	ComputeKernelFusedUvm

	// ComputeKernelFusedUvmCaching is the fused kernel with the table in
	// unified memory and a device-side cache of hot rows.
	ComputeKernelFusedUvmCaching

	// ComputeKernelQuant is the quantized inference kernel.
	ComputeKernelQuant

	// ComputeKernelKeyValue backs the table with a key-value store.
	ComputeKernelKeyValue
)

//go:generate go tool enumer -type=ComputeKernel -trimprefix=ComputeKernel -transform=snake -values -text -output=gen_computekernel_enumer.go enums.go

// PartitionBy is the placement granularity a sharding type maps to.
type PartitionBy int

const (
	// PartitionByDevice places each shard on an individual device.
	PartitionByDevice PartitionBy = iota

	// PartitionByHost places a table's shards together within one host.
	PartitionByHost

	// PartitionByUniform places an identical split or replica on every device.
	PartitionByUniform
)

//go:generate go tool enumer -type=PartitionBy -trimprefix=PartitionBy -transform=snake -values -text -output=gen_partitionby_enumer.go enums.go

// BoundsCheckMode selects how out-of-range lookup indices are handled.
type BoundsCheckMode int

const (
	// BoundsCheckModeFatal aborts on an out-of-range index.
	BoundsCheckModeFatal BoundsCheckMode = iota

	// BoundsCheckModeWarning clamps the index and logs.
	BoundsCheckModeWarning

	// BoundsCheckModeIgnore clamps the index silently.
	BoundsCheckModeIgnore

	// BoundsCheckModeNone skips the check entirely.
	BoundsCheckModeNone
)

//go:generate go tool enumer -type=BoundsCheckMode -trimprefix=BoundsCheckMode -transform=snake -values -text -output=gen_boundscheckmode_enumer.go enums.go

// PartitionByType returns the partition granularity the given sharding type
// places shards at. It is total over the supported sharding types and
// returns an error for anything else.
func PartitionByType(shardingType ShardingType) (PartitionBy, error) {
	switch shardingType {
	case ShardingTypeTableWise, ShardingTypeColumnWise:
		return PartitionByDevice, nil
	case ShardingTypeTableRowWise, ShardingTypeTableColumnWise:
		return PartitionByHost, nil
	case ShardingTypeRowWise, ShardingTypeDataParallel:
		return PartitionByUniform, nil
	}
	return 0, errors.Errorf("unrecognized or unsupported sharding type provided: %d", shardingType)
}
