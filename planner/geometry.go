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
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/pkg/errors"
)

// ShardSizesAndOffsets computes the shard layout of a table for a sharding
// type: ordered per-shard (rows, cols) sizes and the matching offsets within
// the full tensor. Along the sharded axis the sizes sum exactly to the
// tensor's dimension and the offsets are contiguous from zero, with no gaps
// or overlaps.
//
// colWiseShardDim is the column-wise split width; 0 selects MinColumnWiseDim.
// It panics if shape is not rank-2 and returns an error for an unsupported
// sharding type.
func ShardSizesAndOffsets(shape shapes.Shape, worldSize, localWorldSize int,
	shardingType ShardingType, colWiseShardDim int) (sizes, offsets [][]int, err error) {
	if shape.Rank() != 2 {
		exceptions.Panicf("planner.ShardSizesAndOffsets: embedding tables must be rank-2 (rows, embedding dim), got shape %s", shape)
	}
	rows, columns := shape.Dimensions[0], shape.Dimensions[1]

	switch shardingType {
	case ShardingTypeDataParallel:
		sizes = make([][]int, worldSize)
		offsets = make([][]int, worldSize)
		for rank := range sizes {
			sizes[rank] = []int{rows, columns}
			offsets[rank] = []int{0, 0}
		}
		return sizes, offsets, nil

	case ShardingTypeTableWise:
		return [][]int{{rows, columns}}, [][]int{{0, 0}}, nil

	case ShardingTypeRowWise:
		sizes, offsets = rowWiseShards(rows, worldSize, columns)
		return sizes, offsets, nil

	case ShardingTypeTableRowWise:
		sizes, offsets = rowWiseShards(rows, localWorldSize, columns)
		return sizes, offsets, nil

	case ShardingTypeColumnWise, ShardingTypeTableColumnWise:
		sizes, offsets = columnWiseShards(rows, columns, colWiseShardDim)
		return sizes, offsets, nil
	}
	return nil, nil, errors.Errorf("unsupported sharding type %s for shard size calculation", shardingType)
}

// rowWiseShards splits rows across numDevices: every rank below rows/block
// gets a full block of ceil(rows/numDevices) rows, the next rank gets the
// remainder, and any ranks past that get zero rows.
func rowWiseShards(rows, numDevices, columns int) (sizes, offsets [][]int) {
	blockSize := (rows + numDevices - 1) / numDevices
	lastRank := rows / blockSize
	lastBlockSize := rows - blockSize*lastRank

	sizes = make([][]int, numDevices)
	offsets = make([][]int, numDevices)
	for rank := range sizes {
		var localRows int
		switch {
		case rank < lastRank:
			localRows = blockSize
		case rank == lastRank:
			localRows = lastBlockSize
		}
		sizes[rank] = []int{localRows, columns}
	}
	offsets[0] = []int{0, 0}
	for rank := 1; rank < numDevices; rank++ {
		offsets[rank] = []int{offsets[rank-1][0] + sizes[rank-1][0], 0}
	}
	return sizes, offsets
}

// columnWiseShards splits columns into blocks of shardDim (capped at the
// table width), folding the division residual into the last shard.
func columnWiseShards(rows, columns, shardDim int) (sizes, offsets [][]int) {
	if shardDim <= 0 {
		shardDim = MinColumnWiseDim
	}
	blockSize := min(shardDim, columns)
	numShards := columns / blockSize
	residual := columns % blockSize

	sizes = make([][]int, numShards)
	offsets = make([][]int, numShards)
	for i := range sizes {
		sizes[i] = []int{rows, blockSize}
		offsets[i] = []int{0, i * blockSize}
	}
	sizes[numShards-1][1] += residual
	return sizes, offsets
}
