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

// The stock estimators below use a deliberately coarse hardware model (see
// constants.go): enough to rank sharding options against each other, not to
// predict absolute wall times. Callers with better models inject their own
// Estimator implementations via Enumerator.WithEstimators.

// StorageEstimator fills Shard.Storage for every option: the table shard
// itself plus its input indices and output activations, split between HBM
// and DDR according to the compute kernel and device class.
type StorageEstimator struct {
	topology *Topology
}

// NewStorageEstimator creates a StorageEstimator for the given topology.
func NewStorageEstimator(topology *Topology) *StorageEstimator {
	return &StorageEstimator{topology: topology}
}

// Estimate implements Estimator.
func (est *StorageEstimator) Estimate(options []*ShardingOption, _ map[string]Sharder) {
	for _, opt := range options {
		elemBytes := int64(opt.TensorShape.DType.Memory())
		poolingSum := sumFloats(opt.InputLengths)
		for i := range opt.Shards {
			shard := &opt.Shards[i]
			tableBytes := int64(shard.Size[0]) * int64(shard.Size[1]) * elemBytes
			inputBytes := int64(float64(opt.BatchSize)*poolingSum) * IndexBytes
			outputBytes := int64(opt.BatchSize) * int64(shard.Size[1]) * elemBytes
			storage := est.placement(opt, tableBytes, inputBytes+outputBytes)
			shard.Storage = &storage
		}
	}
}

// placement splits a shard's bytes between memory tiers. Activations (io)
// always live in the compute device's memory; the table lives where the
// kernel keeps it, with EnforceHBM overriding the UVM kernels' host
// placement.
func (est *StorageEstimator) placement(opt *ShardingOption, tableBytes, ioBytes int64) Storage {
	if est.topology.ComputeDevice() != ComputeDeviceCUDA {
		return Storage{DDR: tableBytes + ioBytes}
	}
	if opt.EnforceHBM != nil && *opt.EnforceHBM {
		return Storage{HBM: tableBytes + ioBytes}
	}
	switch opt.ComputeKernel {
	case ComputeKernelFusedUvm, ComputeKernelKeyValue:
		return Storage{HBM: ioBytes, DDR: tableBytes}
	case ComputeKernelFusedUvmCaching:
		cached := int64(opt.CacheLoadFactor() * float64(tableBytes))
		return Storage{HBM: cached + ioBytes, DDR: tableBytes}
	default:
		return Storage{HBM: tableBytes + ioBytes}
	}
}

// PerfEstimator fills Shard.Perf for every option with a roofline-style time
// model: compute phases are bound by the bandwidth of the memory tier the
// kernel reads the table from, comms phases by the interconnect of the
// partition granularity.
type PerfEstimator struct {
	topology *Topology
}

// NewPerfEstimator creates a PerfEstimator for the given topology.
func NewPerfEstimator(topology *Topology) *PerfEstimator {
	return &PerfEstimator{topology: topology}
}

// Estimate implements Estimator.
func (est *PerfEstimator) Estimate(options []*ShardingOption, _ map[string]Sharder) {
	for _, opt := range options {
		elemBytes := float64(opt.TensorShape.DType.Memory())
		poolingSum := sumFloats(opt.InputLengths)
		memBandwidth := est.memBandwidth(opt.ComputeKernel)
		for i := range opt.Shards {
			shard := &opt.Shards[i]
			lookupBytes := float64(opt.BatchSize) * poolingSum * float64(shard.Size[1]) * elemBytes
			outputBytes := float64(opt.BatchSize) * float64(shard.Size[1]) * elemBytes
			tableBytes := float64(shard.Size[0]) * float64(shard.Size[1]) * elemBytes

			perf := Perf{
				FwdCompute: lookupBytes / memBandwidth,
				// The backward pass re-touches the rows for the gradient and
				// the optimizer update.
				BwdCompute: 2 * lookupBytes / memBandwidth,
			}
			if opt.ShardingType == ShardingTypeDataParallel {
				// Replicated tables exchange gradients instead of outputs.
				perf.BwdComms = 2 * tableBytes / crossHostBandwidth
			} else {
				commsBandwidth := float64(crossHostBandwidth)
				if opt.PartitionBy == PartitionByHost {
					commsBandwidth = intraHostBandwidth
				}
				perf.FwdComms = outputBytes / commsBandwidth
				perf.BwdComms = outputBytes / commsBandwidth
			}
			if opt.ComputeKernel == ComputeKernelFusedUvmCaching {
				missRate := 1 - opt.CacheLoadFactor()
				perf.PrefetchCompute = missRate * lookupBytes / ddrMemBandwidth
			}
			shard.Perf = &perf
		}
	}
}

// memBandwidth returns the bandwidth of the memory tier the kernel streams
// the table from.
func (est *PerfEstimator) memBandwidth(kernel ComputeKernel) float64 {
	if est.topology.ComputeDevice() != ComputeDeviceCUDA {
		return ddrMemBandwidth
	}
	switch kernel {
	case ComputeKernelFusedUvm, ComputeKernelKeyValue:
		return ddrMemBandwidth
	default:
		return hbmMemBandwidth
	}
}

func sumFloats(values []float64) (sum float64) {
	for _, v := range values {
		sum += v
	}
	return
}
