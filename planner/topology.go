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

	"github.com/gomlx/exceptions"
)

// ComputeDevice is the class of device the plan targets.
type ComputeDevice int

const (
	// ComputeDeviceCPU plans for host-only execution.
	ComputeDeviceCPU ComputeDevice = iota

	// ComputeDeviceCUDA plans for accelerator execution.
	ComputeDeviceCUDA
)

//go:generate go tool enumer -type=ComputeDevice -trimprefix=ComputeDevice -transform=lower -values -text -output=gen_computedevice_enumer.go topology.go

// Topology is the immutable description of the target cluster: the compute
// device class, the total device count (world size) and the device count per
// host (local world size).
type Topology struct {
	computeDevice  ComputeDevice
	worldSize      int
	localWorldSize int
}

// NewTopology creates a Topology.
//
// It panics if the sizes are not positive or if worldSize is not a multiple
// of localWorldSize.
func NewTopology(computeDevice ComputeDevice, worldSize, localWorldSize int) *Topology {
	if worldSize <= 0 || localWorldSize <= 0 {
		exceptions.Panicf("planner.NewTopology: world sizes must be positive, got worldSize=%d, localWorldSize=%d",
			worldSize, localWorldSize)
	}
	if worldSize%localWorldSize != 0 {
		exceptions.Panicf("planner.NewTopology: worldSize=%d must be a multiple of localWorldSize=%d",
			worldSize, localWorldSize)
	}
	return &Topology{
		computeDevice:  computeDevice,
		worldSize:      worldSize,
		localWorldSize: localWorldSize,
	}
}

// ComputeDevice returns the device class of the cluster.
func (t *Topology) ComputeDevice() ComputeDevice { return t.computeDevice }

// WorldSize returns the total number of devices.
func (t *Topology) WorldSize() int { return t.worldSize }

// LocalWorldSize returns the number of devices per host.
func (t *Topology) LocalWorldSize() int { return t.localWorldSize }

// NumHosts returns the number of hosts in the cluster.
func (t *Topology) NumHosts() int { return t.worldSize / t.localWorldSize }

// String implements fmt.Stringer.
func (t *Topology) String() string {
	return fmt.Sprintf("Topology(device=%s, worldSize=%d, localWorldSize=%d)",
		t.computeDevice, t.worldSize, t.localWorldSize)
}
