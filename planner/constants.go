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

import "github.com/dustin/go-humanize"

const (
	// DefaultPoolingFactor is the expected lookups per input feature group
	// assumed when a table has no constraints entry.
	DefaultPoolingFactor = 1.0

	// MinColumnWiseDim is the default column-wise split width, used when a
	// table's constraints don't set MinPartition.
	MinColumnWiseDim = 32

	// DefaultCacheLoadFactor is the fraction of a table assumed resident in
	// the device-side cache of caching kernels when CacheParams doesn't say.
	DefaultCacheLoadFactor = 0.2

	// IndexBytes is the byte width of a lookup index.
	IndexBytes = 8
)

// Hardware model used by the stock estimators, in bytes per second. These
// describe a typical training host; estimators take them as the baseline
// rather than probing hardware.
const (
	hbmMemBandwidth    = 897 * humanize.GiByte
	ddrMemBandwidth    = 51 * humanize.GiByte
	intraHostBandwidth = 600 * humanize.GiByte
	crossHostBandwidth = 25 * humanize.GiByte / 2
)
