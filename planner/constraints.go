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

// resolvedConstraints holds the per-table settings the enumerator uses after
// defaults are applied: either copied verbatim from the table's
// ParameterConstraints entry or filled with canonical defaults.
type resolvedConstraints struct {
	poolingFactors     []float64
	colWiseShardDim    int
	cacheParams        *CacheParams
	enforceHBM         *bool
	stochasticRounding *bool
	boundsCheckMode    *BoundsCheckMode
	featureNames       []string
}

// resolveConstraints looks up the constraints entry for a table. A missing
// or nil entry yields all defaults: a single DefaultPoolingFactor, no
// column-wise width, no cache params, unset flags and no feature names.
// An existing entry is returned field-for-field, without interpretation.
func resolveConstraints(constraints map[string]*ParameterConstraints, name string) resolvedConstraints {
	resolved := resolvedConstraints{
		poolingFactors: []float64{DefaultPoolingFactor},
	}
	c := constraints[name]
	if c == nil {
		return resolved
	}
	if c.PoolingFactors != nil {
		resolved.poolingFactors = c.PoolingFactors
	}
	resolved.colWiseShardDim = c.MinPartition
	resolved.cacheParams = c.CacheParams
	resolved.enforceHBM = c.EnforceHBM
	resolved.stochasticRounding = c.StochasticRounding
	resolved.boundsCheckMode = c.BoundsCheckMode
	resolved.featureNames = c.FeatureNames
	return resolved
}
