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

import "k8s.io/klog/v2"

// Diagnostics receives the non-fatal warnings enumeration emits, typically
// when user constraints narrow a candidate set to empty before the final
// per-table check.
type Diagnostics interface {
	Warningf(format string, args ...any)
}

// klogDiagnostics forwards warnings to klog.
type klogDiagnostics struct{}

func (klogDiagnostics) Warningf(format string, args ...any) {
	klog.Warningf(format, args...)
}

// DefaultDiagnostics returns the sink used when none is injected: it
// forwards warnings to klog.
func DefaultDiagnostics() Diagnostics { return klogDiagnostics{} }
