// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package dynamic compiles dotted path specs into search paths over
// untyped records, the map[string]any and []any shapes produced by YAML
// and JSON decoding.
//
// A spec names one map key per segment; a segment may carry a "[]" suffix
// to document descent into a sub-collection:
//
//	name
//	stores[].name
//	details.manufacturer.name
//
// Compiling the same spec twice returns the identical descriptor, so
// pointer identity of compiled paths coincides with spec equality. The
// compiler remembers the spec of every path it produced and can serve as
// the category labeler for search results.
package dynamic
