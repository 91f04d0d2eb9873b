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


// Package search provides schema-agnostic substring search over in-memory
// record collections.
//
// The Searcher type walks declarative field paths through arbitrarily
// shaped records, collecting every leaf text value that contains the query
// case-insensitively. Matches are deduplicated under a configurable policy
// and ranked by the position of the query inside the matched text.
//
// Apply re-uses a previously found match as an exact filter, narrowing a
// record collection to the records that carry the matched text at the
// match's path.
package search
