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


package dynamic

import "errors"

var (
	// ErrEmptySpec is returned when an empty path spec is compiled.
	ErrEmptySpec = errors.New("path spec cannot be empty")

	// ErrEmptySegment is returned when a spec contains an empty segment.
	ErrEmptySegment = errors.New("path spec segment cannot be empty")

	// ErrCollectionLeaf is returned when the final segment of a spec
	// carries a collection suffix; leaves must resolve to text.
	ErrCollectionLeaf = errors.New("path spec cannot end in a collection segment")
)
