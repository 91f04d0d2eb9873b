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


package search

import "errors"

var (
	// ErrPathsRequired is returned when no search paths are provided.
	ErrPathsRequired = errors.New("at least one search path required")

	// ErrFactoryRequired is returned when a nil result factory is provided.
	ErrFactoryRequired = errors.New("result factory required")

	// ErrDeliveryRequired is returned when no delivery callback is provided.
	ErrDeliveryRequired = errors.New("delivery callback required")

	// ErrInvalidDedupPolicy is returned for an unknown dedup policy value.
	ErrInvalidDedupPolicy = errors.New("invalid dedup policy")
)
