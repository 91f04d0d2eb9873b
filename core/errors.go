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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidPath indicates a Path failed validation.
	ErrInvalidPath = errors.New("invalid search path")

	// ErrNilPath indicates a nil Path was supplied where one is required.
	ErrNilPath = errors.New("path cannot be nil")

	// ErrNilAccessor indicates a Path node has no accessor.
	ErrNilAccessor = errors.New("path accessor cannot be nil")
)
