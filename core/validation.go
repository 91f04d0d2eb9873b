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

import "fmt"

// ValidatePath validates a Path chain according to domain rules.
//
// Validation rules:
//   - The path must not be nil
//   - Every node in the chain must carry an accessor
//
// NOT validated (discovered at resolution time):
//   - Whether a leaf actually yields Text for a given record
//   - Whether an intermediate node actually yields a List
func ValidatePath(p *Path) error {
	if p == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, ErrNilPath)
	}

	for node := p; node != nil; node = node.next {
		if node.accessor == nil {
			return fmt.Errorf("%w: %w", ErrInvalidPath, ErrNilAccessor)
		}
	}

	return nil
}
