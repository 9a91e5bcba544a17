/*
 * Copyright 2024 The Satire Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package path

import (
	"os"
	"path/filepath"
)

// Visitor is called for every admitted file with its path relative to the
// walk root.
type Visitor func(rel Path) error

// WalkFiles traverses the directory at root depth-first in lexicographic
// order, calling visit for every non-directory entry admitted by the filter. The
// traversal order is stable, so output produced during the walk is
// deterministic.
func WalkFiles(root string, admit func(name string) bool, visit Visitor) error {
	return walkDir(root, nil, admit, visit)
}

func walkDir(root string, rel Path, admit func(name string) bool, visit Visitor) error {
	entries, err := os.ReadDir(filepath.Join(root, rel.String()))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		child := rel.JoinString(entry.Name())
		if entry.IsDir() {
			if err := walkDir(root, child, admit, visit); err != nil {
				return err
			}
			continue
		}
		if !admit(entry.Name()) {
			continue
		}
		if err := visit(child); err != nil {
			return err
		}
	}
	return nil
}
