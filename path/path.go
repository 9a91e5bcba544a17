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

// Package path implements path manipulation routines used by the indexer.
package path

import (
	"path/filepath"
	"strings"
)

// Path is a slice of string segments, representing a filesystem path.
type Path []string

// New cleans and splits the system-delimited filesystem path.
func New(s string) Path {
	s = filepath.ToSlash(filepath.Clean(s))
	switch {
	case len(s) == 0:
		return nil
	case s == "/":
		return Path{"/"}
	case s[0] == '/':
		return append(Path{"/"}, strings.Split(s[1:], "/")...)
	default:
		return strings.Split(s, "/")
	}
}

// ToPaths cleans and splits each of the system-delimited filesystem paths.
func ToPaths(paths []string) []Path {
	split := make([]Path, len(paths))
	for i, p := range paths {
		split[i] = New(p)
	}
	return split
}

// LessThan provides lexicographic ordering of Paths.
func (p Path) LessThan(o Path) bool {
	for i := 0; ; i++ {
		if i >= len(p) {
			return i < len(o)
		} else if i >= len(o) {
			return false
		} else if p[i] != o[i] {
			return p[i] < o[i]
		}
	}
}

// String returns the properly platform-delimited form of the path.
func (p Path) String() string {
	return filepath.Join([]string(p)...)
}

// Slash returns the /-delimited form of the path. File identities and
// root-relative URLs use this form on every platform.
func (p Path) Slash() string {
	return strings.Join([]string(p), "/")
}

// Dir returns the path of the containing directory, nil at the root.
func (p Path) Dir() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Base returns the final segment, or the empty string for an empty path.
func (p Path) Base() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Append appends additional elements to the end of path.
func (p *Path) Append(elem ...Path) {
	for _, e := range elem {
		*p = append(*p, e...)
	}
}

// AppendString appends additional string elements to the end of path.
func (p *Path) AppendString(elem ...string) {
	p.Append(ToPaths(elem)...)
}

// Join joins path and any number of additional elements, returning the result.
func (p Path) Join(elem ...Path) Path {
	root := p[:len(p):len(p)]
	root.Append(elem...)
	return root
}

// JoinString joins path and any number of additional string elements,
// returning the result.
func (p Path) JoinString(elem ...string) Path {
	root := p[:len(p):len(p)]
	root.Append(ToPaths(elem)...)
	return root
}
