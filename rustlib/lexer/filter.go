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

package lexer

// Filter selects which items of the raw stream a downstream consumer sees.
// It reports whether the item passes.
type Filter func(Item) bool

// CFilter drops whitespace and comments, leaving the dense token stream the
// semantic rules operate on. The raw stream, whitespace included, still
// feeds the highlighting rules.
func CFilter(item Item) bool {
	switch item.Tok.Type {
	case Newline, Spaces, Comment:
		return false
	}
	return true
}
