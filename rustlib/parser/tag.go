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

// Package parser turns the token stream of a source file into tag streams:
// a lexical stream for highlighting and a semantic stream naming the
// definitions and call sites found by pattern matching.
package parser

import (
	"strings"

	"github.com/aptakhin/satire/rustlib/lexer"
)

// PathNode is one segment of a qualified symbol identity: the token kind of
// the introducing keyword and the symbol name.
type PathNode struct {
	Kind rune
	Name string
}

// Path is a qualified symbol identity, outermost segment first, e.g.
// [(Struct, "Foo"), (Fn, "bar")].
type Path []PathNode

// Named returns a single-segment path.
func Named(kind rune, name string) Path {
	return Path{{Kind: kind, Name: name}}
}

// Equal reports whether both paths have the same length and every segment
// agrees on kind and name.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a stable serialization of the path, usable as a map key.
func (p Path) Key() string {
	var sb strings.Builder
	for i, node := range p {
		if i > 0 {
			sb.WriteString("::")
		}
		sb.WriteString(lexer.KindName(node.Kind))
		sb.WriteByte(' ')
		sb.WriteString(node.Name)
	}
	return sb.String()
}

// Last returns the innermost segment.
func (p Path) Last() PathNode {
	return p[len(p)-1]
}

// UseContext names what a tag refers to and the lexical context it was seen
// in. UsedFrom is kept for scope-aware resolution later; resolution today
// matches on Reference alone.
type UseContext struct {
	Reference Path
	UsedFrom  Path
}

// ModulePath is the module-level lexical context every tag is attributed to.
func ModulePath() Path {
	return Named(lexer.KwMod, ".")
}

// TagKind discriminates the Tag variants.
type TagKind int

const (
	TagDefinition TagKind = iota
	TagCalling
	TagKeyword
	TagComment
	TagQuotedString
	TagWhitespace
	TagEof
)

// Tag is the label a rule attaches to a span. Context is set for
// TagDefinition and TagCalling; Token holds the keyword kind for TagKeyword
// and the whitespace kind for TagWhitespace.
type Tag struct {
	Kind    TagKind
	Context UseContext
	Token   rune
}

// TagItem pairs a tag with the source span it labels.
type TagItem struct {
	Tag  Tag
	Span lexer.Span
}

// Definition tags the introduction of the symbol the context names.
func Definition(uc UseContext) Tag {
	return Tag{Kind: TagDefinition, Context: uc}
}

// Calling tags a use site referring to the context's path.
func Calling(uc UseContext) Tag {
	return Tag{Kind: TagCalling, Context: uc}
}

// Keyword tags a reserved word.
func Keyword(kind rune) Tag {
	return Tag{Kind: TagKeyword, Token: kind}
}

// Comment tags a line or block comment.
func Comment() Tag {
	return Tag{Kind: TagComment}
}

// QuotedString tags a string literal.
func QuotedString() Tag {
	return Tag{Kind: TagQuotedString}
}

// Whitespace tags a whitespace run of the given kind.
func Whitespace(kind rune) Tag {
	return Tag{Kind: TagWhitespace, Token: kind}
}

// Eof is the stream sentinel appended at deduction time.
func Eof() Tag {
	return Tag{Kind: TagEof}
}
