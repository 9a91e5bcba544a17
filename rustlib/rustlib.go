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

// Package rustlib wires the lexer, the rule engine and the rule sets into a
// per-file parser for Rust-like source.
package rustlib

import (
	plex "github.com/alecthomas/participle/lexer"

	"github.com/aptakhin/satire/rustlib/lexer"
	"github.com/aptakhin/satire/rustlib/lexer/rules"
	"github.com/aptakhin/satire/rustlib/parser"
	"github.com/aptakhin/satire/storage"
)

// RustParser parses a single source file into its preparsed form.
type RustParser struct {
	file    string
	content string
}

// NewParser returns a parser for one file. The file name is recorded
// verbatim in the parse products, so callers pass the path relative to the
// corpus root.
func NewParser(file, content string) *RustParser {
	return &RustParser{file: file, content: content}
}

// Parse runs the token stream through both matchers: the highlighting rules
// over the raw stream and the symbol rules over the preprocessed stream.
func (p *RustParser) Parse() *storage.PreparsedFile {
	lex := lexer.New(p.content)
	lexical := rules.NewMatcher[parser.TagItem](parser.KwRule{})
	semantic := rules.NewMatcher[parser.TagItem](parser.FnRule{})

	var lexTags, semTags []parser.TagItem
	for {
		item := lex.Next()
		lexTags = append(lexTags, lexical.Push(item)...)
		if lexer.CFilter(item) {
			semTags = append(semTags, semantic.Push(item)...)
		}
		if item.Tok.Type == plex.EOF {
			break
		}
	}
	return storage.NewPreparsedFile(p.file, p.content, lexTags, semTags)
}
