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

// Package storage holds the per-file parse products and the corpus-wide
// symbol index that resolves call sites to definitions across files.
package storage

import (
	"github.com/aptakhin/satire/rustlib/lexer"
	"github.com/aptakhin/satire/rustlib/parser"
)

// FileSource identifies a definition location for cross-referencing.
type FileSource struct {
	File string
	Line int
}

// Info is the side channel attached to a semantic tag at deduction time.
// It is present only on Calling tags that resolved to at least one
// definition.
type Info struct {
	Refs []FileSource
}

// PreparsedFile is the per-file parse product: the source text plus the
// lexical and semantic tag streams, each sorted by span start. Once a
// PreparsedFile has been added to a SymbolIndex it must not change.
type PreparsedFile struct {
	File     string
	Content  string
	Lexical  []parser.TagItem
	Semantic []parser.TagItem
}

// NewPreparsedFile bundles the parse products of one file.
func NewPreparsedFile(file, content string, lexical, semantic []parser.TagItem) *PreparsedFile {
	return &PreparsedFile{File: file, Content: content, Lexical: lexical, Semantic: semantic}
}

// DeducedItem is a tag stream entry augmented with resolution info.
type DeducedItem struct {
	Tag  parser.Tag
	Span lexer.Span
	Info *Info
}

// DeducedFile is a PreparsedFile whose call sites have been resolved
// against the corpus index. Both streams end with an Eof sentinel whose
// span sorts after every real span.
type DeducedFile struct {
	File     string
	Content  string
	Lexical  []DeducedItem
	Semantic []DeducedItem
}

// SymbolIndex aggregates the definitions of a set of preparsed files and
// answers path lookups. Lookup order is stable: files in insertion order,
// definitions in stream order within a file.
type SymbolIndex struct {
	files []*PreparsedFile
	defs  map[string][]FileSource
}

// NewSymbolIndex returns an empty index.
func NewSymbolIndex() *SymbolIndex {
	return &SymbolIndex{defs: make(map[string][]FileSource)}
}

// BuildIndex indexes the files in order.
func BuildIndex(files []*PreparsedFile) *SymbolIndex {
	index := NewSymbolIndex()
	for _, pf := range files {
		index.Add(pf)
	}
	return index
}

// Add records every definition of the file's semantic stream.
func (x *SymbolIndex) Add(pf *PreparsedFile) {
	x.files = append(x.files, pf)
	for _, item := range pf.Semantic {
		if item.Tag.Kind != parser.TagDefinition {
			continue
		}
		key := item.Tag.Context.Reference.Key()
		x.defs[key] = append(x.defs[key], FileSource{File: pf.File, Line: item.Span.Line})
	}
}

// Files returns the indexed files in insertion order.
func (x *SymbolIndex) Files() []*PreparsedFile {
	return x.files
}

// Find returns the locations of every definition whose reference equals
// path, or nil when the path is unknown.
func (x *SymbolIndex) Find(path parser.Path) []FileSource {
	return x.defs[path.Key()]
}

// Deduce resolves the file's call sites against the index. Calling tags
// that resolve to at least one definition are wrapped with Info; the
// lexical stream is copied unchanged. Both streams gain an Eof sentinel.
func Deduce(pf *PreparsedFile, index *SymbolIndex) *DeducedFile {
	df := &DeducedFile{
		File:     pf.File,
		Content:  pf.Content,
		Lexical:  make([]DeducedItem, 0, len(pf.Lexical)+1),
		Semantic: make([]DeducedItem, 0, len(pf.Semantic)+1),
	}
	for _, item := range pf.Lexical {
		df.Lexical = append(df.Lexical, DeducedItem{Tag: item.Tag, Span: item.Span})
	}
	for _, item := range pf.Semantic {
		deduced := DeducedItem{Tag: item.Tag, Span: item.Span}
		if item.Tag.Kind == parser.TagCalling {
			if refs := index.Find(item.Tag.Context.Reference); len(refs) > 0 {
				deduced.Info = &Info{Refs: refs}
			}
		}
		df.Semantic = append(df.Semantic, deduced)
	}
	sentinel := DeducedItem{Tag: parser.Eof(), Span: lexer.SentinelSpan}
	df.Lexical = append(df.Lexical, sentinel)
	df.Semantic = append(df.Semantic, sentinel)
	return df
}
