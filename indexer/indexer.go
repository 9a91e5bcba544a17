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

// Package indexer drives the corpus pipeline: walk the source tree, parse
// every admitted file, build the symbol index, resolve call sites and write
// one HTML page per file.
package indexer

import (
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/aptakhin/satire/config"
	"github.com/aptakhin/satire/path"
	"github.com/aptakhin/satire/rustlib"
	"github.com/aptakhin/satire/storage"
	"github.com/aptakhin/satire/writer"
)

// Indexer indexes one source tree per Run call.
type Indexer struct {
	cfg      *config.Config
	template string
}

// New loads the page template named by the configuration. A template
// that is configured but cannot be loaded is fatal here, before any file
// is touched.
func New(cfg *config.Config) (*Indexer, error) {
	template := writer.DefaultTemplate
	if cfg.Template != "" {
		loaded, err := writer.LoadTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
		template = loaded
	}
	return &Indexer{cfg: cfg, template: template}, nil
}

// Parse walks root and parses every admitted file. Files that cannot be
// read or are not UTF-8 are logged and skipped; they contribute nothing to
// the index and produce no page.
func (ix *Indexer) Parse(root string) ([]*storage.PreparsedFile, error) {
	var files []*storage.PreparsedFile
	err := path.WalkFiles(root, ix.cfg.Admits, func(rel path.Path) error {
		data, err := os.ReadFile(filepath.Join(root, rel.String()))
		if err != nil {
			log.Printf("skipping %s: %v", rel.Slash(), err)
			return nil
		}
		if !utf8.Valid(data) {
			log.Printf("skipping %s: not valid UTF-8", rel.Slash())
			return nil
		}
		files = append(files, rustlib.NewParser(rel.Slash(), string(data)).Parse())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Run indexes the tree rooted at root and writes the HTML pages. Every
// preparsed file is complete before the index is built, and the index is
// complete before any page is deduced.
func (ix *Indexer) Run(root string) error {
	files, err := ix.Parse(root)
	if err != nil {
		return err
	}
	index := storage.BuildIndex(files)

	siblings := make(map[string][]string)
	for _, pf := range files {
		dir := path.New(pf.File).Dir().Slash()
		siblings[dir] = append(siblings[dir], pf.File)
	}

	for _, pf := range files {
		df := storage.Deduce(pf, index)
		dir := path.New(pf.File).Dir().Slash()
		if err := ix.writePage(pf.File, writer.SiblingTree(siblings[dir]), writer.Render(df)); err != nil {
			log.Printf("skipping %s: %v", pf.File, err)
		}
	}
	return nil
}

func (ix *Indexer) writePage(rel, tree, code string) error {
	target := filepath.Join(ix.cfg.OutDir, filepath.FromSlash(rel)+".html")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()
	return writer.NewHTMLWriter(out, ix.template).WritePage(rel, tree, code)
}
