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

// Package config loads the indexer settings: which files are admitted,
// where the HTML pages go and which page template to use.
package config

import (
	"fmt"
	"os"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/creachadair/ini"
)

// Config carries the build-time settings of an indexing run.
type Config struct {
	// Extensions admits source files by extension, dot included.
	Extensions stringset.Set
	// OutDir is the root the HTML tree is written under.
	OutDir string
	// Template is the path of the page template; empty selects the
	// compiled-in default.
	Template string
}

// Default returns the shipped configuration: Rust sources, ./out output,
// built-in template.
func Default() *Config {
	return &Config{
		Extensions: stringset.New(".rs"),
		OutDir:     "out",
	}
}

// Load reads settings from an ini file, overlaying the defaults. Sections:
//
//	[language]
//	extensions = .rs
//
//	[output]
//	dir = out
//	template = page.html
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	err = ini.Parse(file, ini.Handler{
		KeyValue: func(loc ini.Location, key string, values []string) error {
			switch loc.Section + "." + key {
			case "language.extensions":
				cfg.Extensions = stringset.New()
				for _, v := range values {
					for _, ext := range strings.Fields(v) {
						if !strings.HasPrefix(ext, ".") {
							ext = "." + ext
						}
						cfg.Extensions.Add(ext)
					}
				}
			case "output.dir":
				if len(values) > 0 {
					cfg.OutDir = values[len(values)-1]
				}
			case "output.template":
				if len(values) > 0 {
					cfg.Template = values[len(values)-1]
				}
			default:
				return fmt.Errorf("unknown setting %q in section %q", key, loc.Section)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Admits reports whether a file name passes the extension filter.
func (c *Config) Admits(name string) bool {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return c.Extensions.Contains(name[i:])
	}
	return false
}
