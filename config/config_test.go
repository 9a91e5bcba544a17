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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "satire.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Admits("main.rs") {
		t.Errorf("default config rejects main.rs")
	}
	if cfg.Admits("main.go") || cfg.Admits("README") {
		t.Errorf("default config admits non-Rust files")
	}
	if cfg.OutDir != "out" || cfg.Template != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[language]
extensions = .rs rs2

[output]
dir = public
template = tpl/page.html
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{".rs", ".rs2"}, cfg.Extensions.Elements()); diff != "" {
		t.Errorf("extensions mismatch (-want +got):\n%s", diff)
	}
	if cfg.OutDir != "public" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}
	if cfg.Template != "tpl/page.html" {
		t.Errorf("Template = %q", cfg.Template)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[output]\ncolor = mauve\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Load with unknown key succeeded")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.ini")); err == nil {
		t.Errorf("Load of missing file succeeded")
	}
}
