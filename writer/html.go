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

package writer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// DefaultTemplate is the page template compiled into the binary. A template
// is a plain HTML file with three literal placeholders.
const DefaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{title}}</title>
</head>
<body>
<nav>{{tree}}</nav>
<pre>{{code}}</pre>
</body>
</html>
`

var errMissingPlaceholder = errors.New("template is missing a placeholder")

// LoadTemplate reads a page template from disk and verifies it carries the
// three substitution points. A missing or malformed template is fatal at
// startup, so the error is returned rather than logged.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}
	template := string(data)
	for _, placeholder := range []string{"{{title}}", "{{tree}}", "{{code}}"} {
		if !strings.Contains(template, placeholder) {
			return "", fmt.Errorf("%w: %s in %s", errMissingPlaceholder, placeholder, path)
		}
	}
	return template, nil
}

// HTMLWriter writes rendered pages by literal substitution into a template.
type HTMLWriter struct {
	w        *bufio.Writer
	template string
}

// NewHTMLWriter returns a writer emitting pages built from template.
func NewHTMLWriter(w io.Writer, template string) *HTMLWriter {
	return &HTMLWriter{bufio.NewWriter(w), template}
}

// WritePage substitutes the three placeholders and flushes the page.
func (hw *HTMLWriter) WritePage(title, tree, code string) error {
	page := strings.NewReplacer(
		"{{title}}", title,
		"{{tree}}", tree,
		"{{code}}", code,
	).Replace(hw.template)
	if _, err := hw.w.WriteString(page); err != nil {
		return err
	}
	return hw.w.Flush()
}

// SiblingTree renders the directory listing substituted for {{tree}}: an
// unordered list linking every admitted file of the same source directory,
// sorted and deduplicated.
func SiblingTree(relpaths []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, rel := range stringset.New(relpaths...).Elements() {
		base := rel
		if i := strings.LastIndexByte(rel, '/'); i >= 0 {
			base = rel[i+1:]
		}
		fmt.Fprintf(&sb, "<li><a href=\"/%s.html\">%s</a></li>", rel, base)
	}
	sb.WriteString("</ul>")
	return sb.String()
}
