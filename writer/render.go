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

// Package writer renders deduced files to hyperlinked HTML pages.
package writer

import (
	"fmt"
	"strings"

	"github.com/aptakhin/satire/rustlib/lexer"
	"github.com/aptakhin/satire/rustlib/parser"
	"github.com/aptakhin/satire/storage"
)

// Merge interleaves the lexical and semantic streams of a deduced file into
// a single sequence ordered by ascending span start. On equal starts the
// semantic entry goes first, except that a zero-width lexical entry (the
// synthetic line-1 newline) stays ahead of a semantic span starting at the
// same offset. The Eof sentinels are dropped.
func Merge(df *storage.DeducedFile) []storage.DeducedItem {
	merged := make([]storage.DeducedItem, 0, len(df.Lexical)+len(df.Semantic))
	lex, sem := df.Lexical, df.Semantic
	i, j := 0, 0
	for i < len(lex) || j < len(sem) {
		switch {
		case i >= len(lex):
			merged = append(merged, sem[j])
			j++
		case j >= len(sem):
			merged = append(merged, lex[i])
			i++
		case sem[j].Span.Lo < lex[i].Span.Lo,
			sem[j].Span.Lo == lex[i].Span.Lo && lex[i].Span.Hi > lex[i].Span.Lo:
			merged = append(merged, sem[j])
			j++
		default:
			merged = append(merged, lex[i])
			i++
		}
	}
	out := merged[:0]
	for _, item := range merged {
		if item.Tag.Kind != parser.TagEof {
			out = append(out, item)
		}
	}
	return out
}

// Render walks the merged stream and substitutes each tagged span of the
// source buffer with its rendered fragment. Untagged stretches pass through
// verbatim, so stripping the markup from the result gives back the source.
func Render(df *storage.DeducedFile) string {
	var out strings.Builder
	till := 0
	for _, item := range Merge(df) {
		out.WriteString(df.Content[till:item.Span.Lo])
		out.WriteString(renderSpan(df.Content, item))
		till = item.Span.Hi
	}
	out.WriteString(df.Content[till:])
	return out.String()
}

func renderSpan(content string, item storage.DeducedItem) string {
	cnt := item.Span.Text(content)
	switch item.Tag.Kind {
	case parser.TagKeyword:
		return fmt.Sprintf("<b>%s</b>", cnt)
	case parser.TagComment, parser.TagQuotedString:
		return fmt.Sprintf("<span style='color: green;'>%s</span>", cnt)
	case parser.TagWhitespace:
		if item.Tag.Token != lexer.Newline {
			return cnt
		}
		if item.Span.Line == 1 {
			return fmt.Sprintf("<a name=\"l%d\"></a>", item.Span.Line)
		}
		return fmt.Sprintf("\n<a name=\"l%d\"></a>", item.Span.Line)
	case parser.TagCalling:
		if item.Info == nil || len(item.Info.Refs) == 0 {
			return cnt
		}
		return renderPopover(cnt, item.Tag.Context.Reference, item.Info.Refs)
	default:
		return cnt
	}
}

// renderPopover wraps a resolved call site in an anchor whose hover content
// lists one link per known definition.
func renderPopover(cnt string, reference parser.Path, refs []storage.FileSource) string {
	label := reference.Last().Name
	var list strings.Builder
	for _, ref := range refs {
		fmt.Fprintf(&list, "<li><a href='%s' target='_blank'>%s</a></li>", RefURL(ref), label)
	}
	return fmt.Sprintf("<a tabindex='0' role='button' data-container='body' data-trigger='focus'"+
		" data-toggle='popover' data-placement='bottom' data-content=\"<ul>%s</ul>\">%s</a>",
		list.String(), cnt)
}

// RefURL returns the root-relative URL of a definition location.
func RefURL(ref storage.FileSource) string {
	return fmt.Sprintf("/%s.html#l%d", ref.File, ref.Line)
}
