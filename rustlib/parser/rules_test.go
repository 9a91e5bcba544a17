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

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aptakhin/satire/rustlib/lexer"
	"github.com/aptakhin/satire/rustlib/lexer/rules"
)

type flatTag struct {
	Kind TagKind
	Ref  string
	Lo   int
	Hi   int
	Line int
}

func runMatcher(t *testing.T, input string, rule rules.Rule[TagItem], filter lexer.Filter) []flatTag {
	t.Helper()
	m := rules.NewMatcher[TagItem](rule)
	var out []flatTag
	for _, item := range lexer.Scan(input) {
		if filter != nil && !filter(item) {
			continue
		}
		for _, tag := range m.Push(item) {
			out = append(out, flatTag{
				Kind: tag.Tag.Kind,
				Ref:  tag.Tag.Context.Reference.Key(),
				Lo:   tag.Span.Lo,
				Hi:   tag.Span.Hi,
				Line: tag.Span.Line,
			})
		}
	}
	return out
}

func TestKwRule(t *testing.T) {
	got := runMatcher(t, "fn x // c\n\"s\"", KwRule{}, nil)
	want := []flatTag{
		{Kind: TagWhitespace, Lo: 0, Hi: 0, Line: 1},
		{Kind: TagKeyword, Lo: 0, Hi: 2, Line: 1},
		{Kind: TagComment, Lo: 5, Hi: 9, Line: 1},
		{Kind: TagWhitespace, Lo: 9, Hi: 10, Line: 2},
		{Kind: TagQuotedString, Lo: 10, Hi: 13, Line: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lexical tags mismatch (-want +got):\n%s", diff)
	}
}

func TestFnRuleDefinitions(t *testing.T) {
	tests := map[string][]flatTag{
		"fn foo() {}\n": {
			{Kind: TagDefinition, Ref: Named(lexer.KwFn, "foo").Key(), Lo: 3, Hi: 6, Line: 1},
		},
		"struct Foo { }\n": {
			{Kind: TagDefinition, Ref: Named(lexer.KwStruct, "Foo").Key(), Lo: 7, Hi: 10, Line: 1},
		},
	}
	for input, want := range tests {
		got := runMatcher(t, input, FnRule{}, lexer.CFilter)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("semantic tags of %q mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestFnRuleQualifiedCall(t *testing.T) {
	got := runMatcher(t, "fn main() { Vec::new() }\n", FnRule{}, lexer.CFilter)
	vecNew := Path{
		{Kind: lexer.KwStruct, Name: "Vec"},
		{Kind: lexer.KwFn, Name: "new"},
	}
	want := []flatTag{
		{Kind: TagDefinition, Ref: Named(lexer.KwFn, "main").Key(), Lo: 3, Hi: 7, Line: 1},
		// The qualified call is tagged at the member name.
		{Kind: TagCalling, Ref: vecNew.Key(), Lo: 17, Hi: 20, Line: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("semantic tags mismatch (-want +got):\n%s", diff)
	}
}

func TestFnRuleOverlappingCandidates(t *testing.T) {
	got := runMatcher(t, "Foo { bar(): Foo::baz() }", FnRule{}, lexer.CFilter)
	want := []flatTag{
		{Kind: TagCalling, Ref: Named(lexer.KwStruct, "Foo").Key(), Lo: 0, Hi: 3, Line: 1},
		{Kind: TagCalling, Ref: Named(lexer.KwFn, "bar").Key(), Lo: 6, Hi: 9, Line: 1},
		{Kind: TagCalling, Ref: Path{
			{Kind: lexer.KwStruct, Name: "Foo"},
			{Kind: lexer.KwFn, Name: "baz"},
		}.Key(), Lo: 18, Hi: 21, Line: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("semantic tags mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Lo < got[i-1].Hi {
			t.Errorf("tag spans overlap: %+v and %+v", got[i-1], got[i])
		}
	}
}

func TestPathEqualAndKey(t *testing.T) {
	a := Path{{Kind: lexer.KwStruct, Name: "Foo"}, {Kind: lexer.KwFn, Name: "bar"}}
	b := Path{{Kind: lexer.KwStruct, Name: "Foo"}, {Kind: lexer.KwFn, Name: "bar"}}
	c := Named(lexer.KwFn, "bar")
	if !a.Equal(b) {
		t.Errorf("equal paths compare unequal")
	}
	if a.Equal(c) || a.Key() == c.Key() {
		t.Errorf("paths of different length compare equal")
	}
	if a.Key() != b.Key() {
		t.Errorf("Key() not stable: %q != %q", a.Key(), b.Key())
	}
	if a.Last().Name != "bar" {
		t.Errorf("Last() = %+v", a.Last())
	}
}
