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

package rules

import (
	"testing"

	plex "github.com/alecthomas/participle/lexer"
	"github.com/google/go-cmp/cmp"

	"github.com/aptakhin/satire/rustlib/lexer"
)

func item(kind rune, value string, lo int) lexer.Item {
	return lexer.Item{
		Tok:  plex.Token{Type: kind, Value: value},
		Span: lexer.Span{Lo: lo, Hi: lo + len(value), Line: 1},
	}
}

// patternRule emits its name over the matched window once the window has
// grown to the pattern length.
type patternRule struct {
	name  string
	kinds []rune
}

func (r patternRule) Match(window []lexer.Item) State[string] {
	cur := MatchKinds[string](r.kinds, window)
	if cur.IsCont() && len(window) >= len(r.kinds) {
		return Ready(len(r.kinds), []string{r.name})
	}
	return cur
}

func TestMatcherGrowsWindow(t *testing.T) {
	m := NewMatcher[string](patternRule{"call", []rune{lexer.Ident, lexer.ColonColon, lexer.Ident, lexer.LParen}})
	feed := []lexer.Item{
		item(lexer.Ident, "Vec", 0),
		item(lexer.ColonColon, "::", 3),
		item(lexer.Ident, "new", 5),
		item(lexer.LParen, "(", 8),
	}
	var got []string
	for _, it := range feed {
		got = append(got, m.Push(it)...)
	}
	if diff := cmp.Diff([]string{"call"}, got); diff != "" {
		t.Errorf("emitted tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMatcherFirstReadyWins(t *testing.T) {
	m := NewMatcher[string](
		patternRule{"first", []rune{lexer.Ident}},
		patternRule{"second", []rune{lexer.Ident}},
	)
	got := m.Push(item(lexer.Ident, "x", 0))
	if diff := cmp.Diff([]string{"first"}, got); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestMatcherConsumesCommitted(t *testing.T) {
	m := NewMatcher[string](patternRule{"pair", []rune{lexer.Ident, lexer.LParen}})
	if got := m.Push(item(lexer.Ident, "f", 0)); got != nil {
		t.Errorf("premature emit %v", got)
	}
	if got := m.Push(item(lexer.LParen, "(", 1)); len(got) != 1 {
		t.Fatalf("expected commit, got %v", got)
	}
	// The committed tokens left the window; a lone paren matches nothing.
	if got := m.Push(item(lexer.RParen, ")", 2)); got != nil {
		t.Errorf("emit after commit %v", got)
	}
}

func TestMatcherDelayedCommit(t *testing.T) {
	// Stale tokens ahead of a match drain one per push until the pattern
	// reaches the window front.
	m := NewMatcher[string](
		patternRule{"deep", []rune{lexer.Ident, lexer.ColonColon, lexer.Ident, lexer.LParen}},
		patternRule{"pair", []rune{lexer.Ident, lexer.LParen}},
	)
	feed := []lexer.Item{
		item(lexer.Ident, "Foo", 0),
		item(lexer.ColonColon, "::", 3),
		item(lexer.Ident, "bar", 5),
		item(lexer.RBrace, "}", 8),
		item(lexer.Ident, "baz", 9),
		item(lexer.LParen, "(", 12),
		item(lexer.RParen, ")", 13),
		item(plex.EOF, "", 14),
	}
	var got []string
	for _, it := range feed {
		got = append(got, m.Push(it)...)
	}
	if diff := cmp.Diff([]string{"pair"}, got); diff != "" {
		t.Errorf("emitted tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchKinds(t *testing.T) {
	pattern := []rune{lexer.Ident, lexer.LParen}
	tests := []struct {
		name   string
		window []lexer.Item
		ready  bool
		cont   bool
	}{
		{"empty window", nil, false, true},
		{"prefix", []lexer.Item{item(lexer.Ident, "f", 0)}, false, true},
		{"full", []lexer.Item{item(lexer.Ident, "f", 0), item(lexer.LParen, "(", 1)}, false, true},
		{"mismatch", []lexer.Item{item(lexer.LParen, "(", 0)}, false, false},
		{"late mismatch", []lexer.Item{item(lexer.Ident, "f", 0), item(lexer.RParen, ")", 1)}, false, false},
	}
	for _, tc := range tests {
		st := MatchKinds[string](pattern, tc.window)
		if st.IsReady() != tc.ready || st.IsCont() != tc.cont {
			t.Errorf("%s: MatchKinds = ready %v cont %v, want ready %v cont %v",
				tc.name, st.IsReady(), st.IsCont(), tc.ready, tc.cont)
		}
		if st.IsCont() && st.Needed != len(pattern) {
			t.Errorf("%s: Needed = %d, want %d", tc.name, st.Needed, len(pattern))
		}
	}
}

func TestMatchKindsIgnoresPayload(t *testing.T) {
	window := []lexer.Item{item(lexer.Ident, "anything", 0)}
	if st := MatchKinds[string]([]rune{lexer.Ident}, window); !st.IsCont() {
		t.Errorf("variant equality should ignore the identifier payload")
	}
}

func TestMerge(t *testing.T) {
	ready := Ready(1, []string{"r"})
	tests := []struct {
		name      string
		cur, prev State[string]
		want      State[string]
	}{
		{"longer cont wins", Cont[string](2), Cont[string](4), Cont[string](4)},
		{"later equal cont wins", Cont[string](3), Cont[string](3), Cont[string](3)},
		{"not-matches keeps previous", NotMatches[string](), ready, ready},
		{"ready beats cont", ready, Cont[string](4), ready},
	}
	for _, tc := range tests {
		got := Merge(tc.cur, tc.prev)
		if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(State[string]{})); diff != "" {
			t.Errorf("%s: Merge mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}
