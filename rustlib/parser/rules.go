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
	"github.com/aptakhin/satire/rustlib/lexer"
	"github.com/aptakhin/satire/rustlib/lexer/rules"
)

// KwRule is the highlighting rule family. It decides on a one-token window:
// keywords, comments, string literals and newlines each become a tag, and
// everything else is left to the raw text pass-through of the renderer.
// Space runs never contribute to the lexical stream.
type KwRule struct{}

// Match implements rules.Rule.
func (KwRule) Match(window []lexer.Item) rules.State[TagItem] {
	item := window[0]
	one := func(tag Tag) rules.State[TagItem] {
		return rules.Ready(1, []TagItem{{Tag: tag, Span: item.Span}})
	}
	switch {
	case lexer.IsKeyword(item.Tok.Type):
		return one(Keyword(item.Tok.Type))
	case item.Tok.Type == lexer.Comment:
		return one(Comment())
	case item.Tok.Type == lexer.QuotedString:
		return one(QuotedString())
	case item.Tok.Type == lexer.Newline:
		return one(Whitespace(lexer.Newline))
	}
	return rules.NotMatches[TagItem]()
}

// FnRule is the symbol rule family, run over the preprocessed stream. Each
// pattern is tried against the window and the verdicts are merged so that
// the longest viable pattern keeps the engine feeding tokens; a pattern
// whose window has filled commits.
//
// Patterns, by token variant:
//
//	fn    Ident (        definition of a function
//	struct Ident {       definition of a struct
//	Ident {              use of a struct
//	Ident (              call of a function
//	Ident :: Ident (     qualified call, tagged at the member name
type FnRule struct{}

// Match implements rules.Rule.
func (FnRule) Match(window []lexer.Item) rules.State[TagItem] {
	res := rules.NotMatches[TagItem]()
	ctx := ModulePath()

	match := func(kinds []rune, emit func() TagItem) {
		cur := rules.MatchKinds[TagItem](kinds, window)
		if cur.IsCont() && len(window) >= len(kinds) {
			cur = rules.Ready(len(kinds), []TagItem{emit()})
		}
		res = rules.Merge(cur, res)
	}

	match([]rune{lexer.KwFn, lexer.Ident, lexer.LParen}, func() TagItem {
		return TagItem{
			Tag:  Definition(UseContext{Reference: Named(lexer.KwFn, window[1].Tok.Value), UsedFrom: ctx}),
			Span: window[1].Span,
		}
	})
	match([]rune{lexer.KwStruct, lexer.Ident, lexer.LBrace}, func() TagItem {
		return TagItem{
			Tag:  Definition(UseContext{Reference: Named(lexer.KwStruct, window[1].Tok.Value), UsedFrom: ctx}),
			Span: window[1].Span,
		}
	})
	match([]rune{lexer.Ident, lexer.LBrace}, func() TagItem {
		return TagItem{
			Tag:  Calling(UseContext{Reference: Named(lexer.KwStruct, window[0].Tok.Value), UsedFrom: ctx}),
			Span: window[0].Span,
		}
	})
	match([]rune{lexer.Ident, lexer.LParen}, func() TagItem {
		return TagItem{
			Tag:  Calling(UseContext{Reference: Named(lexer.KwFn, window[0].Tok.Value), UsedFrom: ctx}),
			Span: window[0].Span,
		}
	})
	match([]rune{lexer.Ident, lexer.ColonColon, lexer.Ident, lexer.LParen}, func() TagItem {
		reference := Path{
			{Kind: lexer.KwStruct, Name: window[0].Tok.Value},
			{Kind: lexer.KwFn, Name: window[2].Tok.Value},
		}
		return TagItem{
			Tag:  Calling(UseContext{Reference: reference, UsedFrom: ctx}),
			Span: window[2].Span,
		}
	})

	return res
}
