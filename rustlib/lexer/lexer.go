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

// Package lexer splits a source buffer into a stream of tokens with exact
// byte spans, suitable for both syntax highlighting and symbol extraction.
package lexer

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/lexer"
)

const (
	_ rune = lexer.EOF - iota
	Newline
	Spaces
	Comment
	QuotedString
	Ident
	LParen
	RParen
	LBrace
	RBrace
	ColonColon
	Other
	KwAs
	KwBreak
	KwCrate
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFn
	KwFor
	KwIf
	KwImpl
	KwIn
	KwLet
	KwLoop
	KwMatch
	KwMod
	KwMove
	KwMut
	KwPub
	KwRef
	KwReturn
	KwStatic
	KwSelf
	KwStruct
	KwSuper
	KwTrue
	KwTrait
	KwType
	KwUnsafe
	KwUse
	KwVirtual
	KwWhile
	KwContinue
	KwBox
	KwConst
	KwWhere
	KwProc
	KwAlignof
	KwBecome
	KwOffsetof
	KwPriv
	KwPure
	KwSizeof
	KwTypeof
	KwUnsized
	KwYield
	KwDo
	KwAbstract
	KwFinal
	KwOverride
	KwMacro
)

// Span is a half-open byte range [Lo, Hi) into the source buffer plus a
// 1-based line number. The lexer counts newline tokens only: a newline
// token carries the number of the line it opens, and line breaks inside a
// block comment or string literal do not advance the count.
type Span struct {
	Lo   int
	Hi   int
	Line int
}

// SentinelSpan sorts after every span produced from a real buffer.
var SentinelSpan = Span{Lo: math.MaxInt, Hi: math.MaxInt}

// Text returns the exact source text the span covers.
func (s Span) Text(buffer string) string {
	return buffer[s.Lo:s.Hi]
}

// Item pairs a token with the span it was produced from.
type Item struct {
	Tok  lexer.Token
	Span Span
}

type tokenDefinition struct {
	kind rune
	name string
	pat  string
}

// Ordered token definitions. Regular expressions are matched in order, so
// the keyword table precedes the generic identifier rule; trailing \b keeps
// a keyword from claiming the prefix of a longer identifier.
var tokenDefs = []tokenDefinition{
	{Newline, "Newline", `\n`},
	{Spaces, "Spaces", `[ \t\r]+`},
	{Comment, "Comment", `/\*(?s:.)*?\*/|//[^\n]*`},
	{QuotedString, "QuotedString", `"(?:\\(?s:.)|[^"\\])*"`},
	{KwAs, "KwAs", `as\b`},
	{KwBreak, "KwBreak", `break\b`},
	{KwCrate, "KwCrate", `crate\b`},
	{KwElse, "KwElse", `else\b`},
	{KwEnum, "KwEnum", `enum\b`},
	{KwExtern, "KwExtern", `extern\b`},
	{KwFalse, "KwFalse", `false\b`},
	{KwFn, "KwFn", `fn\b`},
	{KwFor, "KwFor", `for\b`},
	{KwIf, "KwIf", `if\b`},
	{KwImpl, "KwImpl", `impl\b`},
	{KwIn, "KwIn", `in\b`},
	{KwLet, "KwLet", `let\b`},
	{KwLoop, "KwLoop", `loop\b`},
	{KwMatch, "KwMatch", `match\b`},
	{KwMod, "KwMod", `mod\b`},
	{KwMove, "KwMove", `move\b`},
	{KwMut, "KwMut", `mut\b`},
	{KwPub, "KwPub", `pub\b`},
	{KwRef, "KwRef", `ref\b`},
	{KwReturn, "KwReturn", `return\b`},
	{KwStatic, "KwStatic", `static\b`},
	{KwSelf, "KwSelf", `self\b`},
	{KwStruct, "KwStruct", `struct\b`},
	{KwSuper, "KwSuper", `super\b`},
	{KwTrue, "KwTrue", `true\b`},
	{KwTrait, "KwTrait", `trait\b`},
	{KwType, "KwType", `type\b`},
	{KwUnsafe, "KwUnsafe", `unsafe\b`},
	{KwUse, "KwUse", `use\b`},
	{KwVirtual, "KwVirtual", `virtual\b`},
	{KwWhile, "KwWhile", `while\b`},
	{KwContinue, "KwContinue", `continue\b`},
	{KwBox, "KwBox", `box\b`},
	{KwConst, "KwConst", `const\b`},
	{KwWhere, "KwWhere", `where\b`},
	{KwProc, "KwProc", `proc\b`},
	{KwAlignof, "KwAlignof", `alignof\b`},
	{KwBecome, "KwBecome", `become\b`},
	{KwOffsetof, "KwOffsetof", `offsetof\b`},
	{KwPriv, "KwPriv", `priv\b`},
	{KwPure, "KwPure", `pure\b`},
	{KwSizeof, "KwSizeof", `sizeof\b`},
	{KwTypeof, "KwTypeof", `typeof\b`},
	{KwUnsized, "KwUnsized", `unsized\b`},
	{KwYield, "KwYield", `yield\b`},
	{KwDo, "KwDo", `do\b`},
	{KwAbstract, "KwAbstract", `abstract\b`},
	{KwFinal, "KwFinal", `final\b`},
	{KwOverride, "KwOverride", `override\b`},
	{KwMacro, "KwMacro", `macro\b`},
	{Ident, "Ident", `[A-Za-z_][A-Za-z0-9_]*`},
	{LParen, "LParen", `\(`},
	{RParen, "RParen", `\)`},
	{LBrace, "LBrace", `\{`},
	{RBrace, "RBrace", `\}`},
	{ColonColon, "ColonColon", `::`},
	{Other, "Other", `(?s:.)`},
}

var (
	tokenSyms  = make(map[string]rune)
	tokenNames = make(map[rune]string)
	lexPattern *regexp.Regexp
	groupNames []string
)

func init() {
	var parts []string
	for _, def := range tokenDefs {
		parts = append(parts, fmt.Sprintf(`(?P<%s>%s)`, def.name, regexp.MustCompile(def.pat)))
		tokenSyms[def.name] = def.kind
		tokenNames[def.kind] = def.name
	}
	tokenSyms["EOF"] = lexer.EOF
	tokenNames[lexer.EOF] = "EOF"
	lexPattern = regexp.MustCompile(strings.Join(parts, "|"))
	groupNames = lexPattern.SubexpNames()
}

// Symbols returns the token symbol table in the participle convention.
func Symbols() map[string]rune {
	return tokenSyms
}

// KindName returns the table name of the token kind.
func KindName(kind rune) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", kind)
}

// IsKeyword reports whether kind is one of the reserved-word token kinds.
func IsKeyword(kind rune) bool {
	return kind <= KwAs && kind >= KwMacro
}

// Lexer produces the token stream of a single source buffer. The first item
// is a synthetic newline at offset zero, priming the line-1 anchor, and the
// stream is terminated by exactly one EOF item. Concatenating the text of
// everything in between reproduces the buffer.
type Lexer struct {
	buffer string
	pos    int
	line   int
	col    int
	primed bool
}

// New returns a Lexer over buffer.
func New(buffer string) *Lexer {
	return &Lexer{buffer: buffer, line: 1, col: 1}
}

// Next returns the next item. After the EOF item has been produced, every
// subsequent call produces it again.
func (l *Lexer) Next() Item {
	if !l.primed {
		l.primed = true
		return Item{
			Tok:  lexer.Token{Type: Newline, Pos: l.position()},
			Span: Span{Lo: 0, Hi: 0, Line: 1},
		}
	}
	if l.pos >= len(l.buffer) {
		return Item{
			Tok:  lexer.EOFToken(l.position()),
			Span: Span{Lo: l.pos, Hi: l.pos, Line: l.line},
		}
	}

	data := l.buffer[l.pos:]
	kind := Other
	var text string
	if m := lexPattern.FindStringSubmatchIndex(data); m != nil && m[0] == 0 {
		text = data[m[0]:m[1]]
		for i := 2; i < len(m); i += 2 {
			if m[i] != -1 {
				kind = tokenSyms[groupNames[i/2]]
				break
			}
		}
	} else {
		// No rule claims this byte; it passes through untagged.
		text = data[:1]
	}

	line := l.line
	if kind == Newline {
		// A newline carries the number of the line it opens, so the anchor
		// written for it names the following line.
		l.line++
		line = l.line
	}
	pos := l.position()
	pos.Line = line
	span := Span{Lo: l.pos, Hi: l.pos + len(text), Line: line}
	l.pos = span.Hi
	l.updateColumn(text)
	return Item{
		Tok:  lexer.Token{Type: kind, Value: text, Pos: pos},
		Span: span,
	}
}

func (l *Lexer) position() lexer.Position {
	return lexer.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) updateColumn(text string) {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		l.col = utf8.RuneCountInString(text[i+1:]) + 1
	} else {
		l.col += utf8.RuneCountInString(text)
	}
}

// Scan runs the lexer to completion, including the terminating EOF item.
func Scan(buffer string) []Item {
	l := New(buffer)
	var items []Item
	for {
		item := l.Next()
		items = append(items, item)
		if item.Tok.Type == lexer.EOF {
			return items
		}
	}
}
