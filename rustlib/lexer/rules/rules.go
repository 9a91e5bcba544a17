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

// Package rules implements a sliding-window rule engine for converting a
// token stream into tags without a full grammar. Rules of differing window
// lengths coexist; the engine keeps feeding tokens while any rule reports a
// partial match and commits to the first rule that becomes ready.
package rules

import (
	"github.com/aptakhin/satire/rustlib/lexer"
)

type stateKind int

const (
	notMatches stateKind = iota
	contState
	readyState
)

// State is the verdict a rule gives for the current window.
//
// NotMatches means the window does not begin a match. Cont means the window
// is a proper prefix of a potential match and carries the total window
// length the rule needs to decide. Ready means the rule matched the first
// Consumed tokens of the window and emits Tags.
type State[T any] struct {
	kind     stateKind
	Needed   int
	Consumed int
	Tags     []T
}

// NotMatches reports that the window does not begin a match of the rule.
func NotMatches[T any]() State[T] {
	return State[T]{kind: notMatches}
}

// Cont reports a partial match needing a window of length n to decide.
func Cont[T any](n int) State[T] {
	return State[T]{kind: contState, Needed: n}
}

// Ready reports a committed match over the first consumed window tokens.
func Ready[T any](consumed int, tags []T) State[T] {
	return State[T]{kind: readyState, Consumed: consumed, Tags: tags}
}

// IsReady reports whether the state is a committed match.
func (s State[T]) IsReady() bool { return s.kind == readyState }

// IsCont reports whether the state is a partial match.
func (s State[T]) IsCont() bool { return s.kind == contState }

// Merge resolves two candidate states for the same window. Between two
// partial matches the longer requirement survives; a NotMatches never
// displaces an earlier verdict; otherwise the current candidate wins, so a
// rule body lists its more specific patterns last or relies on the prefix
// mismatch to knock them out.
func Merge[T any](cur, prev State[T]) State[T] {
	switch {
	case cur.kind == contState && prev.kind == contState:
		if prev.Needed > cur.Needed {
			return prev
		}
		return cur
	case cur.kind == notMatches:
		return prev
	default:
		return cur
	}
}

// MatchKinds compares the window against the rule's token kinds by variant
// only; payloads are ignored, so an Ident matches any identifier. It
// returns NotMatches on the first mismatch and Cont(len(kinds)) otherwise.
// The call site promotes Cont to Ready once the window has grown to the
// full pattern length.
func MatchKinds[T any](kinds []rune, window []lexer.Item) State[T] {
	n := len(window)
	if n > len(kinds) {
		n = len(kinds)
	}
	for i := 0; i < n; i++ {
		if window[i].Tok.Type != kinds[i] {
			return NotMatches[T]()
		}
	}
	return Cont[T](len(kinds))
}

// Rule inspects the current window and renders a verdict.
type Rule[T any] interface {
	Match(window []lexer.Item) State[T]
}

// Matcher feeds tokens through an ordered rule list over a bounded window.
// On each push one item leaves the front of the window if the window has
// reached the current bound, every rule is consulted in declaration order, and the first Ready commits: its consumed
// tokens leave the window and its tags are returned. Otherwise the bound
// grows to the largest window any rule still needs.
type Matcher[T any] struct {
	rules []Rule[T]
	cache []lexer.Item
	size  int
}

// NewMatcher returns a Matcher over the given rules. Order is significant:
// the first rule to become ready wins, so more specific patterns go first.
func NewMatcher[T any](rules ...Rule[T]) *Matcher[T] {
	return &Matcher[T]{rules: rules, size: 1}
}

// Push offers the next token to the engine and returns the tags emitted by
// a committing rule, or nil when no rule committed on this token.
func (m *Matcher[T]) Push(item lexer.Item) []T {
	if len(m.cache) >= m.size {
		m.cache = m.cache[1:]
	}
	m.cache = append(m.cache, item)

	next := 1
	for _, rule := range m.rules {
		switch st := rule.Match(m.cache); {
		case st.IsReady():
			m.cache = m.cache[st.Consumed:]
			return st.Tags
		case st.IsCont():
			if st.Needed > next {
				next = st.Needed
			}
		}
	}
	m.size = next
	return nil
}
