/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxparser

// Lexer splits pbxproj text into tokens in a single forward pass.
type Lexer struct {
	text string
	pos  int
	line int
}

func NewLexer(text string) *Lexer {
	return &Lexer{text: text}
}

// Lex returns every token of text, ending with exactly one TokenEOF.
func Lex(text string) []Token {
	l := NewLexer(text)
	tokens := make([]Token, 0, len(text)/4)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// Next returns the next token. Once the input is exhausted it keeps returning TokenEOF.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	if l.pos >= len(l.text) {
		return Token{Type: TokenEOF, Begin: len(l.text), End: len(l.text), Line: l.line}
	}

	c := l.text[l.pos]
	switch {
	case c == '/' && l.peek(1) == '/':
		return l.scanLineComment()
	case c == '/' && l.peek(1) == '*':
		return l.scanBlockComment()
	case c == '"':
		return l.scanQuotedString()
	}
	if typ, ok := punctuation(c); ok {
		tok := Token{Type: typ, Begin: l.pos, End: l.pos + 1, Line: l.line}
		l.pos++
		return tok
	}
	return l.scanString()
}

func (l *Lexer) peek(offset int) byte {
	if l.pos+offset < len(l.text) {
		return l.text[l.pos+offset]
	}
	return 0
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.text) && isWhitespace(l.text[l.pos]) {
		if l.text[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

func (l *Lexer) scanLineComment() Token {
	tok := Token{Type: TokenComment, Begin: l.pos, Line: l.line}
	for l.pos < len(l.text) && l.text[l.pos] != '\n' {
		l.pos++
	}
	tok.End = l.pos
	return tok
}

// scanBlockComment runs to the closing */ or, leniently, to the end of input.
func (l *Lexer) scanBlockComment() Token {
	tok := Token{Type: TokenComment, Begin: l.pos, Line: l.line}
	l.pos += 2
	for l.pos < len(l.text) {
		if l.text[l.pos] == '*' && l.peek(1) == '/' {
			l.pos += 2
			tok.End = l.pos
			return tok
		}
		if l.text[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
	tok.End = l.pos
	return tok
}

// scanQuotedString includes both quotes in the token. A string left open at the end of
// input is closed there; Xcode tolerates such files and so do we.
func (l *Lexer) scanQuotedString() Token {
	tok := Token{Type: TokenQuotedString, Begin: l.pos, Line: l.line}
	l.pos++
	for l.pos < len(l.text) {
		switch l.text[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case '"':
			l.pos++
			tok.End = l.pos
			return tok
		case '\n':
			l.line++
		}
		l.pos++
	}
	l.pos = len(l.text)
	tok.End = l.pos
	return tok
}

func (l *Lexer) scanString() Token {
	tok := Token{Type: TokenString, Begin: l.pos, Line: l.line}
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if isWhitespace(c) || c == '"' {
			break
		}
		if _, ok := punctuation(c); ok {
			break
		}
		if c == '/' && (l.peek(1) == '/' || l.peek(1) == '*') {
			break
		}
		l.pos++
	}
	tok.End = l.pos
	return tok
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func punctuation(c byte) (TokenType, bool) {
	switch c {
	case ';':
		return TokenSemicolon, true
	case ',':
		return TokenComma, true
	case '=':
		return TokenEq, true
	case '(':
		return TokenLParen, true
	case ')':
		return TokenRParen, true
	case '{':
		return TokenLBrace, true
	case '}':
		return TokenRBrace, true
	}
	return 0, false
}
