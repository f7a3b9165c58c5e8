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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLex_Punctuation(t *testing.T) {
	tokens := Lex("{ a = (b, c); }")
	assert.Equal(t, []TokenType{
		TokenLBrace, TokenString, TokenEq, TokenLParen, TokenString, TokenComma,
		TokenString, TokenRParen, TokenSemicolon, TokenRBrace, TokenEOF,
	}, tokenTypes(tokens))
}

func TestLex_BareStringsAndPaths(t *testing.T) {
	text := "System/Library/Frameworks/UIKit.framework libz.1.2*.tbd"
	tokens := Lex(text)
	require.Len(t, tokens, 3)
	assert.Equal(t, "System/Library/Frameworks/UIKit.framework", tokens[0].Text(text))
	assert.Equal(t, "libz.1.2*.tbd", tokens[1].Text(text))
}

func TestLex_StringStopsAtComment(t *testing.T) {
	text := "ABC/* c */DEF//tail"
	tokens := Lex(text)
	assert.Equal(t, []TokenType{TokenString, TokenComment, TokenString, TokenComment, TokenEOF}, tokenTypes(tokens))
	assert.Equal(t, "ABC", tokens[0].Text(text))
	assert.Equal(t, "/* c */", tokens[1].Text(text))
	assert.Equal(t, "DEF", tokens[2].Text(text))
	assert.Equal(t, "//tail", tokens[3].Text(text))
}

func TestLex_QuotedStringEscapes(t *testing.T) {
	text := `"a \"b\" \\" x`
	tokens := Lex(text)
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenQuotedString, tokens[0].Type)
	assert.Equal(t, `"a \"b\" \\"`, tokens[0].Text(text))
	assert.Equal(t, "x", tokens[1].Text(text))
}

func TestLex_UnterminatedQuotedStringClosesAtEOF(t *testing.T) {
	text := `"never closed`
	tokens := Lex(text)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenQuotedString, tokens[0].Type)
	assert.Equal(t, text, tokens[0].Text(text))
	assert.Equal(t, TokenEOF, tokens[1].Type)
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	tokens := Lex("a /* open")
	assert.Equal(t, []TokenType{TokenString, TokenComment, TokenEOF}, tokenTypes(tokens))
}

func TestLex_LineNumbers(t *testing.T) {
	text := "// header\n{\n\ta = \"x\ny\";\n\tb = c;\n}"
	tokens := Lex(text)
	lines := map[string]int{}
	for _, tok := range tokens {
		if tok.Type == TokenString {
			lines[tok.Text(text)] = tok.Line
		}
	}
	assert.Equal(t, 2, lines["a"])
	assert.Equal(t, 4, lines["b"])
	assert.Equal(t, 5, tokens[len(tokens)-1].Line)
}

func TestLexer_NextAfterEOF(t *testing.T) {
	l := NewLexer("")
	assert.Equal(t, TokenEOF, l.Next().Type)
	assert.Equal(t, TokenEOF, l.Next().Type)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "'{'", TokenLBrace.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}
