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

// Package pbxparser reads the Xcode "old-style plist" text format used by
// project.pbxproj files.
//
// Parsing happens in three steps: the Lexer turns text into a flat token
// slice, Parse builds a TreeAST that points back into that slice, and
// ParseValueAST converts the AST into an element tree with quoted strings
// resolved. ParseText runs all three.
package pbxparser

import "fmt"

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenString
	TokenQuotedString
	TokenComment
	TokenSemicolon
	TokenComma
	TokenEq
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
)

var tokenTypeNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenString:       "string",
	TokenQuotedString: "quoted string",
	TokenComment:      "comment",
	TokenSemicolon:    "';'",
	TokenComma:        "','",
	TokenEq:           "'='",
	TokenLParen:       "'('",
	TokenRParen:       "')'",
	TokenLBrace:       "'{'",
	TokenRBrace:       "'}'",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexeme of the source: its text is source[Begin:End].
// Line is 0-based and only used for diagnostics.
type Token struct {
	Type  TokenType
	Begin int
	End   int
	Line  int
}

func (t Token) Text(source string) string {
	return source[t.Begin:t.End]
}
