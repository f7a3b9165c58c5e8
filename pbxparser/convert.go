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
	"github.com/soapywu/pbxkit/element"
)

// ParseText lexes, parses and converts a whole pbxproj document into its root dict.
func ParseText(text string) (*element.Dict, error) {
	tokens := Lex(text)
	tree, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return ParseTreeAST(tree, tokens, text), nil
}

// ParseTreeAST converts a tree. A key repeated inside one tree keeps the last value.
func ParseTreeAST(ast *TreeAST, tokens []Token, text string) *element.Dict {
	dict := element.NewDict()
	for _, kv := range ast.Values {
		key := ParseIdentifierAST(kv.Key, tokens, text)
		dict.Set(string(key), ParseValueAST(kv.Value, tokens, text))
	}
	return dict
}

func ParseArrayAST(ast *ArrayAST, tokens []Token, text string) *element.Array {
	arr := &element.Array{Values: make([]element.Element, 0, len(ast.Values))}
	for _, v := range ast.Values {
		arr.Append(ParseValueAST(v, tokens, text))
	}
	return arr
}

func ParseValueAST(ast ValueAST, tokens []Token, text string) element.Element {
	switch v := ast.(type) {
	case *TreeAST:
		return ParseTreeAST(v, tokens, text)
	case *ArrayAST:
		return ParseArrayAST(v, tokens, text)
	case IdentifierAST:
		return ParseIdentifierAST(v, tokens, text)
	default:
		return nil
	}
}

// ParseIdentifierAST returns the unquoted, unescaped value of an identifier token.
func ParseIdentifierAST(ast IdentifierAST, tokens []Token, text string) element.String {
	tok := tokens[ast.Token]
	raw := tok.Text(text)
	if tok.Type != TokenQuotedString {
		return element.String(raw)
	}
	return element.String(element.Unescape(quotedBody(raw)))
}

// quotedBody strips the opening quote and, when present, the closing one.
// Strings left open at EOF have no closing quote.
func quotedBody(raw string) string {
	body := raw[1:]
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '"':
			return body[:i]
		}
	}
	return body
}
