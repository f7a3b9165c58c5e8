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
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every *ParseError.
var ErrSyntax = errors.New("pbxproj syntax error")

// ParseError reports a malformed token sequence at a 0-based source line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", ErrSyntax, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// ValueAST is one of IdentifierAST, *TreeAST or *ArrayAST.
type ValueAST interface {
	isValueAST()
}

// IdentifierAST refers to a TokenString or TokenQuotedString by index.
type IdentifierAST struct {
	Token int
}

type KeyValueAST struct {
	Key   IdentifierAST
	Value ValueAST
}

type TreeAST struct {
	Values []KeyValueAST
}

type ArrayAST struct {
	Values []ValueAST
}

func (IdentifierAST) isValueAST() {}
func (*TreeAST) isValueAST()      {}
func (*ArrayAST) isValueAST()     {}

type parser struct {
	tokens []Token
	pos    int
}

// Parse builds the AST of the root tree. Comments are skipped. A tree or array
// left open at EOF is closed implicitly; any other unexpected token fails.
func Parse(tokens []Token) (*TreeAST, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		tokens = append(tokens, Token{Type: TokenEOF})
	}
	p := &parser{tokens: tokens}
	p.skipComments()
	return p.parseTree()
}

func (p *parser) tok() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.skipComments()
}

func (p *parser) skipComments() {
	for p.tokens[p.pos].Type == TokenComment && p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Line: p.tok().Line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(typ TokenType) error {
	if p.tok().Type != typ {
		return p.errorf("expected %s, found %s", typ, p.tok().Type)
	}
	p.advance()
	return nil
}

func (p *parser) parseTree() (*TreeAST, error) {
	if err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	tree := &TreeAST{}
	for {
		switch p.tok().Type {
		case TokenRBrace:
			p.advance()
			return tree, nil
		case TokenEOF:
			return tree, nil
		}
		kv, err := p.parseKeyValue()
		if err != nil {
			return nil, err
		}
		tree.Values = append(tree.Values, kv)
	}
}

func (p *parser) parseKeyValue() (KeyValueAST, error) {
	key, err := p.parseIdentifier()
	if err != nil {
		return KeyValueAST{}, err
	}
	if err := p.expect(TokenEq); err != nil {
		return KeyValueAST{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return KeyValueAST{}, err
	}
	if p.tok().Type == TokenSemicolon {
		p.advance()
	}
	return KeyValueAST{Key: key, Value: value}, nil
}

func (p *parser) parseValue() (ValueAST, error) {
	switch p.tok().Type {
	case TokenString, TokenQuotedString:
		return p.parseIdentifier()
	case TokenLBrace:
		return p.parseTree()
	case TokenLParen:
		return p.parseArray()
	default:
		return nil, p.errorf("expected value, found %s", p.tok().Type)
	}
}

func (p *parser) parseArray() (*ArrayAST, error) {
	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	arr := &ArrayAST{}
	for {
		switch p.tok().Type {
		case TokenRParen:
			p.advance()
			return arr, nil
		case TokenEOF:
			return arr, nil
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, value)
		if p.tok().Type == TokenComma {
			p.advance()
		}
	}
}

func (p *parser) parseIdentifier() (IdentifierAST, error) {
	switch p.tok().Type {
	case TokenString, TokenQuotedString:
		id := IdentifierAST{Token: p.pos}
		p.advance()
		return id, nil
	default:
		return IdentifierAST{}, p.errorf("expected identifier, found %s", p.tok().Type)
	}
}
