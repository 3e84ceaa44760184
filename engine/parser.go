package engine

import (
	"fmt"
	"strconv"

	"github.com/ccdavis/schemer/core"
)

// Parser turns a token stream into an S-expression tree. Grounded in
// original_source's Parser (reserved-lexeme lookup table built once, then
// consulted per atom) and the teacher's two-token-lookahead recursive
// descent style.
type Parser struct {
	lexer    *Lexer
	reserved map[string]core.Cell
	current  Token
}

func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input), reserved: core.ReservedWords()}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// Parse reads exactly one top-level S-expression.
func (p *Parser) Parse() (core.SExpr, error) {
	switch p.current.Type {
	case TEOF:
		return core.Null{}, nil
	case TRParen:
		return nil, fmt.Errorf("unexpected `)`")
	case TLParen:
		p.advance()
		return p.readList()
	default:
		return p.parseAtom()
	}
}

func (p *Parser) readList() (core.SExpr, error) {
	var elems []core.SExpr
	for {
		switch p.current.Type {
		case TEOF:
			return nil, fmt.Errorf("unexpected EOF, expected ')'")
		case TRParen:
			p.advance()
			return core.FromSlice(elems), nil
		default:
			expr, err := p.Parse()
			if err != nil {
				return nil, err
			}
			elems = append(elems, expr)
		}
	}
}

func (p *Parser) parseAtom() (core.SExpr, error) {
	tok := p.current
	p.advance()

	if tok.Type == TString {
		return core.NewStr(tok.Value), nil
	}

	if cell, ok := p.reserved[tok.Value]; ok {
		return cell, nil
	}

	if n, err := strconv.ParseInt(tok.Value, 10, 64); err == nil {
		return core.NewInt(n), nil
	}
	if f, err := strconv.ParseFloat(tok.Value, 64); err == nil {
		return core.NewFlt(f), nil
	}
	return core.NewSymbol(tok.Value), nil
}

// ParseProgram wraps the whole input in an implicit outer pair of
// parentheses and parses it as a single List of top-level expressions, the
// behavior the file-mode driver needs (original_source's
// interpret_top_level).
func ParseProgram(input string) (core.List, error) {
	p := NewParser("(" + input + ")")
	expr, err := p.Parse()
	if err != nil {
		return core.Nil, err
	}
	list, ok := expr.(core.List)
	if !ok {
		return core.Nil, fmt.Errorf("expected a program, got %s", expr.String())
	}
	return list, nil
}

// ParseString parses a single expression from src, the convenience entry
// point the REPL and the root package's ParseString both call.
func ParseString(src string) (core.SExpr, error) {
	return NewParser(src).Parse()
}
