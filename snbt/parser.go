package snbt

import (
	"fmt"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

// parser is a one-token-lookahead recursive descent parser over the
// lexer's token stream.
type parser struct {
	lex  *lexer
	peek *token
}

func newParser(s string) *parser {
	return &parser{lex: newLexer(s)}
}

func (p *parser) peekToken() (token, error) {
	if p.peek != nil {
		return *p.peek, nil
	}
	t, err := p.lex.next()
	if err != nil {
		return token{}, err
	}
	p.peek = &t
	return t, nil
}

func (p *parser) advance() (token, error) {
	t, err := p.peekToken()
	if err != nil {
		return token{}, err
	}
	p.peek = nil
	return t, nil
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t, err := p.advance()
	if err != nil {
		return token{}, err
	}
	if t.kind != k {
		return token{}, fmt.Errorf("%w: expected %s at %d", errs.ErrUnexpectedToken, what, t.pos)
	}
	return t, nil
}

// Parse parses a complete SNBT document. The root value has no name of
// its own in text form, matching scenario 5's "Compound{name:"", ...}".
func Parse(s string) (value.Value, error) {
	p := newParser(s)
	nv, err := p.parseValue()
	if err != nil {
		return value.Value{}, err
	}
	return nv.Named(""), nil
}

func (p *parser) parseValue() (value.NamelessValue, error) {
	t, err := p.peekToken()
	if err != nil {
		return value.NamelessValue{}, err
	}

	switch t.kind {
	case tokLBrace:
		entries, err := p.parseCompound()
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.Compound, Compound: entries}, nil
	case tokByteArrayPrefix:
		return p.parseTypedArray(tag.Byte)
	case tokIntArrayPrefix:
		return p.parseTypedArray(tag.Int)
	case tokLongArrayPrefix:
		return p.parseTypedArray(tag.Long)
	case tokLBracket:
		elems, err := p.parseList()
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.List, List: elems}, nil
	case tokString:
		p.advance()
		return value.NamelessValue{Kind: tag.String, Str: t.str}, nil
	case tokTrue:
		p.advance()
		return value.NamelessValue{Kind: value.KindBoolean, Boolean: true}, nil
	case tokFalse:
		p.advance()
		return value.NamelessValue{Kind: value.KindBoolean, Boolean: false}, nil
	case tokByte:
		p.advance()
		return value.NamelessValue{Kind: tag.Byte, Byte: t.i8}, nil
	case tokShort:
		p.advance()
		return value.NamelessValue{Kind: tag.Short, Short: t.i16}, nil
	case tokInt:
		p.advance()
		return value.NamelessValue{Kind: tag.Int, Int: t.i32}, nil
	case tokLong:
		p.advance()
		return value.NamelessValue{Kind: tag.Long, Long: t.i64}, nil
	case tokFloat:
		p.advance()
		return value.NamelessValue{Kind: tag.Float, Float: t.f32}, nil
	case tokDouble:
		p.advance()
		return value.NamelessValue{Kind: tag.Double, Double: t.f64}, nil
	default:
		return value.NamelessValue{}, fmt.Errorf("%w: unexpected token at %d", errs.ErrUnexpectedToken, t.pos)
	}
}

// parseCompound consumes "name:value" entries until '}', having already
// seen but not consumed the opening '{'.
func (p *parser) parseCompound() ([]value.Value, error) {
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}

	var entries []value.Value
	for {
		t, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRBrace {
			p.advance()
			return entries, nil
		}
		if len(entries) > 0 {
			if _, err := p.expect(tokComma, "','"); err != nil {
				return nil, err
			}
		}

		nameTok, err := p.expect(tokName, "entry name")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMissingName, err)
		}
		if _, err := p.expect(tokColon, "':'"); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, v.Named(nameTok.str))
	}
}

// parseList consumes a generic, comma-separated, bracket-delimited
// sequence of values, having already seen but not consumed '['.
func (p *parser) parseList() ([]value.NamelessValue, error) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}

	var elems []value.NamelessValue
	for {
		t, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRBracket {
			p.advance()
			return elems, nil
		}
		if len(elems) > 0 {
			if _, err := p.expect(tokComma, "','"); err != nil {
				return nil, err
			}
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

// parseTypedArray consumes "[B;1,2,3]"-shaped arrays. elemTag chooses
// which scalar field of the parsed token populates the array.
func (p *parser) parseTypedArray(elemTag tag.Tag) (value.NamelessValue, error) {
	if _, err := p.advance(); err != nil { // consume the "[B;"/"[I;"/"[L;" token
		return value.NamelessValue{}, err
	}

	switch elemTag {
	case tag.Byte:
		bytes, err := parsePrimList(p, func(t token) int8 { return t.i8 })
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.ByteArray, ByteArray: bytes}, nil
	case tag.Int:
		ints, err := parsePrimList(p, func(t token) int32 {
			if t.kind == tokByte {
				return int32(t.i8)
			}
			return t.i32
		})
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.IntArray, IntArray: ints}, nil
	default: // tag.Long
		longs, err := parsePrimList(p, func(t token) int64 {
			switch t.kind {
			case tokByte:
				return int64(t.i8)
			case tokInt:
				return int64(t.i32)
			default:
				return t.i64
			}
		})
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.LongArray, LongArray: longs}, nil
	}
}

// parsePrimList reads a comma-separated run of numeric-literal tokens
// until ']'. extract selects which field of the matched token to read, so
// the same loop serves byte/int/long arrays.
func parsePrimList[T any](p *parser, extract func(token) T) ([]T, error) {
	var out []T
	for {
		t, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRBracket {
			p.advance()
			return out, nil
		}
		if len(out) > 0 {
			if _, err := p.expect(tokComma, "','"); err != nil {
				return nil, err
			}
			t, err = p.peekToken()
			if err != nil {
				return nil, err
			}
		}
		if !isNumericToken(t.kind) {
			return nil, fmt.Errorf("%w: expected numeric literal at %d", errs.ErrUnexpectedToken, t.pos)
		}
		p.advance()
		out = append(out, extract(t))
	}
}

func isNumericToken(k tokenKind) bool {
	switch k {
	case tokByte, tokShort, tokInt, tokLong, tokFloat, tokDouble:
		return true
	default:
		return false
	}
}
