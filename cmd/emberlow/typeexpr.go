package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"ember/internal/types"
)

// Type expressions are the CLI's compact spelling of semantic types:
//
//	i32, u8, byte, f80, complex64, bool, void, null
//	ptr(T)            pointer to T
//	arr(N, T)         fixed array of N elements
//	dyn(T)            dynamic (fat pointer) array
//	vec(N, T)         SIMD vector of N lanes
//	const(T), immutable(T), shared(T)
//	Name              a record declared in the manifest
type exprParser struct {
	src     string
	pos     int
	in      *types.Interner
	records map[string]types.TypeID
}

var scalarNames = map[string]types.ScalarKind{
	"void":      types.ScalarVoid,
	"noreturn":  types.ScalarNoReturn,
	"bool":      types.ScalarBool,
	"i8":        types.ScalarInt8,
	"i16":       types.ScalarInt16,
	"i32":       types.ScalarInt32,
	"i64":       types.ScalarInt64,
	"i128":      types.ScalarInt128,
	"u8":        types.ScalarUint8,
	"byte":      types.ScalarUint8,
	"u16":       types.ScalarUint16,
	"u32":       types.ScalarUint32,
	"u64":       types.ScalarUint64,
	"u128":      types.ScalarUint128,
	"char":      types.ScalarChar,
	"wchar":     types.ScalarWChar,
	"dchar":     types.ScalarDChar,
	"f32":       types.ScalarFloat32,
	"f64":       types.ScalarFloat64,
	"f80":       types.ScalarFloat80,
	"imag32":    types.ScalarImaginary32,
	"imag64":    types.ScalarImaginary64,
	"imag80":    types.ScalarImaginary80,
	"complex32": types.ScalarComplex32,
	"complex64": types.ScalarComplex64,
	"complex80": types.ScalarComplex80,
}

// parseTypeExpr interns the semantic type denoted by src. Record names
// resolve through the provided table (usually loaded from a manifest).
func parseTypeExpr(in *types.Interner, records map[string]types.TypeID, src string) (types.TypeID, error) {
	p := &exprParser{src: src, in: in, records: records}
	id, err := p.parse()
	if err != nil {
		return types.NoTypeID, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return types.NoTypeID, fmt.Errorf("trailing input %q in type expression %q", p.src[p.pos:], src)
	}
	return id, nil
}

func (p *exprParser) parse() (types.TypeID, error) {
	name, err := p.ident()
	if err != nil {
		return types.NoTypeID, err
	}

	switch name {
	case "ptr":
		elem, err := p.unaryArg()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.Pointer(elem), nil
	case "dyn":
		elem, err := p.unaryArg()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.DynamicArray(elem), nil
	case "arr":
		count, elem, err := p.countedArgs()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.FixedArray(elem, count), nil
	case "vec":
		lanes, elem, err := p.countedArgs()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.Vector(elem, lanes), nil
	case "const":
		elem, err := p.unaryArg()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.Qualified(elem, types.QualConst), nil
	case "immutable":
		elem, err := p.unaryArg()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.Qualified(elem, types.QualImmutable), nil
	case "shared":
		elem, err := p.unaryArg()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.in.Qualified(elem, types.QualShared), nil
	case "null":
		return p.in.Null(), nil
	}

	if k, ok := scalarNames[name]; ok {
		return p.in.Scalar(k), nil
	}
	if id, ok := p.records[name]; ok {
		return id, nil
	}
	return types.NoTypeID, fmt.Errorf("unknown type name %q", name)
}

// unaryArg parses "(T)".
func (p *exprParser) unaryArg() (types.TypeID, error) {
	if err := p.expect('('); err != nil {
		return types.NoTypeID, err
	}
	elem, err := p.parse()
	if err != nil {
		return types.NoTypeID, err
	}
	if err := p.expect(')'); err != nil {
		return types.NoTypeID, err
	}
	return elem, nil
}

// countedArgs parses "(N, T)".
func (p *exprParser) countedArgs() (int64, types.TypeID, error) {
	if err := p.expect('('); err != nil {
		return 0, types.NoTypeID, err
	}
	count, err := p.number()
	if err != nil {
		return 0, types.NoTypeID, err
	}
	if err := p.expect(','); err != nil {
		return 0, types.NoTypeID, err
	}
	elem, err := p.parse()
	if err != nil {
		return 0, types.NoTypeID, err
	}
	if err := p.expect(')'); err != nil {
		return 0, types.NoTypeID, err
	}
	return count, elem, nil
}

func (p *exprParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return "", fmt.Errorf("expected a type name at offset %d in %q", start, p.src)
	}
	return p.src[start:p.pos], nil
}

func (p *exprParser) number() (int64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected a length at offset %d in %q", start, p.src)
	}
	n, err := strconv.ParseInt(p.src[start:p.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad length in %q: %w", p.src, err)
	}
	return n, nil
}

func (p *exprParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return fmt.Errorf("expected %q at offset %d in %q", string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *exprParser) skipSpace() {
	p.pos += len(p.src[p.pos:]) - len(strings.TrimLeft(p.src[p.pos:], " \t"))
}
