package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/typerel/internal/utils"
	"github.com/pkg/errors"
)

// String renders the tensor type in StableHLO notation, e.g. "tensor<2x3xf32>", or "tensor<f32>" for scalars.
func (t TensorType) String() string {
	var sb strings.Builder
	sb.WriteString("tensor<")
	for _, dim := range t.Shape {
		if dim == nil {
			sb.WriteString("?")
		} else {
			sb.WriteString(dim.String())
		}
		sb.WriteString("x")
	}
	sb.WriteString(utils.DTypeToStableHLO(t.DType))
	sb.WriteString(">")
	return sb.String()
}

// String renders the tuple type, e.g. "tuple<tensor<2xf32>, tensor<3xf32>>".
func (t TupleType) String() string {
	return "tuple<" + joinTypes(t.Fields) + ">"
}

// String renders the function type, e.g. "(tensor<f32>, tensor<f32>) -> tensor<f32>".
func (t FuncType) String() string {
	result := "()"
	if t.Result != nil {
		result = t.Result.String()
	}
	return fmt.Sprintf("(%s) -> %s", joinTypes(t.Params), result)
}

// String renders the placeholder as "?<id>".
func (t Incomplete) String() string {
	return "?" + strconv.Itoa(t.ID)
}

func joinTypes(list []Type) string {
	parts := make([]string, len(list))
	for ii, t := range list {
		if t == nil {
			parts[ii] = "<nil>"
			continue
		}
		parts[ii] = t.String()
	}
	return strings.Join(parts, ", ")
}

// Parse parses the notation produced by String for tensors, tuples and incomplete types:
//
//	tensor<2x3xf32>
//	tensor<Nx3xf32>    // Symbolic dimension "N", names can't contain "x".
//	tensor<i1>         // Scalar boolean.
//	tuple<tensor<2xf32>, tensor<3xf32>>
//	?7                 // Incomplete{ID: 7}.
func Parse(text string) (Type, error) {
	p := &parser{text: text}
	t, err := p.parseType()
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse type %q", text)
	}
	p.skipSpaces()
	if p.pos != len(p.text) {
		return nil, errors.Errorf("failed to parse type %q: unexpected trailing text %q", text, p.text[p.pos:])
	}
	return t, nil
}

// MustParse is like Parse, but panics on error. Used for tests and static declarations.
func MustParse(text string) Type {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	text string
	pos  int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.text) && p.text[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) consume(prefix string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.text[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *parser) parseType() (Type, error) {
	switch {
	case p.consume("tensor<"):
		return p.parseTensorBody()
	case p.consume("tuple<"):
		return p.parseTupleBody()
	case p.consume("?"):
		start := p.pos
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
		id, err := strconv.Atoi(p.text[start:p.pos])
		if err != nil {
			return nil, errors.Errorf("invalid incomplete type id at position %d", start)
		}
		return Incomplete{ID: id}, nil
	}
	return nil, errors.Errorf("expected \"tensor<\", \"tuple<\" or \"?\" at position %d", p.pos)
}

// parseTensorBody parses what follows "tensor<": dimensions separated by "x", then the dtype and ">".
// The dtype can be "complex<f32>", which contains its own "<>".
func (p *parser) parseTensorBody() (Type, error) {
	start := p.pos
	depth := 0
	end := -1
	for ii := p.pos; ii < len(p.text); ii++ {
		if p.text[ii] == '<' {
			depth++
		} else if p.text[ii] == '>' {
			if depth == 0 {
				end = ii
				break
			}
			depth--
		}
	}
	if end < 0 {
		return nil, errors.Errorf("missing \">\" for tensor starting at position %d", start)
	}
	p.pos = end + 1
	body := p.text[start:end]

	var shape []DimExpr
	for {
		idx := strings.IndexByte(body, 'x')
		if idx < 0 || strings.HasPrefix(body, "complex<") {
			break
		}
		dimText := body[:idx]
		body = body[idx+1:]
		if dimText == "" {
			return nil, errors.Errorf("empty dimension in tensor starting at position %d", start)
		}
		if value, err := strconv.ParseInt(dimText, 10, 64); err == nil {
			shape = append(shape, Constant(value))
		} else if dimText == "?" {
			shape = append(shape, Symbolic{})
		} else {
			shape = append(shape, Symbolic{Name: dimText})
		}
	}
	dtype, found := utils.DTypeFromStableHLO(body)
	if !found {
		return nil, errors.Errorf("unknown dtype %q in tensor starting at position %d", body, start)
	}
	return TensorType{Shape: shape, DType: dtype}, nil
}

func (p *parser) parseTupleBody() (Type, error) {
	var fields []Type
	if p.consume(">") {
		return TupleType{}, nil
	}
	for {
		field, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.consume(">") {
			return TupleType{Fields: fields}, nil
		}
		if !p.consume(",") {
			return nil, errors.Errorf("expected \",\" or \">\" in tuple at position %d", p.pos)
		}
	}
}
