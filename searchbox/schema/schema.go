package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
)

// Field types a content type may declare.
const (
	TypeSymbol   = "Symbol"
	TypeText     = "Text"
	TypeRichText = "RichText"
	TypeInteger  = "Integer"
	TypeNumber   = "Number"
	TypeDate     = "Date"
	TypeBoolean  = "Boolean"
	TypeLocation = "Location"
	TypeLink     = "Link"
	TypeObject   = "Object"
	TypeArray    = "Array"
)

// MaxRangeExpansion bounds how wide an Integer range validation may be
// before it stops being offered as an explicit value list.
const MaxRangeExpansion = 25

// ComparisonOperators are offered for ordered field types.
var ComparisonOperators = []string{"<", "<=", "==", ">=", ">"}

// MatchOperators are offered for every other field type.
var MatchOperators = []string{":"}

var unsearchableTypeRe = regexp.MustCompile(`Location|Link|Object|Array`)

// Range bounds an Integer or Number field. Either side may be absent.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Validation is one entry of a field's validations list.
type Validation struct {
	In    []any  `json:"in,omitempty"`
	Range *Range `json:"range,omitempty"`
}

// Field describes one field of a content type.
type Field struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Disabled    bool         `json:"disabled,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
}

// ContentType is the field metadata of one kind of content record.
type ContentType struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Fields []Field `json:"fields"`
}

// Searchable reports whether the field may be offered as a search key.
func (f Field) Searchable() bool {
	return !f.Disabled && !unsearchableTypeRe.MatchString(f.Type)
}

// SearchableFieldIDs returns the ids of searchable fields in declaration order.
func (ct *ContentType) SearchableFieldIDs() []string {
	if ct == nil {
		return nil
	}
	var ids []string
	for _, f := range ct.Fields {
		if f.Searchable() {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// Field looks a field up by id.
func (ct *ContentType) Field(id string) (Field, bool) {
	if ct == nil {
		return Field{}, false
	}
	for _, f := range ct.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Resolve finds the field a search key refers to: by id first, then by a
// case-insensitive match on the field name.
func (ct *ContentType) Resolve(key string) (Field, bool) {
	if f, ok := ct.Field(key); ok {
		return f, true
	}
	if ct == nil {
		return Field{}, false
	}
	fold := cases.Fold()
	want := fold.String(key)
	for _, f := range ct.Fields {
		if f.Name != "" && fold.String(f.Name) == want {
			return f, true
		}
	}
	return Field{}, false
}

// OperatorCompletions returns the operators that apply to a field type.
func OperatorCompletions(fieldType string) []string {
	switch fieldType {
	case TypeInteger, TypeNumber, TypeDate:
		return ComparisonOperators
	default:
		return MatchOperators
	}
}

// ValueCompletions returns the finite set of values a field accepts, or nil
// when the value is free text. Sources are tried in order: an "in"
// validation, a narrow Integer range, the Boolean type.
func ValueCompletions(f Field) []string {
	if in := f.inValues(); len(in) > 0 {
		return in
	}
	if f.Type == TypeInteger {
		if r := f.rangeValidation(); r != nil {
			return expandRange(*r)
		}
	}
	if f.Type == TypeBoolean {
		return []string{"true", "false"}
	}
	return nil
}

func (f Field) inValues() []string {
	for _, v := range f.Validations {
		if len(v.In) == 0 {
			continue
		}
		out := make([]string, 0, len(v.In))
		for _, x := range v.In {
			out = append(out, formatValue(x))
		}
		return out
	}
	return nil
}

func (f Field) rangeValidation() *Range {
	for _, v := range f.Validations {
		if v.Range != nil {
			return v.Range
		}
	}
	return nil
}

func expandRange(r Range) []string {
	if r.Min == nil || r.Max == nil {
		return nil
	}
	lo, hi := math.Ceil(*r.Min), math.Floor(*r.Max)
	// Bounds are checked as floats so the int64 conversion cannot overflow.
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < math.MinInt64 || hi >= math.MaxInt64 {
		return nil
	}
	if hi < lo || hi-lo > MaxRangeExpansion {
		return nil
	}
	first, last := int64(lo), int64(hi)
	out := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, strconv.FormatInt(i, 10))
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
