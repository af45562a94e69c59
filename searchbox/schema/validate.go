package schema

import (
	"regexp"

	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
)

var fieldIDRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks ids and types of a content type.
func (ct ContentType) Validate() error {
	if ct.ID == "" {
		return sberrors.New(sberrors.ErrSchema, "content type must have an id")
	}
	seen := make(map[string]bool, len(ct.Fields))
	for _, f := range ct.Fields {
		if !fieldIDRe.MatchString(f.ID) {
			return sberrors.SchemaError(f.ID, "invalid field id (must match ^[A-Za-z_][A-Za-z0-9_]*$)")
		}
		if seen[f.ID] {
			return sberrors.SchemaError(f.ID, "duplicate field id")
		}
		seen[f.ID] = true
		if f.Type == "" {
			return sberrors.SchemaError(f.ID, "field type is required")
		}
		for _, v := range f.Validations {
			if r := v.Range; r != nil && r.Min != nil && r.Max != nil && *r.Min > *r.Max {
				return sberrors.SchemaError(f.ID, "range min exceeds max")
			}
		}
	}
	return nil
}
