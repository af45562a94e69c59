package schema

import (
	"bytes"
	"encoding/json"

	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
)

// ToJSON serializes the content type.
func (ct ContentType) ToJSON() ([]byte, error) {
	b, err := json.Marshal(ct)
	if err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSchema, "json encode", err)
	}
	return b, nil
}

// FromJSON decodes and validates a single content type.
func FromJSON(b []byte) (ContentType, error) {
	var ct ContentType
	if err := json.Unmarshal(b, &ct); err != nil {
		return ContentType{}, sberrors.Wrap(sberrors.ErrSchema, "invalid content type JSON", err)
	}
	if err := ct.Validate(); err != nil {
		return ContentType{}, err
	}
	return ct, nil
}

// ListFromJSON accepts either one content type object or an array of them.
func ListFromJSON(b []byte) ([]ContentType, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		ct, err := FromJSON(trimmed)
		if err != nil {
			return nil, err
		}
		return []ContentType{ct}, nil
	}

	var list []ContentType
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSchema, "invalid content type JSON", err)
	}
	for _, ct := range list {
		if err := ct.Validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
