package domain

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// schemaTag is the struct tag holding the store column name of a typed form field.
const schemaTag = "airtable"

// EncodeFields converts a struct tagged with `airtable:"<column>"` into the
// wire map sent to the store. Fields tagged omitempty are dropped when zero.
func EncodeFields(v any) (Fields, error) {
	out := Fields{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: schemaTag,
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return out, nil
}

// DecodeFields fills a tagged struct from a record's fields. Numbers decoded
// from JSON are converted to the target type.
func DecodeFields(f Fields, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          schemaTag,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	if err := dec.Decode(map[string]any(f)); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	return nil
}
