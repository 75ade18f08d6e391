package csv

import (
	"github.com/viant/toolbox/format"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

type (
	//FieldStringifierFn returns field text and information if it may need enclosing
	FieldStringifierFn func(pointer unsafe.Pointer) (string, bool)

	fieldStringifier struct {
		header    string
		stringify FieldStringifierFn
	}

	objectStringifier struct {
		fields []*fieldStringifier
		tokens *tokens
	}

	//HeaderCase converts header names derived from struct field names into given case
	HeaderCase format.Case
)

//newTypeStringifier returns stringifier for a struct type, transient fields are omitted
func newTypeStringifier(rType reflect.Type, tokens *tokens, headerCase *format.Case) *objectStringifier {
	result := &objectStringifier{tokens: tokens}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := fieldTag(field)
		if tag.Transient {
			continue
		}

		header := tag.Column
		if header == "" {
			header = field.Name
			if headerCase != nil {
				header = format.CaseUpperCamel.Format(header, *headerCase)
			}
		}

		result.fields = append(result.fields, &fieldStringifier{
			header:    header,
			stringify: newFieldStringifier(xunsafe.NewField(field), tag.NullifyEmpty, tokens),
		})
	}
	return result
}

func (s *objectStringifier) headers() []string {
	result := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		result = append(result, field.header)
	}
	return result
}

func (s *objectStringifier) stringify(pointer unsafe.Pointer, values []string, wasStrings []bool) {
	if pointer == nil {
		for i := range s.fields {
			values[i], wasStrings[i] = s.tokens.nullValue, false
		}
		return
	}

	for i, field := range s.fields {
		values[i], wasStrings[i] = field.stringify(pointer)
	}
}

func newFieldStringifier(field *xunsafe.Field, nullifyEmpty bool, tokens *tokens) FieldStringifierFn {
	if field.Type.Kind() == reflect.Ptr {
		return func(pointer unsafe.Pointer) (string, bool) {
			value := field.Value(pointer)
			if nullifyEmpty && isZero(value) {
				return tokens.nullValue, false
			}
			return tokens.format(value)
		}
	}

	switch field.Type.Kind() {
	case reflect.String:
		return func(pointer unsafe.Pointer) (string, bool) {
			value := field.String(pointer)
			if value == "" && nullifyEmpty {
				return tokens.nullValue, false
			}
			return value, true
		}
	case reflect.Bool:
		return func(pointer unsafe.Pointer) (string, bool) {
			value := field.Bool(pointer)
			if !value && nullifyEmpty {
				return tokens.nullValue, false
			}
			return tokens.boolean(value), false
		}
	}

	return func(pointer unsafe.Pointer) (string, bool) {
		value := field.Value(pointer)
		if nullifyEmpty && isZero(value) {
			return tokens.nullValue, false
		}
		return tokens.format(value)
	}
}

func isZero(value interface{}) bool {
	if value == nil {
		return true
	}

	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return true
		}
		rValue = rValue.Elem()
	}
	return rValue.IsZero()
}
