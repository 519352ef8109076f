// FILE: lixenwraith/ini/scan.go
package ini

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan and WriteStruct.
const TagName = "ini"

// Scan decodes the records of a bare-named group into target, which must be a
// non-nil pointer to a struct or map. Fields are matched by the `ini` tag or the
// field name. Text is converted with weak typing, durations ("30s") and
// comma-separated slices are supported, and booleans follow the Read rule
// (true only for "1"). Fields with no matching key keep their current value.
func (f *File) Scan(group string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	stored, _ := f.key(group, "")
	section := make(map[string]any)
	for _, r := range f.store.Group(stored) {
		if _, exists := section[r.Key]; !exists {
			section[r.Key] = r.Value
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToBoolHookFunc(),
			stringToCharHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("%w: failed to scan group %q into %T: %w", ErrParse, group, target, err)
	}
	return nil
}

// stringToBoolHookFunc applies the "1" rule instead of strconv.ParseBool.
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return data.(string) == "1", nil
	}
}

// stringToCharHookFunc decodes a Char field from the first character of its text.
func stringToCharHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != charType {
			return data, nil
		}
		return firstChar(data.(string)), nil
	}
}

// WriteStruct writes the exported fields of src, a struct or struct pointer, as
// keys of the bare-named group in field declaration order. Keys come from the
// `ini` tag or the field name; a tag of "-" skips the field. Every write uses
// updateIfPresent. Nested structs are rejected since groups are flat.
func (f *File) WriteStruct(group string, src any, updateIfPresent bool) error {
	v := reflect.ValueOf(src)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("WriteStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("WriteStruct requires a struct or struct pointer, got %T", src)
	}

	t := v.Type()
	var errors []string

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}

		text, err := formatField(v.Field(i))
		if err != nil {
			errors = append(errors, fmt.Sprintf("field %s (key %s): %v", field.Name, key, err))
			continue
		}
		Write(f, group, key, text, updateIfPresent)
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to write %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	charType     = reflect.TypeOf(Char(0))
)

// formatField renders a struct field with the same conversions as Format.
// Nil pointers and interfaces render as empty text.
func formatField(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}

	switch v.Type() {
	case durationType:
		return time.Duration(v.Int()).String(), nil
	case charType:
		return Format(Char(v.Int())), nil
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return Format(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Format(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Format(v.Uint()), nil
	case reflect.Float32:
		return Format(float32(v.Float())), nil
	case reflect.Float64:
		return Format(v.Float()), nil
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			part, err := formatField(v.Index(i))
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported field type %s", v.Type())
	}
}
