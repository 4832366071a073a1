package items

import (
	"fmt"
	"reflect"
	"strings"
)

// AddStruct declares items from the exported fields of a struct.
// It uses `item:"name,opts"` tags to determine names; untagged fields use the field name.
// Tag options: required, optional, vargs. Non-zero field values become defaults,
// slice fields are vargs. Nested structs are flattened into dotted names.
// A `desc` tag becomes the item description.
func (r *Registry) AddStruct(structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("AddStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("AddStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var errors []string
	r.addFields(v, "", &errors)

	if len(errors) > 0 {
		return fmt.Errorf("failed to declare %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return nil
}

// addFields handles the recursive field declaration
func (r *Registry) addFields(v reflect.Value, prefix string, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(ScanTag)
		if tag == "-" {
			continue
		}

		name := field.Name
		var flags []string
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			flags = parts[1:]
		}
		name = prefix + name

		// Nested structs become dotted names; nil pointers have no defaults to offer
		kind := fieldValue.Kind()
		if kind == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
			kind = reflect.Struct
		}
		if kind == reflect.Struct && !isLeafStruct(fieldValue.Type()) {
			r.addFields(fieldValue, name+".", errors)
			continue
		}

		spec := &Spec{
			Name:        name,
			Type:        typeLabel(fieldValue.Type()),
			Description: field.Tag.Get("desc"),
			Vargs:       kind == reflect.Slice && fieldValue.Type().Elem().Kind() != reflect.Uint8,
		}
		if !fieldValue.IsZero() {
			spec.Value = fieldValue.Interface()
			spec.HasValue = true
		}
		for _, flag := range flags {
			on := true
			switch strings.TrimSpace(flag) {
			case "required":
				spec.Required = &on
			case "optional":
				spec.Optional = &on
			case "vargs":
				spec.Vargs = true
			}
		}

		if _, err := r.AddItem(name, spec); err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s (item %s): %v", field.Name, name, err))
		}
	}
}

// isLeafStruct reports structs without exported fields (time.Time and friends)
func isLeafStruct(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

// typeLabel names the value type the way descriptors do
func typeLabel(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return typeLabel(t.Elem())
	default:
		return t.String()
	}
}
