// File: lixenwraith/items/type.go
package items

import (
	"fmt"
	"reflect"
	"strconv"
)

// Params maps canonical item names to bound values.
type Params map[string]any

// Has reports whether name is present, even with a nil value.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// String retrieves a value as a string.
// Attempts conversion from common types if the stored value isn't already a string.
func (p Params) String(name string) (string, error) {
	val, found := p[name]
	if !found {
		return "", fmt.Errorf("param not bound: %s", name)
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for param %s", val, name)
	}
}

// Int64 retrieves a value as an int64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (p Params) Int64(name string) (int64, error) {
	val, found := p[name]
	if !found {
		return 0, fmt.Errorf("param not bound: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for param %s is nil, cannot convert to int64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(int64(^uint64(0)>>1)) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for param %s: overflow", u, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		i, err := strconv.ParseInt(s, 0, 64)
		if err == nil {
			return i, nil
		}
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for param %s: %w", s, name, err)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for param %s", val, name)
}

// Bool retrieves a value as a bool.
// Numeric values are true when non-zero.
func (p Params) Bool(name string) (bool, error) {
	val, found := p[name]
	if !found {
		return false, fmt.Errorf("param not bound: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for param %s is nil, cannot convert to bool", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for param %s: %w", v.String(), name, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for param %s", val, name)
}

// Float64 retrieves a value as a float64.
func (p Params) Float64(name string) (float64, error) {
	val, found := p[name]
	if !found {
		return 0, fmt.Errorf("param not bound: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for param %s is nil, cannot convert to float64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for param %s: %w", v.String(), name, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to float64 for param %s", val, name)
}

// Strings retrieves a vargs value as a string slice. Scalars become a one element slice.
func (p Params) Strings(name string) ([]string, error) {
	val, found := p[name]
	if !found {
		return nil, fmt.Errorf("param not bound: %s", name)
	}

	elems := toSlice(val)
	out := make([]string, 0, len(elems))
	for i, e := range elems {
		switch s := e.(type) {
		case string:
			out = append(out, s)
		case fmt.Stringer:
			out = append(out, s.String())
		default:
			if e == nil {
				return nil, fmt.Errorf("element %d of param %s is nil", i, name)
			}
			out = append(out, fmt.Sprint(e))
		}
	}
	return out, nil
}
