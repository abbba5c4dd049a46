package classnames

import "reflect"

// Truthy reports whether v counts as set.
//
// nil, false, "" and numeric zero are falsy. Everything else is truthy,
// including empty slices and maps. Named types follow their underlying
// kind.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// Combine appends next to prev as a single class value.
// When both are truthy the result is []any{prev, next}; otherwise it is
// prev when it is truthy and next otherwise.
func Combine(prev, next any) any {
	if Truthy(prev) && Truthy(next) {
		return []any{prev, next}
	}
	if Truthy(prev) {
		return prev
	}
	return next
}
