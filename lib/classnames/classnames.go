// Package classnames joins recursive class values into a class attribute.
//
// A class value is any of:
//   - string: included when non-empty
//   - any slice or array (templ.CSSClasses included): each element
//     expanded in order
//   - any string-keyed map: keys with truthy values, sorted
//   - templ.KeyValue[string, bool]: Key when Value is true
//   - ClassNamer (templ CSS classes): its ClassName()
//   - numbers: included when non-zero
//
// Named types are matched by their underlying kind.
//
// nil, false and empty values contribute nothing. Tokens are never
// deduplicated.
package classnames

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// ClassNamer is implemented by values that know their own class name,
// such as the components produced by templ css blocks.
type ClassNamer interface {
	ClassName() string
}

// Join flattens values into a space-separated class string.
// Returns "" when nothing contributes a token.
func Join(values ...any) string {
	var b strings.Builder
	for _, v := range values {
		appendValue(&b, v)
	}
	return b.String()
}

// Tokens returns the individual class tokens of values in order.
func Tokens(values ...any) []string {
	joined := Join(values...)
	if joined == "" {
		return nil
	}
	return strings.Fields(joined)
}

func appendValue(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
	case string:
		push(b, x)
	case []string:
		for _, s := range x {
			push(b, s)
		}
	case []any:
		for _, item := range x {
			appendValue(b, item)
		}
	case map[string]bool:
		for _, k := range sortedKeys(x) {
			if x[k] {
				push(b, k)
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(x) {
			if Truthy(x[k]) {
				push(b, k)
			}
		}
	case templ.KeyValue[string, bool]:
		if x.Value {
			push(b, x.Key)
		}
	case []templ.KeyValue[string, bool]:
		for _, kv := range x {
			if kv.Value {
				push(b, kv.Key)
			}
		}
	case ClassNamer:
		push(b, x.ClassName())
	case templ.CSSClasses:
		for _, c := range x {
			appendValue(b, c)
		}
	default:
		appendReflect(b, reflect.ValueOf(v))
	}
}

// appendReflect handles named and less common types by kind, so every
// value Truthy counts as set can contribute a token.
func appendReflect(b *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		push(b, rv.String())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendValue(b, rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			if Truthy(rv.MapIndex(k).Interface()) {
				push(b, k.String())
			}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n != 0 {
			push(b, strconv.FormatInt(n, 10))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n != 0 {
			push(b, strconv.FormatUint(n, 10))
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f != 0 {
			push(b, strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
}

func push(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
