package model

import (
	"reflect"
	"strings"
)

// exactKeys drops object keys that do not equal a json tag of t. encoding/json
// folds case when binding keys, so "Name" or "SOURCE" would otherwise fill the
// tagged field; here they are unknown keys and get stripped like any other.
func exactKeys(v any, t reflect.Type) any {
	if t == nil {
		return v
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return v
		}
		fields := jsonFields(t)
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			ft, ok := fields[k]
			if !ok {
				continue
			}
			out[k] = exactKeys(val, ft)
		}
		return out
	case reflect.Slice, reflect.Array:
		items, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = exactKeys(item, t.Elem())
		}
		return out
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return v
		}
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[k] = exactKeys(val, t.Elem())
		}
		return out
	}
	return v
}

// jsonFields maps the JSON names of t's fields to their types. Untagged
// embedded structs contribute their own fields.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for k, v := range jsonFields(ft) {
					if _, ok := fields[k]; !ok {
						fields[k] = v
					}
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = f.Type
	}
	return fields
}
