package enum

import "reflect"

// cloneFields copies fs and every slice or map nested in it
func cloneFields(fs Fields) Fields {
	if fs == nil {
		return Fields{}
	}
	out := make(Fields, len(fs))
	for name, field := range fs {
		out[name] = cloneData(field)
	}
	return out
}

// cloneData returns a deep copy of slices, arrays and maps. Other values,
// functions and pointers included, are returned as is.
func cloneData(v any) any {
	switch x := v.(type) {
	case nil, bool, string, int, int64, float64, Key:
		return v
	case Fields:
		return cloneFields(x)
	case map[string]any:
		return map[string]any(cloneFields(Fields(x)))
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cloneData(item)
		}
		return out
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Slice:
		if val.IsNil() {
			return v
		}
		return cloneValue(val).Interface()
	case reflect.Map, reflect.Array:
		return cloneValue(val).Interface()
	default:
		return v
	}
}

func cloneValue(val reflect.Value) reflect.Value {
	switch val.Kind() {
	case reflect.Slice:
		if val.IsNil() {
			return val
		}
		out := reflect.MakeSlice(val.Type(), val.Len(), val.Len())
		for i := range val.Len() {
			out.Index(i).Set(cloneValue(val.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(val.Type()).Elem()
		for i := range val.Len() {
			out.Index(i).Set(cloneValue(val.Index(i)))
		}
		return out
	case reflect.Map:
		if val.IsNil() {
			return val
		}
		out := reflect.MakeMapWithSize(val.Type(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return out
	case reflect.Interface:
		if val.IsNil() {
			return val
		}
		out := reflect.New(val.Type()).Elem()
		out.Set(reflect.ValueOf(cloneData(val.Interface())))
		return out
	default:
		return val
	}
}
