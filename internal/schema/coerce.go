package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/MKhiriev/go-settings-keeper/models"
)

// coerce converts a raw source value to the declared field type. Raw values
// arrive as strings from flat sources and as native scalars from YAML, so
// every conversion accepts both.
func coerce(raw any, t reflect.Type) (reflect.Value, error) {
	switch t {
	case secretType:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(models.NewSecret(s)), nil

	case durationType:
		d, err := cast.ToDurationE(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(d), nil
	}

	switch t.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s).Convert(t), nil

	case reflect.Bool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b).Convert(t), nil

	case reflect.Int, reflect.Int64:
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t).Elem()
		out.SetInt(n)
		return out, nil

	case reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(t), nil

	case reflect.Slice:
		return coerceStringSlice(raw, t)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported target type %s", t)
	}
}

// coerceStringSlice accepts native sequences from YAML and comma-separated
// strings from flat sources. A single scalar becomes a one-element slice.
func coerceStringSlice(raw any, t reflect.Type) (reflect.Value, error) {
	var items []string
	switch v := raw.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	default:
		converted, err := cast.ToStringSliceE(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		items = converted
	}

	out := reflect.MakeSlice(t, len(items), len(items))
	for i, item := range items {
		out.Index(i).SetString(item)
	}
	return out, nil
}

// typeName renders a field type the way error messages refer to it.
func typeName(t reflect.Type) string {
	switch t {
	case secretType:
		return "secret"
	case durationType:
		return "duration"
	}
	if t.Kind() == reflect.Slice {
		return "list of " + t.Elem().Kind().String()
	}
	return t.Kind().String()
}
