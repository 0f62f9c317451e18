package schema

import (
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
	"github.com/MKhiriev/go-settings-keeper/internal/validators"
	"github.com/MKhiriev/go-settings-keeper/models"
)

// Validatable is implemented by group structs that carry cross-field rules
// checked after all of the group's own fields have been coerced.
type Validatable interface {
	Validate() error
}

// Apply validates the merged tree against the schema and populates target,
// which must be a pointer to a struct of the described type.
//
// Every field-level failure is collected rather than returned on first hit;
// on any failure the result is a *ValidationError listing all of them and
// target must be discarded. Values for sensitive fields are redacted before
// they reach an error message.
func Apply(merged tree.Tree, target any, root *Node, vctx validators.Context) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Type() != root.Type {
		return fmt.Errorf("target must be a non-nil *%s", root.Type)
	}

	var fields []FieldError
	applyGroup(merged, v.Elem(), root, "", vctx, &fields)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func applyGroup(node tree.Tree, structVal reflect.Value, group *Node, prefix string, vctx validators.Context, out *[]FieldError) {
	for _, child := range group.Children {
		path := child.Name
		if prefix != "" {
			path = prefix + "." + child.Name
		}

		raw, present := node[child.Name]

		if child.Group {
			sub := tree.Tree{}
			if present {
				var ok bool
				if sub, ok = raw.(tree.Tree); !ok {
					*out = append(*out, FieldError{
						Path:  path,
						Kind:  KindSection,
						Value: renderRaw(raw, false),
					})
					continue
				}
			}

			field := structVal.Field(child.fieldIndex)
			before := len(*out)
			applyGroup(sub, field, child, path, vctx, out)

			// Cross-field rules only run on a fully coerced group.
			if len(*out) == before {
				if v, ok := field.Interface().(Validatable); ok {
					if err := v.Validate(); err != nil {
						*out = append(*out, FieldError{
							Path:   path,
							Kind:   KindConstraint,
							Reason: err.Error(),
						})
					}
				}
			}
			continue
		}

		if !present {
			switch {
			case child.HasDefault:
				raw = child.Default
			case child.Required:
				*out = append(*out, FieldError{Path: path, Kind: KindMissing, Expected: typeName(child.Type)})
				continue
			default:
				continue
			}
		}

		value, err := coerce(raw, child.Type)
		if err != nil {
			*out = append(*out, FieldError{
				Path:     path,
				Kind:     KindType,
				Expected: typeName(child.Type),
				Value:    renderRaw(raw, child.Sensitive),
			})
			continue
		}

		ok := true
		for _, c := range child.checks {
			if err := c.fn(vctx, value.Interface()); err != nil {
				*out = append(*out, FieldError{
					Path:   path,
					Kind:   KindConstraint,
					Reason: err.Error(),
					Value:  renderRaw(raw, child.Sensitive),
				})
				ok = false
			}
		}
		if ok {
			structVal.Field(child.fieldIndex).Set(value)
		}
	}
}

func renderRaw(raw any, sensitive bool) string {
	if sensitive {
		return models.RedactionToken
	}
	return fmt.Sprint(raw)
}
