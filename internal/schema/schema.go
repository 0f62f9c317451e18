// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema maps the merged configuration tree onto the statically
// declared configuration structs.
//
// The schema itself is expressed as struct tags on [models.AppConfig] and
// its nested groups: conf names the key inside every source, default
// supplies the lowest-precedence value, required makes absence a validation
// failure, and validate attaches named value validators. [Describe] turns a
// struct type into a Node tree once; [DefaultsTree] derives the defaults
// source from it; [Apply] validates and populates a struct instance from a
// merged tree, reporting every field-level failure in one aggregated error.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
	"github.com/MKhiriev/go-settings-keeper/internal/validators"
	"github.com/MKhiriev/go-settings-keeper/models"
)

// Node describes one declared configuration field or nested group.
type Node struct {
	// Name is the field's key inside every configuration source.
	Name string

	// Group reports whether the node holds child nodes rather than a value.
	Group bool

	// Type is the Go type the field coerces to.
	Type reflect.Type

	// Default is the raw default value; it passes through the same coercion
	// as any sourced value. HasDefault distinguishes "" from no default.
	Default    string
	HasDefault bool

	// Required makes absence after the merge a validation failure.
	// Only meaningful for leaves without a default.
	Required bool

	// Sensitive marks secret-typed leaves whose values are redacted in
	// dumps and error messages.
	Sensitive bool

	// Children holds the nested nodes of a group, in declaration order.
	Children []*Node

	fieldIndex int
	checks     []check
}

type check struct {
	spec string
	fn   validators.Func
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	secretType   = reflect.TypeOf(models.Secret{})
)

// Describe builds the Node tree for a configuration struct type. It fails
// on unexported fields carrying a conf tag, on field types outside the
// supported set, and on unknown validator names, so a malformed schema is
// caught before any source is read.
func Describe(t reflect.Type) (*Node, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotStruct, t)
	}

	root := &Node{Name: "", Group: true, Type: t}
	if err := describeChildren(root, t); err != nil {
		return nil, err
	}
	return root, nil
}

func describeChildren(parent *Node, t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("conf")
		if tag == "-" {
			continue
		}
		if !field.IsExported() {
			if tag != "" {
				return fmt.Errorf("%w: %s.%s", ErrUnexportedField, t, field.Name)
			}
			continue
		}

		name := tag
		if name == "" {
			name = screamingSnake(field.Name)
		}

		node := &Node{
			Name:       name,
			Type:       field.Type,
			fieldIndex: i,
		}

		if defaultValue, ok := field.Tag.Lookup("default"); ok {
			node.Default = defaultValue
			node.HasDefault = true
		}
		node.Required = field.Tag.Get("required") == "true"
		node.Sensitive = field.Type == secretType

		if specs := field.Tag.Get("validate"); specs != "" {
			for _, spec := range strings.Split(specs, ",") {
				fn, err := validators.Lookup(spec)
				if err != nil {
					return fmt.Errorf("field %s.%s: %w", t, field.Name, err)
				}
				node.checks = append(node.checks, check{spec: spec, fn: fn})
			}
		}

		if isGroupType(field.Type) {
			node.Group = true
			if err := describeChildren(node, field.Type); err != nil {
				return err
			}
		} else if !isLeafType(field.Type) {
			return fmt.Errorf("%w: %s.%s has type %s", ErrUnsupportedFieldType, t, field.Name, field.Type)
		}

		parent.Children = append(parent.Children, node)
	}

	return nil
}

// DefaultsTree derives the lowest-precedence source tree from the declared
// defaults, already nested in schema shape. Groups without any defaulted
// descendant are omitted.
func DefaultsTree(root *Node) tree.Tree {
	out := tree.Tree{}
	for _, child := range root.Children {
		if child.Group {
			sub := DefaultsTree(child)
			if len(sub) > 0 {
				out[child.Name] = sub
			}
			continue
		}
		if child.HasDefault {
			out[child.Name] = child.Default
		}
	}
	return out
}

// FieldOf returns the struct field this node describes within its parent
// group's value.
func (n *Node) FieldOf(parent reflect.Value) reflect.Value {
	return parent.Field(n.fieldIndex)
}

// TopLevelNames returns the declared names of the schema's root fields.
// The environment source uses them to decide which variables belong to the
// configuration at all.
func TopLevelNames(root *Node) []string {
	names := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		names = append(names, child.Name)
	}
	return names
}

func isGroupType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t != secretType
}

func isLeafType(t reflect.Type) bool {
	switch t {
	case secretType, durationType:
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool, reflect.Int, reflect.Int64, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.String
	default:
		return false
	}
}

// screamingSnake converts a CamelCase field name to the SCREAMING_SNAKE
// source-key convention, e.g. "PoolSize" -> "POOL_SIZE", "DBName" -> "DB_NAME".
func screamingSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && isUpper(r) && (!isUpper(runes[i-1]) || (i+1 < len(runes) && !isUpper(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
