// Package decode turns untyped command payloads into typed request structs
//
// The schema lives in struct tags: mapstructure names the payload key and
// validate holds the rules. Fields are decoded one at a time so a shape
// failure can name the offending key.
package decode

import (
	"reflect"
	"strings"

	perr "snapbridge/internal/platform/errors"
	"snapbridge/internal/platform/net/http/bind"

	"github.com/go-viper/mapstructure/v2"
)

const tag = "mapstructure"

// Decode decodes payload into a T and validates it
// Absent or nil keys leave the field at its zero value, so optional pointer fields stay nil
func Decode[T any](payload map[string]any) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return out, perr.Internalf("decode target %T is not a struct", out)
	}
	if err := decodeStruct(payload, rv, ""); err != nil {
		return out, err
	}
	if err := bind.Struct(out); err != nil {
		return out, err
	}
	return out, nil
}

func decodeStruct(payload map[string]any, rv reflect.Value, prefix string) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := keyOf(sf)
		if key == "" {
			continue
		}
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}
		path := prefix + key
		fv := rv.Field(i)

		if nested, ok := raw.(map[string]any); ok && isStructish(sf.Type) {
			target := fv
			if sf.Type.Kind() == reflect.Pointer {
				target = reflect.New(sf.Type.Elem())
				fv.Set(target)
				target = target.Elem()
			}
			if err := decodeStruct(nested, target, path+"."); err != nil {
				return err
			}
			continue
		}

		if err := mapstructure.Decode(raw, fv.Addr().Interface()); err != nil {
			return perr.WithField(
				perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "%s has the wrong type", path),
				path,
			)
		}
	}
	return nil
}

func keyOf(sf reflect.StructField) string {
	name := sf.Tag.Get(tag)
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func isStructish(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
