package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// EnvError reports an environment variable that could not be applied to its config field
type EnvError struct {
	Key   string
	Field string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("env %s (%s): %v", e.Key, e.Field, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// applyEnv overrides every field carrying an `env:"KEY"` tag when KEY is set.
// Nested structs are walked; a set but empty variable still overrides.
func applyEnv(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env target must be a non-nil struct pointer, got %T", target)
	}
	return applyEnvStruct(v.Elem(), "")
}

func applyEnvStruct(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if path != "" {
			name = path + "." + sf.Name
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := applyEnvStruct(fv, name); err != nil {
				return err
			}
			continue
		}

		key := sf.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := assignEnv(fv, raw); err != nil {
			return &EnvError{Key: key, Field: name, Err: err}
		}
	}
	return nil
}

func assignEnv(fv reflect.Value, raw string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		fv.Set(reflect.ValueOf(splitList(raw)))
	default:
		return errors.New("unsupported field type " + fv.Type().String())
	}
	return nil
}

// splitList reads a comma separated value, dropping blank items
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
