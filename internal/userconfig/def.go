package userconfig

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

func (c *Config) GetByKey(key string) (v Value, ok bool) {
	val := reflect.ValueOf(c).Elem()
	desc, ok := descs[key]
	if !ok {
		return Value{}, false
	}

	f := val.FieldByName(desc.FieldName)
	if !f.IsValid() {
		return Value{}, false
	}

	return Value{Val: f.Interface(), Type: desc.Type}, true
}

// Render renders every key and its value, one per line, sorted by key.
func (c *Config) Render() string {
	var buf strings.Builder
	for _, key := range configKeys {
		v, ok := c.GetByKey(key)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\n", key, v)
	}
	return buf.String()
}

var configKeys = slices.Sorted(maps.Keys(descs))

func GetType(key string) (Type, bool) {
	desc, ok := descs[key]
	return desc.Type, ok
}

func Keys() []string {
	return configKeys
}

// CLIDocs documents every key for the help text of the config command.
func CLIDocs() string {
	var b strings.Builder
	for i, key := range configKeys {
		desc := descs[key]
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %s (%s", key, desc.Type.Kind)
		if desc.Type.Default != nil {
			fmt.Fprintf(&b, ", default %q", RenderValue(*desc.Type.Default))
		}
		b.WriteString(")\n")
		if len(desc.Type.Oneof) > 0 {
			fmt.Fprintf(&b, "      Must be %s.\n", RenderOneof(desc.Type.Oneof))
		}
		for _, line := range strings.Split(strings.TrimSpace(desc.Doc), "\n") {
			if line != "" {
				b.WriteString("      " + line + "\n")
			}
		}
	}
	return b.String()
}
