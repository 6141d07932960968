package mapfile

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"codeberg.org/snonux/locconv/internal/translation"
)

// YAMLCodec reads and writes <locale>.yaml files
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Extensions() []string { return []string{".yaml", ".yml"} }

// quotedString is emitted as a double-quoted scalar
type quotedString string

func (s quotedString) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

// Encode writes a block mapping with sorted keys. Values that a plain
// scalar would turn into something else (.inf, .nan, nested syntax) are
// double-quoted.
func (YAMLCodec) Encode(m *translation.Mapping) ([]byte, error) {
	if err := checkUTF8(m); err != nil {
		return nil, err
	}

	keys := sortedKeys(m)

	doc := make(yaml.MapSlice, 0, len(keys))
	for _, key := range keys {
		value, _ := m.Get(key)

		var item any = value
		if !isPlainString(value) {
			item = quotedString(value)
		}
		doc = append(doc, yaml.MapItem{Key: key, Value: item})
	}

	return yaml.MarshalWithOptions(doc, yaml.Indent(2))
}

// isPlainString reports whether value reads back as itself when written
// without quotes
func isPlainString(value string) bool {
	var decoded any
	if err := yaml.Unmarshal([]byte(value), &decoded); err != nil {
		return false
	}

	s, ok := decoded.(string)
	return ok && s == value
}

func (YAMLCodec) Decode(data []byte) (*translation.Mapping, error) {
	data = trimBOM(data)

	m := translation.NewMapping()
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	for _, item := range doc {
		key := fmt.Sprint(item.Key)

		switch value := item.Value.(type) {
		case nil:
		case string:
			m.Set(key, value)
		case bool, int, int64, uint64, float64:
			m.Set(key, fmt.Sprint(value))
		default:
			return nil, fmt.Errorf("value of %q is not a string", key)
		}
	}

	return m, nil
}
