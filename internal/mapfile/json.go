package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"codeberg.org/snonux/locconv/internal/translation"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotObject   = errors.New("top-level value is not an object")
)

// JSONCodec reads and writes <locale>.json files
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Extensions() []string { return []string{".json"} }

// Encode writes an indented object. encoding/json sorts map keys; HTML
// characters are kept literal.
func (JSONCodec) Encode(m *translation.Mapping) ([]byte, error) {
	if err := checkUTF8(m); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(m.ToMap()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode walks the object with gjson, which visits members in document
// order. Scalars are kept as their text, null members are dropped and a
// repeated member overwrites the earlier one.
func (JSONCodec) Decode(data []byte) (*translation.Mapping, error) {
	data = trimBOM(data)
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errNotObject
	}

	m := translation.NewMapping()
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Null:
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			m.Set(key.String(), value.String())
		default:
			err = fmt.Errorf("value of %q is not a string", key.String())
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}
