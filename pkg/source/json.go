package source

import "github.com/tidwall/gjson"

// ParseJSON reads the top-level object of a JSON document.
// Values are decoded to nil, bool, float64, string, []any or
// map[string]any. Member order is preserved.
func ParseJSON(data []byte) (*Pairs[string, any], error) {
	if !gjson.ValidBytes(data) {
		return nil, &ErrorIllegal{Format: "json", Message: "invalid syntax"}
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, &ErrorIllegal{
			Format:  "json",
			Message: "expected object, got " + r.Type.String(),
		}
	}
	p := NewPairs[string, any]()
	r.ForEach(func(key, value gjson.Result) bool {
		p.Add(key.String(), value.Value())
		return true
	})
	return p, nil
}
