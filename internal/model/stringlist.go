package model

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is an ordered string sequence persisted as a JSON-encoded text
// column. It round-trips losslessly, including the empty list, and reads
// leniently: malformed stored text scans to the empty list instead of
// failing, so one corrupt row cannot break a whole listing response.
type StringList []string

// Value serializes the list for storage. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan parses the stored text. Anything unparseable yields the empty list.
func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}
	*l = items
	return nil
}

// MarshalJSON renders a nil list as [] so sequence fields are never null on
// the wire.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
