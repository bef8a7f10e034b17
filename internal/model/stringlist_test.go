package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_ValueScanRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list StringList
	}{
		{name: "empty", list: StringList{}},
		{name: "nil stored as empty", list: nil},
		{name: "single", list: StringList{"Go"}},
		{name: "order preserved", list: StringList{"Go", "PostgreSQL", "Docker"}},
		{name: "duplicates preserved", list: StringList{"a", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.list.Value()
			assert.NoError(t, err)

			var got StringList
			assert.NoError(t, got.Scan(v))

			want := tt.list
			if want == nil {
				want = StringList{}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestStringList_ScanLenient(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
	}{
		{name: "garbage text", src: "not json at all"},
		{name: "truncated json", src: `["a","b`},
		{name: "wrong json shape", src: `{"a":1}`},
		{name: "json null", src: "null"},
		{name: "nil source", src: nil},
		{name: "unexpected type", src: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringList{"stale"}
			assert.NoError(t, got.Scan(tt.src))
			assert.Equal(t, StringList{}, got)
		})
	}
}

func TestStringList_MarshalJSONNeverNull(t *testing.T) {
	var l StringList
	b, err := json.Marshal(l)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = json.Marshal(StringList{"x"})
	assert.NoError(t, err)
	assert.Equal(t, `["x"]`, string(b))
}
