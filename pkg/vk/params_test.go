package vk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRequestParams_Setters tests the scalar setters and their wire encoding.
func TestRequestParams_Setters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fill     func(p *RequestParams)
		key      string
		expected string
	}{
		{
			name:     "string value",
			fill:     func(p *RequestParams) { p.SetString("q", "Beatles") },
			key:      "q",
			expected: "Beatles",
		},
		{
			name:     "negative integer",
			fill:     func(p *RequestParams) { p.SetInt("owner_id", -12345) },
			key:      "owner_id",
			expected: "-12345",
		},
		{
			name:     "unsigned integer",
			fill:     func(p *RequestParams) { p.SetUint("audio_id", 67859194) },
			key:      "audio_id",
			expected: "67859194",
		},
		{
			name:     "true flag",
			fill:     func(p *RequestParams) { p.SetBool("need_user", true) },
			key:      "need_user",
			expected: "1",
		},
		{
			name:     "false flag",
			fill:     func(p *RequestParams) { p.SetBool("shuffle", false) },
			key:      "shuffle",
			expected: "0",
		},
		{
			name:     "set twice keeps the last value",
			fill:     func(p *RequestParams) { p.SetString("v", "5.21"); p.SetString("v", "5.0") },
			key:      "v",
			expected: "5.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := NewRequestParams()
			tt.fill(params)

			assert.True(t, params.Has(tt.key))
			assert.Equal(t, tt.expected, params.Get(tt.key))
			assert.Equal(t, 1, params.Len())
		})
	}
}

// TestRequestParams_SequenceSetters tests the comma-joined sequence setters.
func TestRequestParams_SequenceSetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fill     func(p *RequestParams)
		key      string
		expected string
		absent   bool
	}{
		{
			name:     "strings are comma-joined",
			fill:     func(p *RequestParams) { p.SetStrings("audios", []string{"2_67859194", "1_33", "-5_7"}) },
			key:      "audios",
			expected: "2_67859194,1_33,-5_7",
		},
		{
			name:     "unsigned ids are comma-joined",
			fill:     func(p *RequestParams) { p.SetUints("aids", []uint64{1, 2, 42}) },
			key:      "aids",
			expected: "1,2,42",
		},
		{
			name:     "signed ids keep their sign",
			fill:     func(p *RequestParams) { p.SetInts("target_ids", []int64{7, -100500}) },
			key:      "target_ids",
			expected: "7,-100500",
		},
		{
			name:     "single element has no separator",
			fill:     func(p *RequestParams) { p.SetUints("aids", []uint64{9}) },
			key:      "aids",
			expected: "9",
		},
		{
			name:   "empty string sequence adds no key",
			fill:   func(p *RequestParams) { p.SetStrings("audios", nil) },
			key:    "audios",
			absent: true,
		},
		{
			name:   "empty unsigned sequence adds no key",
			fill:   func(p *RequestParams) { p.SetUints("aids", []uint64{}) },
			key:    "aids",
			absent: true,
		},
		{
			name:   "empty signed sequence adds no key",
			fill:   func(p *RequestParams) { p.SetInts("target_ids", nil) },
			key:    "target_ids",
			absent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := NewRequestParams()
			tt.fill(params)

			if tt.absent {
				assert.False(t, params.Has(tt.key))
				assert.Equal(t, 0, params.Len())

				return
			}

			assert.Equal(t, tt.expected, params.Get(tt.key))
		})
	}
}

// TestRequestParams_Encode tests that encoding is form-encoded with sorted keys.
func TestRequestParams_Encode(t *testing.T) {
	t.Parallel()

	params := NewRequestParams()
	params.SetString("q", "Queen & David Bowie")
	params.SetUint("count", 10)
	params.SetInt("owner_id", -42)

	assert.Equal(t, "count=10&owner_id=-42&q=Queen+%26+David+Bowie", params.Encode())
}

// TestRequestParams_Clone tests that a clone is independent of its source.
func TestRequestParams_Clone(t *testing.T) {
	t.Parallel()

	source := NewRequestParams()
	source.SetString("q", "Beatles")

	copied := source.clone()
	copied.SetString("access_token", "secret")
	copied.SetString("q", "Rolling Stones")

	assert.False(t, source.Has("access_token"))
	assert.Equal(t, "Beatles", source.Get("q"))
	assert.Equal(t, "Rolling Stones", copied.Get("q"))
}

// TestPtr tests the pointer helper for optional fields.
func TestPtr(t *testing.T) {
	t.Parallel()

	sort := Ptr(SearchSortByPopularity)
	assert.Equal(t, SearchSortByPopularity, *sort)

	flag := Ptr(false)
	assert.False(t, *flag)
}
