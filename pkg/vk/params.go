package vk

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/y0ung3r/vk/internal/utils"
)

// RequestParams is the parameter set of one outgoing API call.
// Keys are added only when their value is present, so an unset optional
// never reaches the wire, and encoding orders keys deterministically.
type RequestParams struct {
	// values holds the accumulated key-value pairs.
	values url.Values
}

// NewRequestParams creates and returns a new empty parameter set.
func NewRequestParams() *RequestParams {
	return &RequestParams{values: url.Values{}}
}

// SetString adds a string-valued parameter.
func (p *RequestParams) SetString(key, value string) {
	p.values.Set(key, value)
}

// SetInt adds a signed integer parameter.
func (p *RequestParams) SetInt(key string, value int64) {
	p.values.Set(key, strconv.FormatInt(value, 10))
}

// SetUint adds an unsigned integer parameter.
func (p *RequestParams) SetUint(key string, value uint64) {
	p.values.Set(key, strconv.FormatUint(value, 10))
}

// SetBool adds a boolean parameter encoded as "1" or "0", the way the API expects flags.
func (p *RequestParams) SetBool(key string, value bool) {
	if value {
		p.values.Set(key, "1")
	} else {
		p.values.Set(key, "0")
	}
}

// SetStrings adds a sequence parameter as a comma-joined list.
// An empty sequence adds no key.
func (p *RequestParams) SetStrings(key string, values []string) {
	if len(values) == 0 {
		return
	}

	p.values.Set(key, strings.Join(values, ","))
}

// SetUints adds a sequence of unsigned ids as a comma-joined list.
// An empty sequence adds no key.
func (p *RequestParams) SetUints(key string, values []uint64) {
	if len(values) == 0 {
		return
	}

	ids := utils.Map(values, func(v uint64) string { return strconv.FormatUint(v, 10) })

	p.values.Set(key, strings.Join(ids, ","))
}

// SetInts adds a sequence of signed ids as a comma-joined list.
// An empty sequence adds no key.
func (p *RequestParams) SetInts(key string, values []int64) {
	if len(values) == 0 {
		return
	}

	ids := utils.Map(values, func(v int64) string { return strconv.FormatInt(v, 10) })

	p.values.Set(key, strings.Join(ids, ","))
}

// Has reports whether the parameter set already carries the key.
func (p *RequestParams) Has(key string) bool {
	return p.values.Has(key)
}

// Get returns the value stored under the key, or an empty string when absent.
func (p *RequestParams) Get(key string) string {
	return p.values.Get(key)
}

// Len returns the number of keys in the parameter set.
func (p *RequestParams) Len() int {
	return len(p.values)
}

// Encode renders the parameter set in form-encoded wire format with keys in sorted order.
func (p *RequestParams) Encode() string {
	return p.values.Encode()
}

// clone returns an independent copy of the parameter set.
func (p *RequestParams) clone() *RequestParams {
	copied := url.Values{}
	for key, values := range p.values {
		copied[key] = append([]string(nil), values...)
	}

	return &RequestParams{values: copied}
}

// Ptr returns a pointer to the given value.
// It keeps literals usable for the pointer-typed optional fields of option structs.
func Ptr[T any](v T) *T {
	return &v
}
