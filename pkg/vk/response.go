package vk

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response is the opaque decoded reply of one API call: the payload of the
// "response" envelope field, kept raw until an operation projects it into a
// typed result.
type Response struct {
	// raw is the undecoded JSON payload.
	raw json.RawMessage
}

// Static error definitions for better error handling.
var (
	// ErrNotABool indicates that the response payload is not coercible to a boolean.
	ErrNotABool = errors.New("response is not a boolean")
)

// NewResponse wraps a raw JSON payload into a Response.
// It is the entry point for custom Caller implementations and for test stubs.
func NewResponse(raw json.RawMessage) Response {
	return Response{raw: raw}
}

// Raw returns the undecoded JSON payload.
func (r Response) Raw() json.RawMessage {
	return r.raw
}

// Decode unmarshals the payload into v.
func (r Response) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// Int coerces the payload to a signed integer.
func (r Response) Int() (int64, error) {
	var value int64
	if err := json.Unmarshal(r.raw, &value); err != nil {
		return 0, fmt.Errorf("failed to decode integer response: %w", err)
	}

	return value, nil
}

// Uint coerces the payload to an unsigned integer.
func (r Response) Uint() (uint64, error) {
	var value uint64
	if err := json.Unmarshal(r.raw, &value); err != nil {
		return 0, fmt.Errorf("failed to decode unsigned integer response: %w", err)
	}

	return value, nil
}

// Bool coerces the payload to a boolean.
// The API answers mutation methods with 0/1, older revisions with true/false;
// both forms are accepted.
func (r Response) Bool() (bool, error) {
	var flag bool
	if err := json.Unmarshal(r.raw, &flag); err == nil {
		return flag, nil
	}

	var number int64
	if err := json.Unmarshal(r.raw, &number); err == nil {
		return number != 0, nil
	}

	return false, fmt.Errorf("%w: %s", ErrNotABool, string(r.raw))
}

// String coerces the payload to a string.
func (r Response) String() (string, error) {
	var value string
	if err := json.Unmarshal(r.raw, &value); err != nil {
		return "", fmt.Errorf("failed to decode string response: %w", err)
	}

	return value, nil
}

// Array splits an array-shaped payload into its elements, preserving order.
func (r Response) Array() ([]Response, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(r.raw, &elements); err != nil {
		return nil, fmt.Errorf("failed to decode response array: %w", err)
	}

	items := make([]Response, len(elements))
	for i, element := range elements {
		items[i] = Response{raw: element}
	}

	return items, nil
}

// decodeResponseItems splits an array-shaped payload into up to lead metadata
// elements and the typed homogeneous remainder. Replies shorter than lead
// yield fewer metadata elements and an empty remainder, so an empty reply to
// a metadata-carrying method is not an error.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func decodeResponseItems[T any](r Response, lead int) ([]Response, []*T, error) {
	elements, err := r.Array()
	if err != nil {
		return nil, nil, err
	}

	if lead > len(elements) {
		lead = len(elements)
	}

	meta := elements[:lead]

	items := make([]*T, 0, len(elements)-lead)

	for _, element := range elements[lead:] {
		item := new(T)
		if err := element.Decode(item); err != nil {
			return nil, nil, fmt.Errorf("failed to decode response element: %w", err)
		}

		items = append(items, item)
	}

	return meta, items, nil
}
