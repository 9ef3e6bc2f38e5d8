/*
Package settings implements a keyed settings container backed by a
grouped key-value store.

A Container holds the key/value pairs of one named group. Keys may be
integers, covering enumerations with an integral underlying type, or
strings; the key kind is chosen at construction through a KeyCodec.
Values round-trip through the store as text. Unknown values read from
the store are retained verbatim; the typed getters coerce on access
and return the caller's default when a key is absent or its value does
not parse.
*/
package settings

import (
	"fmt"
	"strconv"
)

// Store is a persisted key-value store organized into named groups.
type Store interface {
	// ReadGroup returns every key/value pair stored under group.
	ReadGroup(group string) (map[string]string, error)
	// WriteGroup stores the given key/value pairs under group,
	// replacing any previous values for the same keys.
	WriteGroup(group string, values map[string]string) error
}

// KeyCodec converts between a container's key type and the textual
// keys of a Store.
type KeyCodec[K comparable] interface {
	DecodeKey(s string) (K, error)
	EncodeKey(key K) string
}

// IntKeys is the KeyCodec for integer-keyed containers.
type IntKeys struct{}

func (IntKeys) DecodeKey(s string) (int, error) {
	return strconv.Atoi(s)
}

func (IntKeys) EncodeKey(key int) string {
	return strconv.Itoa(key)
}

// StringKeys is the KeyCodec for string-keyed containers.
type StringKeys struct{}

func (StringKeys) DecodeKey(s string) (string, error) {
	return s, nil
}

func (StringKeys) EncodeKey(key string) string {
	return key
}

// Container holds the settings of one group.
type Container[K comparable] struct {
	group string
	codec KeyCodec[K]
	data  map[K]string
}

// NewContainer returns an empty container for the named group.
func NewContainer[K comparable](group string, codec KeyCodec[K]) *Container[K] {
	return &Container[K]{
		group: group,
		codec: codec,
		data:  make(map[K]string),
	}
}

// Group returns the group name the container reads from and writes to.
func (c *Container[K]) Group() string {
	return c.group
}

// Len returns the number of keys held.
func (c *Container[K]) Len() int {
	return len(c.data)
}

// Contains reports whether a value is held for key.
func (c *Container[K]) Contains(key K) bool {
	_, ok := c.data[key]
	return ok
}

// Read populates the container with every key found under its group.
// Previously held values for the same keys are replaced.
func (c *Container[K]) Read(s Store) error {
	values, err := s.ReadGroup(c.group)
	if err != nil {
		return err
	}

	for k, v := range values {
		key, err := c.codec.DecodeKey(k)
		if err != nil {
			return fmt.Errorf("settings: bad key %q in group %q: %w", k, c.group, err)
		}
		c.data[key] = v
	}

	return nil
}

// Write emits exactly the currently held key/value pairs to the
// container's group.
func (c *Container[K]) Write(s Store) error {
	values := make(map[string]string, len(c.data))
	for k, v := range c.data {
		values[c.codec.EncodeKey(k)] = v
	}
	return s.WriteGroup(c.group, values)
}

// Set stores a value for key. Supported value types are string, bool,
// the built-in integer types and float64; anything else is stored via
// its default formatting.
func (c *Container[K]) Set(key K, value any) {
	c.data[key] = formatValue(value)
}

// Delete removes the value held for key, if any.
func (c *Container[K]) Delete(key K) {
	delete(c.data, key)
}

// String returns the value held for key, or def when absent.
func (c *Container[K]) String(key K, def string) string {
	v, ok := c.data[key]
	if !ok {
		return def
	}
	return v
}

// Int returns the value held for key coerced to an int, or def when
// absent or unparsable.
func (c *Container[K]) Int(key K, def int) int {
	v, ok := c.data[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Bool returns the value held for key coerced to a bool, or def when
// absent or unparsable.
func (c *Container[K]) Bool(key K, def bool) bool {
	v, ok := c.data[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Float returns the value held for key coerced to a float64, or def
// when absent or unparsable.
func (c *Container[K]) Float(key K, def float64) float64 {
	v, ok := c.data[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
