package uns

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single configuration entry supplied by a caller or returned by
// the control plane.
type Field struct {
	Key   string
	Value interface{}
}

// Config is a connector configuration: field name/value pairs kept in
// insertion order. The control plane treats configuration as a JSON object;
// this type preserves the document order of that object so that rendered
// output stays deterministic across calls.
type Config struct {
	keys   []string
	values map[string]interface{}
}

func NewConfig() *Config {
	return &Config{values: map[string]interface{}{}}
}

// Set assigns a value, appending the key when seen for the first time.
func (c *Config) Set(key string, value interface{}) {
	if c.values == nil {
		c.values = map[string]interface{}{}
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c *Config) Get(key string) (interface{}, bool) {
	value, ok := c.values[key]
	return value, ok
}

func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns field names in insertion order.
func (c *Config) Keys() []string {
	return c.keys
}

func (c *Config) Len() int {
	return len(c.keys)
}

// Clone returns an independent copy preserving field order.
func (c *Config) Clone() *Config {
	ret := NewConfig()
	for _, key := range c.keys {
		ret.Set(key, c.values[key])
	}
	return ret
}

// MarshalJSON emits fields as a JSON object in insertion order.
func (c *Config) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[key])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the document field order.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.keys = nil
	c.values = map[string]interface{}{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", token)
	}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("expected field name, got %v", keyToken)
		}
		var value interface{}
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		c.Set(key, value)
	}
	_, err = decoder.Token()
	return err
}
