// Package sszcodec decodes SSZ payloads against runtime schemas and renders
// the result as JSON or YAML.
package sszcodec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is one decoded SSZ object: Uint, BigUint, Bool, Bytes, List or
// *Container.
type Value any

// Uint is an unsigned integer together with its wire width. JSON rendering
// needs the width: 64-bit values print as strings so consumers never lose
// precision to float parsing.
type Uint struct {
	Bits  uint8
	Value uint64
}

func (u Uint) MarshalJSON() ([]byte, error) {
	if u.Bits > 32 {
		return json.Marshal(strconv.FormatUint(u.Value, 10))
	}
	return json.Marshal(u.Value)
}

func (u Uint) MarshalYAML() (any, error) {
	return u.Value, nil
}

// BigUint holds a uint256 value.
type BigUint struct {
	Int *big.Int
}

func (b BigUint) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Int.String())
}

func (b BigUint) MarshalYAML() (any, error) {
	return b.Int.String(), nil
}

// Bytes renders as 0x-prefixed hex in both formats.
type Bytes []byte

func (b Bytes) hex() string { return "0x" + hex.EncodeToString(b) }

func (b Bytes) MarshalJSON() ([]byte, error) { return json.Marshal(b.hex()) }
func (b Bytes) MarshalYAML() (any, error)    { return b.hex(), nil }

// List is an ordered sequence of decoded elements.
type List []Value

// Container preserves schema field order, which maps lose.
type Container struct {
	fields []namedValue
}

type namedValue struct {
	name  string
	value Value
}

func newContainer(size int) *Container {
	return &Container{fields: make([]namedValue, size)}
}

func (c *Container) setIndex(i int, name string, v Value) {
	c.fields[i] = namedValue{name: name, value: v}
}

// Append adds a field at the end, for tests and synthetic construction.
func (c *Container) Append(name string, v Value) {
	c.fields = append(c.fields, namedValue{name: name, value: v})
}

// Get returns the named field's value.
func (c *Container) Get(name string) (Value, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// Len reports the number of fields.
func (c *Container) Len() int { return len(c.fields) }

func (c *Container) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Container) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range c.fields {
		var key, val yaml.Node
		key.SetString(f.name)
		if err := val.Encode(f.value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
