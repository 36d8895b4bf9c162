package sszcodec

import (
	"errors"
	"fmt"

	ssz "github.com/ferranbt/fastssz"

	"alma.local/sszdump/schemas"
)

// ErrEncode reports a Value that does not fit the schema it is encoded under.
var ErrEncode = errors.New("sszcodec: value does not match schema")

// Encode serializes a decoded Value back to canonical SSZ bytes. Decode
// followed by Encode reproduces the input exactly; tests lean on that law.
func Encode(v Value, s *schemas.Schema) ([]byte, error) {
	return encodeValue(nil, v, s)
}

func encodeValue(dst []byte, v Value, s *schemas.Schema) ([]byte, error) {
	switch s.Kind {
	case schemas.KindUint8, schemas.KindUint16, schemas.KindUint32, schemas.KindUint64:
		u, ok := v.(Uint)
		if !ok {
			return nil, typeErr(v, s)
		}
		switch s.Kind {
		case schemas.KindUint8:
			return ssz.MarshalUint8(dst, uint8(u.Value)), nil
		case schemas.KindUint16:
			return ssz.MarshalUint16(dst, uint16(u.Value)), nil
		case schemas.KindUint32:
			return ssz.MarshalUint32(dst, uint32(u.Value)), nil
		default:
			return ssz.MarshalUint64(dst, u.Value), nil
		}
	case schemas.KindUint256:
		b, ok := v.(BigUint)
		if !ok || b.Int == nil || b.Int.Sign() < 0 || b.Int.BitLen() > 256 {
			return nil, typeErr(v, s)
		}
		be := b.Int.Bytes()
		le := make([]byte, 32)
		for i, x := range be {
			le[len(be)-1-i] = x
		}
		return append(dst, le...), nil
	case schemas.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(v, s)
		}
		return ssz.MarshalBool(dst, b), nil
	case schemas.KindByteVector:
		b, ok := v.(Bytes)
		if !ok || uint64(len(b)) != s.Length {
			return nil, typeErr(v, s)
		}
		return append(dst, b...), nil
	case schemas.KindBitvector:
		b, ok := v.(Bytes)
		if !ok || uint64(len(b)) != (s.Length+7)/8 {
			return nil, typeErr(v, s)
		}
		return append(dst, b...), nil
	case schemas.KindByteList, schemas.KindBitlist:
		b, ok := v.(Bytes)
		if !ok {
			return nil, typeErr(v, s)
		}
		return append(dst, b...), nil
	case schemas.KindVector, schemas.KindList:
		return encodeElements(dst, v, s)
	case schemas.KindContainer:
		return encodeContainer(dst, v, s)
	default:
		return nil, fmt.Errorf("%w: schema kind %d", ErrEncode, s.Kind)
	}
}

func encodeElements(dst []byte, v Value, s *schemas.Schema) ([]byte, error) {
	list, ok := v.(List)
	if !ok {
		return nil, typeErr(v, s)
	}
	if s.Kind == schemas.KindVector && uint64(len(list)) != s.Length {
		return nil, fmt.Errorf("%w: vector length %d, want %d", ErrEncode, len(list), s.Length)
	}

	if _, fixed := schemas.FixedSize(s.Elem); fixed {
		var err error
		for _, elem := range list {
			if dst, err = encodeValue(dst, elem, s.Elem); err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	// Variable-size elements: offset table first, payloads after.
	offset := 4 * len(list)
	var body []byte
	for _, elem := range list {
		enc, err := encodeValue(nil, elem, s.Elem)
		if err != nil {
			return nil, err
		}
		dst = ssz.WriteOffset(dst, offset)
		body = append(body, enc...)
		offset += len(enc)
	}
	return append(dst, body...), nil
}

func encodeContainer(dst []byte, v Value, s *schemas.Schema) ([]byte, error) {
	c, ok := v.(*Container)
	if !ok || c.Len() != len(s.Fields) {
		return nil, typeErr(v, s)
	}

	fixedLen := 0
	for _, f := range s.Fields {
		if size, ok := schemas.FixedSize(f.Schema); ok {
			fixedLen += int(size)
		} else {
			fixedLen += 4
		}
	}

	offset := fixedLen
	var body []byte
	for i, f := range s.Fields {
		fv := c.fields[i].value
		if _, fixed := schemas.FixedSize(f.Schema); fixed {
			var err error
			if dst, err = encodeValue(dst, fv, f.Schema); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", describe(s), f.Name, err)
			}
			continue
		}
		enc, err := encodeValue(nil, fv, f.Schema)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", describe(s), f.Name, err)
		}
		dst = ssz.WriteOffset(dst, offset)
		body = append(body, enc...)
		offset += len(enc)
	}
	return append(dst, body...), nil
}

func typeErr(v Value, s *schemas.Schema) error {
	return fmt.Errorf("%w: %T for %s", ErrEncode, v, describe(s))
}
