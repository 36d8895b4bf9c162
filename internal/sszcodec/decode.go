package sszcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	ssz "github.com/ferranbt/fastssz"

	"alma.local/sszdump/schemas"
)

// ErrDecode wraps every malformed-payload failure, so callers can classify
// "bytes do not fit the resolved schema" without inspecting messages.
var ErrDecode = errors.New("sszcodec: malformed ssz")

// Decode interprets buf as one SSZ object of schema s.
func Decode(buf []byte, s *schemas.Schema) (Value, error) {
	if size, ok := schemas.FixedSize(s); ok && uint64(len(buf)) != size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrDecode, describe(s), size, len(buf))
	}
	return decodeValue(buf, s)
}

func decodeValue(buf []byte, s *schemas.Schema) (Value, error) {
	switch s.Kind {
	case schemas.KindUint8:
		return Uint{Bits: 8, Value: uint64(buf[0])}, nil
	case schemas.KindUint16:
		return Uint{Bits: 16, Value: uint64(binary.LittleEndian.Uint16(buf))}, nil
	case schemas.KindUint32:
		return Uint{Bits: 32, Value: uint64(binary.LittleEndian.Uint32(buf))}, nil
	case schemas.KindUint64:
		return Uint{Bits: 64, Value: binary.LittleEndian.Uint64(buf)}, nil
	case schemas.KindUint256:
		le := make([]byte, len(buf))
		for i, b := range buf {
			le[len(buf)-1-i] = b
		}
		return BigUint{Int: new(big.Int).SetBytes(le)}, nil
	case schemas.KindBool:
		switch buf[0] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return nil, fmt.Errorf("%w: boolean byte 0x%02x", ErrDecode, buf[0])
		}
	case schemas.KindByteVector:
		return Bytes(append([]byte(nil), buf...)), nil
	case schemas.KindBitvector:
		return decodeBitvector(buf, s.Length)
	case schemas.KindBitlist:
		if err := ssz.ValidateBitlist(buf, s.Limit); err != nil {
			return nil, fmt.Errorf("%w: bitlist: %v", ErrDecode, err)
		}
		return Bytes(append([]byte(nil), buf...)), nil
	case schemas.KindByteList:
		if uint64(len(buf)) > s.Limit {
			return nil, fmt.Errorf("%w: byte list of %d exceeds limit %d", ErrDecode, len(buf), s.Limit)
		}
		return Bytes(append([]byte(nil), buf...)), nil
	case schemas.KindVector:
		return decodeVector(buf, s)
	case schemas.KindList:
		return decodeList(buf, s)
	case schemas.KindContainer:
		return decodeContainer(buf, s)
	default:
		return nil, fmt.Errorf("%w: unsupported schema kind %d", ErrDecode, s.Kind)
	}
}

func decodeBitvector(buf []byte, bits uint64) (Value, error) {
	if rem := bits % 8; rem != 0 {
		if pad := buf[len(buf)-1] &^ (1<<rem - 1); pad != 0 {
			return nil, fmt.Errorf("%w: bitvector[%d] has dirty padding 0x%02x", ErrDecode, bits, pad)
		}
	}
	return Bytes(append([]byte(nil), buf...)), nil
}

func decodeVector(buf []byte, s *schemas.Schema) (Value, error) {
	if elemSize, ok := schemas.FixedSize(s.Elem); ok {
		out := make(List, 0, s.Length)
		for i := uint64(0); i < s.Length; i++ {
			v, err := decodeValue(buf[i*elemSize:(i+1)*elemSize], s.Elem)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", describe(s), i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	out, count, err := decodeOffsetElements(buf, s.Elem, int(s.Length))
	if err != nil {
		return nil, err
	}
	if uint64(count) != s.Length {
		return nil, fmt.Errorf("%w: vector of %d elements, want %d", ErrDecode, count, s.Length)
	}
	return out, nil
}

func decodeList(buf []byte, s *schemas.Schema) (Value, error) {
	if len(buf) == 0 {
		return List{}, nil
	}
	if elemSize, ok := schemas.FixedSize(s.Elem); ok {
		if uint64(len(buf))%elemSize != 0 {
			return nil, fmt.Errorf("%w: list payload of %d bytes is not a multiple of element size %d", ErrDecode, len(buf), elemSize)
		}
		count := uint64(len(buf)) / elemSize
		if count > s.Limit {
			return nil, fmt.Errorf("%w: list of %d elements exceeds limit %d", ErrDecode, count, s.Limit)
		}
		out := make(List, 0, count)
		for i := uint64(0); i < count; i++ {
			v, err := decodeValue(buf[i*elemSize:(i+1)*elemSize], s.Elem)
			if err != nil {
				return nil, fmt.Errorf("list[%d]: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	out, _, err := decodeOffsetElements(buf, s.Elem, int(s.Limit))
	return out, err
}

// decodeOffsetElements walks an offset-table region of variable-size
// elements, the layout shared by lists and vectors of such elements.
func decodeOffsetElements(buf []byte, elem *schemas.Schema, maxSize int) (List, int, error) {
	count, err := ssz.DecodeDynamicLength(buf, maxSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: offset table: %v", ErrDecode, err)
	}
	out := make(List, count)
	err = ssz.UnmarshalDynamic(buf, count, func(i int, chunk []byte) error {
		v, err := decodeValue(chunk, elem)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, count, nil
}

func decodeContainer(buf []byte, s *schemas.Schema) (Value, error) {
	var fixedLen uint64
	for _, f := range s.Fields {
		if size, ok := schemas.FixedSize(f.Schema); ok {
			fixedLen += size
		} else {
			fixedLen += 4
		}
	}
	if uint64(len(buf)) < fixedLen {
		return nil, fmt.Errorf("%w: %s fixed part needs %d bytes, got %d", ErrDecode, describe(s), fixedLen, len(buf))
	}

	out := newContainer(len(s.Fields))

	type pending struct {
		idx    int
		offset uint64
	}
	var tails []pending
	cursor := uint64(0)
	for i, f := range s.Fields {
		if size, ok := schemas.FixedSize(f.Schema); ok {
			v, err := decodeValue(buf[cursor:cursor+size], f.Schema)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", describe(s), f.Name, err)
			}
			out.setIndex(i, f.Name, v)
			cursor += size
			continue
		}
		offset := ssz.ReadOffset(buf[cursor : cursor+4])
		if offset > uint64(len(buf)) {
			return nil, fmt.Errorf("%w: %s.%s offset %d past end %d", ErrDecode, describe(s), f.Name, offset, len(buf))
		}
		if len(tails) == 0 && offset != fixedLen {
			return nil, fmt.Errorf("%w: %s first offset %d, want fixed length %d", ErrDecode, describe(s), offset, fixedLen)
		}
		if n := len(tails); n > 0 && offset < tails[n-1].offset {
			return nil, fmt.Errorf("%w: %s.%s offset %d decreases", ErrDecode, describe(s), f.Name, offset)
		}
		tails = append(tails, pending{idx: i, offset: offset})
		cursor += 4
	}

	for i, t := range tails {
		end := uint64(len(buf))
		if i+1 < len(tails) {
			end = tails[i+1].offset
		}
		f := s.Fields[t.idx]
		v, err := decodeValue(buf[t.offset:end], f.Schema)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", describe(s), f.Name, err)
		}
		out.setIndex(t.idx, f.Name, v)
	}

	// A container with no variable fields was already length-checked by the
	// caller through FixedSize.
	return out, nil
}

func describe(s *schemas.Schema) string {
	if s.Kind == schemas.KindContainer && s.Name != "" {
		return s.Name
	}
	return "value"
}
