// Package schemas holds the runtime SSZ schema catalogs the decoder walks.
// Types are described as schema trees instead of Go structs so the same
// container definition can be instantiated for both corpus presets.
package schemas

// Kind discriminates the schema node variants.
type Kind int

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindUint256
	KindBool
	KindContainer
	KindVector
	KindList
	KindByteVector
	KindByteList
	KindBitvector
	KindBitlist
)

// Field is one named slot of a container, in wire order.
type Field struct {
	Name   string
	Schema *Schema
}

// Schema is a node of an SSZ type tree. Nodes are immutable once built;
// catalogs share subtrees freely.
type Schema struct {
	Kind   Kind
	Name   string  // container type name, informational elsewhere
	Fields []Field // container only
	Elem   *Schema // vector and list element type
	Length uint64  // vector, byte-vector, bitvector: exact size in elements/bits
	Limit  uint64  // list, byte-list, bitlist: capacity in elements/bits
}

func Uint8() *Schema   { return &Schema{Kind: KindUint8} }
func Uint16() *Schema  { return &Schema{Kind: KindUint16} }
func Uint32() *Schema  { return &Schema{Kind: KindUint32} }
func Uint64() *Schema  { return &Schema{Kind: KindUint64} }
func Uint256() *Schema { return &Schema{Kind: KindUint256} }
func Bool() *Schema    { return &Schema{Kind: KindBool} }

// Bytes is ByteVector[n].
func Bytes(n uint64) *Schema { return &Schema{Kind: KindByteVector, Length: n} }

// ByteList is List[byte, limit].
func ByteList(limit uint64) *Schema { return &Schema{Kind: KindByteList, Limit: limit} }

// Bitvector is Bitvector[n].
func Bitvector(n uint64) *Schema { return &Schema{Kind: KindBitvector, Length: n} }

// Bitlist is Bitlist[limit].
func Bitlist(limit uint64) *Schema { return &Schema{Kind: KindBitlist, Limit: limit} }

// Vector is Vector[elem, n].
func Vector(n uint64, elem *Schema) *Schema {
	return &Schema{Kind: KindVector, Length: n, Elem: elem}
}

// List is List[elem, limit].
func List(limit uint64, elem *Schema) *Schema {
	return &Schema{Kind: KindList, Limit: limit, Elem: elem}
}

// Container builds a named container from fields in wire order.
func Container(name string, fields ...Field) *Schema {
	return &Schema{Kind: KindContainer, Name: name, Fields: fields}
}

// F is shorthand for a container field.
func F(name string, s *Schema) Field { return Field{Name: name, Schema: s} }

// FixedSize reports the serialized byte size of s when s is fixed-size.
// Lists, bitlists and anything containing one are variable-size.
func FixedSize(s *Schema) (uint64, bool) {
	switch s.Kind {
	case KindUint8, KindBool:
		return 1, true
	case KindUint16:
		return 2, true
	case KindUint32:
		return 4, true
	case KindUint64:
		return 8, true
	case KindUint256:
		return 32, true
	case KindByteVector:
		return s.Length, true
	case KindBitvector:
		return (s.Length + 7) / 8, true
	case KindVector:
		elem, ok := FixedSize(s.Elem)
		if !ok {
			return 0, false
		}
		return s.Length * elem, true
	case KindContainer:
		var total uint64
		for _, f := range s.Fields {
			size, ok := FixedSize(f.Schema)
			if !ok {
				return 0, false
			}
			total += size
		}
		return total, true
	default:
		return 0, false
	}
}

// replaceField swaps the schema of one named field, preserving order.
// Panics on a missing name: catalog builders are static data and a typo
// there is a programming error, not an input error.
func replaceField(fields []Field, name string, s *Schema) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].Name == name {
			out[i].Schema = s
			return out
		}
	}
	panic("schemas: replaceField: no field " + name)
}

// insertFieldsAfter splices new fields in right after the named one.
func insertFieldsAfter(fields []Field, name string, add ...Field) []Field {
	for i := range fields {
		if fields[i].Name == name {
			out := make([]Field, 0, len(fields)+len(add))
			out = append(out, fields[:i+1]...)
			out = append(out, add...)
			out = append(out, fields[i+1:]...)
			return out
		}
	}
	panic("schemas: insertFieldsAfter: no field " + name)
}

// removeFields drops the named fields, preserving the order of the rest.
func removeFields(fields []Field, names ...string) []Field {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !drop[f.Name] {
			out = append(out, f)
		}
	}
	return out
}
