// Package structs provides the standard PackStream structure catalog:
// graph entities (nodes, relationships, paths), temporal instants and
// spatial points, each a fixed-shape record with a well-known tag byte.
//
// Every record implements packstream.Struct and can travel on its own
// through packstream.EncodeStruct and packstream.DecodeStruct. StdStruct
// sums the whole catalog so that packstream.Value[StdStruct] decodes any
// standard structure by tag.
package structs

import (
	"fmt"
	"io"

	"github.com/graphwire/packstream/packstream"
)

// Well-known structure tag bytes.
const (
	TagNode                byte = 0x4E
	TagRelationship        byte = 0x52
	TagUnboundRelationship byte = 0x72
	TagPath                byte = 0x50
	TagDate                byte = 0x44
	TagTime                byte = 0x54
	TagLocalTime           byte = 0x74
	TagDateTime            byte = 0x46
	TagDateTimeZoneID      byte = 0x66
	TagLocalDateTime       byte = 0x64
	TagDuration            byte = 0x45
	TagPoint2D             byte = 0x58
	TagPoint3D             byte = 0x59
)

// Record is one structure from the standard catalog.
type Record interface {
	packstream.Struct
}

// registry maps tag bytes to record constructors. Populated at package
// init; a duplicate tag is a definition error of the catalog itself and
// fails fast rather than surfacing as a decode ambiguity later.
var registry = map[byte]func() Record{}

func register(tag byte, newRecord func() Record) {
	if _, dup := registry[tag]; dup {
		panic(fmt.Sprintf("structs: duplicate structure tag 0x%02X", tag))
	}
	registry[tag] = newRecord
}

func init() {
	register(TagNode, func() Record { return &Node{} })
	register(TagRelationship, func() Record { return &Relationship{} })
	register(TagUnboundRelationship, func() Record { return &UnboundRelationship{} })
	register(TagPath, func() Record { return &Path{} })
	register(TagDate, func() Record { return &Date{} })
	register(TagTime, func() Record { return &Time{} })
	register(TagLocalTime, func() Record { return &LocalTime{} })
	register(TagDateTime, func() Record { return &DateTime{} })
	register(TagDateTimeZoneID, func() Record { return &DateTimeZoneID{} })
	register(TagLocalDateTime, func() Record { return &LocalDateTime{} })
	register(TagDuration, func() Record { return &Duration{} })
	register(TagPoint2D, func() Record { return &Point2D{} })
	register(TagPoint3D, func() Record { return &Point3D{} })
}

// StdStruct is the structure sum over the standard catalog. It satisfies
// packstream.StructSum, making Value[StdStruct] the runtime-typed view
// that accepts every standard structure and nothing else.
type StdStruct struct {
	Record Record
}

// ReadStructBody dispatches the tag byte to the matching record type,
// verifies the declared field count against the record's shape and reads
// the body.
func (StdStruct) ReadStructBody(fields int, tag byte, r io.Reader) (StdStruct, error) {
	newRecord, ok := registry[tag]
	if !ok {
		return StdStruct{}, packstream.UnexpectedTagByteError(tag)
	}
	rec := newRecord()
	if fields != rec.NumFields() {
		return StdStruct{}, &packstream.UnexpectedNumberOfFieldsError{Expected: rec.NumFields(), Got: fields}
	}
	if err := rec.ReadBody(r); err != nil {
		return StdStruct{}, err
	}
	return StdStruct{Record: rec}, nil
}

// WriteStructBody writes the wrapped record's body.
func (s StdStruct) WriteStructBody(w io.Writer) (int, error) {
	return s.Record.WriteBody(w)
}

// FieldsLen returns the wrapped record's field count.
func (s StdStruct) FieldsLen() int { return s.Record.NumFields() }

// TagByte returns the wrapped record's tag.
func (s StdStruct) TagByte() byte { return s.Record.TagByte() }

// Value and Dictionary instantiated over the standard catalog.
type (
	Value      = packstream.Value[StdStruct]
	Dictionary = packstream.Dictionary[StdStruct]
)

// encodeValue adapts Value.Encode to the container codec signature.
func encodeValue(w io.Writer, v Value) (int, error) {
	return v.Encode(w)
}

// decodeValue reads one Value from r.
func decodeValue(r io.Reader) (Value, error) {
	return packstream.DecodeValue[StdStruct](r)
}
