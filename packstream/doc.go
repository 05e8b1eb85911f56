// Package packstream implements PackStream, the compact self-describing
// binary serialization format used by graph-database wire protocols.
//
// PackStream is a tag-length-value encoding:
//   - Every value starts with a marker byte identifying its type.
//   - Small sizes and small integers live inside the marker itself.
//   - Larger sizes follow the marker as a 1, 2 or 4 byte big-endian field.
//   - Bodies follow the size: raw bytes for strings and byte arrays,
//     recursively encoded elements for lists and dictionaries.
//
// # Data Model
//
// Scalars: null, boolean, integer (64-bit), float (64-bit), string, bytes
// Containers: list, dictionary (string-keyed)
// Special: structure (tagged record with up to 15 fields)
//
// # Encoding Strategy
//
// Encoding always picks the smallest representation that losslessly holds
// the value: the integer 1 is a single byte 0x01, not a nine byte Int64.
// Decoding accepts any valid representation, so decode(encode(v)) == v
// always holds but encode(decode(bytes)) may shrink the input. Encoding is
// deterministic: equal values produce equal bytes.
//
// # Typed and Dynamic APIs
//
// Base types encode and decode through free functions (EncodeInt,
// DecodeString, ...) with generic combinators for slices, maps and
// optionals. The Value type is the dynamically typed union covering every
// decodable value; DecodeValue infers the shape from the marker alone.
//
// # Structures
//
// Fixed-shape records implement Struct and travel through EncodeStruct and
// DecodeStruct, which enforce the declared tag byte and field count. Open
// sets of record types implement StructSum, the tag-keyed dispatch seam
// that Value is parameterized over: Value[NoStruct] rejects all structures,
// Value[GenericStruct] accepts any structure losslessly, and user catalogs
// plug in their own sums without touching the codec.
package packstream
