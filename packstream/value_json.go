package packstream

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
)

// JSON bridge for generically decoded values. JSON has no bytes or
// structure cases, so those travel under marker keys:
//
//	bytes     {"$base64": "<payload>"}
//	structure {"$tag": <tag>, "$fields": [...]}
//
// Everything else maps onto its JSON counterpart. Integers that survive a
// float64 round trip exactly come back as integers.

// ToJSON renders a generically decoded value as JSON.
func ToJSON(v Value[GenericStruct]) ([]byte, error) {
	plain, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(plain)
}

func toJSONValue(v Value[GenericStruct]) (any, error) {
	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindBoolean:
		b, _ := v.AsBool()
		return b, nil
	case KindInteger:
		i, _ := v.AsInt()
		return i, nil
	case KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case KindString:
		s, _ := v.AsString()
		return s, nil
	case KindBytes:
		p, _ := v.AsBytes()
		return map[string]any{"$base64": base64.StdEncoding.EncodeToString(p)}, nil
	case KindList:
		xs, _ := v.AsList()
		out := make([]any, 0, len(xs))
		for i, x := range xs {
			e, err := toJSONValue(x)
			if err != nil {
				return nil, fmt.Errorf("list[%d]: %w", i, err)
			}
			out = append(out, e)
		}
		return out, nil
	case KindDictionary:
		entries, _ := v.AsDictionary()
		out := make(map[string]any, len(entries))
		for k, x := range entries {
			e, err := toJSONValue(x)
			if err != nil {
				return nil, fmt.Errorf("dictionary[%q]: %w", k, err)
			}
			out[k] = e
		}
		return out, nil
	case KindStructure:
		s, _ := v.AsStruct()
		fields := make([]any, 0, len(s.Fields))
		for i, f := range s.Fields {
			e, err := toJSONValue(f)
			if err != nil {
				return nil, fmt.Errorf("structure field %d: %w", i, err)
			}
			fields = append(fields, e)
		}
		return map[string]any{"$tag": int(s.Tag), "$fields": fields}, nil
	default:
		return nil, fmt.Errorf("packstream: cannot render %s as JSON", v.Kind())
	}
}

// FromJSON parses JSON into a generically typed value. Numbers without a
// fraction or exponent become integers; everything else follows the
// mapping documented on ToJSON.
func FromJSON(data []byte) (Value[GenericStruct], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Value[GenericStruct]{}, fmt.Errorf("packstream: parse JSON: %w", err)
	}
	return fromJSONValue(v)
}

func fromJSONValue(v any) (Value[GenericStruct], error) {
	switch val := v.(type) {
	case nil:
		return NullValue[GenericStruct](), nil
	case bool:
		return BoolValue[GenericStruct](val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return IntValue[GenericStruct](i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Value[GenericStruct]{}, fmt.Errorf("packstream: number %q: %w", val, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value[GenericStruct]{}, fmt.Errorf("packstream: number %q out of range", val)
		}
		return FloatValue[GenericStruct](f), nil
	case string:
		return StringValue[GenericStruct](val), nil
	case []any:
		out := make([]Value[GenericStruct], 0, len(val))
		for i, elem := range val {
			e, err := fromJSONValue(elem)
			if err != nil {
				return Value[GenericStruct]{}, fmt.Errorf("array[%d]: %w", i, err)
			}
			out = append(out, e)
		}
		return ListValue(out), nil
	case map[string]any:
		if p, ok, err := bytesFromMarkerObject(val); ok || err != nil {
			if err != nil {
				return Value[GenericStruct]{}, err
			}
			return BytesValue[GenericStruct](p), nil
		}
		if s, ok, err := structFromMarkerObject(val); ok || err != nil {
			if err != nil {
				return Value[GenericStruct]{}, err
			}
			return StructValue(s), nil
		}
		out := make(map[string]Value[GenericStruct], len(val))
		for k, elem := range val {
			e, err := fromJSONValue(elem)
			if err != nil {
				return Value[GenericStruct]{}, fmt.Errorf("object[%q]: %w", k, err)
			}
			out[k] = e
		}
		return DictionaryValue(out), nil
	default:
		return Value[GenericStruct]{}, fmt.Errorf("packstream: unsupported JSON value %T", v)
	}
}

func bytesFromMarkerObject(obj map[string]any) ([]byte, bool, error) {
	raw, ok := obj["$base64"]
	if !ok || len(obj) != 1 {
		return nil, false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false, fmt.Errorf("packstream: $base64 marker needs a string payload")
	}
	p, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false, fmt.Errorf("packstream: invalid base64: %w", err)
	}
	return p, true, nil
}

func structFromMarkerObject(obj map[string]any) (GenericStruct, bool, error) {
	rawTag, ok := obj["$tag"]
	if !ok || len(obj) != 2 {
		return GenericStruct{}, false, nil
	}
	rawFields, ok := obj["$fields"]
	if !ok {
		return GenericStruct{}, false, nil
	}
	num, ok := rawTag.(json.Number)
	if !ok {
		return GenericStruct{}, false, fmt.Errorf("packstream: $tag must be a number")
	}
	tag, err := num.Int64()
	if err != nil || tag < 0 || tag > 0xFF {
		return GenericStruct{}, false, fmt.Errorf("packstream: $tag %s out of byte range", num)
	}
	elems, ok := rawFields.([]any)
	if !ok {
		return GenericStruct{}, false, fmt.Errorf("packstream: $fields must be an array")
	}
	fields := make([]Value[GenericStruct], 0, len(elems))
	for i, elem := range elems {
		e, err := fromJSONValue(elem)
		if err != nil {
			return GenericStruct{}, false, fmt.Errorf("$fields[%d]: %w", i, err)
		}
		fields = append(fields, e)
	}
	return GenericStruct{Tag: byte(tag), Fields: fields}, true, nil
}
