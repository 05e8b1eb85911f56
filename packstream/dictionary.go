package packstream

// Dictionary is a string-keyed map of values with typed property helpers.
// It is plain map underneath and interchangeable with the map form the
// codec functions produce and consume.
type Dictionary[S StructSum[S]] map[string]Value[S]

// SetProperty stores a value under key.
func (d Dictionary[S]) SetProperty(key string, v Value[S]) {
	d[key] = v
}

// Property returns the value stored under key.
func (d Dictionary[S]) Property(key string) (Value[S], bool) {
	v, ok := d[key]
	return v, ok
}

// HasProperty reports whether key is present.
func (d Dictionary[S]) HasProperty(key string) bool {
	_, ok := d[key]
	return ok
}

// IntProperty extracts an integer property.
func (d Dictionary[S]) IntProperty(key string) (int64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// FloatProperty extracts a float property.
func (d Dictionary[S]) FloatProperty(key string) (float64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// StringProperty extracts a string property.
func (d Dictionary[S]) StringProperty(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// BoolProperty extracts a boolean property.
func (d Dictionary[S]) BoolProperty(key string) (bool, bool) {
	v, ok := d[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}
