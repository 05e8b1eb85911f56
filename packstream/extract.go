package packstream

// ExtractList extracts every element of a list value through extract,
// typically a method expression such as Value[NoStruct].AsInt. The whole
// extraction fails if the value is not a list or any single element does
// not extract.
func ExtractList[T any, S StructSum[S]](v Value[S], extract func(Value[S]) (T, bool)) ([]T, bool) {
	xs, ok := v.AsList()
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		t, ok := extract(x)
		if !ok {
			return nil, false
		}
		out = append(out, t)
	}
	return out, true
}

// ExtractOption treats null as absence: a null value extracts to (nil,
// true), any other value goes through extract for the present case.
func ExtractOption[T any, S StructSum[S]](v Value[S], extract func(Value[S]) (T, bool)) (*T, bool) {
	if v.IsNull() {
		return nil, true
	}
	t, ok := extract(v)
	if !ok {
		return nil, false
	}
	return &t, true
}
