// FILE: lixenwraith/ini/accessor.go
package ini

// Write stores value under the bare-named group and key using its canonical
// text. A missing record is appended. An existing record is overwritten in place
// only when updateIfPresent is true; otherwise the first written value wins.
func Write[T Value](f *File, group, key string, value T, updateIfPresent bool) {
	WriteWith(f, group, key, value, valueCodec[T]{}, updateIfPresent)
}

// WriteWith is Write for a caller-defined type converted by codec.
func WriteWith[T any](f *File, group, key string, value T, codec Codec[T], updateIfPresent bool) {
	stored, storedKey := f.key(group, key)
	f.put(stored, storedKey, codec.Format(value), updateIfPresent)
}

// put applies the write rule to an already folded group and key.
// New headerless records join the leading headerless run, since the
// encoder can only write them before the first header.
func (f *File) put(group, key, text string, updateIfPresent bool) {
	i := f.store.Index(group, key)
	switch {
	case i == NotFound && group == "":
		f.store.InsertAt(f.store.headerlessEnd(), Record{Key: key, Value: text})
	case i == NotFound:
		f.store.Append(Record{Group: group, Key: key, Value: text})
	case updateIfPresent:
		f.store.SetValue(i, text)
	}
}

// Read returns the value of the key converted to T.
// A missing key is not an error: it yields the zero value of T (' ' for Char).
// Stored text that does not parse as T yields the zero value and an error
// wrapping ErrParse. Read never changes the handle's status.
func Read[T Value](f *File, group, key string) (T, error) {
	return ReadWith(f, group, key, valueCodec[T]{})
}

// ReadInto is Read that assigns the result to dst. On a parse error dst is
// set to the zero value.
func ReadInto[T Value](f *File, group, key string, dst *T) error {
	v, err := Read[T](f, group, key)
	*dst = v
	return err
}

// ReadWith is Read for a caller-defined type converted by codec.
func ReadWith[T any](f *File, group, key string, codec Codec[T]) (T, error) {
	i := f.Find(group, key)
	if i == NotFound {
		return zeroValue[T](), nil
	}
	return codec.Parse(f.store.At(i).Value)
}
