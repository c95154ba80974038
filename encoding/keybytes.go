package encoding

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/sharedcode/dstruct"
)

// KeyMarshaler is implemented by key types that provide their own canonical bytes for hashing.
// Equal keys must produce equal bytes.
type KeyMarshaler interface {
	MarshalKey() []byte
}

var (
	keyMarshalerType = reflect.TypeFor[KeyMarshaler]()
	timeType         = reflect.TypeFor[time.Time]()
)

// Supports reports whether values of type t have canonical key bytes: booleans, numbers, strings,
// time.Time, KeyMarshaler implementations, and arrays and structs composed of those.
// Pointers, channels and interfaces are rejected since their identity or dynamic content would
// leak into the hash.
func Supports(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(keyMarshalerType) || t == timeType {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return Supports(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !Supports(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// KeyBytes returns the canonical bytes of key. Strings and byte-like scalars take a fast path,
// other supported types are walked field by field.
func KeyBytes(key any) ([]byte, error) {
	switch k := key.(type) {
	case string:
		return []byte(k), nil
	case int:
		return binary.LittleEndian.AppendUint64(nil, uint64(k)), nil
	case int64:
		return binary.LittleEndian.AppendUint64(nil, uint64(k)), nil
	case uint64:
		return binary.LittleEndian.AppendUint64(nil, k), nil
	case KeyMarshaler:
		return k.MarshalKey(), nil
	}
	v := reflect.ValueOf(key)
	if !v.IsValid() || !Supports(v.Type()) {
		return nil, dstruct.NewError(dstruct.UnhashableKey, dstruct.ErrUnhashableKey, fmt.Sprintf("%T", key))
	}
	w := new(bytes.Buffer)
	encode(w, v)
	return w.Bytes(), nil
}

func encode(w *bytes.Buffer, v reflect.Value) {
	t := v.Type()
	if t.Implements(keyMarshalerType) && v.CanInterface() {
		b := v.Interface().(KeyMarshaler).MarshalKey()
		writeLen(w, len(b))
		w.Write(b)
		return
	}
	if t == timeType && v.CanInterface() {
		tm := v.Interface().(time.Time)
		writeUint(w, uint64(tm.Unix()))
		writeUint(w, uint64(tm.Nanosecond()))
		return
	}

	switch t.Kind() {
	case reflect.Bool:
		var b byte
		if v.Bool() {
			b = 1
		}
		w.WriteByte(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(w, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(w, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(w, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(w, real(c))
		writeFloat(w, imag(c))
	case reflect.String:
		s := v.String()
		writeLen(w, len(s))
		w.WriteString(s)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			encode(w, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			encode(w, v.Field(i))
		}
	}
}

func writeUint(w *bytes.Buffer, u uint64) {
	var dummy8 [8]byte
	binary.LittleEndian.PutUint64(dummy8[:], u)
	w.Write(dummy8[:])
}

func writeLen(w *bytes.Buffer, n int) {
	var dummy4 [4]byte
	binary.LittleEndian.PutUint32(dummy4[:], uint32(n))
	w.Write(dummy4[:])
}

// writeFloat folds -0 into +0 so that keys equal under == encode identically.
func writeFloat(w *bytes.Buffer, f float64) {
	if f == 0 {
		f = 0
	}
	writeUint(w, math.Float64bits(f))
}
