package nalenc

import (
	"fmt"
	"reflect"
)

// keySize is the fixed length, in bytes, of a NALEnc key and of every
// row of the round-key table.
const keySize = 512

// Key is the cipher's 512-byte secret parameter. It is copied into a
// Cipher at construction and never mutated afterwards.
type Key [keySize]byte

// Input is implemented by the wrapper types below. They give callers
// a statically typed alternative to passing a bare string, []byte, or
// []int straight into New and Cipher.Encrypt — both of which accept
// `any` and coerce it the same way. Cipher.Decrypt takes a []byte only
// and does no coercion.
type Input interface{ isInput() }

// TextInput wraps a string encoded as its UTF-8 byte representation.
type TextInput string

// BytesInput wraps an already-flat byte buffer.
type BytesInput []byte

// IntsInput wraps a sequence of integers, each of which must lie in
// 0..255.
type IntsInput []int

func (TextInput) isInput()  {}
func (BytesInput) isInput() {}
func (IntsInput) isInput()  {}

// integer constrains the concrete integer slice element types coerce
// recognizes directly, without falling back to reflection.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// coerce normalizes any accepted input shape — text, a flat byte
// buffer, or an iterable of integers — into a flat byte buffer. It
// rejects values outside 0..255 and non-integer elements with
// ErrInvalidInput.
func coerce(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrInvalidInput)
	case string:
		return []byte(x), nil
	case TextInput:
		return []byte(x), nil
	case []byte:
		return x, nil
	case BytesInput:
		return []byte(x), nil
	case Key:
		return append([]byte(nil), x[:]...), nil
	case []int:
		return coerceInts(x)
	case IntsInput:
		return coerceInts([]int(x))
	case []int8:
		return coerceInts(x)
	case []int16:
		return coerceInts(x)
	case []int32:
		return coerceInts(x)
	case []int64:
		return coerceInts(x)
	case []uint:
		return coerceInts(x)
	case []uint16:
		return coerceInts(x)
	case []uint32:
		return coerceInts(x)
	case []uint64:
		return coerceInts(x)
	default:
		return coerceReflect(v)
	}
}

// coerceKey is coerce plus a key-specific length check: the coerced
// buffer must be exactly 512 bytes.
func coerceKey(v any) (Key, error) {
	b, err := coerce(v)
	if err != nil {
		return Key{}, err
	}
	if len(b) != keySize {
		return Key{}, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(b))
	}
	var k Key
	copy(k[:], b)
	return k, nil
}

func coerceInts[T integer](vals []T) ([]byte, error) {
	out := make([]byte, len(vals))
	for i, v := range vals {
		iv := int64(v)
		if iv < 0 || iv > 255 {
			return nil, fmt.Errorf("%w: value %d at index %d out of byte range", ErrInvalidInput, iv, i)
		}
		out[i] = byte(iv)
	}
	return out, nil
}

// coerceReflect handles integer slice/array kinds not covered by the
// concrete cases in coerce, mirroring the original's willingness to
// accept "any iterable of integers".
func coerceReflect(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
	n := rv.Len()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		elem := rv.Index(i)
		var iv int64
		switch elem.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			iv = elem.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			iv = int64(elem.Uint())
		default:
			return nil, fmt.Errorf("%w: non-integer element at index %d", ErrInvalidInput, i)
		}
		if iv < 0 || iv > 255 {
			return nil, fmt.Errorf("%w: value %d at index %d out of byte range", ErrInvalidInput, iv, i)
		}
		out[i] = byte(iv)
	}
	return out, nil
}
