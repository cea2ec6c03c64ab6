package core

import "unsafe"

// Element is the set of fixed-size value types the containers store.
// Values are copied by assignment; none of them own further memory.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~bool
}

// SizeOf returns the size in bytes of one value of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
