package rop

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is a nil interface or holds a nil pointer, map,
// slice, channel, function or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors appends next to the errors already joined in acc.
func JoinErrors(acc error, next error) error {
	if IsNil(next) {
		return acc
	}
	return errors.Join(append(GetErrors(acc), next)...)
}
