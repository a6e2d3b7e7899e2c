package rop

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash"
	"github.com/google/uuid"
)

// fingerprintSpace is the namespace of every Key.
var fingerprintSpace = uuid.MustParse("5d1c7a4e-2b8f-4c3e-9a61-0f4b7d2e8c15")

// Fingerprint renders a tagged payload canonically. Values that compare
// equal with == render identically, with the exception of floats where
// 0 and -0 differ and NaN never equals itself. Pointers and channels
// render as their address, so the pointee may change without changing
// the fingerprint.
func Fingerprint(tag string, payload ...any) []byte {
	b := make([]byte, 0, 32)
	b = append(b, tag...)
	for _, p := range payload {
		if isIdentity(p) {
			b = fmt.Appendf(b, "|%T:%p", p, p)
			continue
		}
		b = fmt.Appendf(b, "|%T:%#v", p, p)
	}
	return b
}

func isIdentity(p any) bool {
	if p == nil {
		return false
	}
	switch reflect.ValueOf(p).Kind() {
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func Hash64(tag string, payload ...any) uint64 {
	return xxhash.Sum64(Fingerprint(tag, payload...))
}

// Key derives a name based (v5) UUID from the fingerprint, stable across
// processes.
func Key(tag string, payload ...any) uuid.UUID {
	return uuid.NewSHA1(fingerprintSpace, Fingerprint(tag, payload...))
}
