package option

import (
	"iter"

	"github.com/ib-77/fallible/pkg/rop"
)

// FromNillable returns an absent Optional when v is nil (a nil interface,
// pointer, map, slice, channel or func) and Present(v) otherwise.
func FromNillable[T any](v T) Optional[T] {
	if rop.IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromOk lifts the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

// Presents yields the payloads of the present Optionals of seq in order.
// It is lazy: seq is only advanced as far as the consumer pulls.
func Presents[T any](seq iter.Seq[Optional[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if !o.present {
				continue
			}
			if !yield(o.value) {
				return
			}
		}
	}
}

func PresentValues[T any](opts ...Optional[T]) []T {
	res := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.present {
			res = append(res, o.value)
		}
	}
	return res
}
