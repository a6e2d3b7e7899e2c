package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/rop"
)

type payload struct {
	name string
}

func TestPresent_Discriminant(t *testing.T) {
	t.Parallel()

	o := Present(5)
	assert.True(t, o.IsPresent())
	assert.False(t, o.IsAbsent())
}

func TestAbsent_Discriminant(t *testing.T) {
	t.Parallel()

	o := Absent[int]()
	assert.False(t, o.IsPresent())
	assert.True(t, o.IsAbsent())
}

func TestZeroValue_IsAbsent(t *testing.T) {
	t.Parallel()

	var o Optional[string]
	assert.True(t, o.IsAbsent())
	assert.Equal(t, Absent[string](), o)
}

func TestPresent_HoldsZeroValue(t *testing.T) {
	t.Parallel()

	o := Present(0)
	assert.True(t, o.IsPresent())
	assert.NotEqual(t, Absent[int](), o)
}

func TestIsPresentAnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		o        Optional[int]
		pred     bool
		expected bool
	}{
		{"present true", Present(1), true, true},
		{"present false", Present(1), false, false},
		{"absent true", Absent[int](), true, false},
		{"absent false", Absent[int](), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.o.IsPresentAnd(func(int) bool { return tt.pred }))
		})
	}
}

func TestIsPresentAnd_ReceivesPayload(t *testing.T) {
	t.Parallel()

	assert.True(t, Present(4).IsPresentAnd(func(v int) bool { return v%2 == 0 }))
	assert.False(t, Present(3).IsPresentAnd(func(v int) bool { return v%2 == 0 }))
}

func TestIsAbsentOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		o        Optional[int]
		pred     bool
		expected bool
	}{
		{"present true", Present(1), true, true},
		{"present false", Present(1), false, false},
		{"absent true", Absent[int](), true, true},
		{"absent false", Absent[int](), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.o.IsAbsentOr(func(int) bool { return tt.pred }))
		})
	}
}

func TestIsAbsentOr_PredicateNotCalledWhenAbsent(t *testing.T) {
	t.Parallel()

	called := false
	assert.True(t, Absent[int]().IsAbsentOr(func(int) bool {
		called = true
		return false
	}))
	assert.False(t, called)
}

func TestInspect_Present(t *testing.T) {
	t.Parallel()

	expected := &payload{name: "x"}
	var actual *payload
	Present(expected).Inspect(func(v *payload) { actual = v })
	assert.Same(t, expected, actual)
}

func TestInspect_Absent(t *testing.T) {
	t.Parallel()

	var actual *payload
	Absent[*payload]().Inspect(func(v *payload) { actual = v })
	assert.Nil(t, actual)
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, ok := Present("a").Get()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = Absent[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestExpect_Present(t *testing.T) {
	t.Parallel()

	called := false
	v, err := Present(7).Expect(func() error {
		called = true
		return errors.New("should not be built")
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.False(t, called, "error factory must not run on the present path")
}

func TestExpect_Absent(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("missing config")
	v, err := Absent[int]().Expect(func() error { return errMissing })
	require.Error(t, err)
	assert.Equal(t, 0, v)
	assert.ErrorIs(t, err, errMissing)
	assert.ErrorIs(t, err, rop.ErrUnwrap)
	assert.EqualError(t, err, "missing config")

	var unwrapErr *rop.UnwrapError
	require.ErrorAs(t, err, &unwrapErr)
	assert.Same(t, errMissing, unwrapErr.Cause)
}

func TestExpect_AbsentNilFactory(t *testing.T) {
	t.Parallel()

	_, err := Absent[int]().Expect(nil)
	assert.ErrorIs(t, err, rop.ErrUnwrap)
	assert.EqualError(t, err, UnwrapMessage)
}

func TestExpect_AbsentFactoryReturnsNil(t *testing.T) {
	t.Parallel()

	_, err := Absent[int]().Expect(func() error { return nil })
	assert.ErrorIs(t, err, rop.ErrUnwrap)
	assert.EqualError(t, err, UnwrapMessage)
}

func TestExpectMessage(t *testing.T) {
	t.Parallel()

	v, err := Present("ok").ExpectMessage("shouldn't fail")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = Absent[string]().ExpectMessage("should fail")
	assert.ErrorIs(t, err, rop.ErrUnwrap)
	assert.EqualError(t, err, "should fail")
}

func TestUnwrap_Present(t *testing.T) {
	t.Parallel()

	expected := &payload{name: "p"}
	actual, err := Present(expected).Unwrap()
	require.NoError(t, err)
	assert.Same(t, expected, actual)
}

func TestUnwrap_Absent(t *testing.T) {
	t.Parallel()

	_, err := Absent[*payload]().Unwrap()
	assert.ErrorIs(t, err, rop.ErrUnwrap)
	assert.EqualError(t, err, "attempted to unwrap an option but it is none")
	assert.True(t, rop.IsUnwrapError(err))
}

func TestMustUnwrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Present(3).MustUnwrap())
	assert.PanicsWithError(t, UnwrapMessage, func() {
		Absent[int]().MustUnwrap()
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Present(1).UnwrapOr(2))
	assert.Equal(t, 2, Absent[int]().UnwrapOr(2))
}

func TestUnwrapOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", Present("v").UnwrapOrDefault())
	assert.Equal(t, "", Absent[string]().UnwrapOrDefault())
	assert.Nil(t, Absent[*payload]().UnwrapOrDefault())
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func() int {
		calls++
		return 9
	}

	assert.Equal(t, 1, Present(1).UnwrapOrElse(fallback))
	assert.Equal(t, 0, calls)

	assert.Equal(t, 9, Absent[int]().UnwrapOrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present("5"), Map(Present(5), func(v int) string { return "5" }))

	called := false
	res := Map(Absent[int](), func(v int) string {
		called = true
		return "x"
	})
	assert.Equal(t, Absent[string](), res)
	assert.False(t, called)
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v*3 + 1 }
	for _, v := range []int{-2, 0, 1, 10} {
		assert.Equal(t, f(v), Map(Present(v), f).MustUnwrap())
	}
	assert.True(t, Map(Absent[int](), f).IsAbsent())
}

// MapOr wraps both branches in a present Optional.
func TestMapOr_AlwaysPresent(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	assert.Equal(t, Present(8), MapOr(Present(4), double, -1))
	assert.Equal(t, Present(-1), MapOr(Absent[int](), double, -1))
	assert.True(t, MapOr(Absent[int](), double, -1).IsPresent())
}

func TestMapOrElse_AlwaysPresent(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func() string {
		calls++
		return "none"
	}
	toStr := func(v int) string { return "some" }

	assert.Equal(t, Present("some"), MapOrElse(Present(1), toStr, fallback))
	assert.Equal(t, 0, calls)

	assert.Equal(t, Present("none"), MapOrElse(Absent[int](), toStr, fallback))
	assert.Equal(t, 1, calls)
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	half := func(v int) Optional[int] {
		if v%2 != 0 {
			return Absent[int]()
		}
		return Present(v / 2)
	}

	assert.Equal(t, Present(4), AndThen(Present(8), half))
	assert.Equal(t, Absent[int](), AndThen(Present(3), half))
	assert.Equal(t, Absent[int](), AndThen(Absent[int](), half))
}

func TestAnd(t *testing.T) {
	t.Parallel()

	a, b := Present(1), Present(2)
	none := Absent[int]()

	tests := []struct {
		name     string
		first    Optional[int]
		second   Optional[int]
		expected Optional[int]
	}{
		{"present/present", a, b, b},
		{"present/absent", a, none, none},
		{"absent/present", none, b, none},
		{"absent/absent", none, none, none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.first.And(tt.second))
		})
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	a, b := Present(1), Present(2)
	none := Absent[int]()

	tests := []struct {
		name     string
		first    Optional[int]
		second   Optional[int]
		expected Optional[int]
	}{
		{"present/present", a, b, a},
		{"present/absent", a, none, a},
		{"absent/present", none, b, b},
		{"absent/absent", none, none, none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.first.Or(tt.second))
		})
	}
}

func TestXor(t *testing.T) {
	t.Parallel()

	a, b := Present(1), Present(2)
	none := Absent[int]()

	tests := []struct {
		name     string
		first    Optional[int]
		second   Optional[int]
		expected Optional[int]
	}{
		{"present/present", a, b, none},
		{"present/absent", a, none, a},
		{"absent/present", none, b, b},
		{"absent/absent", none, none, none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.first.Xor(tt.second))
		})
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	called := false
	other := func() Optional[int] {
		called = true
		return Present(2)
	}

	assert.Equal(t, Present(1), Present(1).OrElse(other))
	assert.False(t, called)
	assert.Equal(t, Present(2), Absent[int]().OrElse(other))
	assert.True(t, called)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }
	assert.Equal(t, Present(3), Present(3).Filter(positive))
	assert.Equal(t, Absent[int](), Present(-3).Filter(positive))
	assert.Equal(t, Absent[int](), Absent[int]().Filter(positive))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(Present(1), Present(1)))
	assert.False(t, Equal(Present(1), Present(2)))
	assert.False(t, Equal(Present(1), Absent[int]()))
	assert.True(t, Equal(Absent[int](), Absent[int]()))
	assert.True(t, Present("a") == Present("a"))
}

func TestEqualFunc_NonComparable(t *testing.T) {
	t.Parallel()

	eq := func(x, y []int) bool { return len(x) == len(y) }
	assert.True(t, EqualFunc(Present([]int{1}), Present([]int{2}), eq))
	assert.False(t, EqualFunc(Present([]int{1}), Absent[[]int](), eq))
	assert.True(t, EqualFunc(Absent[[]int](), Absent[[]int](), eq))
}

func TestOptional_AsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[Optional[int]]int{}
	seen[Present(1)]++
	seen[Present(1)]++
	seen[Absent[int]()]++
	seen[Absent[int]()]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Present(1)])
	assert.Equal(t, 2, seen[Absent[int]()])
}

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(1).Hash(), Present(1).Hash())
	assert.Equal(t, Absent[int]().Hash(), Absent[int]().Hash())
	assert.NotEqual(t, Present(1).Hash(), Present(2).Hash())
	assert.NotEqual(t, Present(0).Hash(), Absent[int]().Hash())
	assert.Equal(t, Present(payload{name: "a"}).Hash(), Present(payload{name: "a"}).Hash())
}

// Pointer payloads compare by address, so mutating the pointee keeps the
// hash and key stable.
func TestHash_PointerPayloadIsIdentity(t *testing.T) {
	t.Parallel()

	p := &payload{name: "a"}
	o := Present(p)
	h, k := o.Hash(), o.Key()

	p.name = "b"
	assert.True(t, o == Present(p))
	assert.Equal(t, h, o.Hash())
	assert.Equal(t, k, o.Key())

	q := &payload{name: "b"}
	assert.False(t, o == Present(q))
	assert.NotEqual(t, h, Present(q).Hash())
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present("k").Key(), Present("k").Key())
	assert.NotEqual(t, Present("k").Key(), Present("j").Key())
	assert.NotEqual(t, Present("k").Key(), Absent[string]().Key())
	assert.Equal(t, 5, int(Present("k").Key().Version()))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Present(3)", Present(3).String())
	assert.Equal(t, "Absent", Absent[int]().String())
}

func TestScenario_MapThenUnwrapOr(t *testing.T) {
	t.Parallel()

	inc := func(x int) int { return x + 1 }
	assert.Equal(t, 6, Map(Present(5), inc).UnwrapOr(0))
	assert.Equal(t, 0, Map(Absent[int](), inc).UnwrapOr(0))
}
