package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	t.Run("AsBool", func(t *testing.T) {
		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)

		_, ok = Int(1).AsBool()
		assert.False(t, ok)
	})

	t.Run("AsInt64", func(t *testing.T) {
		i, ok := Int(42).AsInt64()
		assert.True(t, ok)
		assert.Equal(t, int64(42), i)

		_, ok = Float(42).AsInt64()
		assert.False(t, ok)
	})

	t.Run("AsFloat64", func(t *testing.T) {
		f, ok := Float(2.5).AsFloat64()
		assert.True(t, ok)
		assert.Equal(t, 2.5, f)

		_, ok = String("2.5").AsFloat64()
		assert.False(t, ok)
	})

	t.Run("AsString", func(t *testing.T) {
		s, ok := String("monday").AsString()
		assert.True(t, ok)
		assert.Equal(t, "monday", s)

		_, ok = Bool(false).AsString()
		assert.False(t, ok)
	})

	t.Run("AsTime", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		tv, ok := Time(now).AsTime()
		assert.True(t, ok)
		assert.True(t, tv.Equal(now))

		_, ok = Int(0).AsTime()
		assert.False(t, ok)
	})

	t.Run("Zero", func(t *testing.T) {
		var v Value
		assert.True(t, v.IsZero())
		assert.Equal(t, KindInvalid, v.Kind())
		assert.False(t, Int(0).IsZero())
	})
}

func TestEqual(t *testing.T) {
	t.Run("same kind", func(t *testing.T) {
		assert.True(t, Int(5).Equal(Int(5)))
		assert.False(t, Int(5).Equal(Int(6)))
		assert.True(t, String("a").Equal(String("a")))
		assert.True(t, Bool(true).Equal(Bool(true)))
		assert.True(t, Float(math.NaN()).Equal(Float(math.NaN())))
	})

	t.Run("kinds never cross", func(t *testing.T) {
		assert.False(t, Int(5).Equal(Float(5)))
		assert.False(t, Int(5).Equal(String("5")))
		assert.False(t, Bool(true).Equal(Int(1)))
	})

	t.Run("time by instant", func(t *testing.T) {
		utc := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		rome := utc.In(time.FixedZone("CEST", 2*3600))
		assert.True(t, Time(utc).Equal(Time(rome)))
	})
}

func TestKey(t *testing.T) {
	keys := map[string]struct{}{}
	for _, v := range []Value{
		Bool(true), Bool(false), Int(1), Int(-1), Float(1), String("1"), String(""),
		Time(time.Unix(0, 1)),
	} {
		keys[v.Key()] = struct{}{}
	}
	assert.Len(t, keys, 8, "keys of distinct values must not collide")
}

func TestString(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "-7", Int(-7).String())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "monday", String("monday").String())
	assert.Equal(t, "2024-06-01T12:00:00Z", Time(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "", Value{}.String())
}
