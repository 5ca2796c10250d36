package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(5)
	assert.True(t, some.IsPresent())
	v, err := some.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	none := None[int]()
	assert.False(t, none.IsPresent())
	_, err = none.Get()
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestOfNullable(t *testing.T) {
	t.Parallel()

	var p *string
	assert.False(t, OfNullable(p).IsPresent())

	s := "x"
	assert.True(t, OfNullable(&s).IsPresent())

	// non-nilable kinds are always present
	assert.True(t, OfNullable(0).IsPresent())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Some(5).OrElse(1))
	assert.Equal(t, 1, None[int]().OrElse(1))
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Some(5).Map(func(v int) int { return v * 2 })
	assert.Equal(t, 10, doubled.OrElse(0))

	assert.False(t, None[int]().Map(func(v int) int { return v * 2 }).IsPresent())

	asString := Map(Some(5), strconv.Itoa)
	assert.Equal(t, "5", asString.OrElse(""))

	assert.False(t, Map(None[int](), strconv.Itoa).IsPresent())
}
