package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coercionParser declares one positional per literal shape plus one optional
// of each kind, then parses a fixed invocation. Retrieval is lazy, so every
// subtest can reinterpret the same parsed state as a different type.
func coercionParser(t *testing.T) *Parser {
	t.Helper()
	p := New(quietOptions())
	p.AddPositional("barg")
	p.AddPositional("carg")
	p.AddPositional("uiarg")
	p.AddPositional("siarg")
	p.AddPositional("darg")
	p.AddPositional("sarg")
	p.AddOptional("--flag", Flag)
	p.AddOptional("--other-flag", Flag)
	p.AddOptional("--single", Single)
	p.AddOptional("--default-single", Single)
	p.AddOptional("--append", Append)
	p.AddOptional("--default-append", Append)

	_, err := p.Parse([]string{
		"test-program", "true", "r", "77", "-5", "-9.5", "abc123",
		"--flag", "--single", "27",
		"--append", "-30", "--append", "-31", "--append", "-32",
	})
	require.NoError(t, err)
	return p
}

func TestGetUnknownName(t *testing.T) {
	t.Parallel()

	p := coercionParser(t)
	require.PanicsWithError(t, `argparse: no argument by the name "unknown"`, func() {
		_, _ = Get[string](p, "unknown")
	})
}

func TestGetFlagKind(t *testing.T) {
	t.Parallel()

	p := coercionParser(t)

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		assert.True(t, p.Has("flag"))
		assert.Equal(t, 1, p.Count("flag"))

		v, err := Get[bool](p, "flag")
		require.NoError(t, err)
		assert.True(t, v)

		// An explicit default is redundant for a present flag.
		v, err = GetOr[bool](p, "flag", false)
		require.NoError(t, err)
		assert.True(t, v)

		_, err = GetAt[bool](p, "flag", 1)
		assert.EqualError(t, err, "argparse: index 1 is out of range for 'flag'")
	})
	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		assert.False(t, p.Has("other-flag"))
		assert.Equal(t, 0, p.Count("other-flag"))

		v, err := Get[bool](p, "other-flag")
		require.NoError(t, err)
		assert.False(t, v)

		v, err = GetOr[bool](p, "other-flag", true)
		require.NoError(t, err)
		assert.True(t, v)
	})
}

func TestGetSingleKind(t *testing.T) {
	t.Parallel()

	p := coercionParser(t)

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		assert.True(t, p.Has("single"))
		assert.Equal(t, 1, p.Count("single"))

		v, err := Get[int](p, "single")
		require.NoError(t, err)
		assert.Equal(t, 27, v)

		v, err = GetOr[int](p, "single", 24)
		require.NoError(t, err)
		assert.Equal(t, 27, v)

		_, err = GetAt[int](p, "single", 1)
		assert.EqualError(t, err, "argparse: index 1 is out of range for 'single'")
	})
	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		assert.False(t, p.Has("default-single"))

		v, err := GetOr[int](p, "default-single", 24)
		require.NoError(t, err)
		assert.Equal(t, 24, v)

		_, err = Get[int](p, "default-single")
		assert.EqualError(t, err, "argparse: no value given for 'default-single' and no default specified")
	})
}

func TestGetAppendKind(t *testing.T) {
	t.Parallel()

	p := coercionParser(t)

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		assert.True(t, p.Has("append"))
		assert.Equal(t, 3, p.Count("append"))

		v, err := Get[int](p, "append")
		require.NoError(t, err)
		assert.Equal(t, -30, v)

		for i, want := range []int{-30, -31, -32} {
			v, err := GetAt[int](p, "append", i)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
		_, err = GetAt[int](p, "append", 3)
		assert.EqualError(t, err, "argparse: index 3 is out of range for 'append'")

		all, err := GetAll[int](p, "append")
		require.NoError(t, err)
		assert.Equal(t, []int{-30, -31, -32}, all)
	})
	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		assert.False(t, p.Has("default-append"))
		assert.Equal(t, 0, p.Count("default-append"))

		v, err := GetOr[int](p, "default-append", 25)
		require.NoError(t, err)
		assert.Equal(t, 25, v)

		_, err = Get[int](p, "default-append")
		assert.EqualError(t, err, "argparse: no value given for 'default-append' and no default specified")

		all, err := GetAll[int](p, "default-append")
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestCoercion(t *testing.T) {
	t.Parallel()

	p := coercionParser(t)

	t.Run("boolean literal", func(t *testing.T) {
		t.Parallel()
		v, err := Get[bool](p, "barg")
		require.NoError(t, err)
		assert.True(t, v)

		_, err = Get[Char](p, "barg")
		assert.EqualError(t, err, "test-program: 'barg' must be a single character")
		_, err = Get[uint](p, "barg")
		assert.EqualError(t, err, "test-program: 'barg' must be of integral type")
		_, err = Get[int](p, "barg")
		assert.EqualError(t, err, "test-program: 'barg' must be of integral type")
		_, err = Get[float64](p, "barg")
		assert.EqualError(t, err, "test-program: 'barg' must be of integral type")

		s, err := Get[string](p, "barg")
		require.NoError(t, err)
		assert.Equal(t, "true", s)
	})
	t.Run("single character", func(t *testing.T) {
		t.Parallel()
		_, err := Get[bool](p, "carg")
		assert.EqualError(t, err, "test-program: 'carg' must be either 'true' or 'false'")

		c, err := Get[Char](p, "carg")
		require.NoError(t, err)
		assert.Equal(t, Char('r'), c)

		_, err = Get[uint](p, "carg")
		assert.EqualError(t, err, "test-program: 'carg' must be of integral type")

		s, err := Get[string](p, "carg")
		require.NoError(t, err)
		assert.Equal(t, "r", s)
	})
	t.Run("unsigned literal", func(t *testing.T) {
		t.Parallel()
		_, err := Get[bool](p, "uiarg")
		assert.EqualError(t, err, "test-program: 'uiarg' must be either 'true' or 'false'")
		_, err = Get[Char](p, "uiarg")
		assert.EqualError(t, err, "test-program: 'uiarg' must be a single character")

		u, err := Get[uint](p, "uiarg")
		require.NoError(t, err)
		assert.Equal(t, uint(77), u)

		i, err := Get[int](p, "uiarg")
		require.NoError(t, err)
		assert.Equal(t, 77, i)

		f, err := Get[float64](p, "uiarg")
		require.NoError(t, err)
		assert.Equal(t, 77.0, f)

		s, err := Get[string](p, "uiarg")
		require.NoError(t, err)
		assert.Equal(t, "77", s)
	})
	t.Run("negative literal", func(t *testing.T) {
		t.Parallel()
		// A negative literal must report a range error for unsigned targets,
		// never wrap around to a huge positive value.
		_, err := Get[uint](p, "siarg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'siarg' must be in range [0,")

		i, err := Get[int](p, "siarg")
		require.NoError(t, err)
		assert.Equal(t, -5, i)

		f, err := Get[float64](p, "siarg")
		require.NoError(t, err)
		assert.Equal(t, -5.0, f)

		s, err := Get[string](p, "siarg")
		require.NoError(t, err)
		assert.Equal(t, "-5", s)
	})
	t.Run("float literal", func(t *testing.T) {
		t.Parallel()
		_, err := Get[uint](p, "darg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'darg' must be in range [0,")

		_, err = Get[int](p, "darg")
		assert.EqualError(t, err, "test-program: 'darg' must be of integral type")

		f, err := Get[float64](p, "darg")
		require.NoError(t, err)
		assert.Equal(t, -9.5, f)

		f32, err := Get[float32](p, "darg")
		require.NoError(t, err)
		assert.Equal(t, float32(-9.5), f32)

		s, err := Get[string](p, "darg")
		require.NoError(t, err)
		assert.Equal(t, "-9.5", s)
	})
	t.Run("arbitrary text", func(t *testing.T) {
		t.Parallel()
		_, err := Get[bool](p, "sarg")
		assert.EqualError(t, err, "test-program: 'sarg' must be either 'true' or 'false'")
		_, err = Get[Char](p, "sarg")
		assert.EqualError(t, err, "test-program: 'sarg' must be a single character")
		_, err = Get[uint](p, "sarg")
		assert.EqualError(t, err, "test-program: 'sarg' must be of integral type")
		_, err = Get[int](p, "sarg")
		assert.EqualError(t, err, "test-program: 'sarg' must be of integral type")
		_, err = Get[float64](p, "sarg")
		assert.EqualError(t, err, "test-program: 'sarg' must be of integral type")

		s, err := Get[string](p, "sarg")
		require.NoError(t, err)
		assert.Equal(t, "abc123", s)
	})
}

func TestGetBeforeParse(t *testing.T) {
	t.Parallel()

	p := New(quietOptions())
	p.AddPositional("n")

	_, err := Get[int](p, "n")
	assert.EqualError(t, err, "argparse: no value given for 'n' and no default specified")

	v, err := GetOr[int](p, "n", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestCoercionRangeChecks(t *testing.T) {
	t.Parallel()

	parseValue := func(t *testing.T, text string) *Parser {
		t.Helper()
		p := New(quietOptions())
		p.AddPositional("n")
		_, err := p.Parse([]string{"test-program", text})
		require.NoError(t, err)
		return p
	}

	t.Run("int8 overflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "128")
		_, err := Get[int8](p, "n")
		assert.EqualError(t, err, "test-program: 'n' must be in range [-128,127]")

		v, err := Get[int16](p, "n")
		require.NoError(t, err)
		assert.Equal(t, int16(128), v)
	})
	t.Run("int8 underflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "-129")
		_, err := Get[int8](p, "n")
		assert.EqualError(t, err, "test-program: 'n' must be in range [-128,127]")
	})
	t.Run("uint8 overflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "256")
		_, err := Get[uint8](p, "n")
		assert.EqualError(t, err, "test-program: 'n' must be in range [0,255]")

		v, err := Get[uint16](p, "n")
		require.NoError(t, err)
		assert.Equal(t, uint16(256), v)
	})
	t.Run("int64 overflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "9223372036854775808")
		_, err := Get[int64](p, "n")
		assert.EqualError(t, err, "test-program: 'n' must be in range [-9223372036854775808,9223372036854775807]")

		v, err := Get[uint64](p, "n")
		require.NoError(t, err)
		assert.Equal(t, uint64(9223372036854775808), v)
	})
	t.Run("uint64 overflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "18446744073709551616")
		_, err := Get[uint64](p, "n")
		assert.EqualError(t, err, "test-program: 'n' must be in range [0,18446744073709551615]")
	})
	t.Run("float32 overflow", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "1e39")
		_, err := Get[float32](p, "n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'n' must be in range [")

		v, err := Get[float64](p, "n")
		require.NoError(t, err)
		assert.Equal(t, 1e39, v)
	})
	t.Run("multibyte character", func(t *testing.T) {
		t.Parallel()
		p := parseValue(t, "é")
		c, err := Get[Char](p, "n")
		require.NoError(t, err)
		assert.Equal(t, Char('é'), c)
	})
}
