package optparse

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mfridman/xflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goFlagValues struct {
	output  *string
	count   *int
	verbose *bool
	wait    *time.Duration
}

func newGoFlagSet() (*flag.FlagSet, goFlagValues) {
	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := goFlagValues{
		output:  fs.String("output", "", "write results to `FILE`"),
		count:   fs.Int("count", 0, "number of results"),
		verbose: fs.Bool("verbose", false, "enable verbose output"),
		wait:    fs.Duration("wait", 0, "time to wait between results"),
	}
	return fs, v
}

func TestAddGoFlagSet(t *testing.T) {
	t.Parallel()

	t.Run("imports definitions", func(t *testing.T) {
		t.Parallel()
		fs, _ := newGoFlagSet()
		s := New().AddGoFlagSet(fs)

		f := s.Lookup("output")
		require.NotNil(t, f)
		assert.Equal(t, LongOnly, f.Short)
		assert.Equal(t, "FILE", f.Metavar)
		assert.Equal(t, "write results to FILE", f.Help)

		require.NotNil(t, s.Lookup("verbose"))
		assert.False(t, s.Lookup("verbose").TakesArg(), "bool flags import as switches")

		assert.Equal(t, "int", s.Lookup("count").Metavar)
		assert.Equal(t, "duration", s.Lookup("wait").Metavar)
	})

	t.Run("writes matched values back", func(t *testing.T) {
		t.Parallel()
		fs, v := newGoFlagSet()
		s := New().AddGoFlagSet(fs)

		err := s.Parse([]string{"--output", "a.txt", "--verbose", "--count=3", "--wait", "2s", "operand"})
		require.NoError(t, err)
		assert.Equal(t, "a.txt", *v.output)
		assert.Equal(t, 3, *v.count)
		assert.True(t, *v.verbose)
		assert.Equal(t, 2*time.Second, *v.wait)
		assert.Equal(t, []string{"operand"}, s.Args())
	})

	t.Run("invalid value surfaces the flag error", func(t *testing.T) {
		t.Parallel()
		fs, _ := newGoFlagSet()
		s := New().AddGoFlagSet(fs)

		err := s.Parse([]string{"--count", "abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--count")
	})

	t.Run("bool flag rejects attached value", func(t *testing.T) {
		t.Parallel()
		fs, v := newGoFlagSet()
		s := New().AddGoFlagSet(fs)

		// Imported bools are switches; an attached value would otherwise be
		// dropped and the switch would still fire.
		err := s.Parse([]string{"--verbose=false"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--verbose")
		assert.False(t, *v.verbose)
	})

	t.Run("matches ParseToEnd", func(t *testing.T) {
		t.Parallel()
		args := []string{"--count", "3", "middle", "--verbose", "--output=out.txt", "tail"}

		plainFS, plain := newGoFlagSet()
		require.NoError(t, xflag.ParseToEnd(plainFS, args))

		bridgedFS, bridged := newGoFlagSet()
		s := New().AddGoFlagSet(bridgedFS)
		require.NoError(t, s.Parse(args))

		assert.Equal(t, *plain.count, *bridged.count)
		assert.True(t, *plain.verbose)
		assert.Equal(t, *plain.verbose, *bridged.verbose)
		assert.Equal(t, *plain.output, *bridged.output)
		if diff := cmp.Diff(plainFS.Args(), s.Args()); diff != "" {
			t.Errorf("operands diverge (-xflag +optparse):\n%s", diff)
		}
	})
}
