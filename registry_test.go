package marshal_test

import (
	"fmt"
	"testing"

	"github.com/johnrutherford/marshal-kit"
	"github.com/johnrutherford/marshal-kit/codec/jsoncodec"
	"github.com/johnrutherford/marshal-kit/codec/msgpackcodec"
	"github.com/johnrutherford/marshal-kit/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := marshal.NewRegistry()
		codec := jsoncodec.New()
		r.Register(jsoncodec.Format, codec)

		got, err := r.Lookup(jsoncodec.Format)
		require.NoError(t, err)
		assert.Same(t, codec, got)
	})

	t.Run("lookup unknown format", func(t *testing.T) {
		r := marshal.NewRegistry()

		got, err := r.Lookup("cbor")
		testutils.LogError(t, err)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, marshal.ErrNotRegistered)
		assert.EqualError(t, err, `lookup codec "cbor": codec not registered`)
	})

	t.Run("register replaces", func(t *testing.T) {
		r := marshal.NewRegistry()
		first := jsoncodec.New()
		second := jsoncodec.New()

		r.Register(jsoncodec.Format, first)
		r.Register(jsoncodec.Format, second)

		got, err := r.Lookup(jsoncodec.Format)
		require.NoError(t, err)
		assert.Same(t, second, got)
	})

	t.Run("names sorted", func(t *testing.T) {
		r := marshal.NewRegistry()
		r.Register(msgpackcodec.Format, msgpackcodec.New())
		r.Register(jsoncodec.Format, jsoncodec.New())

		assert.Equal(t, []string{"json", "msgpack"}, r.Names())
	})

	t.Run("concurrent use", func(t *testing.T) {
		r := marshal.NewRegistry()

		testutils.RunParallel(8, func(i int) {
			name := fmt.Sprintf("codec-%d", i)
			r.Register(name, jsoncodec.New())

			got, err := r.Lookup(name)
			assert.NoError(t, err)
			assert.NotNil(t, got)
		})

		assert.Len(t, r.Names(), 8)
	})
}
