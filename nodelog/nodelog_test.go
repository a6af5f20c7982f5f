package nodelog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/johnrutherford/marshal-kit/nodelog"
	"github.com/johnrutherford/marshal-kit/nodename"
	"github.com/stretchr/testify/assert"
)

func Test_FromContext(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		logger := log.New(&bytes.Buffer{})
		ctx := nodelog.NewContext(context.Background(), logger)

		assert.Same(t, logger, nodelog.FromContext(ctx))
	})

	t.Run("no logger", func(t *testing.T) {
		ctx := context.Background()
		assert.Same(t, log.Default(), nodelog.FromContext(ctx))
	})
}

func Test_With(t *testing.T) {
	t.Run("node name set", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := nodelog.NewContext(context.Background(), log.New(&buf))

		slot := nodename.NewSlot()
		slot.Set(nodename.New("nodeA"))
		ctx = nodename.NewContext(ctx, slot)

		nodelog.With(ctx).Info("marshalling")

		assert.Contains(t, buf.String(), "marshalling")
		assert.Contains(t, buf.String(), "node=nodeA")
	})

	t.Run("node name unset", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := nodelog.NewContext(context.Background(), log.New(&buf))
		ctx = nodename.NewContext(ctx, nodename.NewSlot())

		nodelog.With(ctx).Info("marshalling")

		assert.Contains(t, buf.String(), "marshalling")
		assert.NotContains(t, buf.String(), "node=")
	})

	t.Run("no slot", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := nodelog.NewContext(context.Background(), log.New(&buf))

		nodelog.With(ctx).Info("marshalling")

		assert.NotContains(t, buf.String(), "node=")
	})
}
