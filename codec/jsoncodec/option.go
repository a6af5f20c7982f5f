package jsoncodec

import "github.com/charmbracelet/log"

// Option is an option used to configure a [Codec] or [ClientCodec].
type Option interface {
	applyCodec(*Codec)
	applyClientCodec(*ClientCodec)
}

type loggerOption struct {
	log *log.Logger
}

func (o loggerOption) applyCodec(c *Codec) {
	c.log = o.log
}

func (o loggerOption) applyClientCodec(c *ClientCodec) {
	c.log = o.log
}

// WithLogger sets the logger used for per-operation debug lines.
func WithLogger(l *log.Logger) Option {
	return loggerOption{log: l}
}
