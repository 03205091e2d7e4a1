package form

import (
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-condform/pkg/schema"
)

// Sink receives records that passed validation on Submit.
type Sink interface {
	Submit(ctx context.Context, record schema.Record) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, record schema.Record) error

// Submit calls fn.
func (fn SinkFunc) Submit(ctx context.Context, record schema.Record) error {
	return fn(ctx, record)
}

// WriterSink writes each submitted record to W as two-space indented JSON.
type WriterSink struct {
	W io.Writer
}

// NewWriterSink returns a Sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

// Submit serialises record and writes it followed by a newline.
func (s *WriterSink) Submit(ctx context.Context, record schema.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.W == nil {
		return fmt.Errorf("form: writer sink has no writer")
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("form: encode record: %w", err)
	}
	data = append(data, '\n')
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("form: write record: %w", err)
	}
	return nil
}

type discardSink struct{}

func (discardSink) Submit(context.Context, schema.Record) error { return nil }
