package codec

import (
	"io"

	"github.com/opcua-json/opcuajson/jsontoken"
)

// Encoder is a stateful OPC UA Part 6 JSON encoder bound to one output
// sink at a time. The zero value is not usable; construct one with
// NewEncoder.
type Encoder struct {
	tokens     *jsontoken.Writer
	ctx        Context
	reversible bool
}

// NewEncoder returns an Encoder writing to sink, using ctx to resolve
// namespaces, servers, and structure types, starting in reversible mode
// (the mapping's default, per the Part 6 JSON mapping).
func NewEncoder(sink io.Writer, ctx Context) *Encoder {
	e := &Encoder{ctx: ctx}
	e.tokens = jsontoken.NewWriter(e.boundedSink(sink))
	e.reversible = true
	return e
}

// Reset rebinds the Encoder to a fresh sink and restores reversible
// mode, discarding any error state.
func (e *Encoder) Reset(sink io.Writer) {
	e.tokens.Reset(e.boundedSink(sink))
	e.reversible = true
}

// boundedSink wraps sink so the total bytes of one encoding pass are
// capped at Limits.MaxMessageSize. With no limit configured the sink is
// used as-is.
func (e *Encoder) boundedSink(sink io.Writer) io.Writer {
	limits := Limits{}
	if e.ctx != nil {
		limits = e.ctx.Limits()
	}
	if limits.MaxMessageSize <= 0 {
		return sink
	}
	return &limitedWriter{w: sink, remaining: limits.MaxMessageSize}
}

// limitedWriter fails the write that would push the cumulative output
// past the configured message size.
type limitedWriter struct {
	w         io.Writer
	remaining int
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > lw.remaining {
		return 0, newLimitError("MessageSize", ErrMessageTooLarge)
	}
	n, err := lw.w.Write(p)
	lw.remaining -= n
	return n, err
}

// Reversible reports whether the Encoder is currently in reversible
// mode.
func (e *Encoder) Reversible() bool {
	return e.reversible
}

// SetReversible switches between reversible and non-reversible
// observation mode. Per the Part 6 JSON mapping this can only happen between
// top-level encodings: once a value has started, the mode is locked
// until the Encoder is Reset or returns to a fresh top-level slot.
func (e *Encoder) SetReversible(reversible bool) error {
	if !e.tokens.ReadyForTopLevel() {
		return newInvalidStateError("SetReversible", ErrReversibleModeLocked)
	}
	e.reversible = reversible
	return nil
}

// Context returns the EncodingContext this Encoder was constructed
// with.
func (e *Encoder) Context() Context {
	return e.ctx
}

// Tokens exposes the inner token writer for callers that assemble an
// enclosing object themselves -- the path a StructureCodec takes when
// its fields need framing the typed emit pairs do not cover.
func (e *Encoder) Tokens() *jsontoken.Writer {
	return e.tokens
}

// Close verifies that every opened container has been closed, the way
// the underlying token writer requires before its output is legal JSON.
func (e *Encoder) Close() error {
	return e.wrapTokenErr("Close", e.tokens.Close())
}

// Err returns the first error recorded by the underlying token writer.
// Errors raised by the encoding logic itself (limits, unknown types) are
// only returned by the call that hit them and are not recorded here.
func (e *Encoder) Err() error {
	return e.wrapTokenErr("", e.tokens.Err())
}

// checkDepth enforces Limits.MaxNestingDepth against the token writer's
// current container depth, called before opening a new object or array.
func (e *Encoder) checkDepth(where string) error {
	limits := Limits{}
	if e.ctx != nil {
		limits = e.ctx.Limits()
	}
	if !limits.nestingOK(e.tokens.Depth() + 1) {
		return newLimitError(where, ErrDepthExceeded)
	}
	return nil
}

// checkArrayLen enforces Limits.MaxArrayLength for an array/matrix of n
// elements.
func (e *Encoder) checkArrayLen(where string, n int) error {
	limits := Limits{}
	if e.ctx != nil {
		limits = e.ctx.Limits()
	}
	if !limits.arrayOK(n) {
		return newLimitError(where, ErrArrayTooLong)
	}
	return nil
}

// checkStringLen enforces Limits.MaxStringLength for a string/ByteString
// of n bytes or runes.
func (e *Encoder) checkStringLen(where string, n int) error {
	limits := Limits{}
	if e.ctx != nil {
		limits = e.ctx.Limits()
	}
	if !limits.stringOK(n) {
		return newLimitError(where, ErrStringTooLong)
	}
	return nil
}

// wrapTokenErr normalizes an error returned by the underlying token
// writer. A jsontoken sentinel (a state-machine violation inside this
// package's own call sequencing) becomes a KindInvalidState
// EncodingError; anything else -- an I/O failure from the sink -- is
// returned unchanged, per the rule that sink failures propagate as-is.
func (e *Encoder) wrapTokenErr(where string, err error) error {
	if err == nil {
		return nil
	}
	if jsontoken.IsStateError(err) {
		return newInvalidStateError(where, err)
	}
	return err
}
