package kvcache

import (
	"context"
	"fmt"
	"io"

	"github.com/unkn0wn-root/kvcache/callstore"
	"github.com/unkn0wn-root/kvcache/internal/scalar"
	"github.com/unkn0wn-root/kvcache/internal/util"
)

// StoreMethod is the name Instrumented records Store calls under.
var StoreMethod = util.QualifiedName("kvcache", "Cache", "Store")

// Op is a single-input cache operation. Any method with the shape
// func(ctx, In) (Out, error) converts to it, e.g. Op[any, string](c.Store).
type Op[In, Out any] func(ctx context.Context, in In) (Out, error)

// Args carries several positional arguments through an Op. CallHistory renders it
// as one tuple: Args{"a", 1} => ("a", 1).
type Args []any

// CountCalls returns op wrapped so every call first increments counter[name].
// The increment happens before op runs; if it fails, op is not called.
// With a nil counter op is returned unchanged.
func CountCalls[In, Out any](counter callstore.Counter, name string, op Op[In, Out]) Op[In, Out] {
	if counter == nil {
		return op
	}
	return func(ctx context.Context, in In) (Out, error) {
		if _, err := counter.Incr(ctx, name); err != nil {
			var zero Out
			return zero, err
		}
		return op(ctx, in)
	}
}

// CallHistory returns op wrapped so every call appends its rendered input to
// name:inputs before running and its rendered output to name:outputs after.
// A failing op records no output. With a nil history op is returned unchanged.
// The lists are never trimmed.
func CallHistory[In, Out any](history callstore.History, name string, op Op[In, Out]) Op[In, Out] {
	if history == nil {
		return op
	}
	inKey, outKey := util.InputsKey(name), util.OutputsKey(name)
	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		if err := history.Append(ctx, inKey, renderInput(in)); err != nil {
			return zero, err
		}
		out, err := op(ctx, in)
		if err != nil {
			return zero, err
		}
		if err := history.Append(ctx, outKey, scalar.Format(out)); err != nil {
			return zero, err
		}
		return out, nil
	}
}

func renderInput(in any) string {
	if args, ok := in.(Args); ok {
		return scalar.FormatArgs(args...)
	}
	return scalar.FormatArgs(in)
}

// Call is one recorded invocation.
type Call struct {
	Input  string
	Output string
}

// Instrumented is a Cache whose Store is counted and recorded under StoreMethod.
// Other methods pass straight through to the embedded Cache.
type Instrumented struct {
	*Cache
	store Op[any, string]
}

// Instrument wraps c. When c has no recorder, Store behaves exactly like c.Store
// and nothing is recorded.
func Instrument(c *Cache) *Instrumented {
	if c.rec == nil {
		c.hooks.RecorderUnavailable(StoreMethod)
		c.log.Debug("no recorder; call instrumentation disabled", Fields{"method": StoreMethod})
	}
	store := CallHistory[any, string](c.rec, StoreMethod, c.Store)
	store = CountCalls[any, string](c.rec, StoreMethod, store)
	return &Instrumented{Cache: c, store: store}
}

func (i *Instrumented) Store(ctx context.Context, value any) (string, error) {
	return i.store(ctx, value)
}

// Calls returns how many times name was called. Zero without a recorder.
func (i *Instrumented) Calls(ctx context.Context, name string) (int64, error) {
	if i.rec == nil {
		return 0, nil
	}
	return i.rec.Count(ctx, name)
}

// History returns the recorded calls of name, oldest first.
func (i *Instrumented) History(ctx context.Context, name string) ([]Call, error) {
	if i.rec == nil {
		return nil, nil
	}
	return History(ctx, i.rec, name)
}

// Replay writes the call history of name to w. See the package-level Replay.
func (i *Instrumented) Replay(ctx context.Context, w io.Writer, name string) error {
	return Replay(ctx, w, i.rec, name)
}

// History reads the inputs and outputs lists of name and pairs them by position.
// Inputs past the last output (calls that failed) get an empty Output.
func History(ctx context.Context, h callstore.History, name string) ([]Call, error) {
	ins, err := h.Range(ctx, util.InputsKey(name))
	if err != nil {
		return nil, err
	}
	outs, err := h.Range(ctx, util.OutputsKey(name))
	if err != nil {
		return nil, err
	}
	calls := make([]Call, len(ins))
	for i, in := range ins {
		calls[i].Input = in
		if i < len(outs) {
			calls[i].Output = outs[i]
		}
	}
	return calls, nil
}

// Replay prints the call count of name followed by one line per recorded call:
//
//	kvcache.Cache.Store was called 2 times:
//	kvcache.Cache.Store("foo") -> 3b1f2c9e-...
//	kvcache.Cache.Store(42) -> 9a0e77d1-...
func Replay(ctx context.Context, w io.Writer, rec callstore.Recorder, name string) error {
	if rec == nil {
		return ErrNoRecorder
	}
	n, err := rec.Count(ctx, name)
	if err != nil {
		return err
	}
	calls, err := History(ctx, rec, name)
	if err != nil {
		return err
	}
	times := "times"
	if n == 1 {
		times = "time"
	}
	if _, err := fmt.Fprintf(w, "%s was called %d %s:\n", name, n, times); err != nil {
		return err
	}
	for _, c := range calls {
		if _, err := fmt.Fprintf(w, "%s%s -> %s\n", name, c.Input, c.Output); err != nil {
			return err
		}
	}
	return nil
}
