package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/unkn0wn-root/kvcache"
)

var demoValues = []any{"foo", 42, 3.5, []byte("bar")}

// DemoCommandBuilder constructs "demo": store a few values, read them back and
// replay the recorded Store calls.
func DemoCommandBuilder(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "store sample values and replay the calls",
		UsageText: "kvcache [global options] demo",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openSession(ctx, cmd, errOut)
			if err != nil {
				return err
			}
			defer s.Close(ctx)
			return runDemo(ctx, s.Instrumented, out)
		},
	}
}

func runDemo(ctx context.Context, c *kvcache.Instrumented, out io.Writer) error {
	keys := make([]string, 0, len(demoValues))
	for _, v := range demoValues {
		key, err := c.Store(ctx, v)
		if err != nil {
			return fmt.Errorf("store %v: %w", v, err)
		}
		keys = append(keys, key)
	}

	s, _, err := c.GetStr(ctx, keys[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "GetStr(%s) = %q\n", keys[0], s)

	n, _, err := c.GetInt(ctx, keys[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "GetInt(%s) = %d\n", keys[1], n)

	f, _, err := c.GetFloat(ctx, keys[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "GetFloat(%s) = %g\n", keys[2], f)

	b, _, err := c.Get(ctx, keys[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Get(%s) = %q\n", keys[3], b)

	if _, ok, err := c.GetStr(ctx, "missing"); err != nil {
		return err
	} else if !ok {
		fmt.Fprintln(out, "GetStr(missing) = (absent)")
	}

	fmt.Fprintln(out)
	return c.Replay(ctx, out, kvcache.StoreMethod)
}
