package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/unkn0wn-root/kvcache"
)

const replHelp = `commands:
  store <value>   store an integer, float or string; prints the key
  get <key>       read a string
  getint <key>    read an integer
  replay          print the recorded Store calls
  help            show this text
  quit            leave`

// ReplCommandBuilder constructs "repl": an interactive session over one cache.
func ReplCommandBuilder(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "repl",
		Usage:     "interactive session",
		UsageText: "kvcache [global options] repl",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openSession(ctx, cmd, errOut)
			if err != nil {
				return err
			}
			defer s.Close(ctx)
			return runRepl(ctx, s.Instrumented, in, out)
		},
	}
}

func runRepl(ctx context.Context, c *kvcache.Instrumented, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		verb, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch verb {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, replHelp)
		case "store":
			key, err := c.Store(ctx, parseValue(arg))
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprintln(out, key)
		case "get":
			v, ok, err := c.GetStr(ctx, arg)
			printResult(out, strconv.Quote(v), len(v), ok, err)
		case "getint":
			v, ok, err := c.GetInt(ctx, arg)
			printResult(out, strconv.FormatInt(v, 10), 0, ok, err)
		case "replay":
			if err := c.Replay(ctx, out, kvcache.StoreMethod); err != nil {
				if errors.Is(err, kvcache.ErrNoRecorder) {
					fmt.Fprintln(out, "no call records for this store")
					continue
				}
				fmt.Fprintln(out, "error:", err)
			}
		default:
			fmt.Fprintf(out, "unknown command %q; try help\n", verb)
		}
	}
}

// parseValue picks the narrowest kind: integer, then float, else the text itself.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func printResult(out io.Writer, v string, size int, ok bool, err error) {
	switch {
	case err != nil:
		fmt.Fprintln(out, "error:", err)
	case !ok:
		fmt.Fprintln(out, "(absent)")
	case size > 0:
		fmt.Fprintf(out, "%s (%s)\n", v, humanize.Bytes(uint64(size)))
	default:
		fmt.Fprintln(out, v)
	}
}
