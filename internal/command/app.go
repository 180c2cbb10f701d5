// Package command builds the kvcache CLI.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/kvcache"
	asynchook "github.com/unkn0wn-root/kvcache/hooks/async"
	sloghooks "github.com/unkn0wn-root/kvcache/hooks/slog"
	kvzap "github.com/unkn0wn-root/kvcache/log/zap"
	pr "github.com/unkn0wn-root/kvcache/provider"
	"github.com/unkn0wn-root/kvcache/provider/memory"
	"github.com/unkn0wn-root/kvcache/provider/redis"
)

// NewApp returns the root command. Sessions read from in, print to out and log to errOut.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	app := &cli.Command{
		Name:  "kvcache",
		Usage: "store scalar values under random keys and replay the calls",
		Flags: globalFlags(),
	}
	app.Commands = append(app.Commands,
		DemoCommandBuilder(out, errOut),
		ReplCommandBuilder(in, out, errOut),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})
	return app
}

// session is one instrumented cache plus everything that must be released with it.
type session struct {
	*kvcache.Instrumented
	hooks *asynchook.Hooks
	log   *zap.Logger
}

func openSession(ctx context.Context, cmd *cli.Command, errOut io.Writer) (*session, error) {
	level, err := zapcore.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	// zap and the hook workers share errOut
	ws := zapcore.Lock(zapcore.AddSync(errOut))
	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		ws,
		level,
	))

	sl := slog.New(slog.NewTextHandler(ws, &slog.HandlerOptions{Level: slogLevel(level)}))
	hooks := asynchook.New(sloghooks.New(sl, sloghooks.Options{}), 1, 256)

	var p pr.Provider
	if cmd.Bool("memory") {
		p = memory.New()
	} else {
		p, err = redis.New(redis.Config{
			Client: goredis.NewClient(&goredis.Options{
				Addr:     cmd.String("addr"),
				DB:       cmd.Int("db"),
				Password: cmd.String("password"),
			}),
			CloseClient: true,
			FlushAsync:  true,
		})
		if err != nil {
			hooks.Close()
			return nil, err
		}
	}

	c, err := kvcache.New(ctx, kvcache.Options{
		Provider: p,
		Logger:   kvzap.New(zl),
		Hooks:    hooks,
	})
	if err != nil {
		_ = p.Close(ctx)
		hooks.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &session{Instrumented: kvcache.Instrument(c), hooks: hooks, log: zl}, nil
}

func (s *session) Close(ctx context.Context) error {
	err := s.Instrumented.Close(ctx)
	s.hooks.Close()
	_ = s.log.Sync()
	return err
}

func slogLevel(l zapcore.Level) slog.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return slog.LevelDebug
	case l == zapcore.InfoLevel:
		return slog.LevelInfo
	case l == zapcore.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
