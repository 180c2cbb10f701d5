package command

import (
	"fmt"
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/unkn0wn-root/kvcache/provider/redis"
)

// ConfigEnv names the environment variable holding the optional YAML config path.
const ConfigEnv = "KVCACHE_CONFIG"

// envSource reads an environment variable. Unlike cli.EnvVar, a variable that is
// set but empty counts as absent, so the next source in the chain is consulted.
type envSource string

func (e envSource) Lookup() (string, bool) {
	v := os.Getenv(string(e))
	return v, v != ""
}

func (e envSource) IsFromEnv() bool  { return true }
func (e envSource) Key() string      { return string(e) }
func (e envSource) String() string   { return fmt.Sprintf("environment variable %q", string(e)) }
func (e envSource) GoString() string { return fmt.Sprintf("envSource(%q)", string(e)) }

// sources resolves a flag from env first, then from the YAML config when one is set.
func sources(env, key string) cli.ValueSourceChain {
	chain := []cli.ValueSource{envSource(env)}
	if path := os.Getenv(ConfigEnv); path != "" {
		chain = append(chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return cli.NewValueSourceChain(chain...)
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "redis address",
			Value:   redis.DefaultAddr,
			Sources: sources("KVCACHE_REDIS_ADDR", "redis.addr"),
		},
		&cli.IntFlag{
			Name:    "db",
			Usage:   "redis database number",
			Value:   0,
			Sources: sources("KVCACHE_REDIS_DB", "redis.db"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "redis password",
			Sources: sources("KVCACHE_REDIS_PASSWORD", "redis.password"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "warn",
			Sources: sources("KVCACHE_LOG_LEVEL", "log.level"),
		},
		&cli.BoolFlag{
			Name:  "memory",
			Usage: "use the in-process store instead of redis",
			Value: false,
		},
	}
}
