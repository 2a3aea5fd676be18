// @title			Embedkit API
// @version		1.0
// @description	Generates embeddable chat widget artifacts and serves widget previews and sessions.
// @BasePath		/api/v1

package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/embedkit/internal/config"
	"github.com/mtlprog/embedkit/internal/logger"
	"github.com/mtlprog/embedkit/internal/session"
)

func main() {
	// a missing .env is fine; flags and the environment still apply
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "embedkit",
		Usage: "Embeddable chat widget generator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL (agents table and postgres session store)",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:    "embed-host",
						Value:   config.DefaultEmbedHost,
						Usage:   "Embed host template; {deployment} is replaced by the deployment target",
						EnvVars: []string{"EMBED_HOST"},
					},
					&cli.StringFlag{
						Name:    "session-namespace",
						Value:   session.DefaultNamespace,
						Usage:   "Prefix of session storage keys",
						EnvVars: []string{"SESSION_NAMESPACE"},
					},
					&cli.DurationFlag{
						Name:    "session-ttl",
						Value:   config.DefaultSessionTTL,
						Usage:   "Lifetime of server-side sessions",
						EnvVars: []string{"SESSION_TTL"},
					},
					&cli.StringFlag{
						Name:    "sweep-schedule",
						Value:   config.DefaultSweepSchedule,
						Usage:   "Cron schedule of the expired session sweep",
						EnvVars: []string{"SWEEP_SCHEDULE"},
					},
					&cli.StringFlag{
						Name:    "allowed-origins",
						Usage:   "Comma-separated dashboard origins allowed by CORS",
						EnvVars: []string{"ALLOWED_ORIGINS"},
					},
				}, storeFlags()...),
				Action: runServe,
			},
			{
				Name:  "generate",
				Usage: "Generate embed artifacts to stdout",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "JSON file with agent, deployment, customization and targets",
					},
					&cli.StringFlag{
						Name:  "agent-id",
						Usage: "Agent ID (overrides the input file)",
					},
					&cli.StringFlag{
						Name:  "agent-name",
						Usage: "Agent name (overrides the input file)",
					},
					&cli.StringFlag{
						Name:  "deployment",
						Usage: "Deployment target (overrides the input file)",
					},
					&cli.StringFlag{
						Name:    "target",
						Aliases: []string{"t"},
						Value:   "all",
						Usage:   "Artifact to generate (host-script, component, cms, all)",
					},
					&cli.StringFlag{
						Name:    "embed-host",
						Value:   config.DefaultEmbedHost,
						Usage:   "Embed host template; {deployment} is replaced by the deployment target",
						EnvVars: []string{"EMBED_HOST"},
					},
					&cli.BoolFlag{
						Name:    "copy",
						Aliases: []string{"c"},
						Usage:   "Copy the generated artifact to the clipboard",
					},
				},
				Action: runGenerate,
			},
			{
				Name:   "sweep-sessions",
				Usage:  "Delete expired server-side sessions once",
				Flags:  storeFlags(),
				Action: runSweepSessions,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "session-store",
			Value:   string(config.DefaultSessionStore),
			Usage:   "Server-side session store (postgres, sqlite, memory)",
			EnvVars: []string{"SESSION_STORE"},
		},
		&cli.StringFlag{
			Name:    "sqlite-path",
			Value:   config.DefaultSQLitePath,
			Usage:   "SQLite database file for the sqlite session store",
			EnvVars: []string{"SQLITE_PATH"},
		},
	}
}
