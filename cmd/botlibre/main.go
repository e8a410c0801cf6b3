// botlibre is a command line client for the Botlibre REST API.
//
// It loads an optional YAML configuration file (see internal/config),
// applies flag overrides, connects the configured user and runs one
// command. The serve command starts an in-memory fake server instead,
// for trying the client without an account.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/andreabenini/BotLibre/internal/config"
	"github.com/andreabenini/BotLibre/pkg/sdk"
)

// options holds the global flags
type options struct {
	configPath string
	url        string
	app        string
	user       string
	password   string
	debug      bool
	lenient    bool
	logFormat  string
	logLevel   string

	// command flags
	conversation string
	voice        string
	speak        bool
	addr         string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("botlibre", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "path to YAML configuration file")
	flagSet.StringVar(&opts.url, "url", "", "REST API base URL (overrides server.url)")
	flagSet.StringVar(&opts.app, "app", "", "application id (overrides server.applicationId)")
	flagSet.StringVarP(&opts.user, "user", "u", "", "user to connect as (overrides login.user)")
	flagSet.StringVarP(&opts.password, "password", "p", "", "password of the user (overrides login.password)")
	flagSet.BoolVar(&opts.debug, "debug", false, "log every request and response payload")
	flagSet.BoolVar(&opts.lenient, "lenient", false, "log failures instead of returning them")
	flagSet.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.StringVar(&opts.conversation, "conversation", "", "conversation id to continue (chat)")
	flagSet.BoolVar(&opts.speak, "speak", false, "ask the bot to generate speech (chat)")
	flagSet.StringVar(&opts.voice, "voice", "", "voice to use (chat, speak)")
	flagSet.StringVar(&opts.addr, "addr", "127.0.0.1:8080", "listen address (serve)")
	flagSet.Usage = func() { printHelp(flagSet, stderr) }

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(flagSet, stderr)
		return fmt.Errorf("a command is required")
	}

	cfg, err := loadConfig(&opts, flagSet)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	name, cmdArgs := rest[0], rest[1:]
	if name == "serve" {
		return serve(ctx, logger, &opts, cfg)
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(cmdArgs) < cmd.minArgs {
		return fmt.Errorf("usage: botlibre %s %s", name, cmd.usage)
	}

	conn, err := connect(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer conn.Disconnect()

	return cmd.run(ctx, conn, &opts, cmdArgs, stdout)
}

// loadConfig reads the configuration file, if any, and applies the flags
func loadConfig(opts *options, flagSet *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	if flagSet.Changed("url") {
		cfg.Server.URL = opts.url
	}
	if flagSet.Changed("app") {
		cfg.Server.ApplicationID = opts.app
	}
	if flagSet.Changed("user") {
		cfg.Login.User = opts.user
		cfg.Login.Token = ""
	}
	if flagSet.Changed("password") {
		cfg.Login.Password = opts.password
	}
	if opts.debug {
		cfg.Debug = true
	}
	if opts.lenient {
		cfg.ErrorMode = sdk.ErrorModeLenient.String()
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Logging.Format {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), nil
}

// connect creates the connection and, when a user is configured, connects it
func connect(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*sdk.Connection, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}
	httpsCfg, err := cfg.HTTPSConfig()
	if err != nil {
		return nil, err
	}

	conn, err := sdk.NewConnection(&sdk.ConnectionConfig{
		Credentials: creds,
		HTTPSConfig: httpsCfg,
		Logger:      logger,
		Debug:       cfg.Debug,
		ErrorMode:   cfg.Mode(),
	})
	if err != nil {
		return nil, err
	}

	if login := cfg.User(); login != nil {
		user, err := conn.Connect(ctx, login)
		if err != nil {
			return nil, fmt.Errorf("connecting %s: %w", login.User, err)
		}
		if user == nil {
			return nil, fmt.Errorf("connecting %s: no user returned", login.User)
		}
		logger.Debug("connected", "user", user.User)
	}
	return conn, nil
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `botlibre: command line client for the Botlibre REST API

Usage:
  botlibre [flags] <command> [arguments]

Commands:
`)
	for _, name := range commandNames() {
		cmd := commands[name]
		fmt.Fprintf(w, "  %-9s %s\n", name, cmd.summary)
	}
	fmt.Fprintf(w, "  %-9s %s\n", "serve", "run an in-memory fake server")
	fmt.Fprintf(w, `
Examples:
  botlibre --app 1234 chat 165 "Hello"
  botlibre -c botlibre.yaml admins instance 165
  botlibre serve --addr :8080

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
