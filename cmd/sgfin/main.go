package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/cache"
	"github.com/rgehrsitz/sgfin/internal/calculation"
	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/logging"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/rgehrsitz/sgfin/internal/store/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once flags and config are read.
type app struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	engine *calculation.CalculationEngine
	parser *config.InputParser
}

func newApp(cmd *cobra.Command) (*app, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAppConfig(configFile)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.Path = db
	}

	level, _ := cmd.Flags().GetString("log-level")
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		level = "debug"
	}
	logger, err := logging.New(cfg.Logging, level)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		parser: config.NewInputParser(),
	}, nil
}

func (a *app) openStore() (store.Store, error) {
	switch a.cfg.Store.Driver {
	case "memory":
		return store.NewMemory(), nil
	default:
		st, err := sqlite.New(a.cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store %s: %w", a.cfg.Store.Path, err)
		}
		return st, nil
	}
}

func (a *app) openCache() cache.Cache {
	switch a.cfg.Cache.Driver {
	case "redis":
		return cache.NewRedis(a.cfg.Cache.RedisAddr, a.cfg.Cache.RedisPassword, a.cfg.Cache.RedisDB)
	case "memory":
		return cache.NewMemory()
	}
	return cache.Nop{}
}

// preparer returns the saved profile, falling back to the configured one.
func (a *app) preparer(cmd *cobra.Command, st store.Store) domain.Preparer {
	if st != nil {
		p, err := st.GetProfile(cmd.Context())
		if err == nil {
			return p
		}
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Warn("failed to load profile", zap.Error(err))
		}
	}
	return a.cfg.Preparer.Preparer()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sgfin %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// parseSets turns repeated key=value flags into a field map.
func parseSets(sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		values[k] = strings.TrimSpace(v)
	}
	return values, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sgfin",
		Short: "Singapore financial calculators",
		Long: "Mortgage, stamp duty, TDSR, CPF, tax, investment and property calculators " +
			"for Singapore, with client reports, saved scenarios, an HTTP API and a terminal UI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Application config file (YAML)")
	root.PersistentFlags().String("db", "", "SQLite database path (overrides store.path)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	v := versionCmd()
	v.Flags().BoolP("verbose", "v", false, "Include Go build information")

	root.AddCommand(
		calculateCmd(),
		calculatorsCmd(),
		checkCmd(),
		ratesCmd(),
		runCmd(),
		reportCmd(),
		validateCmd(),
		scenariosCmd(),
		compareCmd(),
		profileCmd(),
		serveCmd(),
		tuiCmd(),
		v,
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
