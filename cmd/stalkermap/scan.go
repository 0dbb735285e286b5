package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/firestige/stalkermap/internal/sconfig"
	"github.com/firestige/stalkermap/internal/sink"
	"github.com/firestige/stalkermap/internal/stalklog"
	"github.com/firestige/stalkermap/pkg/stalkermap"
)

var (
	targetsFlag []string
	bannerFlag  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a set of host:port targets and print one JSON record per result",
	Long: `scan reads targets from --target flags (repeatable) or, if none are
given, one "host:port" per line from stdin, runs them through the engine,
and prints each formatted record as it completes.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSliceVarP(&targetsFlag, "target", "t", nil, "host:port to scan (repeatable)")
	scanCmd.Flags().BoolVar(&bannerFlag, "banner", false, "also capture the first bytes the peer sends")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := sconfig.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := stalklog.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	targets, err := collectTargets(cmd)
	if err != nil {
		return err
	}

	formatter := stalkermap.NewJSONFormatter()
	opts := stalkermap.ScannerOptions{BatchSize: cfg.BatchSize, TimeoutMS: cfg.TimeoutMS}
	engine := stalkermap.New[string](opts, formatter)

	sinks, err := buildSinks(engine, cfg.Sinks, logger)
	if err != nil {
		return err
	}
	if len(sinks) > 0 {
		fanOutToSinks(cmd.Context(), engine, formatter, sinks, logger)
	}

	actions, err := resolveActions(cfg.Actions, bannerFlag)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := engine.AddTask(actions, target); err != nil {
			return fmt.Errorf("adding task for %s: %w", target.Addr(), err)
		}
	}

	ctx := cmd.Context()
	engine.ExecuteTasks(ctx)

	stream := engine.GetLogsStream()
	defer stream.Close()

	go func() {
		_ = engine.ShutdownGraceful(ctx)
	}()

	out := cmd.OutOrStdout()
	for {
		record, ok := stream.Next()
		if !ok {
			return nil
		}
		if formatter.IsIdle(record) {
			continue
		}
		fmt.Fprintln(out, record)
	}
}

// fanOutToSinks subscribes its own log stream and forwards every
// non-idle record to every configured sink, closing the stream when the
// engine shuts down. Sinks are consumers like any other (spec.md §6),
// so this is plain application code on top of the public stream API,
// not a privileged hook into the engine.
func fanOutToSinks(ctx context.Context, engine *stalkermap.Engine[string], formatter *stalkermap.JSONFormatter, sinks []sink.Sink, logger *logrus.Logger) {
	stream := engine.GetLogsStream()
	go func() {
		defer stream.Close()
		for {
			record, ok := stream.Next()
			if !ok {
				return
			}
			if formatter.IsIdle(record) {
				continue
			}
			for _, s := range sinks {
				if err := s.Write(ctx, record); err != nil {
					logger.WithError(err).Warn("sink write failed")
				}
			}
		}
	}()
}

// resolveActions honors a config-driven "actions" list when present
// (decoded via sconfig.BuildActions, which uses mapstructure directly);
// otherwise it falls back to the IsPortOpen + optional --banner default.
func resolveActions(raw []map[string]any, banner bool) ([]stalkermap.Action, error) {
	if len(raw) > 0 {
		return sconfig.BuildActions(raw)
	}
	actions := []stalkermap.Action{stalkermap.NewIsPortOpenAction()}
	if banner {
		actions = append(actions, stalkermap.NewBannerAction())
	}
	return actions, nil
}

func collectTargets(cmd *cobra.Command) ([]stalkermap.Target, error) {
	var raw []string
	if len(targetsFlag) > 0 {
		raw = targetsFlag
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				raw = append(raw, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading targets from stdin: %w", err)
		}
	}

	targets := make([]stalkermap.Target, 0, len(raw))
	for _, hp := range raw {
		t, err := parseHostPort(hp)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func parseHostPort(hp string) (stalkermap.Target, error) {
	idx := strings.LastIndex(hp, ":")
	if idx < 0 {
		return stalkermap.Target{}, fmt.Errorf("stalkermap: target %q must be host:port", hp)
	}
	host, portStr := hp[:idx], hp[idx+1:]
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return stalkermap.Target{}, fmt.Errorf("stalkermap: invalid port in %q: %w", hp, err)
	}
	return stalkermap.Target{
		Scheme: stalkermap.SchemeHTTP,
		Host:   host,
		Type:   stalkermap.TargetDNS,
		Port:   uint16(port),
	}, nil
}

// buildSinks constructs every enabled sink from cfg and registers its
// Close with engine so ShutdownGraceful's combined error covers it.
func buildSinks(engine *stalkermap.Engine[string], cfg sink.ConfigGroup, logger *logrus.Logger) ([]sink.Sink, error) {
	var sinks []sink.Sink

	if cfg.Console != nil && cfg.Console.Enabled {
		s := sink.NewConsoleSink(logger)
		sinks = append(sinks, s)
		engine.RegisterCloser("console", s.Close)
	}
	if cfg.File != nil && cfg.File.Enabled {
		s, err := sink.NewFileSink(afero.NewOsFs(), cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file sink: %w", err)
		}
		sinks = append(sinks, s)
		engine.RegisterCloser("file", s.Close)
	}
	if cfg.Kafka != nil && cfg.Kafka.Enabled {
		s := sink.NewKafkaSink(*cfg.Kafka)
		sinks = append(sinks, s)
		engine.RegisterCloser("kafka", s.Close)
	}
	return sinks, nil
}
