package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/kslamph/chainevents/internal/chainclient"
	"github.com/kslamph/chainevents/internal/config"
	"github.com/kslamph/chainevents/internal/logging"
	"github.com/kslamph/chainevents/internal/metrics"
	"github.com/kslamph/chainevents/pkg/abi"
	"github.com/kslamph/chainevents/pkg/addr"
	"github.com/kslamph/chainevents/pkg/display"
	"github.com/kslamph/chainevents/pkg/eventstream"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "chainwatch",
		Usage: "subscribe to a chain node's logs feed and decode ABI events in real time",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "environment name, selects application-<env>.yml over application.yml",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file, overrides --env's selection",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configFilename resolves the YAML file to load: an explicit --config
// always wins; otherwise --env name selects application-<name>.yml,
// the way the reference driver's application[-env].yml convention
// works, falling back to plain application.yml when neither is given.
func configFilename(c *cli.Context) string {
	if path := c.String("config"); path != "" {
		return path
	}
	if env := c.String("env"); env != "" {
		return fmt.Sprintf("application-%s.yml", env)
	}
	return "application.yml"
}

func run(c *cli.Context) error {
	cfg, err := config.Load(configFilename(c))
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	m := metrics.New()

	registry := eventstream.NewRegistry()
	addresses := make([]string, 0, len(cfg.Subscriptions))
	decimalsByContract := make(map[string]int32, len(cfg.Subscriptions))
	for _, sub := range cfg.Subscriptions {
		contractAddr, err := addr.NewFromHex(sub.ContractAddress)
		if err != nil {
			return fmt.Errorf("chainwatch: %s: %w", sub.ContractAddress, err)
		}
		if err := registerSubscription(registry, contractAddr, sub); err != nil {
			return err
		}
		addresses = append(addresses, contractAddr.Hex())
		decimalsByContract[contractAddr.Hex()] = sub.Decimals
	}
	dispatcher := eventstream.NewDispatcher(registry)

	metricsSrv := &http.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := chainclient.New(cfg.Network.WSURL, cfg.Network.RateLimitRPS, logger)
	client.OnReconnect(func() {
		m.Reconnects.Inc()
		filter := map[string]interface{}{"address": addresses}
		if _, err := client.SubscribeLogs(ctx, filter); err != nil {
			logger.Error().Err(err).Msg("subscribe failed")
			return
		}
		m.ActiveSubs.Set(float64(len(addresses)))
		logger.Info().Strs("contracts", addresses).Msg("subscribed to logs")
	})

	if err := client.Ensure(ctx); err != nil {
		return fmt.Errorf("chainwatch: initial connect: %w", err)
	}

	go pump(ctx, client, dispatcher, decimalsByContract, m, logger)

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("metrics server shutdown failed")
	}
	return client.Close()
}

// registerSubscription registers sub's events against registry, either
// from its full ABI JSON file (which carries indexed flags) or from
// its bare event signature list (which cannot).
func registerSubscription(registry *eventstream.Registry, contractAddr *addr.Address, sub config.SubscriptionConfig) error {
	if sub.ABIFile != "" {
		data, err := os.ReadFile(sub.ABIFile)
		if err != nil {
			return fmt.Errorf("chainwatch: read abi_file %s: %w", sub.ABIFile, err)
		}
		if err := registry.RegisterABIJSON(contractAddr, data); err != nil {
			return fmt.Errorf("chainwatch: %s: %w", sub.ABIFile, err)
		}
		return nil
	}
	for _, sig := range sub.Events {
		desc, err := abi.NewEventDescriptorFromSignature(sig)
		if err != nil {
			return fmt.Errorf("chainwatch: event signature %q: %w", sig, err)
		}
		registry.Register(contractAddr, desc)
	}
	return nil
}

// pump reads subscription notifications until ctx is cancelled,
// decoding and logging each one. A read error reconnects (handled
// inside client.Next) and the loop continues rather than exiting, so a
// single dropped connection does not end the process.
func pump(ctx context.Context, client *chainclient.Client, dispatcher *eventstream.Dispatcher, decimalsByContract map[string]int32, m *metrics.Metrics, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		raw, err := client.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn().Err(err).Msg("subscription read failed")
			continue
		}
		m.LogsReceived.Inc()

		chainLog, blockNumber, txHash, err := parseRawLog(raw)
		if err != nil {
			m.DecodeErrors.WithLabelValues("parse").Inc()
			logger.Error().Err(err).Msg("malformed log payload")
			continue
		}

		start := time.Now()
		ev, err := dispatcher.Decode(chainLog)
		m.DecodeDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			if errors.Is(err, eventstream.ErrUnregistered) {
				continue
			}
			m.DecodeErrors.WithLabelValues("decode").Inc()
			logger.Error().Err(err).Msg("decode failed")
			continue
		}

		m.EventsDecoded.WithLabelValues(ev.Name).Inc()
		decimals, ok := decimalsByContract[ev.Contract.Hex()]
		if !ok {
			decimals = -1
		}
		logger.Info().Msg(display.LineWithDecimals(blockNumber, txHash, ev, decimals))
	}
}

// rawLog mirrors the JSON shape a node sends as an eth_subscription
// "logs" notification result.
type rawLog struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     string   `json:"blockNumber"`
	TransactionHash string   `json:"transactionHash"`
}

func parseRawLog(raw json.RawMessage) (eventstream.Log, uint64, string, error) {
	var rl rawLog
	if err := json.Unmarshal(raw, &rl); err != nil {
		return eventstream.Log{}, 0, "", fmt.Errorf("unmarshal log: %w", err)
	}

	contractAddr, err := addr.NewFromHex(rl.Address)
	if err != nil {
		return eventstream.Log{}, 0, "", err
	}

	topics := make([][32]byte, len(rl.Topics))
	for i, t := range rl.Topics {
		b, err := hex.DecodeString(strings.TrimPrefix(t, "0x"))
		if err != nil || len(b) != 32 {
			return eventstream.Log{}, 0, "", fmt.Errorf("malformed topic %q", t)
		}
		copy(topics[i][:], b)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(rl.Data, "0x"))
	if err != nil {
		return eventstream.Log{}, 0, "", fmt.Errorf("malformed data: %w", err)
	}

	blockNumber, _ := strconv.ParseUint(strings.TrimPrefix(rl.BlockNumber, "0x"), 16, 64)

	return eventstream.Log{
		Address: *contractAddr,
		Topics:  topics,
		Data:    data,
	}, blockNumber, rl.TransactionHash, nil
}
