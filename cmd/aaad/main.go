package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/adapters/catalog"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/adapters/llm/openai"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/app"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/cli"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/config"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded, safe for concurrent use).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:          "aaad",
		Short:        "The Amazing Alternative to Awesome: better words and cues for yoga teachers",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newCueCmd(), newWordCmd())
	return root
}

func newCueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cue <phrase...>",
		Short: "Turn a phrase into an instructive cue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, false)

			svc, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			res, err := svc.GenerateCue(cmd.Context(), strings.Join(args, " "))
			if errors.Is(err, domain.ErrInvalidRequest) {
				return errors.New("please provide a phrase")
			}
			if err != nil {
				return err
			}
			cli.ForWriter(cmd.OutOrStdout()).Cue(res)
			return nil
		},
	}
}

func newWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word",
		Short: "Print a random alternative to \"awesome\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.NewEmbeddedStore().GetCatalog(cmd.Context())
			if err != nil {
				return err
			}
			cli.ForWriter(cmd.OutOrStdout()).Word(domain.NewWordProvider(c.Words, stdRNG{}).Next())
			return nil
		},
	}
}

func newLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func buildService(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app.CueService, error) {
	var completer ports.Completer
	if cfg.AIEnabled() {
		completer = openai.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			openai.Options{
				APIKey:      cfg.OpenAIAPIKey,
				BaseURL:     cfg.OpenAIBaseURL,
				Model:       cfg.LLMModel,
				MaxTokens:   cfg.LLMMaxTokens,
				Temperature: cfg.LLMTemperature,
				Timeout:     cfg.LLMTimeout,
			},
			logger,
		)
	}
	return app.NewCueService(ctx, catalog.NewEmbeddedStore(), completer, stdRNG{}, logger)
}
