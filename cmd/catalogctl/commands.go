package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/config"
	"github.com/kailas-cloud/shopassist/internal/transport/translate"
	"github.com/kailas-cloud/shopassist/internal/usecase/translation"
	"github.com/kailas-cloud/shopassist/internal/version"
	shopassist "github.com/kailas-cloud/shopassist/pkg/sdk"
)

const defaultTimeout = 10 * time.Second

// translatorFactory builds the translator used by --translate.
type translatorFactory func(timeout time.Duration, logger *zap.Logger) shopassist.Translator

// newTranslator chains the keyless public providers: Google first, MyMemory second.
func newTranslator(timeout time.Duration, logger *zap.Logger) shopassist.Translator {
	email := os.Getenv("MYMEMORY_EMAIL")
	return translate.NewChain(logger,
		translation.NewInstrumentedTranslator(
			translate.NewGoogle(timeout, logger), config.ProviderGoogle, timeout, logger),
		translation.NewInstrumentedTranslator(
			translate.NewMyMemory(email, timeout, logger), config.ProviderMyMemory, timeout, logger),
	)
}

type rootOptions struct {
	out           io.Writer
	verbose       bool
	newTranslator translatorFactory
}

// newRootCmd creates the catalogctl command tree writing results to out.
func newRootCmd(out io.Writer, tf translatorFactory) *cobra.Command {
	opts := &rootOptions{out: out, newTranslator: tf}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect the shopassist catalog and matching pipeline",
		Long: `catalogctl runs the shopassist recommendation pipeline locally.

Use this tool to:
- List catalog products
- See how a query resolves to a category without translation
- Run full recommendations, optionally translating through public providers

All commands print JSON.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline operations to stderr")

	rootCmd.AddCommand(newProductsCmd(opts))
	rootCmd.AddCommand(newProductCmd(opts))
	rootCmd.AddCommand(newMatchCmd(opts))
	rootCmd.AddCommand(newRecommendCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	return rootCmd
}

// newProductsCmd creates the products subcommand.
func newProductsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List all catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			return opts.print(client.Products())
		},
	}
}

// newProductCmd creates the product subcommand.
func newProductCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a single catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			p, err := client.Product(args[0])
			if err != nil {
				return err
			}
			return opts.print(p)
		},
	}
}

// newMatchCmd creates the match subcommand.
func newMatchCmd(opts *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Resolve a query to a category and products without translation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			return opts.print(client.Match(strings.Join(args, " "), lang))
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "query language code")
	return cmd
}

// newRecommendCmd creates the recommend subcommand.
func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		lang         string
		useTranslate bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Run the full recommendation pipeline",
		Long: `Run the full recommendation pipeline. Without --translate, non-English
queries are matched as written and the response stays in English.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sdkOpts []shopassist.Option
			if useTranslate {
				sdkOpts = append(sdkOpts,
					shopassist.WithTranslator(opts.newTranslator(timeout, opts.zapLogger())),
					shopassist.WithTranslateTimeout(timeout),
				)
			}
			client, err := opts.client(sdkOpts...)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 3*timeout)
			defer cancel()

			rec, err := client.Recommend(ctx, strings.Join(args, " "), lang)
			if err != nil {
				return fmt.Errorf("recommend: %w", err)
			}
			return opts.print(rec)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "query language code")
	cmd.Flags().BoolVar(&useTranslate, "translate", false, "translate via Google and MyMemory")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "per-call translation timeout")
	return cmd
}

// newVersionCmd creates the version subcommand.
func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.print(map[string]string{
				"version": version.Version,
				"commit":  version.Commit,
				"date":    version.Date,
			})
		},
	}
}

func (o *rootOptions) client(extra ...shopassist.Option) (*shopassist.Client, error) {
	sdkOpts := extra
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		sdkOpts = append(sdkOpts, shopassist.WithLogger(logger))
	}
	client, err := shopassist.New(sdkOpts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func (o *rootOptions) zapLogger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (o *rootOptions) print(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
