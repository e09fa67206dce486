package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	tokenlist "github.com/telcoin/token-list"
	"github.com/telcoin/token-list/fetch"
	"github.com/telcoin/token-list/internal/config"
	tlio "github.com/telcoin/token-list/internal/io"
	logslog "github.com/telcoin/token-list/internal/logging/slog"
)

func main() {
	ctx := context.Background()

	slog.SetDefault(slog.New(logslog.NewHandler(os.Stdout, nil)))

	sources, err := getSources()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to resolve token list sources", "error", err)

		os.Exit(1)
	}

	httpClient := http.DefaultClient

	for _, source := range sources {
		slog.InfoContext(
			ctx,
			fmt.Sprintf("Fetching token list '%s'", source.Name),
			"url", source.URL,
		)

		list, err := fetch.List(ctx, httpClient, source.URL)
		if err != nil {
			logFetchFailure(ctx, source, err)

			os.Exit(1)
		}

		logList(ctx, list)
	}
}

func logFetchFailure(ctx context.Context, source config.ListSource, err error) {
	var transportErr *fetch.TransportError
	if errors.As(err, &transportErr) {
		slog.ErrorContext(
			ctx,
			fmt.Sprintf("Failed to retrieve token list '%s'", source.Name),
			"error", err,
		)

		return
	}

	slog.ErrorContext(
		ctx,
		fmt.Sprintf("Token list '%s' is not a valid token list document", source.Name),
		"error", err,
	)
}

func logList(ctx context.Context, list *tokenlist.TokenList) {
	slog.InfoContext(
		ctx,
		fmt.Sprintf(
			"Retrieved token list '%s' version %s with %d tokens",
			list.Name,
			list.Version,
			len(list.Tokens),
		),
	)

	for _, token := range list.Tokens {
		slog.InfoContext(
			ctx,
			fmt.Sprintf(
				"Token: %s (%s) at %s on chain %d with %d decimals",
				token.Name,
				token.Symbol,
				token.Address,
				token.ChainID,
				token.Decimals,
			),
		)
	}
}

// getSources resolves the token lists to fetch from either a --url argument
// or a --config argument naming a YAML sources file.
func getSources() ([]config.ListSource, error) {
	var listURL, configFile string
	for _, arg := range os.Args[1:] {
		if parsedURL, hasPrefix := strings.CutPrefix(arg, "--url="); hasPrefix {
			listURL = parsedURL
		}

		if parsedFile, hasPrefix := strings.CutPrefix(arg, "--config="); hasPrefix {
			configFile = parsedFile
		}
	}

	if listURL != "" {
		return []config.ListSource{{Name: listURL, URL: listURL}}, nil
	}

	if configFile == "" {
		return nil, errors.New("either a --url or --config argument is required")
	}

	exists, err := tlio.FileExists(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check for config file: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("config file '%s' does not exist", configFile)
	}

	file, err := os.Open(configFile) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	sources, err := config.FromYAML(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return sources.Lists(), nil
}
