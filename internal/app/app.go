package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/deepkey/ident"
	"github.com/vk/deepkey/internal/ctxlog"
	"github.com/vk/deepkey/internal/hclmap"
	"github.com/vk/deepkey/internal/loader"
	"github.com/vk/deepkey/keypath"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders *loader.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and loader registry.
// Results go to outW; logs go to logW so resolved values stay pipeable.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	loaders := loader.NewRegistry()
	loaders.Register(".hcl", hclmap.Load)
	loaders.Register(".json", loader.LoadJSON)
	logger.Debug("Format loaders registered.", "formats", []string{".hcl", ".json"})

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: loaders,
	}
}

// Run loads the input into a nested mapping and executes the configured
// operation: listing every reachable path, or resolving one.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	mapping, err := a.loaders.LoadAll(ctx, a.config.InputPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Input loaded.", "path", a.config.InputPath)

	if a.config.ListKeys {
		return a.listKeys(mapping)
	}
	return a.resolve(ctx, mapping)
}

// listKeys prints every canonical path reachable in the mapping, one per line.
func (a *App) listKeys(mapping map[string]any) error {
	for _, path := range keypath.FlattenKeys(mapping) {
		fmt.Fprintln(a.outW, path)
	}
	return nil
}

// resolve normalizes the configured fragments into one canonical path and
// prints the value it addresses. On a miss the valid-path diagnostic listing
// goes to the output before the error propagates.
func (a *App) resolve(ctx context.Context, mapping map[string]any) error {
	logger := ctxlog.FromContext(ctx)

	path, err := keypath.Normalize(a.config.Fragments...)
	if err != nil {
		return err
	}
	logger.Debug("Fragments normalized.", "path", path)

	for _, segment := range strings.Split(path, keypath.Separator) {
		if !ident.IsValidName(segment) {
			logger.Warn("Path segment is not a valid identifier.", "segment", segment)
		}
	}

	value, err := keypath.Get(mapping, path)
	if err != nil {
		var notFound *keypath.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(a.outW, "Path %q not found. Available paths:\n", notFound.Path)
			for _, valid := range notFound.Valid {
				fmt.Fprintf(a.outW, "  %s\n", valid)
			}
		}
		return err
	}

	rendered, err := render(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, rendered)
	return nil
}

// render formats a resolved value as JSON. Loaded mappings hold only
// JSON-representable shapes, so encoding failures indicate programmer error.
func render(value any) (string, error) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render resolved value: %w", err)
	}
	return string(out), nil
}
