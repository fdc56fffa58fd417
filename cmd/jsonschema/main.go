// Package main provides the CLI entry point for the jsonschema tool, which
// validates JSON or YAML instance documents against a JSON Schema draft-07
// document.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/schemakit/jsonschema"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		schemaPath   string
		assertFormat bool
		quiet        bool
	)

	rootCmd := &cobra.Command{
		Use:   "jsonschema",
		Short: "JSON Schema draft-07 validation",
	}

	validateCmd := &cobra.Command{
		Use:   "validate --schema <schema.json> <instance.json> [instance2.json ...]",
		Short: "Validate instance documents against a schema",
		Long: `validate checks each instance document against the given JSON Schema
draft-07 document. Schemas and instances may be JSON or YAML; YAML is
detected by the .yaml / .yml extension. "-" reads an instance from stdin.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(logger, schemaPath, assertFormat, quiet, args)
		},
	}

	validateCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema document (required)")
	validateCmd.Flags().BoolVar(&assertFormat, "assert-format", true, "treat the format keyword as an assertion")
	validateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-error output, report only the verdict")
	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		logger.Error("register flags", "err", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("validation failed", "err", err)
		os.Exit(1)
	}
}

func runValidate(logger *slog.Logger, schemaPath string, assertFormat, quiet bool, args []string) error {
	compiler := jsonschema.NewCompiler().WithAssertFormat(assertFormat)

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	var schema *jsonschema.Schema
	if isYAMLPath(schemaPath) {
		schema, err = compiler.CompileYAML(schemaData)
	} else {
		schema, err = compiler.Compile(schemaData)
	}
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	invalid := 0
	for _, arg := range args {
		instance, err := readInstance(arg)
		if err != nil {
			return err
		}

		result := schema.Validate(instance)
		if result.IsValid() {
			logger.Info("valid", "instance", arg)
			continue
		}

		invalid++
		if quiet {
			logger.Error("invalid", "instance", arg, "errors", len(result.Errors))
			continue
		}
		for _, msg := range result.Messages() {
			logger.Error("invalid", "instance", arg, "error", msg)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d instance(s) failed validation", invalid, len(args))
	}
	return nil
}

func readInstance(path string) (any, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read instance %s: %w", path, err)
	}

	var instance any
	if path != "-" && isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &instance); err != nil {
			return nil, fmt.Errorf("parse instance %s: %w", path, err)
		}
		return instance, nil
	}
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("parse instance %s: %w", path, err)
	}
	return instance, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
