package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/config"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/logging"
	"github.com/HumzahChoudry/redux-api-resources/internal/store"
)

func newReplayCmd() *cobra.Command {
	var (
		specs      []string
		configFile string
		file       string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an action log and print the resulting state",
		Long: `Replay reads a YAML or JSON list of {type, payload, meta} actions and
dispatches them in order to the registered resources. Resources come from
the resources list of a service config file (--config) and from --resource
flags of the form name[:id_attribute[:merge]]. Actions no resource claims are
skipped with a warning unless --strict is set.`,
		Example: `  resourcectl replay --resource users --resource posts:slug:merge --file actions.yaml
  resourcectl replay --config configs/base.yaml --file actions.json
  cat actions.json | resourcectl replay --resource users`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resources, err := collectResources(configFile, specs)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("cannot open %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			actions, err := decodeActions(in)
			if err != nil {
				return err
			}

			logger := logging.New(logLevel, "text", cmd.ErrOrStderr())
			snapshot, err := replay(cmd.Context(), resources, actions, strict, logger)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snapshot)
		},
	}

	cmd.Flags().StringArrayVar(&specs, "resource", nil, "Resource to register as name[:id_attribute[:merge]] (repeatable)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Service config file whose resources list is registered")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Action log to replay (YAML or JSON); - reads stdin")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on actions no resource claims")
	cmd.MarkFlagsOneRequired("resource", "config")

	return cmd
}

// collectResources registers the config file's resources first, then the
// flag specs in order.
func collectResources(configFile string, specs []string) ([]config.ResourceConfig, error) {
	var resources []config.ResourceConfig
	if configFile != "" {
		fromFile, err := config.LoadResources(configFile)
		if err != nil {
			return nil, err
		}
		resources = fromFile
	}

	fromFlags, err := parseResourceSpecs(specs)
	if err != nil {
		return nil, err
	}
	return append(resources, fromFlags...), nil
}

// parseResourceSpecs turns name[:id_attribute[:merge]] flags into resource
// configuration entries.
func parseResourceSpecs(specs []string) ([]config.ResourceConfig, error) {
	resources := make([]config.ResourceConfig, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid --resource %q: want name[:id_attribute[:merge]]", spec)
		}

		rc := config.ResourceConfig{Name: parts[0]}
		if len(parts) > 1 {
			rc.IDAttribute = parts[1]
		}
		if len(parts) > 2 {
			switch parts[2] {
			case "merge", "replace", "":
				rc.Merge = parts[2]
			default:
				return nil, fmt.Errorf("invalid --resource %q: merge strategy must be merge or replace", spec)
			}
		}
		resources = append(resources, rc)
	}
	return resources, nil
}

// decodeActions reads a YAML sequence of actions. JSON input is accepted as
// the YAML subset it is.
func decodeActions(r io.Reader) ([]resource.Action, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding action log: %w", err)
	}

	actions := make([]resource.Action, len(raw))
	for i, entry := range raw {
		encoded, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		if err := json.Unmarshal(encoded, &actions[i]); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return actions, nil
}

// replay dispatches actions in order and returns the final snapshot.
func replay(
	ctx context.Context,
	resources []config.ResourceConfig,
	actions []resource.Action,
	strict bool,
	logger *slog.Logger,
) (map[string]resource.State, error) {
	s, err := store.Build(resources, logger, nil)
	if err != nil {
		return nil, err
	}

	for i, a := range actions {
		err := s.Dispatch(ctx, a)
		switch {
		case err == nil:
		case !strict && errors.Is(err, domain.ErrNotFound):
			logger.Warn("action skipped",
				slog.Int("index", i),
				slog.String("type", a.Type.String()),
			)
		default:
			return nil, fmt.Errorf("action %d (%s): %w", i, a.Type, err)
		}
	}

	return s.Snapshot(), nil
}
