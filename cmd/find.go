package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamusis/jobskill-cli/internal/config"
	"github.com/kamusis/jobskill-cli/internal/jobs"
	"github.com/kamusis/jobskill-cli/internal/logging"
	"github.com/spf13/cobra"
)

const (
	bannerTitle = "Job Posting Aggregator - Skills Search"
	bannerWidth = 50
	serverHint  = "Make sure the server is running: npm start"

	// strictExitCode is returned for failed searches when --strict is set.
	strictExitCode = 2
)

// runFind implements the root command: guidance without arguments, a
// skills search otherwise.
func runFind(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	out := newConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	ctx := logging.WithLogger(cmd.Context(), logger)
	logger.Debug("effective config", "api_base", cfg.APIBase, "limit", cfg.Limit, "timeout", cfg.Timeout)

	if f.saveConfig {
		p, err := saveConfig(cfg)
		if err != nil {
			return err
		}
		out.ok("", fmt.Sprintf("config saved: %s", p))
	}

	client := jobs.NewClient(cfg.APIBase, cfg.Timeout)

	if len(args) == 0 {
		catalog := jobs.FetchCatalog(ctx, client)
		jobs.RenderGuidance(out.out, cmd.Root().Name(), catalog)
		return &exitError{code: 1}
	}
	return searchSkills(ctx, out, client, args, cfg.Limit, f.strict)
}

// searchSkills runs one search and reports every failure as output. Failed
// searches still exit 0 unless strict is set.
func searchSkills(ctx context.Context, out console, client *jobs.Client, skills []string, limit int, strict bool) error {
	out.banner(bannerTitle, bannerWidth)

	res, err := client.Search(ctx, skills, limit)
	switch {
	case errors.Is(err, jobs.ErrUnreachable):
		logging.FromContext(ctx).Debug("connection failed", "err", err)
		out.fail("", fmt.Sprintf("Could not connect to the API server at %s.", client.BaseURL()))
		out.hint(serverHint)
		return searchFailed(strict)
	case err != nil:
		out.fail("", fmt.Sprintf("Request failed: %v", err))
		return searchFailed(strict)
	}

	jobs.Render(out.out, *res, skills)
	if !res.Success {
		return searchFailed(strict)
	}
	return nil
}

func searchFailed(strict bool) error {
	if strict {
		return &exitError{code: strictExitCode}
	}
	return nil
}

// resolveConfig layers explicitly set flags over config.Resolve.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("api-base") {
		cfg.APIBase = f.apiBase
	}
	if flags.Changed("limit") {
		cfg.Limit = f.limit
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// saveConfig persists the connection settings over whatever config.yaml
// already holds and makes sure the .env template exists next to it.
func saveConfig(cfg *config.Config) (string, error) {
	stored, err := config.LoadFile()
	if err != nil {
		return "", err
	}
	stored.APIBase = cfg.APIBase
	stored.Limit = cfg.Limit
	stored.Timeout = cfg.Timeout

	p, err := config.Save(stored)
	if err != nil {
		return "", err
	}
	return p, config.EnsureDotEnvTemplate()
}
