package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rtpkit/internal/config"
	"rtpkit/internal/logging"
	"rtpkit/internal/planstore"
	"rtpkit/internal/rtp"
	"rtpkit/internal/rtpfile"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once and prunes expired log files.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		if removed := logging.PruneLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, cfg.LogFilePath()); removed > 0 {
			logger.Debug("pruned old log files", logging.Int("removed", removed))
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runContext tags the command's context with a fresh run ID. Callers attach
// it to log lines with logging.WithContext.
func (c *commandContext) runContext(cmd *cobra.Command) (context.Context, *slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.NewString())
	return ctx, logging.NewComponentLogger(logger, "cli"), nil
}

// decodeOverrides carries per-invocation flags that take precedence over the
// [decode] config section.
type decodeOverrides struct {
	strict   bool
	encoding string
}

func (c *commandContext) decodeFile(ctx context.Context, logger *slog.Logger, path string, overrides decodeOverrides) (*rtp.TreatmentPlan, rtpfile.Info, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, rtpfile.Info{}, err
	}
	opts := rtpfile.OptionsFromConfig(cfg, logger)
	if overrides.strict {
		opts.Strict = true
	}
	if enc := strings.TrimSpace(overrides.encoding); enc != "" {
		opts.Encoding = config.NormalizeEncoding(enc)
	}

	ctx = logging.WithSourcePath(ctx, path)
	plan, info, err := rtpfile.Open(ctx, path, opts)
	if err != nil {
		logging.ErrorWithContext(logging.WithContext(ctx, logger), "decode failed", "decode_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, errorHint(err)),
		)
		return nil, info, fmt.Errorf("decode %s: %w", path, err)
	}
	logging.WithContext(ctx, logger).Info("plan decoded",
		logging.Int("lines", info.Lines),
		logging.Int("records", info.RecordCount()),
		logging.Int("skipped", info.Skipped),
		logging.Duration("duration", info.Duration),
		logging.String(logging.FieldEventType, "plan_decoded"),
	)
	return plan, info, nil
}

func (c *commandContext) withStore(ctx context.Context, logger *slog.Logger, fn func(*planstore.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Store.Enabled {
		return errors.New("plan store is disabled (set store.enabled = true in the config)")
	}
	store, err := planstore.Open(ctx, cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("open plan store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func errorHint(err error) string {
	switch rtp.ErrorKind(err) {
	case "arity":
		return "the record has the wrong number of fields; check the export version"
	case "checksum":
		return "the trailing crc field is not an integer; the line may be truncated"
	case "capacity":
		return "a leaf or point count exceeds the reserved slots"
	case "value":
		return "a mandatory number could not be parsed"
	case "duplicate":
		return "rerun without --strict to keep the last occurrence"
	}
	switch {
	case errors.Is(err, rtpfile.ErrLineTooLong):
		return "raise decode.max_line_bytes"
	default:
		return "check the file path and encoding"
	}
}

// describeError formats err for the terminal, leading with the line number
// and error kind for decode failures.
func describeError(err error) string {
	var lineErr *rtp.LineError
	if errors.As(err, &lineErr) {
		return fmt.Sprintf("error: line %d: %s error: %v", lineErr.Line, rtp.ErrorKind(err), lineErr.Err)
	}
	return fmt.Sprintf("error: %v", err)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
