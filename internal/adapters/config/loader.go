// Package config provides the configuration loader for stravex.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only config file version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
	dirs   func() []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem replaces the filesystem the loader reads from.
func WithFileSystem(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithSearchDirs replaces the directories searched when no path is given.
func WithSearchDirs(dirs ...string) LoaderOption {
	return func(l *Loader) {
		l.dirs = func() []string { return dirs }
	}
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		Logger: logger,
		fs:     NewOSFS(),
		dirs:   defaultSearchDirs,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// defaultSearchDirs returns the working directory and the user config directory.
func defaultSearchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(cfgDir, "stravex"))
	}
	return dirs
}

// Load reads the configuration at path and overlays it on the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		found, ok := l.findConfiguration()
		if !ok {
			cfg := domain.DefaultConfig()
			l.checkExportDir(cfg.ExportDir)
			return cfg, nil
		}
		path = found
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.checkExportDir(cfg.ExportDir)
	return cfg, nil
}

func (l *Loader) findConfiguration() (string, bool) {
	for _, dir := range l.dirs() {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// checkExportDir warns when the export monitor will have nothing to watch.
func (l *Loader) checkExportDir(dir string) {
	if dir == "" {
		l.Logger.Warn("export directory is unknown; exported files will not be reported")
		return
	}
	info, err := l.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		l.Logger.Warn(fmt.Sprintf("export directory %s does not exist; exported files will not be reported", dir))
	}
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (*domain.Config, error) {
	defaults := domain.DefaultConfig()
	file := newConfigfile(defaults)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrInvalidConfig, "version", file.Version)
	}

	cfg := &domain.Config{
		Catalog:     buildCatalog(defaults.Catalog, file.Entities),
		Layout:      file.Layout,
		Timing:      file.Timing.toDomain(),
		SelectBatch: file.Run.SelectBatch,
		RowAdvance:  file.Run.RowAdvance,
		ExportDir:   file.Run.ExportDir,
	}
	if err := validate(cfg, &file.Timing); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildCatalog overlays the entities section on the default catalog.
// A custom list without explicit defaults keeps every listed entity.
func buildCatalog(base domain.Catalog, dto EntitiesDTO) domain.Catalog {
	c := base
	if dto.All != nil {
		c.All = toCodes(dto.All)
		c.Defaults = slices.Clone(c.All)
	}
	if dto.Defaults != nil {
		c.Defaults = toCodes(dto.Defaults)
	}
	return c
}

func toCodes(raw []string) []domain.EntityCode {
	codes := make([]domain.EntityCode, len(raw))
	for i, s := range raw {
		codes[i] = domain.EntityCode(s)
	}
	return codes
}

func validate(cfg *domain.Config, timing *TimingDTO) error {
	if err := cfg.Catalog.Validate(); err != nil {
		return err
	}

	if cfg.Layout.MainWindow == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "layout.main_window")
	}
	if _, err := regexp.Compile(cfg.Layout.PeriodPattern); err != nil {
		err = zerr.Wrap(err, domain.ErrInvalidConfig.Error())
		return zerr.With(err, "field", "layout.period_pattern")
	}

	polls := timing.polls()
	for _, key := range slices.Sorted(maps.Keys(polls)) {
		p := polls[key]
		if p.Timeout <= 0 || p.Interval <= 0 {
			err := zerr.With(domain.ErrInvalidConfig, "field", "timing."+key)
			return zerr.With(err, "reason", "timeout and interval must be positive")
		}
	}
	delays := timing.delays()
	for _, key := range slices.Sorted(maps.Keys(delays)) {
		if delays[key] < 0 {
			err := zerr.With(domain.ErrInvalidConfig, "field", "timing."+key)
			return zerr.With(err, "reason", "delay must not be negative")
		}
	}

	if cfg.SelectBatch < 1 {
		return zerr.With(domain.ErrInvalidBatchSize, "select_batch", cfg.SelectBatch)
	}
	if cfg.RowAdvance < 1 {
		return zerr.With(domain.ErrInvalidConfig, "field", "run.row_advance")
	}
	return nil
}
