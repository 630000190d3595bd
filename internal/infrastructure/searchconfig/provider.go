// Package searchconfig implements port.SearchConfigProvider from the local
// configuration file and from a remote JSON document.
package searchconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/infrastructure/config"
)

// ConfigSource yields the current configuration. *config.Manager satisfies it.
type ConfigSource interface {
	Get() *config.Config
}

// ConfigProvider reads search settings from the loaded config file.
type ConfigProvider struct {
	source ConfigSource
}

var _ port.SearchConfigProvider = (*ConfigProvider)(nil)

// NewConfigProvider creates a provider over source.
func NewConfigProvider(source ConfigSource) *ConfigProvider {
	return &ConfigProvider{source: source}
}

func (p *ConfigProvider) DefaultEngineTemplate(_ context.Context) (string, error) {
	cfg := p.source.Get()
	return selectTemplate(cfg.Search.DefaultEngine, cfg.Search.Engines)
}

func (p *ConfigProvider) Engines(_ context.Context) ([]entity.SearchEngine, error) {
	cfg := p.source.Get()
	if len(cfg.Search.Engines) == 0 {
		return nil, fmt.Errorf("no engines configured: %w", entity.ErrConfigUnavailable)
	}
	return orderEngines(cfg.Search.DefaultEngine, cfg.Search.Engines), nil
}

func (p *ConfigProvider) IsHomepageEnabled(_ context.Context) (bool, error) {
	return p.source.Get().Homepage.Enabled, nil
}

func (p *ConfigProvider) DefaultHomepageURL(_ context.Context) (string, error) {
	home := p.source.Get().Homepage.URL
	if home == "" {
		return "", fmt.Errorf("no homepage configured: %w", entity.ErrConfigUnavailable)
	}
	return home, nil
}

// selectTemplate resolves current against engines. current may name an
// engine or be a raw template; an empty name picks the first engine.
func selectTemplate(current string, engines []entity.SearchEngine) (string, error) {
	if strings.Contains(current, "://") {
		return current, nil
	}
	for _, e := range engines {
		if strings.EqualFold(e.Name, current) {
			return e.Template, nil
		}
	}
	if current == "" && len(engines) > 0 {
		return engines[0].Template, nil
	}
	return "", fmt.Errorf("unknown search engine %q: %w", current, entity.ErrConfigUnavailable)
}

// orderEngines moves the current engine to the front.
func orderEngines(current string, engines []entity.SearchEngine) []entity.SearchEngine {
	out := make([]entity.SearchEngine, 0, len(engines))
	for _, e := range engines {
		if strings.EqualFold(e.Name, current) {
			out = append(out, e)
		}
	}
	for _, e := range engines {
		if !strings.EqualFold(e.Name, current) {
			out = append(out, e)
		}
	}
	return out
}
