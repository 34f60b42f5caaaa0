package ai

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Provider sends one prompt to a generative model and returns its raw text reply.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider in logs and health checks.
	Name() string
}

// ProviderConfig carries everything a provider factory may need.
type ProviderConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	Logger    *zap.Logger
	DebugMode bool
}

// ProviderFactory creates a provider from its configuration.
type ProviderFactory func(ctx context.Context, cfg ProviderConfig) (Provider, error)

// ProviderRegistry stores available AI providers
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// DefaultProviderRegistry returns a registry with the built-in providers.
func DefaultProviderRegistry() *ProviderRegistry {
	r := NewProviderRegistry()
	r.Register(ProviderGemini, NewGeminiProviderFromConfig)
	r.Register(ProviderOpenAI, NewOpenAIProviderFromConfig)
	return r
}

// Register registers a provider factory
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// GetProvider gets a provider by name
func (r *ProviderRegistry) GetProvider(ctx context.Context, name string, cfg ProviderConfig) (Provider, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, &ErrProviderNotFound{Name: name}
	}

	return factory(ctx, cfg)
}

// Names lists the registered provider names in sorted order.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrProviderNotFound is returned when a provider is not found
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return "AI provider not found: " + e.Name
}
