package aqi

import "context"

// Provider produces an advisory for a validated query.
type Provider interface {
	GetAdvisory(ctx context.Context, q Query) (Result, error)
}

// Providers maps each variant to its implementation.
type Providers map[Variant]Provider

// LocalProvider answers from the static tables.
type LocalProvider struct{}

// NewLocalProvider constructs the table-driven provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// GetAdvisory implements Provider. It never fails for a validated query.
func (p *LocalProvider) GetAdvisory(_ context.Context, q Query) (Result, error) {
	return Generate(Categorize(q.AQI), q.AQI, q.City, q.TimeOfDay), nil
}

var _ Provider = (*LocalProvider)(nil)
