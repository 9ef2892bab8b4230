package arena

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/udisondev/arenago/internal/arena"

// DefaultMeter returns the meter of the global OTel provider
// (no-op unless a provider is installed).
func DefaultMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics holds the session instruments.
type Metrics struct {
	doorTransitions    metric.Int64Counter
	weaponActivations  metric.Int64Counter
	projectilesSpawned metric.Int64Counter
	pendingInputs      metric.Int64ObservableGauge
}

// NewMetrics creates the session instruments on m.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.doorTransitions, err = m.Int64Counter(
		"arena.door.transitions",
		metric.WithDescription("Door state changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating door transitions counter: %w", err)
	}

	mt.weaponActivations, err = m.Int64Counter(
		"arena.weapon.activations",
		metric.WithDescription("Weapon primary actions by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating weapon activations counter: %w", err)
	}

	mt.projectilesSpawned, err = m.Int64Counter(
		"arena.projectiles.spawned",
		metric.WithDescription("Projectiles accepted by the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projectiles counter: %w", err)
	}

	mt.pendingInputs, err = m.Int64ObservableGauge(
		"arena.input.pending",
		metric.WithDescription("Fire inputs waiting for the next tick"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pending inputs gauge: %w", err)
	}

	return &mt, nil
}

// observePending registers the callback reporting the input queue length.
func (m *Metrics) observePending(meter metric.Meter, pending func() int) error {
	_, err := meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(m.pendingInputs, int64(pending()))
			return nil
		},
		m.pendingInputs,
	)
	if err != nil {
		return fmt.Errorf("registering pending inputs callback: %w", err)
	}
	return nil
}

func (m *Metrics) doorTransition(state string) {
	if m == nil {
		return
	}
	m.doorTransitions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("state", state)))
}

func (m *Metrics) weaponActivation(item, result string) {
	if m == nil {
		return
	}
	m.weaponActivations.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("weapon", item),
			attribute.String("result", result)))
}

func (m *Metrics) projectileSpawned(item string) {
	if m == nil {
		return
	}
	m.projectilesSpawned.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("weapon", item)))
}
