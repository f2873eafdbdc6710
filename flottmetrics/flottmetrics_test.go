package flottmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/flottgo/flott"
)

func TestNewRecorderExposesFourCollectors(t *testing.T) {
	r := NewRecorder("a")
	require.Len(t, r.Collectors(), 4)
}

func TestRecorderRegisterIsIdempotent(t *testing.T) {
	r := NewRecorder("idempotent")
	reg := prometheus.NewRegistry()
	r.Register(reg)
	require.NotPanics(t, func() { r.Register(reg) })

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)
}

func TestRecorderInitSetsTokensRemaining(t *testing.T) {
	r := NewRecorder("init")
	r.Init(42)
	require.Equal(t, float64(42), readGauge(t, r.RunTokens))
}

func TestRecorderStepUpdatesAllCollectors(t *testing.T) {
	r := NewRecorder("step")
	r.Init(16)
	r.Step(flott.StepEvent{
		Level:           1,
		Kappa:           3,
		Complexity:      2.5,
		RemainingTokens: 4,
	})

	require.Equal(t, float64(1), readCounter(t, r.Levels))
	require.Equal(t, 2.5, readGauge(t, r.Complexity))
	require.Equal(t, float64(4), readGauge(t, r.RunTokens))

	var m dto.Metric
	require.NoError(t, r.KappaHist.Write(&m))
	require.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	require.Equal(t, float64(3), m.GetHistogram().GetSampleSum())
}

func TestRecorderStepAccumulatesLevelsAcrossCalls(t *testing.T) {
	r := NewRecorder("accumulate")
	r.Step(flott.StepEvent{Kappa: 1})
	r.Step(flott.StepEvent{Kappa: 2})
	r.Step(flott.StepEvent{Kappa: 3})
	require.Equal(t, float64(3), readCounter(t, r.Levels))
}

func readGauge(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func readCounter(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
