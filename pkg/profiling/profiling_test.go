package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/inzzo/inzzo-landing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes("")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_Custom(t *testing.T) {
	got, err := parseProfileTypes("cpu, alloc_space,,mutex,cpu")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported O11Y_PROFILING_SAMPLE_TYPES")
}

func TestBuildApplicationName(t *testing.T) {
	obs := config.ObservabilityConfig{
		ServiceName:      "inzzo-landing",
		ServiceNamespace: "inzzo",
		ServiceVersion:   "1.0.0",
	}
	got := buildApplicationName("", obs, "production")
	assert.Equal(t, "inzzo-landing{service_name=inzzo-landing,namespace=inzzo,environment=production,service_version=1.0.0}", got)

	obs.ServiceInstanceID = "vm-1"
	got = buildApplicationName("landing", obs, "staging")
	assert.Equal(t, "landing{service_name=inzzo-landing,namespace=inzzo,environment=staging,service_version=1.0.0,instance=vm-1}", got)
}

func TestInitProfiler_Disabled(t *testing.T) {
	stop, err := InitProfiler(config.ProfilingConfig{Enabled: false}, config.ObservabilityConfig{}, "test")
	require.NoError(t, err)
	assert.NotPanics(t, stop)
}

func TestInitProfiler_MissingEndpoint(t *testing.T) {
	_, err := InitProfiler(config.ProfilingConfig{Enabled: true, Endpoint: "  "}, config.ObservabilityConfig{}, "test")
	require.Error(t, err)
}
