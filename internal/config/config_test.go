package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, time.Hour, cfg.Scheduling.MinLead)
	assert.Equal(t, 30*time.Minute, cfg.Scheduling.SlotDuration)
	assert.Equal(t, 30*time.Minute, cfg.Scheduling.DefaultDuration)
	assert.Equal(t, 90*24*time.Hour, cfg.Scheduling.MaxPeriod)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SLOT_MINUTES", "20")
	t.Setenv("MIN_LEAD_MINUTES", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 20*time.Minute, cfg.Scheduling.SlotDuration)
	assert.Equal(t, 2*time.Hour, cfg.Scheduling.MinLead)
}

func TestLoad_RejectsZeroSlot(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SLOT_MINUTES", "0")

	_, err := Load()
	assert.Error(t, err)
}
