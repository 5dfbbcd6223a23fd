package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/jogd/motion"
	"pfeifer.dev/jogd/params"
)

func tempParams(t *testing.T) {
	t.Helper()
	oldPath := params.ParamsPath
	oldParam := params.JOGD_SETTINGS
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	params.JOGD_SETTINGS = params.ParamPath("JogdSettings")
	t.Cleanup(func() {
		params.ParamsPath = oldPath
		params.JOGD_SETTINGS = oldParam
	})
	params.EnsureParamDirectories()
}

func TestDefaultLimitsAreValid(t *testing.T) {
	s := JogdSettings{}
	s.Default()
	assert.NoError(t, s.Limits().Validate())
	assert.Equal(t, "error", s.LogLevel)
}

func TestSetLimits(t *testing.T) {
	s := JogdSettings{}
	s.Default()

	lim := motion.Limits{MaxVelocity: 0.2, MaxAcceleration: 1, MaxJerk: 10}
	require.NoError(t, s.SetLimits(lim))
	assert.Equal(t, lim, s.Limits())

	err := s.SetLimits(motion.Limits{MaxVelocity: 0, MaxAcceleration: 1, MaxJerk: 10})
	assert.Error(t, err)
	assert.Equal(t, lim, s.Limits(), "rejected limits must not stick")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tempParams(t)

	s := JogdSettings{}
	s.Default()
	s.MaxVelocity = 0.25
	s.LogLevel = "debug"
	s.Save()

	loaded := JogdSettings{}
	require.True(t, loaded.Load())
	assert.Equal(t, s, loaded)
}

func TestLoadMissingFallsBackToDefaults(t *testing.T) {
	tempParams(t)

	s := JogdSettings{}
	assert.False(t, s.Load())

	defaults := JogdSettings{}
	defaults.Default()
	assert.Equal(t, defaults, s)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	tempParams(t)

	require.NoError(t, params.PutParam(params.JOGD_SETTINGS, []byte(`{"max_velocity": 0.3}`)))

	s := JogdSettings{}
	require.True(t, s.Load())
	assert.Equal(t, 0.3, s.MaxVelocity)
	assert.Equal(t, 0.5, s.MaxAcceleration, "fields absent from the param keep defaults")
	assert.Equal(t, 5.0, s.MaxJerk)
}
