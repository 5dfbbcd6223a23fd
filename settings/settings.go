package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/jogd/motion"
	"pfeifer.dev/jogd/params"
	"pfeifer.dev/jogd/utils"
)

var (
	Settings = JogdSettings{}
)

type JogdSettings struct {
	LogLevel        string  `json:"log_level"`
	MaxVelocity     float64 `json:"max_velocity"`
	MaxAcceleration float64 `json:"max_acceleration"`
	MaxJerk         float64 `json:"max_jerk"`
}

func (s *JogdSettings) Default() {
	s.LogLevel = "error"
	s.MaxVelocity = 0.1
	s.MaxAcceleration = 0.5
	s.MaxJerk = 5
}

func (s *JogdSettings) Limits() motion.Limits {
	return motion.Limits{
		MaxVelocity:     s.MaxVelocity,
		MaxAcceleration: s.MaxAcceleration,
		MaxJerk:         s.MaxJerk,
	}
}

func (s *JogdSettings) SetLimits(lim motion.Limits) error {
	if err := lim.Validate(); err != nil {
		return err
	}
	s.MaxVelocity = lim.MaxVelocity
	s.MaxAcceleration = lim.MaxAcceleration
	s.MaxJerk = lim.MaxJerk
	return nil
}

func (s *JogdSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.JOGD_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.ApplyLogLevel()

	return true
}

func (s *JogdSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *JogdSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.JOGD_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *JogdSettings) SetLogLevel(level string) {
	s.LogLevel = level
	s.ApplyLogLevel()
}

func (s *JogdSettings) ApplyLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}
