package ipc

import (
	"pfeifer.dev/jogd/motion"
)

type CommandType string

const (
	CommandMove           CommandType = "move"
	CommandStop           CommandType = "stop"
	CommandSetLimits      CommandType = "setLimits"
	CommandReloadSettings CommandType = "reloadSettings"
	CommandSaveSettings   CommandType = "saveSettings"
	CommandSetLogLevel    CommandType = "setLogLevel"
)

// JogCommand is the jogIn message. Limits is only consulted for setLimits
// and LogLevel only for setLogLevel.
type JogCommand struct {
	Type           CommandType    `json:"type"`
	TargetPosition float64        `json:"target_position"`
	TargetVelocity float64        `json:"target_velocity"`
	Limits         *motion.Limits `json:"limits,omitempty"`
	LogLevel       string         `json:"log_level,omitempty"`
}

// JogState is the jogOut telemetry message, published once per control tick.
type JogState struct {
	Time           float64               `json:"time"`
	State          motion.KinematicState `json:"state"`
	Jerk           float64               `json:"jerk"`
	Moving         bool                  `json:"moving"`
	TargetPosition float64               `json:"target_position"`
	TargetVelocity float64               `json:"target_velocity"`
	Replans        uint64                `json:"replans"`
	LoopJitter     float64               `json:"loop_jitter"`
}
