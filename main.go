package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/jogd/cli"
	"pfeifer.dev/jogd/ipc"
	"pfeifer.dev/jogd/params"
	"pfeifer.dev/jogd/settings"
	"pfeifer.dev/jogd/utils"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelError)
	params.EnsureParamDirectories()
	settings.Settings.LoadWithRetries(5)
	cli.Handle()

	state := State{}
	state.Init()

	pub := ipc.NewPublisher[ipc.JogState](ipc.JogOut)
	sub := ipc.NewSubscriber[ipc.JogCommand](ipc.JogIn, false)
	defer sub.Sub.Msgq.Close()

	for {
		time.Sleep(settings.LOOP_DELAY)
		state.Timer.Update()

		for {
			cmd, success := sub.Read()
			if !success {
				break
			}
			err := state.HandleCommand(cmd)
			utils.Logde(errors.Wrap(err, "could not handle command"))
		}

		state.Advance(state.Timer.Dt())

		err := pub.Send(state.ToMessage())
		if err != nil {
			slog.Error("Failed to send update", "error", err)
		}
	}
}
