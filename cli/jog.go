package cli

import (
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"pfeifer.dev/jogd/ipc"
)

func promptFloat(label string, def float64) (float64, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.FormatFloat(def, 'f', -1, 64),
		Validate: func(input string) error {
			_, err := strconv.ParseFloat(input, 64)
			return errors.Wrap(err, "not a number")
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, errors.Wrap(err, "prompt failed")
	}
	return strconv.ParseFloat(result, 64)
}

func jog() error {
	target, err := promptFloat("Target position (m)", 0)
	if err != nil {
		return err
	}
	velocity, err := promptFloat("Target velocity (m/s)", 0)
	if err != nil {
		return err
	}

	pub := ipc.NewPublisher[ipc.JogCommand](ipc.JogIn)
	return pub.Send(ipc.JogCommand{
		Type:           ipc.CommandMove,
		TargetPosition: target,
		TargetVelocity: velocity,
	})
}

func stop() error {
	pub := ipc.NewPublisher[ipc.JogCommand](ipc.JogIn)
	return pub.Send(ipc.JogCommand{Type: ipc.CommandStop})
}
