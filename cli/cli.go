package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active jogd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "monitor",
				Aliases: []string{"m"},
				Usage:   "Watch the live axis state from an active jogd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					monitor()
					return nil
				},
			},
			{
				Name:    "jog",
				Aliases: []string{"j"},
				Usage:   "Prompt for a target and send a single move to an active jogd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jog()
				},
			},
			{
				Name:    "stop",
				Aliases: []string{"s"},
				Usage:   "Tell an active jogd instance to brake to rest",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return stop()
				},
			},
			{
				Name: "simulate",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Category: "Move",
						Name:     "target",
						Usage:    "Target position in meters",
						Aliases: []string{
							"t",
						},
						Value: 0.04,
					},
					&cli.Float64Flag{
						Category: "Move",
						Name:     "target-velocity",
						Usage:    "Velocity to carry through the target in meters per second",
						Value:    0,
					},
					&cli.Float64Flag{
						Category: "Replan",
						Name:     "replan-at",
						Usage:    "Time in seconds at which to retarget mid-flight",
						Value:    -1,
					},
					&cli.Float64Flag{
						Category: "Replan",
						Name:     "replan-target",
						Usage:    "Replacement target position used at replan-at",
						Value:    0,
					},
					&cli.Float64Flag{
						Category: "Inputs and Outputs",
						Name:     "step",
						Usage:    "Sample step in seconds for the output table",
						Value:    0.001,
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Usage:    "File to write the gnuplot-style sample table to",
						Aliases: []string{
							"o",
						},
						Value: "./trajectory.data",
					},
				},
				Usage: "Plan a move offline and write its sampled profile to a file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return simulate(simulateSettings{
						Target:         cmd.Float64("target"),
						TargetVelocity: cmd.Float64("target-velocity"),
						ReplanAt:       cmd.Float64("replan-at"),
						ReplanTarget:   cmd.Float64("replan-target"),
						Step:           cmd.Float64("step"),
						OutputFile:     cmd.String("output-file"),
					})
				},
			},
		},
		Name:  "Jogd",
		Usage: "Start an instance of jogd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
