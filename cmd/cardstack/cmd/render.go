package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/go-drift/cardstack/cmd/cardstack/internal/render"
	"github.com/go-drift/cardstack/cmd/cardstack/internal/scenario"
)

func newRenderCommand(root *rootOptions) *cobra.Command {
	var (
		output = "stack.png"
		step   = -1
		height = 800
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Rasterize the visible cards after replaying a scenario",
		Long: `Render replays the first --step steps of a scenario (all of them by
default) and writes the visible cards as a PNG. The canvas is as wide as
the scenario's screen width.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if height <= 0 || height > scenario.MaxScreenWidth {
				return fmt.Errorf("--height must be within [1, %d], got %d", scenario.MaxScreenWidth, height)
			}
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			runner, err := scenario.NewRunner(s, root.logger)
			if err != nil {
				return err
			}
			defer runner.Close()

			var failed error
			runner.Run(step, func(res scenario.StepResult) {
				if res.Err != nil && failed == nil {
					failed = fmt.Errorf("step %d (%s): %w", res.Index, res.Step, res.Err)
				}
			})
			if failed != nil {
				root.logger.Info("scenario step failed, rendering anyway", "error", failed.Error())
			}

			opts := render.DefaultOptions(canvasWidth(s.Stack.ScreenWidth), height)
			img, err := render.Stack(runner.Stack(), scenario.Item.String, opts)
			if err != nil {
				return err
			}
			if err := render.WritePNG(output, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, index=%d)\n",
				output, opts.Width, opts.Height, runner.Stack().CurrentIndex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, "Output PNG path")
	cmd.Flags().IntVar(&step, "step", step, "Number of steps to replay before rendering (-1 replays all)")
	cmd.Flags().IntVar(&height, "height", height, "Canvas height in px")
	return cmd
}

// canvasWidth rounds a validated screen width to whole pixels, at least one.
func canvasWidth(w float64) int {
	return max(int(math.Round(w)), 1)
}
