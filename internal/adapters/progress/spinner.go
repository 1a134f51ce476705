package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// SpinnerSink implements progress reporting with a spinner on stderr
type SpinnerSink struct {
	out          io.Writer
	spinner      *spinner.Spinner
	stages       []stageInfo
	currentStage usecase.ExecutionStage
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerSink creates a new spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		r.currentStage = event.Stage
		if event.Stage != usecase.StageCompleted {
			r.stages = append(r.stages, stageInfo{
				Stage:     event.Stage,
				StartTime: time.Now(),
			})
		}
	}
	if len(r.stages) > 0 && event.Message != "" {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Stage == usecase.StageCompleted || !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.updateSpinnerDisplay()
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

func (r *SpinnerSink) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerSink) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
		}
	}
}

// updateSpinnerDisplay updates the spinner suffix with stage information
func (r *SpinnerSink) updateSpinnerDisplay() {
	var display string

	for i, stage := range r.stages {
		icon := "●"
		stageColor := color.New(color.FgYellow)
		duration := ""
		if !stage.EndTime.IsZero() {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration)
	}

	if last := r.stages[len(r.stages)-1]; last.Message != "" {
		display += "  " + last.Message
	}

	r.spinner.Suffix = " " + display
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
