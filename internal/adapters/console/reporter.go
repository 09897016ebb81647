// Package console implements the terminal reporter.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter by writing styled lines to a terminal.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	styles styles
}

// New creates a Reporter writing to w. Colors are used only when w is a terminal
// and NO_COLOR is unset.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		w:      w,
		styles: newStyles(r),
	}
}

// NewWithProfile creates a Reporter writing to w with a fixed color profile,
// regardless of whether w is a terminal.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Reporter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Reporter{
		w:      w,
		styles: newStyles(r),
	}
}

// StageStarted prints the info line announcing a stage.
func (r *Reporter) StageStarted(stage domain.Stage, plan domain.BuildPlan) {
	var msg string
	switch stage {
	case domain.StageConfiguring:
		msg = fmt.Sprintf("Running CMake project generation for %s...", plan.Generator.DisplayName)
	case domain.StageSingleConfigBuild:
		msg = fmt.Sprintf("Running CMake single config build for %s...", plan.BuildType)
	case domain.StageDebugBuild:
		msg = fmt.Sprintf("Running CMake build for %s...", domain.ConfigDebug)
	case domain.StageReleaseBuild:
		msg = fmt.Sprintf("Running CMake build for %s...", domain.ConfigRelease)
	default:
		return
	}
	r.println(r.styles.info, "[INFO]: "+msg)
}

// StageSucceeded prints the success line of a stage.
func (r *Reporter) StageSucceeded(stage domain.Stage, plan domain.BuildPlan) {
	var msg string
	switch stage {
	case domain.StageConfiguring:
		msg = "CMake project generation completed!"
	case domain.StageSingleConfigBuild:
		msg = fmt.Sprintf("%s build completed!", plan.BuildType)
	case domain.StageDebugBuild:
		msg = fmt.Sprintf("%s build completed!", domain.ConfigDebug)
	case domain.StageReleaseBuild:
		msg = fmt.Sprintf("%s build completed!", domain.ConfigRelease)
	default:
		return
	}
	r.println(r.styles.success, "[SUCCESS]: "+msg)
}

// StageFailed prints the error line of a stage followed by the captured output.
func (r *Reporter) StageFailed(stage domain.Stage, plan domain.BuildPlan, output string) {
	var msg string
	switch stage {
	case domain.StageConfiguring:
		msg = "CMake project generation failed!"
	case domain.StageSingleConfigBuild:
		msg = fmt.Sprintf("CMake single config %s build process failed!", plan.BuildType)
	case domain.StageDebugBuild:
		msg = "CMake debug build process failed!"
	case domain.StageReleaseBuild:
		msg = "CMake release build process failed!"
	default:
		msg = fmt.Sprintf("stage %s failed!", stage)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(r.styles.failure, "[ERROR]: "+msg)
	if output = strings.TrimRight(output, "\n"); output != "" {
		// Styled line by line: rendering a block pads every line to the widest one.
		for line := range strings.Lines(output) {
			r.write(r.styles.output, strings.TrimRight(line, "\r\n"))
		}
	}
}

// Finished prints the closing line of a successful build.
func (r *Reporter) Finished(domain.BuildPlan) {
	r.println(r.styles.info, "[INFO]: Your CMake project should be good to go!")
}

// Summary prints the final build summary.
func (r *Reporter) Summary(summary domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(r.styles.heading, "[INFO]: Final Build Summary:")
	r.write(r.styles.summary, "Generator: "+summary.Generator)
	r.write(r.styles.summary, "Build Type: "+summary.BuildType.String())
	r.write(r.styles.summary, "Platform: "+summary.Platform)
}

// Timings prints one line per recorded stage with its duration, flagging the
// stage that failed or was interrupted.
func (r *Reporter) Timings(timings []domain.StageTiming) {
	if len(timings) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(r.styles.heading, "[INFO]: Stage Timings:")
	for _, t := range timings {
		line := r.styles.key.Width(r.styles.keyWidth).Render(t.Stage) + t.Duration.Round(time.Millisecond).String()
		switch {
		case t.Failed:
			line += " " + r.styles.missing.Render("failed")
		case t.Canceled:
			line += " " + r.styles.muted.Render("interrupted")
		}
		fmt.Fprintln(r.w, line)
	}
}

// Warn prints a warning.
func (r *Reporter) Warn(msg string) {
	r.println(r.styles.warning, "[WARNING]: "+msg)
}

// Error prints a failure that was detected before any stage ran.
func (r *Reporter) Error(err error) {
	r.println(r.styles.failure, "[ERROR]: "+err.Error())
}

// Plan prints a command that would be issued by the given stage.
func (r *Reporter) Plan(stage domain.Stage, cmd domain.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, r.styles.key.Width(r.styles.keyWidth).Render(stage.String())+r.styles.plan.Render(cmd.String()))
}

// Done prints the final success line.
func (r *Reporter) Done() {
	r.println(r.styles.done, "done!")
}

// Aborted prints the final failure line.
func (r *Reporter) Aborted() {
	r.println(r.styles.failure, "[ERROR]: execution of full build process was unsuccessful")
}

// Generators lists the catalog, one generator per line.
func (r *Reporter) Generators(generators []domain.GeneratorDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range generators {
		key := r.styles.key.Width(r.styles.keyWidth).Render(g.Key)
		model := r.styles.muted.Render("(" + g.ConfigModel() + ")")
		fmt.Fprintln(r.w, key+g.DisplayName+" "+model)
	}
}

// Tools lists probed tools with their location and version.
func (r *Reporter) Tools(tools []domain.ToolStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tools {
		name := r.styles.key.Width(r.styles.keyWidth).Render(t.Name)
		if !t.Found {
			fmt.Fprintln(r.w, name+r.styles.missing.Render("not found"))
			continue
		}
		line := name + t.Path
		if t.Version != "" {
			line += " " + r.styles.muted.Render(t.Version)
		}
		fmt.Fprintln(r.w, line)
	}
}

func (r *Reporter) println(style lipgloss.Style, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(style, msg)
}

func (r *Reporter) write(style lipgloss.Style, msg string) {
	fmt.Fprintln(r.w, style.Render(msg))
}
