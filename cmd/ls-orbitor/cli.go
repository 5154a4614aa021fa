package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/config"
	"github.com/litescript/ls-orbitor/internal/errors"
	"github.com/litescript/ls-orbitor/internal/logging"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/report"
	"github.com/litescript/ls-orbitor/internal/ui"
	"github.com/litescript/ls-orbitor/internal/version"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// runtime carries what the Before hook resolves for every command.
type runtime struct {
	cfg      *config.Config
	log      *logging.Logger
	eng      *orbit.Engine
	searcher *zodiac.Searcher
	now      func() time.Time
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	rt := &runtime{now: time.Now}
	app := &cli.App{
		Name:    "ls-orbitor",
		Usage:   "Keplerian positions of the Sun, Moon and planets, and their zodiac signs",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default ~/.ls-orbitor/config.toml)"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level (debug, info, warn, error)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output format: table|json"},
		},
		Before: rt.setup,
		Commands: []*cli.Command{
			positionCmd(rt),
			signCmd(rt),
			nextCmd(rt),
			ingressesCmd(rt),
			ephemerisCmd(rt),
			plotCmd(rt),
			orreryCmd(rt),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// setup loads configuration and builds the engine.
func (rt *runtime) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return outputError(err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if err := cfg.Validate(); err != nil {
		return outputError(err)
	}

	rt.cfg = cfg
	rt.log = logging.New(logging.ParseLevel(cfg.LogLevel))
	rt.log.SetOutput(c.App.ErrWriter)
	rt.eng = orbit.NewEngine(cfg.EngineConfig())
	rt.searcher = zodiac.NewSearcher(rt.eng, cfg.SearchOptions())
	rt.log.Debug("config: bodies=%v output=%s kepler=%+v search=%+v",
		cfg.Bodies, cfg.Output, cfg.Kepler, cfg.Search)
	return nil
}

// Shared flags
func timeFlag(name, value, usage string) *cli.StringFlag {
	return &cli.StringFlag{Name: name, Aliases: []string{name[:1]}, Value: value, Usage: usage}
}

func modeFlag(value string) *cli.StringFlag {
	return &cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: value, Usage: "Frame and dimension: helio3d|helio2d|geo3d|geo2d"}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output format: table|json (overrides the global flag)"}
}

// positionCmd creates the position command.
func positionCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "position",
		Usage:     "Coordinates, distance, ecliptic and equatorial angles per body",
		ArgsUsage: "[bodies...]",
		Flags: []cli.Flag{
			timeFlag("time", "now", "Time (now, RFC3339, YYYY-MM-DD[ HH:MM], J2000±days)"),
			modeFlag(orbit.Helio3D.String()),
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			bodies, err := rt.bodies(c, false)
			if err != nil {
				return outputError(err)
			}
			days, err := parseTime(c.String("time"), rt.now())
			if err != nil {
				return outputError(err)
			}
			mode, err := orbit.ParseMode(c.String("mode"))
			if err != nil {
				return outputError(err)
			}

			rows, err := report.PositionRows(rt.eng, bodies, days, mode)
			if err != nil {
				return outputError(err)
			}
			title := fmt.Sprintf("Positions (%s) at %s", mode, formatDays(days))
			return rt.write(c, rows, report.PositionTable(title, rows))
		},
	}
}

// signCmd creates the sign command.
func signCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "Geocentric ecliptic longitude and zodiac sign per body",
		ArgsUsage: "[bodies...]",
		Flags: []cli.Flag{
			timeFlag("time", "now", "Time (now, RFC3339, YYYY-MM-DD[ HH:MM], J2000±days)"),
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			bodies, err := rt.bodies(c, true)
			if err != nil {
				return outputError(err)
			}
			days, err := parseTime(c.String("time"), rt.now())
			if err != nil {
				return outputError(err)
			}

			rows, err := report.SignRows(rt.eng, bodies, days)
			if err != nil {
				return outputError(err)
			}
			return rt.write(c, rows, report.SignTable("Signs at "+formatDays(days), rows))
		},
	}
}

// nextCmd creates the next command.
func nextCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "next",
		Usage:     "Find the next time(s) a body enters a sign",
		ArgsUsage: "<body> <sign>",
		Flags: []cli.Flag{
			timeFlag("from", "now", "Search start"),
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1, Usage: "Number of successive entries"},
			&cli.BoolFlag{Name: "coarse", Usage: "Skip bisection; report the first scan step inside the sign"},
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("next needs <body> <sign>"))
			}
			body, err := orbit.ParseBody(c.Args().Get(0))
			if err != nil {
				return outputError(err)
			}
			sign, err := zodiac.ParseSign(c.Args().Get(1))
			if err != nil {
				return outputError(err)
			}
			start, err := parseTime(c.String("from"), rt.now())
			if err != nil {
				return outputError(err)
			}

			searcher := rt.searcher
			if c.Bool("coarse") {
				opts := searcher.Options()
				opts.Refine = false
				searcher = zodiac.NewSearcher(rt.eng, opts)
			}
			rt.log.Debug("next %s %s from day %.4f, step %.4f days", body, sign, start, searcher.Step(body))

			rows, err := report.NextRows(searcher, body, sign, start, c.Int("count"))
			if err != nil {
				return outputError(err)
			}
			title := fmt.Sprintf("%s entering %s after %s", body, sign, formatDays(start))
			return rt.write(c, rows, report.IngressTable(title, rows))
		},
	}
}

// ingressesCmd creates the ingresses command.
func ingressesCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "ingresses",
		Usage:     "List every sign change of a body in a time window",
		ArgsUsage: "<body>",
		Flags: []cli.Flag{
			timeFlag("from", "now", "Window start"),
			timeFlag("to", "", "Window end (default one year after --from)"),
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("ingresses needs <body>"))
			}
			body, err := orbit.ParseBody(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			start, end, err := rt.window(c, defaultWindowDays)
			if err != nil {
				return outputError(err)
			}

			found, err := rt.searcher.Ingresses(body, start, end)
			if err != nil {
				return outputError(err)
			}
			rows := report.IngressRows(found)
			title := fmt.Sprintf("%s sign changes, %s to %s", body, formatDays(start), formatDays(end))
			return rt.write(c, rows, report.IngressTable(title, rows))
		},
	}
}

// ephemerisCmd creates the ephemeris command.
func ephemerisCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "ephemeris",
		Usage:     "Sample a body's position over a time window",
		ArgsUsage: "<body>",
		Flags: []cli.Flag{
			timeFlag("from", "now", "Window start"),
			timeFlag("to", "", "Window end (default one year after --from)"),
			&cli.Float64Flag{Name: "step", Aliases: []string{"s"}, Value: 1, Usage: "Sample spacing in days"},
			modeFlag(orbit.Helio3D.String()),
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("ephemeris needs <body>"))
			}
			body, err := orbit.ParseBody(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			start, end, err := rt.window(c, defaultWindowDays)
			if err != nil {
				return outputError(err)
			}
			mode, err := orbit.ParseMode(c.String("mode"))
			if err != nil {
				return outputError(err)
			}

			rows, err := report.EphemerisRows(rt.eng, body, start, end, c.Float64("step"), mode)
			if err != nil {
				return outputError(err)
			}
			title := fmt.Sprintf("%s ephemeris (%s), %s to %s", body, mode, formatDays(start), formatDays(end))
			return rt.write(c, rows, report.PositionTable(title, rows))
		},
	}
}

// plotCmd creates the plot command.
func plotCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "plot",
		Usage:     "Draw a top-down chart of the solar system",
		ArgsUsage: "[bodies...]",
		Flags: []cli.Flag{
			timeFlag("time", "now", "Time (now, RFC3339, YYYY-MM-DD[ HH:MM], J2000±days)"),
			modeFlag(orbit.Helio2D.String()),
			&cli.IntFlag{Name: "width", Value: 80, Usage: "Chart width in columns"},
			&cli.IntFlag{Name: "height", Value: 40, Usage: "Chart height in rows"},
			&cli.StringFlag{Name: "scale", Value: astro.ScaleLogR.String(), Usage: "Radial scale: log|inner|outer|lunar"},
			&cli.StringFlag{Name: "labels", Value: ui.LabelAll.String(), Usage: "Labels: off|focus|all"},
			&cli.BoolFlag{Name: "no-trails", Usage: "Do not draw orbit trails"},
			&cli.BoolFlag{Name: "no-stars", Usage: "Do not draw the zodiac star ring"},
		},
		Action: func(c *cli.Context) error {
			bodies, err := rt.bodies(c, false)
			if err != nil {
				return outputError(err)
			}
			days, err := parseTime(c.String("time"), rt.now())
			if err != nil {
				return outputError(err)
			}
			mode, err := orbit.ParseMode(c.String("mode"))
			if err != nil {
				return outputError(err)
			}
			if c.Int("width") < 20 || c.Int("height") < 10 {
				return outputError(errors.NewInvalidRequest("plot needs at least 20x10 cells"))
			}

			scene, err := ui.BuildScene(rt.eng, bodies, days, mode.Frame(), !c.Bool("no-trails"))
			if err != nil {
				return outputError(err)
			}
			chart := ui.Chart{
				Width:  c.Int("width"),
				Height: c.Int("height"),
				Scale:  astro.ParseScaleMode(c.String("scale")),
				Zoom:   1,
				Labels: ui.ParseLabelMode(c.String("labels")),
				Focus:  ui.OriginBody(mode.Frame()),
				Stars:  !c.Bool("no-stars"),
				Plain:  !isTerminal(c.App.Writer),
			}
			_, err = fmt.Fprintf(c.App.Writer, "%s (%s)\n%s", formatDays(days), mode.Frame(), chart.Render(scene))
			return err
		},
	}
}

// orreryCmd creates the orrery command.
func orreryCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "orrery",
		Usage:     "Interactive animated chart (needs a terminal)",
		ArgsUsage: "[bodies...]",
		Flags: []cli.Flag{
			timeFlag("time", "now", "Start time"),
			modeFlag(orbit.Helio2D.String()),
			&cli.StringFlag{Name: "scale", Value: astro.ScaleLogR.String(), Usage: "Radial scale: log|inner|outer|lunar"},
		},
		Action: func(c *cli.Context) error {
			if !isTerminal(c.App.Writer) || !term.IsTerminal(int(os.Stdin.Fd())) {
				return outputError(errors.NewInvalidRequest("orrery needs an interactive terminal; try plot"))
			}
			bodies, err := rt.bodies(c, false)
			if err != nil {
				return outputError(err)
			}
			days, err := parseTime(c.String("time"), rt.now())
			if err != nil {
				return outputError(err)
			}
			mode, err := orbit.ParseMode(c.String("mode"))
			if err != nil {
				return outputError(err)
			}

			model := ui.New(rt.eng, rt.searcher, ui.OrreryOptions{
				Bodies:   bodies,
				Start:    days,
				StepDays: rt.cfg.OrreryStepDays(),
				Frame:    mode.Frame(),
				Scale:    astro.ParseScaleMode(c.String("scale")),
				Labels:   ui.LabelFocused,
			}, rt.log)

			// Log lines would tear the alternate screen
			if closeLog := rt.redirectLog(); closeLog != nil {
				defer closeLog()
			}
			rt.log.Info("orrery at day %.3f, %d bodies, step %gd", days, len(bodies), rt.cfg.OrreryStepDays())
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return cli.Exit(fmt.Sprintf("orrery: %v", err), 1)
			}
			return nil
		},
	}
}

// redirectLog sends log output to orrery.log in the config directory when
// debug logging is on, and discards it otherwise. The returned func closes
// the file.
func (rt *runtime) redirectLog() func() {
	rt.log.SetOutput(io.Discard)
	dir := config.DefaultDir()
	if !rt.log.Enabled(logging.LevelDebug) || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := tea.LogToFile(filepath.Join(dir, "orrery.log"), "orrery")
	if err != nil {
		return nil
	}
	rt.log.SetOutput(f)
	return func() { _ = f.Close() }
}

// defaultWindowDays is the window length when --to is omitted.
const defaultWindowDays = 365.25

// bodies returns the positional body arguments, or the configured default
// list. With skipEarth the default list leaves Earth out.
func (rt *runtime) bodies(c *cli.Context, skipEarth bool) ([]orbit.Body, error) {
	if c.NArg() > 0 {
		return orbit.ParseBodies(c.Args().Slice())
	}
	var out []orbit.Body
	for _, b := range rt.cfg.BodyList() {
		if skipEarth && b == orbit.Earth {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// window resolves --from and --to.
func (rt *runtime) window(c *cli.Context, defaultDays float64) (start, end float64, err error) {
	now := rt.now()
	if start, err = parseTime(c.String("from"), now); err != nil {
		return 0, 0, err
	}
	if c.String("to") == "" {
		return start, start + defaultDays, nil
	}
	if end, err = parseTime(c.String("to"), now); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// write renders rows as JSON or t as a table, per the output format.
func (rt *runtime) write(c *cli.Context, rows any, t report.Table) error {
	format := rt.cfg.Output
	if v := c.String("output"); v != "" {
		format = strings.ToLower(v)
	}
	switch format {
	case config.OutputJSON:
		return report.WriteJSON(c.App.Writer, rows)
	case config.OutputTable:
		return report.WriteTable(c.App.Writer, t)
	default:
		return outputError(errors.NewInvalidRequest(fmt.Sprintf("output %q: want table or json", format)))
	}
}

// outputError formats error for CLI and carries the exit status.
func outputError(err error) error {
	var oErr *errors.OrbitorError
	if stderrors.As(err, &oErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", oErr.Code, oErr.Message), oErr.ExitCode)
	}
	return cli.Exit(err.Error(), errors.ExitCode(err))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatDays(days float64) string {
	return fmt.Sprintf("%s (J2000%+.4f)", astro.TimeFromDays(days).Format("2006-01-02 15:04 UTC"), days)
}
