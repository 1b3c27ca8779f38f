package ui

import (
	"boardeditor/src"
	"boardeditor/src/logx"
	"boardeditor/src/render"
	clic "boardeditor/ui/cli"
	"boardeditor/ui/gui"
	"boardeditor/ui/gui/gbase/gconf"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "boardeditor.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// loadConfig reads the JSON config and applies the flags on top of it.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	conf, err := gconf.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("tile-size") {
		conf.TileSize = int(c.Int("tile-size"))
	}
	if c.Bool("debug") {
		conf.Debug = true
	}
	conf.Correct()
	return conf, nil
}

func openLog() (*os.File, error) {
	return os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	l.Infof("start gui: tile size %d, theme %s", conf.TileSize, conf.Theme)
	g := gui.NewGUI(src.NewEditorBuilder(float64(conf.TileSize), l), conf, l)
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	eb := src.NewEditorBuilder(float64(conf.TileSize), l)
	if c.Bool("start") {
		eb.Reset()
	}
	if conf.ShowLabels {
		eb.ToggleLabels()
	}

	clic.EnableANSI()
	cl := clic.NewCLI(eb, clic.PrintFrame)
	cl.SetPalette(render.PaletteFromString(conf.Theme))
	if c.Bool("line") {
		return cl.RunLineMode()
	}
	return cl.Run()
}

func RunRender(c *cli.Command) error {
	out := c.String("out")
	if out == "" {
		return fmt.Errorf("--out is required")
	}
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	eb := src.NewEditorBuilder(float64(conf.TileSize), logx.NewNopLogx())
	if c.Bool("start") {
		eb.Reset()
	}
	if c.Bool("labels") {
		eb.ToggleLabels()
	}
	theme := conf.Theme
	if c.IsSet("theme") {
		theme = c.String("theme")
	}
	if err := render.SaveFile(out, eb.Frame(), render.PaletteFromString(theme)); err != nil {
		return fmt.Errorf("error render %s: %w", out, err)
	}
	fmt.Printf("saved %s\n", out)
	return nil
}

func RunBoardEditor() error {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level (debug, info, warn, error)",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	tf := &cli.IntFlag{
		Name:  "tile-size",
		Value: int64(gconf.DefaultConfig().TileSize),
		Usage: "tile size in pixels",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	sf := &cli.BoolFlag{
		Name:  "start",
		Usage: "begin from the standard start position",
	}
	// root flags are inherited by every subcommand
	common := []cli.Flag{df, lf, cf, tf, conff}

	return (&cli.Command{
		Name:  "boardeditor",
		Usage: "8x8 board editor",
		Flags: common,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the editor window",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "cli",
				Usage: "edit the board in a terminal",
				Flags: []cli.Flag{
					sf,
					&cli.BoolFlag{
						Name:  "line",
						Usage: "read line commands instead of raw keys",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error boardeditor: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "write a PNG or SVG snapshot of a board",
				Flags: []cli.Flag{
					sf,
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output file (.png or .svg)",
					},
					&cli.BoolFlag{
						Name:  "labels",
						Usage: "draw tile index labels",
					},
					&cli.StringFlag{
						Name:  "theme",
						Value: "light",
						Usage: "light or dark",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunRender(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
