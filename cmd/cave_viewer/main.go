// Command cave_viewer prints generated caves in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/app"
	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

type viewer struct {
	screen   tcell.Screen
	settings config.Settings
	seed     int64
	lvl      *level.Level
	rows     [][]rune
	offX     int
	offY     int
	status   string
}

func main() {
	settings := config.DefaultSettings()
	seed := flag.Int64("seed", 1, "first seed")
	flag.IntVar(&settings.LevelWidth, "width", config.DefaultLevelWidth, "cave width")
	flag.IntVar(&settings.LevelHeight, "height", config.DefaultLevelHeight, "cave height")
	flag.IntVar(&settings.MonsterCount, "monsters", config.DefaultMonsterCount, "monster count")
	flag.Parse()

	logger.Init()
	// логи поверх tcell портят экран
	logger.Log.SetOutput(os.Stderr)
	logger.Log.SetLevel(logrus.WarnLevel)

	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("failed to init screen")
	}
	defer screen.Fini()

	v := &viewer{screen: screen, settings: settings, seed: *seed}
	v.generate()
	v.run()
}

func (v *viewer) generate() {
	lvl, err := app.BuildLevel(v.settings, utils.NewPRNGService(v.seed))
	if err != nil {
		v.status = fmt.Sprintf("seed %d: %v", v.seed, err)
		return
	}
	v.lvl = lvl
	v.rows = glyphs(lvl)
	v.status = fmt.Sprintf("seed %d  %dx%d  monsters %d  treasure %d   r: next seed  arrows: scroll  q: quit",
		v.seed, lvl.Width, lvl.Height, lvl.Count(component.BrainMonster), lvl.Count(component.BrainTreasure))
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyUp:
				v.offY--
			case tcell.KeyDown:
				v.offY++
			case tcell.KeyLeft:
				v.offX--
			case tcell.KeyRight:
				v.offX++
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case 'r':
					v.seed++
					v.generate()
				}
			}
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	mapRows := h - 1

	if v.lvl != nil {
		v.offX = utils.ClampInt(v.offX, 0, max(0, v.lvl.Width-w))
		v.offY = utils.ClampInt(v.offY, 0, max(0, v.lvl.Height-mapRows))
		for sy := 0; sy < mapRows && sy+v.offY < len(v.rows); sy++ {
			row := v.rows[sy+v.offY]
			for sx := 0; sx < w && sx+v.offX < len(row); sx++ {
				r := row[sx+v.offX]
				v.screen.SetContent(sx, sy, r, nil, glyphStyle(r))
			}
		}
	}

	for i, r := range []rune(v.status) {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

func glyphStyle(r rune) tcell.Style {
	style := tcell.StyleDefault
	switch r {
	case '#':
		return style.Foreground(tcell.ColorGray)
	case 'o':
		return style.Foreground(tcell.ColorMaroon)
	case '@':
		return style.Foreground(tcell.ColorLime).Bold(true)
	case 'm':
		return style.Foreground(tcell.ColorRed)
	case '$':
		return style.Foreground(tcell.ColorGold)
	}
	return style.Foreground(tcell.ColorDarkSlateGray)
}
