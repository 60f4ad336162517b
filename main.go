package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"the-snake/config"
	"the-snake/game"
	"the-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	defer glog.Flush()

	g, err := game.NewGame(cfg)
	if err != nil {
		glog.Exitf("starting game: %v", err)
	}
	glog.Infof("session %s: board %dx%d cells, %d ticks/s", g.UUID, g.Grid.Width, g.Grid.Height, cfg.Speed)

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Snake")
	defer rl.CloseWindow()
	// One tick per frame
	rl.SetTargetFPS(int32(cfg.Speed))

	renderer := ui.NewRenderer(g.Grid)
	defer renderer.Close()

	for !rl.WindowShouldClose() {
		ui.PollInput(g)

		res, err := g.Tick()
		if errors.Is(err, game.ErrBoardFull) {
			glog.Infof("session %s: board filled after %d ticks", g.UUID, res.Tick)
			renderer.Draw(g)
			break
		}
		if err != nil {
			glog.Errorf("session %s: tick %d: %v", g.UUID, res.Tick, err)
			break
		}
		if res.Event == game.Died {
			glog.Infof("session %s: died at tick %d, best %d", g.UUID, res.Tick, g.GetStats().GetHighScore())
		}

		renderer.Draw(g)
	}

	stats := g.GetStats()
	glog.Infof("session %s: %.0fs, %d ticks, high score %d, deaths %d, scores %v",
		g.UUID, g.ElapsedTime(), stats.GetTicks(), stats.GetHighScore(), stats.GetDeaths(), stats.GetScoreHistory())
}
