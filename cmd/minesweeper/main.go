// Command minesweeper plays Minesweeper on the terminal with line commands.
//
//	minesweeper [-config file.yaml] [-seed N] [-debug]
//
// Type "help" at the prompt for the command list.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/minesweeper/config"
	"github.com/katalvlaran/minesweeper/game"
	"github.com/katalvlaran/minesweeper/highscore"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML settings file; built-in defaults when empty")
		seed    = flag.Uint64("seed", 0, "mine placement seed; 0 picks one from the clock")
		debug   = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.WithError(err).Fatal("cannot load settings")
		}
	}

	store := highscore.NewStore(cfg.HighscorePath, highscore.WithLogger(log))
	opts := []game.Option{game.WithRecorder(store), game.WithLogger(log)}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}
	sess, err := game.New(cfg, opts...)
	if err != nil {
		log.WithError(err).Fatal("cannot start game")
	}

	r := &repl{
		sess:   sess,
		scores: store,
		out:    os.Stdout,
		prompt: term.IsTerminal(int(os.Stdin.Fd())),
		log:    log,
	}
	if err := r.run(os.Stdin); err != nil {
		log.WithError(err).Fatal("input failed")
	}
}
