package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/felixge/fgprof"
	"github.com/joho/godotenv"
	"github.com/pkg/profile"

	"github.com/saeidalz13/battleship-hotseat/api"
	"github.com/saeidalz13/battleship-hotseat/console"
	"github.com/saeidalz13/battleship-hotseat/db"
	"github.com/saeidalz13/battleship-hotseat/db/sqlc"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
	mc "github.com/saeidalz13/battleship-hotseat/models/connection"
)

const (
	defaultFirstPlayer  = "Player 1"
	defaultSecondPlayer = "Player 2"
	wallProfileFile     = "wall.pprof"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// startProfiling returns the func that flushes the requested profile.
func startProfiling(kind string) func() {
	switch kind {
	case "":
		return func() {}
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "wall":
		f, err := os.Create(wallProfileFile)
		if err != nil {
			panic(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		return func() {
			if err := stop(); err != nil {
				log.Error("failed to write wall clock profile", "err", err)
			}
			_ = f.Close()
		}
	default:
		panic(fmt.Sprintf("unknown profile kind: %s", kind))
	}
}

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		// a missing .env is fine for a local game
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			panic(err)
		}
	}
	stage := envOrDefault("STAGE", api.StageDev)
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	// the board owns stdout, so logs go to stderr
	log.SetOutput(os.Stderr)
	if stage == api.StageDev {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	stopProfiling := startProfiling(os.Getenv("PROFILE"))
	defer stopProfiling()

	bmm := mb.NewBattleshipMatchManager()
	var notifiers []console.Notifier

	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl)
		defer conn.Close()

		dbManager := sqlc.NewDbManager(sqlc.New(conn))
		notifiers = append(notifiers, sqlc.NewRecorder(dbManager.Analytics, db.HostInet()))
		log.Debug("match analytics enabled")
	}

	if portEnv := os.Getenv("SPECTATE_PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			panic(err)
		}

		bsm := mc.NewBattleshipSessionManager()
		server := api.NewServer(bsm, bmm, api.WithPort(port), api.WithStage(stage))
		notifiers = append(notifiers, server)

		stop := make(chan struct{})
		defer close(stop)
		go bsm.CleanupPeriodically(stop)

		go func() {
			log.Info("spectator feed listening", "addr", server.Addr())
			if err := http.ListenAndServe(server.Addr(), server.Handler()); err != nil {
				log.Error("spectator feed stopped", "err", err)
			}
		}()
	}

	reader, err := console.NewReadlineReader()
	if err != nil {
		panic(err)
	}
	defer reader.Close()

	game := console.NewGame(reader, os.Stdout, bmm, console.WithNotifiers(notifiers...))
	winner, err := game.Run(
		envOrDefault("PLAYER1", defaultFirstPlayer),
		envOrDefault("PLAYER2", defaultSecondPlayer),
	)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			log.Info("game abandoned")
			return
		}
		log.Error("game failed", "err", err)
		return
	}
	log.Info("match finished", "winner", winner.Name())
}
