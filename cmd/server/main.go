// cmd/server/main.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jason-s-yu/codenames/internal/game"
	"github.com/jason-s-yu/codenames/internal/handlers"
	"github.com/jason-s-yu/codenames/internal/middleware"
)

type config struct {
	bind      string
	port      int
	baseURL   string
	wordList  string
	keepSeats bool
	verbose   bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CODENAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Room-based codename-guessing game server.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: CODENAMES_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: CODENAMES_PORT)")
	fs.StringVar(&cfg.baseURL, "base-url", "", "externally reachable URL used in join links (env: CODENAMES_BASE_URL)")
	fs.StringVar(&cfg.wordList, "word-list", "", "path to a newline-separated codename list; built-in list when empty (env: CODENAMES_WORD_LIST)")
	fs.BoolVar(&cfg.keepSeats, "keep-seats", false, "keep a player's seat when their connection drops (env: CODENAMES_KEEP_SEATS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: CODENAMES_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func serve(cfg *config) error {
	logger := logrus.New()
	if cfg.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	words := game.DefaultWords()
	if cfg.wordList != "" {
		loaded, err := game.LoadWords(cfg.wordList)
		if err != nil {
			return fmt.Errorf("loading word list: %w", err)
		}
		words = loaded
	}
	if len(words) < game.DeckSize {
		return game.ErrInsufficientWords
	}
	logger.Infof("Loaded %d codenames", len(words))

	srv := handlers.NewGameServer(words)
	srv.ReleaseOnDisconnect = !cfg.keepSeats
	addr := fmt.Sprintf("%s:%d", cfg.bind, cfg.port)
	srv.BaseURL = cfg.baseURL
	if srv.BaseURL == "" {
		srv.BaseURL = "http://" + addr
	}

	mux := http.NewServeMux()

	mux.Handle("/room/create", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.CreateRoomHandler(srv),
	)))
	mux.Handle("/room/list", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.ListRoomsHandler(srv),
	)))
	mux.Handle("/room/qr/", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.RoomQRHandler(srv),
	)))
	mux.Handle("/room/ws/", http.HandlerFunc(
		handlers.RoomWSHandler(logger, srv),
	))

	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		logrus.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}
