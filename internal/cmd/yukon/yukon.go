// Package yukon parses the yukon command's configuration and runs the
// interactive terminal game.
package yukon

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jason-s-yu/yukon/engine"
	"github.com/jason-s-yu/yukon/internal/config"
	"github.com/jason-s-yu/yukon/internal/game"
	"github.com/jason-s-yu/yukon/internal/random"
	"github.com/jason-s-yu/yukon/internal/render"
	"github.com/sirupsen/logrus"
)

// Config holds yukon command configuration.
type Config struct {
	DeckPath     string `env:"YUKON_DECK_PATH" envDefault:"cards.txt"`
	Seed         uint64 `env:"YUKON_SEED" envDefault:"0"`
	LogLevel     string `env:"YUKON_LOG_LEVEL" envDefault:"info"`
	StrictColors bool   `env:"YUKON_STRICT_COLORS" envDefault:"false"`
	Color        bool   `env:"YUKON_COLOR" envDefault:"true"`

	// LogOutput receives log lines. Defaults to stderr so the board on the
	// output writer stays clean.
	LogOutput io.Writer
}

// ParseConfig loads .env, then the environment, then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DeckPath, "deck", cfg.DeckPath, "Deck file used by SD without a path")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle seed (0 picks a random seed)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.StrictColors, "strict-colors", cfg.StrictColors, "Require alternating red and black on the tableau")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colour red suits in the terminal")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	if cfg.LogOutput != nil {
		logger.SetOutput(cfg.LogOutput)
	}
	return logger, nil
}

// Run plays one session, reading commands from in and drawing to out, until
// QQ, end of input or ctx is cancelled.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	seed, err := random.SeedOr(cfg.Seed)
	if err != nil {
		return err
	}
	rules := engine.DefaultHouseRules()
	rules.StrictColors = cfg.StrictColors
	if cfg.DeckPath != "" {
		rules.DefaultDeckPath = cfg.DeckPath
	}

	session := game.NewSession(seed, rules, logger)
	logger.WithFields(logrus.Fields{"session": session.ID.String(), "seed": seed}).Debug("Seeded")
	r := render.Renderer{Color: cfg.Color}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	if err := r.Banner(out); err != nil {
		return err
	}
	if err := r.Prompt(out); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			logger.WithField("session", session.ID.String()).Info("Interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			done, err := step(session, r, out, line)
			if err != nil || done {
				return err
			}
		}
	}
}

// step executes one input line and draws the result. It reports true once
// the session has terminated.
func step(s *game.Session, r render.Renderer, out io.Writer, line string) (bool, error) {
	if line == "" {
		return false, r.Prompt(out)
	}
	if s.Execute(line) == engine.OutcomeTerminate {
		return true, nil
	}
	if err := r.Update(out, s.View()); err != nil {
		return false, err
	}
	return false, r.Prompt(out)
}
