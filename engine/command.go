package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a parsed command.
type CommandKind uint8

const (
	CmdNone       CommandKind = iota // blank line
	CmdUnknown                       // unrecognised keyword
	CmdLoad                          // LD [path]
	CmdShow                          // SW
	CmdInterleave                    // SI [split]
	CmdRandom                        // SR
	CmdSave                          // SD [path]
	CmdPlay                          // P
	CmdQuitApp                       // QQ
	CmdQuit                          // Q
	CmdMove                          // SRC->DST
)

// Command is one parsed line of input.
type Command struct {
	Kind  CommandKind
	Name  string // keyword as typed
	Path  string // LD, SD
	Split int    // SI; 0 means pick at random
	Move  Move   // CmdMove
}

// Outcome tells the caller of Execute whether the session goes on.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	// OutcomeTerminate is returned for QQ. The host decides how to shut down.
	OutcomeTerminate
)

var bareKeywords = map[string]CommandKind{
	"SW": CmdShow,
	"SR": CmdRandom,
	"P":  CmdPlay,
	"QQ": CmdQuitApp,
	"Q":  CmdQuit,
}

// ParseCommand parses one line. Keywords are case sensitive. A line that
// contains "->" is parsed as a move.
func ParseCommand(line string) (Command, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Command{Kind: CmdNone}, nil
	}
	if strings.Contains(text, "->") {
		m, err := parseMove(text)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdMove, Name: text, Move: m}, nil
	}

	fields := strings.Fields(text)
	cmd := Command{Name: fields[0]}
	args := fields[1:]
	switch fields[0] {
	case "LD", "SD":
		cmd.Kind = CmdLoad
		if fields[0] == "SD" {
			cmd.Kind = CmdSave
		}
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%w: %s takes at most one path", ErrBadSyntax, fields[0])
		}
		if len(args) == 1 {
			cmd.Path = args[0]
		}
	case "SI":
		cmd.Kind = CmdInterleave
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%w: SI takes at most one split", ErrBadSyntax)
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, fmt.Errorf("%w: split %q", ErrBadSyntax, args[0])
			}
			cmd.Split = n
		}
	case "SW", "SR", "P", "QQ", "Q":
		if len(args) > 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadSyntax, fields[0])
		}
		cmd.Kind = bareKeywords[fields[0]]
	default:
		cmd.Kind = CmdUnknown
	}
	return cmd, nil
}

// parseMove parses "SRC->DST" where SRC is Cn, Cn:RS or Fn and DST is Cn or Fn.
func parseMove(text string) (Move, error) {
	src, dst, _ := strings.Cut(text, "->")
	src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)

	var m Move
	if ref, code, ok := strings.Cut(src, ":"); ok {
		c, err := ParseCard(code)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %v", ErrBadSyntax, err)
		}
		m.Card = c
		src = ref
	}
	from, err := parsePileRef(src)
	if err != nil {
		return Move{}, err
	}
	to, err := parsePileRef(dst)
	if err != nil {
		return Move{}, err
	}
	if from.Kind == PileFoundation && !m.Card.IsEmpty() {
		return Move{}, fmt.Errorf("%w: a foundation source takes no card", ErrBadSyntax)
	}
	m.From, m.To = from, to
	return m, nil
}

func parsePileRef(s string) (PileRef, error) {
	if len(s) != 2 || s[1] < '1' || s[1] > '9' {
		return PileRef{}, fmt.Errorf("%w: pile %q", ErrBadSyntax, s)
	}
	ref := PileRef{Index: int(s[1] - '1')}
	switch s[0] {
	case 'C':
		ref.Kind = PileColumn
	case 'F':
		ref.Kind = PileFoundation
	default:
		return PileRef{}, fmt.Errorf("%w: pile %q", ErrBadSyntax, s)
	}
	if !ref.valid() {
		return PileRef{}, fmt.Errorf("%w: pile %q", ErrBadSyntax, s)
	}
	return ref, nil
}

// Execute runs one line of input against the game, records it as the last
// command and sets the message to "OK" or "Error: <reason>". It returns
// OutcomeTerminate for QQ and OutcomeContinue otherwise.
func (g *GameState) Execute(line string) Outcome {
	g.lastCommand = strings.TrimRight(line, "\r\n")
	cmd, err := ParseCommand(line)
	if err != nil {
		g.message = MessageFor(err)
		return OutcomeContinue
	}
	if cmd.Kind == CmdNone {
		return OutcomeContinue
	}
	if cmd.Kind == CmdShow && g.phase == PhaseStartup {
		g.message = MessageShowDeck
		return OutcomeContinue
	}

	out, err := g.Dispatch(cmd)
	g.message = MessageFor(err)
	return out
}

// Dispatch runs a parsed command. Commands that do not belong to the current
// phase fail with ErrUnknown; an unrecognised keyword is ErrUnknown during
// Startup and ErrBadSyntax during Play.
func (g *GameState) Dispatch(cmd Command) (Outcome, error) {
	if g.phase == PhasePlay {
		switch cmd.Kind {
		case CmdQuit:
			return OutcomeContinue, g.Quit()
		case CmdMove:
			return OutcomeContinue, g.ApplyMove(cmd.Move)
		case CmdUnknown:
			return OutcomeContinue, fmt.Errorf("%w: %q", ErrBadSyntax, cmd.Name)
		}
		return OutcomeContinue, fmt.Errorf("%w: %s during play", ErrUnknown, cmd.Name)
	}

	switch cmd.Kind {
	case CmdLoad:
		return OutcomeContinue, g.LoadDeck(cmd.Path)
	case CmdShow:
		return OutcomeContinue, nil
	case CmdInterleave:
		return OutcomeContinue, g.Interleave(cmd.Split)
	case CmdRandom:
		return OutcomeContinue, g.RandomShuffle()
	case CmdSave:
		return OutcomeContinue, g.SaveDeck(cmd.Path)
	case CmdPlay:
		return OutcomeContinue, g.Deal()
	case CmdQuitApp:
		if err := g.quitApp(); err != nil {
			return OutcomeContinue, err
		}
		return OutcomeTerminate, nil
	}
	return OutcomeContinue, fmt.Errorf("%w: %s", ErrUnknown, cmd.Name)
}
