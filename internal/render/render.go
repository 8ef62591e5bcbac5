// Package render draws game snapshots as text for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jason-s-yu/yukon/engine"
	"github.com/jason-s-yu/yukon/internal/game"
	"github.com/pterm/pterm"
)

const (
	faceDown  = "[]"
	blankCell = "  "
	prompt    = "INPUT > "
	banner    = "--- Yukon Solitaire (terminal) ---  [type QQ to quit]"
	deckWidth = 7
)

// Renderer writes boards and deck listings. With Color set, red suits are
// drawn in red and the win line is highlighted.
type Renderer struct {
	Color bool
}

func (r Renderer) card(c game.CardView) string {
	if !c.FaceUp {
		return faceDown
	}
	if r.Color && c.Red {
		return pterm.LightRed(c.Code)
	}
	return c.Code
}

func columnHeader() string {
	names := make([]string, engine.NumColumns)
	for i := range names {
		names[i] = fmt.Sprintf("C%d", i+1)
	}
	return strings.Join(names, "\t")
}

// Board writes the tableau with the foundations beside the first rows,
// followed by the last command and message lines.
func (r Renderer) Board(w io.Writer, v game.BoardView) error {
	var b strings.Builder
	b.WriteString(columnHeader() + "\tF\n")

	rows := engine.NumFoundations
	for _, col := range v.Columns {
		rows = max(rows, len(col))
	}
	for row := 0; row < rows; row++ {
		for _, col := range v.Columns {
			if row < len(col) {
				b.WriteString(r.card(col[row]))
			} else {
				b.WriteString(blankCell)
			}
			b.WriteByte('\t')
		}
		if row < engine.NumFoundations {
			f := v.Foundations[row]
			if f.Top != nil {
				b.WriteString(r.card(*f.Top))
			} else {
				b.WriteString(faceDown)
			}
			fmt.Fprintf(&b, " F%d", row+1)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nLAST Command:%s\nMessage:%s\n", v.LastCommand, v.Message)
	if v.Won {
		line := "All foundations complete. You won!"
		if r.Color {
			line = pterm.LightGreen(line)
		}
		b.WriteString(line + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Deck writes the deck listing, all cards face up, seven to a row.
func (r Renderer) Deck(w io.Writer, v game.BoardView) error {
	var b strings.Builder
	b.WriteString(columnHeader() + "\n\n")
	for i, c := range v.Deck {
		b.WriteString(r.card(c))
		b.WriteByte('\t')
		if (i+1)%deckWidth == 0 {
			b.WriteByte('\n')
		}
	}
	if len(v.Deck)%deckWidth != 0 {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Message writes the message line shown after Startup commands.
func (r Renderer) Message(w io.Writer, v game.BoardView) error {
	_, err := fmt.Fprintf(w, "Message:%s\n", v.Message)
	return err
}

// Update writes whatever the front end shows after a command: the deck
// listing after SW, the board during Play and the message line otherwise.
func (r Renderer) Update(w io.Writer, v game.BoardView) error {
	switch {
	case v.ShowDeck():
		return r.Deck(w, v)
	case v.Phase == engine.PhasePlay.String():
		return r.Board(w, v)
	}
	return r.Message(w, v)
}

// Prompt writes the input prompt.
func (r Renderer) Prompt(w io.Writer) error {
	_, err := io.WriteString(w, prompt)
	return err
}

// Banner writes the greeting shown once at start-up.
func (r Renderer) Banner(w io.Writer) error {
	line := banner
	if r.Color {
		line = pterm.Bold.Sprint(line)
	}
	_, err := fmt.Fprintf(w, "%s\n\n", line)
	return err
}
