package engine

import "errors"

// Failure reasons. Execute reports them to the player as "Error: <reason>".
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrBadDeck         = errors.New("bad deck")
	ErrDeckSize        = errors.New("deck size")
	ErrNoDeck          = errors.New("no deck")
	ErrCantOpen        = errors.New("cant open")
	ErrNotEnough       = errors.New("not enough")
	ErrCardNotFound    = errors.New("card not found")
	ErrBadMove         = errors.New("bad move")
	ErrEmptyColumn     = errors.New("empty col")
	ErrFaceDown        = errors.New("face down")
	ErrNeedAce         = errors.New("need Ace")
	ErrBadFoundation   = errors.New("bad foundation")
	ErrFoundationEmpty = errors.New("foundation empty")
	ErrUnknown         = errors.New("unknown")
	ErrBadSyntax       = errors.New("bad syntax")
)

var reasons = []error{
	ErrFileNotFound, ErrBadDeck, ErrDeckSize, ErrNoDeck, ErrCantOpen,
	ErrNotEnough, ErrCardNotFound, ErrBadMove, ErrEmptyColumn, ErrFaceDown,
	ErrNeedAce, ErrBadFoundation, ErrFoundationEmpty, ErrUnknown, ErrBadSyntax,
}

// Messages set by Execute.
const (
	MessageOK = "OK"
	// MessageShowDeck is set by SW. The engine does not render; a front end
	// seeing this message displays the deck itself.
	MessageShowDeck = "(ignored in engine)"
)

// MessageFor converts an operation result into the player-facing message.
// Wrapped errors are reduced to their reason so file paths and other context
// stay out of the message line.
func MessageFor(err error) string {
	if err == nil {
		return MessageOK
	}
	for _, r := range reasons {
		if errors.Is(err, r) {
			return "Error: " + r.Error()
		}
	}
	return "Error: " + err.Error()
}
