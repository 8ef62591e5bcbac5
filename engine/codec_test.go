package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func orderedDeckText() string {
	var b strings.Builder
	deck := NewOrderedDeck()
	for _, c := range deck.Cards() {
		b.WriteString(c.Code())
		b.WriteByte('\n')
	}
	return b.String()
}

func TestNewOrderedDeck(t *testing.T) {
	d := NewOrderedDeck()
	if d.Len() != DeckSize {
		t.Fatalf("Len = %d, want %d", d.Len(), DeckSize)
	}
	if d.PeekFront().Code() != "AC" || d.PeekBack().Code() != "KS" {
		t.Errorf("front/back = %s/%s, want AC/KS", d.PeekFront().Code(), d.PeekBack().Code())
	}
	if c, _ := d.At(13); c.Code() != "AD" {
		t.Errorf("At(13) = %s, want AD", c.Code())
	}
	for _, c := range d.Cards() {
		if c.FaceUp {
			t.Fatalf("%s is face up", c.Code())
		}
	}
}

func TestDecodeDeckOrdered(t *testing.T) {
	p, err := DecodeDeck(strings.NewReader(orderedDeckText()))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}
	want := NewOrderedDeck()
	if codes(&p) != codes(&want) {
		t.Error("decoded order differs from the file order")
	}
}

func TestDecodeDeckSkipsBlankLines(t *testing.T) {
	text := "\n" + strings.ReplaceAll(orderedDeckText(), "\n", "\n\n") + "\r\n"
	p, err := DecodeDeck(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}
	if p.Len() != DeckSize {
		t.Errorf("Len = %d, want %d", p.Len(), DeckSize)
	}
}

func TestDecodeDeckErrors(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(orderedDeckText()), "\n")
	tests := []struct {
		name string
		text string
		want error
	}{
		{"51 cards", strings.Join(lines[:51], "\n"), ErrDeckSize},
		{"empty file", "", ErrDeckSize},
		{"duplicate", strings.Join(append(lines[:51:51], "AC"), "\n"), ErrBadDeck},
		{"53 cards", strings.Join(append(lines[:52:52], "AC"), "\n"), ErrBadDeck},
		{"bad rank", strings.Join(append(lines[:51:51], "1S"), "\n"), ErrBadDeck},
		{"bad suit", strings.Join(append([]string{"AX"}, lines[1:]...), "\n"), ErrBadDeck},
		{"lowercase", strings.Join(append([]string{"ac"}, lines[1:]...), "\n"), ErrBadDeck},
	}
	for _, tt := range tests {
		_, err := DecodeDeck(strings.NewReader(tt.text))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestEncodeDeck(t *testing.T) {
	p := PileOf(up("TH"), card("AC"), card("KS"))
	var buf bytes.Buffer
	if err := EncodeDeck(&buf, &p); err != nil {
		t.Fatalf("EncodeDeck: %v", err)
	}
	if got, want := buf.String(), "TH\nAC\nKS\n"; got != want {
		t.Errorf("EncodeDeck = %q, want %q", got, want)
	}
}

func TestSaveAndLoadDeckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	deck := NewOrderedDeck()
	if err := Interleave(&deck, 20, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale contents that must be replaced\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SaveDeckFile(path, &deck); err != nil {
		t.Fatalf("SaveDeckFile: %v", err)
	}
	loaded, err := LoadDeckFile(path)
	if err != nil {
		t.Fatalf("LoadDeckFile: %v", err)
	}
	if codes(&loaded) != codes(&deck) {
		t.Error("loaded deck differs from saved deck")
	}
}

func TestLoadDeckFileMissing(t *testing.T) {
	_, err := LoadDeckFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestSaveDeckFileBadPath(t *testing.T) {
	deck := NewOrderedDeck()
	err := SaveDeckFile(filepath.Join(t.TempDir(), "missing", "deck.txt"), &deck)
	if !errors.Is(err, ErrCantOpen) {
		t.Errorf("err = %v, want ErrCantOpen", err)
	}
}
