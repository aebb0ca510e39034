package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseCard parses a single card such as "As", "10♥", "T♥" or "qd".
// Ranks: 2-9, 10 or T, J, Q, K, A. Suits: c d h s or ♣ ♦ ♥ ♠.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	suitRune, size := utf8.DecodeLastRuneInString(s)
	suit, err := parseSuit(suitRune)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	rank, err := parseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards. Cards may be concatenated ("AsKd10h") or
// separated by spaces or commas ("A♠ K♦, 10♥").
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	rest := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)

	for pos := 0; rest != ""; pos++ {
		token, remaining, err := nextCardToken(rest)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", pos+1, err)
		}
		card, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", pos+1, err)
		}
		cards = append(cards, card)
		rest = remaining
	}

	return cards, nil
}

// ParseCardList parses a list of individual card strings as found in hand files.
func ParseCardList(items []string) ([]Card, error) {
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		card, err := ParseCard(item)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// nextCardToken splits the leading card off a compact run.
func nextCardToken(s string) (string, string, error) {
	rankLen := 1
	if strings.HasPrefix(s, "10") {
		rankLen = 2
	}
	if len(s) <= rankLen {
		return "", "", fmt.Errorf("incomplete card %q", s)
	}
	_, size := utf8.DecodeRuneInString(s[rankLen:])
	end := rankLen + size
	return s[:end], s[end:], nil
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 's', 'S', '♠', '♤':
		return Spades, nil
	case 'h', 'H', '♥', '♡':
		return Hearts, nil
	case 'd', 'D', '♦', '♢':
		return Diamonds, nil
	case 'c', 'C', '♣', '♧':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", r)
	}
}
