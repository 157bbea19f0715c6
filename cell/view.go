package cell

import "fmt"

// Kind is the visual state of a cell.
type Kind int

const (
	Hidden Kind = iota
	Held
	Flagged
	RevealedEmpty
	RevealedNumbered
	RevealedMine
)

var kindNames = [...]string{"hidden", "held", "flagged", "revealed-empty", "revealed-numbered", "revealed-mine"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("cell: unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// View is what the presentation layer draws for one cell.
// Number is set for RevealedNumbered, Highlight for RevealedMine.
type View struct {
	Kind      Kind      `json:"kind"`
	Number    int       `json:"number,omitempty"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// View returns the cell's visual state. A revealed cell wins over its flag.
func (c *Cell) View() View {
	switch {
	case c.revealed && c.mine:
		return View{Kind: RevealedMine, Highlight: c.highlight}
	case c.revealed && c.adjacent > 0:
		return View{Kind: RevealedNumbered, Number: c.adjacent}
	case c.revealed:
		return View{Kind: RevealedEmpty}
	case c.flagged:
		return View{Kind: Flagged}
	case c.held:
		return View{Kind: Held}
	default:
		return View{Kind: Hidden}
	}
}
