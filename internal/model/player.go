package model

// Players holds the player id seated on each side; an empty id is a free seat.
type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

func (p Players) ColorOf(playerID string) (Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case p.White == playerID:
		return White, true
	case p.Black == playerID:
		return Black, true
	}
	return "", false
}

func (p Players) Full() bool {
	return p.White != "" && p.Black != ""
}

// Seat places playerID on the first free side, white first.
func (p *Players) Seat(playerID string) (Color, bool) {
	if color, ok := p.ColorOf(playerID); ok {
		return color, true
	}
	if p.White == "" {
		p.White = playerID
		return White, true
	}
	if p.Black == "" {
		p.Black = playerID
		return Black, true
	}
	return "", false
}

type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}
