package config

// Name identifies a tuning constant by its exported board name.
type Name string

const (
	NameAsteroidGenerateRate Name = "ASTEROID_GENERATE_RATE"
	NameUpdateRate           Name = "UPDATE_RATE"
	NameStartPoint           Name = "START_POINT"
	NamePlayerMovementAmount Name = "PLAYER_MOVEMENT_AMOUNT"
	NameCheckKeysInterval    Name = "CHECK_KEYS_INTERVAL"
	NameKeyInactivityTimeout Name = "KEY_INACTIVITY_TIMEOUT"
)

// Unit is the measurement unit of a tuning constant.
type Unit int

const (
	Milliseconds Unit = iota
	Pixels
)

func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "ms"
	case Pixels:
		return "px"
	default:
		return "?"
	}
}

// Names returns every tuning constant name in display order.
func Names() []Name {
	return []Name{
		NameAsteroidGenerateRate,
		NameUpdateRate,
		NameStartPoint,
		NamePlayerMovementAmount,
		NameCheckKeysInterval,
		NameKeyInactivityTimeout,
	}
}

// Unit reports the unit the named constant is expressed in.
func (n Name) Unit() Unit {
	switch n {
	case NameStartPoint, NamePlayerMovementAmount:
		return Pixels
	default:
		return Milliseconds
	}
}
