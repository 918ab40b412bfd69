package model

// Enemy holds the defensive stats damage is calculated against.
// Value type, passed by value (immutable).
type Enemy struct {
	Defense     int     // flat physical defense, >= 0 expected
	MagicResist float64 // percent 0-100; >= 100 means fully resisted except the damage floor
}
