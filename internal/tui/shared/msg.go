package shared

// MsgBack requests navigation back to the previous screen
type MsgBack struct{}

// MsgOpenMovie requests the detail screen for a movie identifier
type MsgOpenMovie struct {
	MovieID string
}
