package detail

import "github.com/Waddenn/movie-detail/internal/movie"

// MsgDetailLoaded carries the result of one fetch. RequestID ties it to the
// load that issued it; results of superseded loads are dropped.
type MsgDetailLoaded struct {
	MovieID   string
	RequestID string
	Movie     *movie.Detail
	Err       error
}

// MsgRetryTick advances the auto-retry countdown started for RequestID.
type MsgRetryTick struct {
	RequestID string
}
