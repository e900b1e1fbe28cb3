package detail

import "github.com/Waddenn/movie-detail/internal/movie"

// ViewState is the loader phase: Loading, Loaded or Failed.
type ViewState interface {
	viewState()
}

type Loading struct{}

type Loaded struct {
	Movie movie.Detail
}

type Failed struct {
	Err error
}

func (Loading) viewState() {}
func (Loaded) viewState()  {}
func (Failed) viewState()  {}
