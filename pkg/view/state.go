package view

// State the rendering state of a data driven view
type State string

const (
	// StateLoading a fetch is in flight
	StateLoading State = "loading"
	// StateSuccess the fetch settled with data
	StateSuccess State = "success"
	// StateEmpty the fetch settled with a zero length result
	StateEmpty State = "empty"
	// StateError the fetch failed
	StateError State = "error"
	// StateNotFound a single item lookup settled without a record
	StateNotFound State = "not_found"
)

func (s State) String() string {
	return string(s)
}

// Settled is the state final for the current load
func (s State) Settled() bool {
	return s != StateLoading
}
