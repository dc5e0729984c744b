package competition

// Competition is a league or cup tracked by the service. IDs are the provider's own
// and are neither sequential nor derivable.
type Competition struct {
	ID      int64
	Name    string
	Country string
	Flag    string
}

// Broadcasters lists TV and streaming channels per market.
type Broadcasters struct {
	Poland []string
	UK     []string
	USA    []string
}
