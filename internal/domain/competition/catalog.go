package competition

var catalog = []Competition{
	{ID: 47, Name: "Premier League", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿"},
	{ID: 87, Name: "LaLiga", Country: "Spain", Flag: "🇪🇸"},
	{ID: 55, Name: "Serie A", Country: "Italy", Flag: "🇮🇹"},
	{ID: 54, Name: "Bundesliga", Country: "Germany", Flag: "🇩🇪"},
	{ID: 53, Name: "Ligue 1", Country: "France", Flag: "🇫🇷"},
	{ID: 61, Name: "Liga Portugal", Country: "Portugal", Flag: "🇵🇹"},
	{ID: 57, Name: "Eredivisie", Country: "Netherlands", Flag: "🇳🇱"},
	{ID: 71, Name: "Süper Lig", Country: "Turkey", Flag: "🇹🇷"},
	{ID: 40, Name: "First Division A", Country: "Belgium", Flag: "🇧🇪"},
	{ID: 64, Name: "Premiership", Country: "Scotland", Flag: "🏴󠁧󠁢󠁳󠁣󠁴󠁿"},
	{ID: 536, Name: "Saudi Pro League", Country: "Saudi Arabia", Flag: "🇸🇦"},
	{ID: 130, Name: "MLS", Country: "USA", Flag: "🇺🇸"},
	{ID: 268, Name: "Serie A", Country: "Brazil", Flag: "🇧🇷"},
	{ID: 112, Name: "Liga Profesional", Country: "Argentina", Flag: "🇦🇷"},
	{ID: 196, Name: "Ekstraklasa", Country: "Poland", Flag: "🇵🇱"},
	{ID: 42, Name: "Champions League", Country: "Europe", Flag: "🇪🇺"},
	{ID: 73, Name: "Europa League", Country: "Europe", Flag: "🇪🇺"},
	{ID: 10216, Name: "Conference League", Country: "Europe", Flag: "🇪🇺"},
}

var byID = func() map[int64]Competition {
	out := make(map[int64]Competition, len(catalog))
	for _, item := range catalog {
		out[item.ID] = item
	}
	return out
}()

// All returns the catalog in display order. The slice is a copy.
func All() []Competition {
	out := make([]Competition, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id int64) (Competition, bool) {
	item, ok := byID[id]
	return item, ok
}
