package competition

// Rights for the 2025/26 season. Cups are listed even though only leagues are in the catalog.
var broadcasts = map[int64]Broadcasters{
	42: {
		Poland: []string{"Canal+ Extra 1", "Canal+ Extra 2", "Canal+ Sport 3", "Canal+ Sport 4"},
		UK:     []string{"TNT Sports 1", "TNT Sports 2", "discovery+"},
		USA:    []string{"CBS Sports Network", "Paramount+", "UniMás", "TUDN"},
	},
	73: {
		Poland: []string{"Polsat Sport 1", "Polsat Sport 2", "Polsat Sport 3", "Polsat Box Go"},
		UK:     []string{"TNT Sports 1", "TNT Sports 2", "discovery+"},
		USA:    []string{"CBS Sports Network", "Paramount+", "UniMás"},
	},
	10216: {
		Poland: []string{"Polsat Sport 1", "Polsat Sport 2", "Polsat Box Go"},
		UK:     []string{"TNT Sports 1", "TNT Sports 2", "discovery+"},
		USA:    []string{"CBS Sports Golazo", "Paramount+"},
	},
	47: {
		Poland: []string{"Canal+ Sport", "Canal+ Sport 2", "Canal+ Extra 1", "Canal+ Extra 2", "Canal+ Extra 3", "Viaplay"},
		UK:     []string{"Sky Sports Main Event", "Sky Sports Premier League", "Sky Sports Ultra", "TNT Sports 1", "TNT Sports 2", "Amazon Prime Video"},
		USA:    []string{"NBC", "USA Network", "Peacock", "Telemundo", "Universo"},
	},
	132: {
		Poland: []string{"Viaplay"},
		UK:     []string{"ITV1", "ITV4", "ITVX", "BBC One", "BBC iPlayer"},
		USA:    []string{"ESPN", "ESPN2", "ESPN+"},
	},
	133: {
		Poland: []string{"Viaplay"},
		UK:     []string{"Sky Sports Main Event", "Sky Sports Football", "Sky Sports+"},
		USA:    []string{"Paramount+"},
	},
	87: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2", "Eleven Sports 3", "Eleven Sports 4"},
		UK:     []string{"Premier Sports 1", "Premier Sports 2", "LaLigaTV"},
		USA:    []string{"ESPN", "ESPN2", "ESPN+", "ESPN Deportes"},
	},
	138: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2"},
		UK:     []string{"Premier Sports 1"},
		USA:    []string{"ESPN+", "ESPN Deportes"},
	},
	55: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2", "Eleven Sports 3", "Eleven Sports 4"},
		UK:     []string{"TNT Sports 1", "TNT Sports 2", "discovery+"},
		USA:    []string{"CBS Sports Network", "CBS Sports Golazo", "Paramount+"},
	},
	141: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2"},
		UK:     []string{},
		USA:    []string{"CBS Sports Network", "Paramount+"},
	},
	54: {
		Poland: []string{"Viaplay"},
		UK:     []string{"Sky Sports Main Event", "Sky Sports Football", "Sky Sports+"},
		USA:    []string{"ESPN", "ESPN2", "ESPN+"},
	},
	209: {
		Poland: []string{"Viaplay"},
		UK:     []string{},
		USA:    []string{"ESPN+"},
	},
	53: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2"},
		UK:     []string{"beIN Sports 1", "beIN Sports 2"},
		USA:    []string{"beIN Sports", "beIN Sports en Español", "beIN Sports XTRA"},
	},
	61: {
		Poland: []string{"Eleven Sports 1", "Eleven Sports 2"},
		UK:     []string{},
		USA:    []string{"GolTV"},
	},
	57: {
		Poland: []string{"Viaplay"},
		UK:     []string{"Viaplay"},
		USA:    []string{"ESPN+"},
	},
	71: {
		Poland: []string{},
		UK:     []string{"beIN Sports 1", "beIN Sports 2"},
		USA:    []string{"beIN Sports", "beIN Sports XTRA"},
	},
	40: {
		Poland: []string{},
		UK:     []string{},
		USA:    []string{},
	},
	64: {
		Poland: []string{"Viaplay"},
		UK:     []string{"Sky Sports Main Event", "Sky Sports Football", "Sky Sports+"},
		USA:    []string{"CBS Sports Golazo", "Paramount+"},
	},
	536: {
		Poland: []string{"DAZN"},
		UK:     []string{"DAZN"},
		USA:    []string{"DAZN"},
	},
	130: {
		Poland: []string{"Apple TV (MLS Season Pass)"},
		UK:     []string{"Apple TV (MLS Season Pass)", "Sky Sports Main Event"},
		USA:    []string{"Apple TV (MLS Season Pass)", "FOX", "FS1", "FS2"},
	},
	268: {
		Poland: []string{},
		UK:     []string{},
		USA:    []string{"Paramount+", "beIN Sports XTRA"},
	},
	112: {
		Poland: []string{},
		UK:     []string{},
		USA:    []string{"Paramount+", "TyC Sports Internacional"},
	},
	196: {
		Poland: []string{"Canal+ Sport", "Canal+ Sport 2", "Canal+ Sport 3", "Canal+ Extra 1"},
		UK:     []string{},
		USA:    []string{},
	},
	197: {
		Poland: []string{"Polsat Sport 1", "Polsat Sport 2", "Polsat Sport Extra", "Polsat Box Go"},
		UK:     []string{},
		USA:    []string{},
	},
}

// BroadcastersFor never returns nil slices; unknown competitions get empty lists.
func BroadcastersFor(id int64) Broadcasters {
	item, ok := broadcasts[id]
	if !ok {
		return Broadcasters{Poland: []string{}, UK: []string{}, USA: []string{}}
	}
	return Broadcasters{
		Poland: append([]string{}, item.Poland...),
		UK:     append([]string{}, item.UK...),
		USA:    append([]string{}, item.USA...),
	}
}
