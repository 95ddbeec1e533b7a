package catalog

var defaultEntries = []Entry{
	{Kind: KindBeat, Title: "Hip Hop Beat #1", Subtitle: "DJ MixMaster", Category: "Hip Hop", Price: "$29.99"},
	{Kind: KindBeat, Title: "Trap Beat #2", Subtitle: "BeatMaker Pro", Category: "Trap", Price: "$24.99"},
	{Kind: KindBeat, Title: "R&B Vibes", Subtitle: "SoulBeats", Category: "R&B", Price: "$19.99"},
	{Kind: KindBeat, Title: "Premium Hip Hop Beat", Subtitle: "Urban Sounds", Category: "Hip Hop", Price: "$29.99"},
	{Kind: KindBeat, Title: "Melodic Trap Beat", Subtitle: "MelodyMaker", Category: "Trap", Price: "$24.99"},
	{Kind: KindBeat, Title: "Chill Lo-Fi Beat", Subtitle: "ChillVibes", Category: "Lo-Fi", Price: "$19.99"},
	{Kind: KindArtist, Title: "DJ MixMaster", Subtitle: "Producer", Category: "Hip Hop Specialist"},
	{Kind: KindArtist, Title: "BeatMaker Pro", Subtitle: "Producer", Category: "Trap & Hip Hop"},
	{Kind: KindArtist, Title: "SoulBeats", Subtitle: "Producer", Category: "R&B & Soul"},
	{Kind: KindGenre, Title: "Hip Hop", Subtitle: "15 beats available", Category: "Genre"},
	{Kind: KindGenre, Title: "Trap", Subtitle: "12 beats available", Category: "Genre"},
	{Kind: KindGenre, Title: "R&B", Subtitle: "8 beats available", Category: "Genre"},
	{Kind: KindGenre, Title: "Lo-Fi", Subtitle: "6 beats available", Category: "Genre"},
}

var defaultCatalog = MustNew(defaultEntries)

// Default returns the compiled-in storefront catalog.
func Default() *Catalog {
	return defaultCatalog
}
