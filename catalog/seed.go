package catalog

// StarterAlbums returns the demo catalog loaded at startup so a fresh server
// has something to show before the admin adds real content.
func StarterAlbums() []Album {
	return []Album{
		{
			ID:    "a1",
			Title: "Soirée de samedi",
			Photos: []Photo{
				{ID: "p1", AlbumID: "a1", URL: "https://picsum.photos/id/1011/1200/800", Orientation: OrientationLandscape},
				{ID: "p2", AlbumID: "a1", URL: "https://picsum.photos/id/1027/800/1200", Orientation: OrientationPortrait},
			},
		},
	}
}
