package catalog

// Orientation tags a photo as portrait or landscape.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Valid reports whether the orientation is one of the known values.
func (o Orientation) Valid() bool {
	return o == OrientationPortrait || o == OrientationLandscape
}

// Photo is an image reference owned by exactly one album for its entire
// lifetime. Photo IDs are unique across the whole catalog, not just within
// their album.
type Photo struct {
	ID          string      `json:"id"`
	AlbumID     string      `json:"albumId"`
	URL         string      `json:"url"`
	Orientation Orientation `json:"orientation"`
}

// Album is a named, ordered container of photos. Photo order is insertion
// order and doubles as display order.
type Album struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Photos []Photo `json:"photos"`
}
