package model

// Image is a stored media object reference: the public URL and the object
// storage key needed to delete it later.
type Image struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// IsZero reports whether no image is attached.
func (i Image) IsZero() bool {
	return i.URL == "" && i.Key == ""
}
