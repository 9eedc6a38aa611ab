package model

// Picture is one astronomy-picture-of-the-day record.
type Picture struct {
	Copyright      string `json:"copyright,omitempty"`
	Date           string `json:"date"`
	Explanation    string `json:"explanation"`
	HDURL          string `json:"hdurl,omitempty"`
	MediaType      string `json:"media_type"`
	ServiceVersion string `json:"service_version"`
	Title          string `json:"title"`
	URL            string `json:"url"`
}
