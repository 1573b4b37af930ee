package models

// Detail source labels for ShopDetails.Source.
const (
	DetailSourceCatalog = "catalog"
	DetailSourceGoogle  = "google"
)

// PlaceDetails is the resolved result of a Places lookup for one shop.
type PlaceDetails struct {
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	GoogleURL      string `json:"google_url,omitempty"`
	PlaceID        string `json:"place_id,omitempty"`
	PhotoReference string `json:"photo_reference,omitempty"`
}

// ShopDetails is the catalog-first merge of a shop's contact details with
// optional Places enrichment. Source records which side won.
type ShopDetails struct {
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	GoogleURL      string `json:"google_url"`
	PlaceID        string `json:"place_id,omitempty"`
	PhotoReference string `json:"photo_reference,omitempty"`
	Source         string `json:"source"`
}
