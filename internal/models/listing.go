package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListingData represents the "listing" object of a daft.ie search result.
// Fields are pointers so a missing key can be told apart from a zero value.
type ListingData struct {
	ID               *int64      `json:"id,omitempty"`
	Seller           *Seller     `json:"seller,omitempty"`
	SeoFriendlyPath  *string     `json:"seoFriendlyPath,omitempty"`
	Point            *Point      `json:"point,omitempty"`
	Title            *string     `json:"title,omitempty"`
	AbbreviatedPrice *string     `json:"abbreviatedPrice,omitempty"`
	NumBathrooms     *FlexString `json:"numBathrooms,omitempty"`
	NumBedrooms      *FlexString `json:"numBedrooms,omitempty"`
	PublishDate      *int64      `json:"publishDate,omitempty"` // Epoch milliseconds
	DaftShortcode    *string     `json:"daftShortcode,omitempty"`
	Sections         []string    `json:"sections,omitempty"`
	SaleType         *string     `json:"saleType,omitempty"`
	Media            *Media      `json:"media,omitempty"`
	BER              *BER        `json:"ber,omitempty"`
}

type Seller struct {
	SellerID *int64 `json:"sellerId,omitempty"`
}

// Point is a GeoJSON point. Coordinates are ordered [longitude, latitude].
type Point struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

// Media keeps images and brochure as raw JSON; their shape is only checked
// when they are read.
type Media struct {
	Images         []json.RawMessage `json:"images,omitempty"`
	Brochure       json.RawMessage   `json:"brochure,omitempty"`
	TotalImages    *int              `json:"totalImages,omitempty"`
	HasVideo       *bool             `json:"hasVideo,omitempty"`
	HasVirtualTour *bool             `json:"hasVirtualTour,omitempty"`
	HasBrochure    *bool             `json:"hasBrochure,omitempty"`
}

// Image holds the size-keyed URLs of one listing photo, e.g. "size720x480".
type Image map[string]any

// Brochure is passed through untouched; its shape varies between sellers.
type Brochure map[string]any

// BER is the Building Energy Rating block.
type BER struct {
	Rating *string `json:"rating,omitempty"`
}

// FlexString accepts either a JSON string or a JSON number and keeps the
// text form. The API sends room counts as "3 Bed" on some endpoints and 3 on others.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
