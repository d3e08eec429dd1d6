// Package listing gives typed, read-only access to a single daft.ie search
// result and measures distances between listings.
package listing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/pauljones0/daftlistings/internal/models"
	"github.com/pauljones0/daftlistings/internal/util"
)

// BaseURL is the site every seoFriendlyPath is resolved against.
const BaseURL = "http://www.daft.ie"

const publishDateLayout = "2006-01-02 15:04:05"

// Listing wraps one listing payload. It is never modified after construction,
// so it can be shared between goroutines without locking.
type Listing struct {
	raw  map[string]any
	data models.ListingData
}

// New builds a Listing from a decoded {"listing": {...}} payload. The inner
// object is kept as-is; absent fields are only reported when read.
func New(payload map[string]any) (*Listing, error) {
	value, ok := payload["listing"]
	if !ok || value == nil {
		return nil, missing("listing")
	}
	inner, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("listing payload: expected an object under \"listing\", got %T", value)
	}

	encoded, err := json.Marshal(inner)
	if err != nil {
		return nil, fmt.Errorf("failed to encode listing payload: %w", err)
	}
	var data models.ListingData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return nil, fmt.Errorf("failed to decode listing payload: %w", err)
	}
	return &Listing{raw: inner, data: data}, nil
}

// Parse decodes a raw JSON payload and builds a Listing from it. Numbers are
// kept as json.Number so ids survive AsDict unchanged.
func Parse(data []byte) (*Listing, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse listing payload: %w", err)
	}
	return New(payload)
}

// Load reads a payload file from disk.
func Load(path string) (*Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing file %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l *Listing) ID() (int64, error) {
	if l.data.ID == nil {
		return 0, missing("id")
	}
	return *l.data.ID, nil
}

func (l *Listing) AgentID() (int64, error) {
	if l.data.Seller == nil || l.data.Seller.SellerID == nil {
		return 0, missing("seller.sellerId")
	}
	return *l.data.Seller.SellerID, nil
}

// DaftLink returns the canonical listing URL.
func (l *Listing) DaftLink() (string, error) {
	if l.data.SeoFriendlyPath == nil {
		return "", missing("seoFriendlyPath")
	}
	return util.ResolveURL(BaseURL, *l.data.SeoFriendlyPath)
}

// Location returns the listing's point. The payload stores it as
// [longitude, latitude]; both are present or neither is.
func (l *Listing) Location() (models.Coordinates, bool) {
	if l == nil || l.data.Point == nil || len(l.data.Point.Coordinates) < 2 {
		return models.Coordinates{}, false
	}
	c := l.data.Point.Coordinates
	return models.Coordinates{Latitude: c[1], Longitude: c[0]}, true
}

func (l *Listing) Latitude() (float64, bool) {
	c, ok := l.Location()
	return c.Latitude, ok
}

func (l *Listing) Longitude() (float64, bool) {
	c, ok := l.Location()
	return c.Longitude, ok
}

func (l *Listing) Title() (string, error) {
	return requiredString(l.data.Title, "title")
}

func (l *Listing) AbbreviatedPrice() (string, error) {
	return requiredString(l.data.AbbreviatedPrice, "abbreviatedPrice")
}

// Bathrooms returns numBathrooms as sent, e.g. "2 Bath". Not every listing has one.
func (l *Listing) Bathrooms() (string, bool) {
	if l.data.NumBathrooms == nil {
		return "", false
	}
	return l.data.NumBathrooms.String(), true
}

// BathroomCount is Bathrooms reduced to its leading number.
func (l *Listing) BathroomCount() (int, bool) {
	s, ok := l.Bathrooms()
	if !ok {
		return 0, false
	}
	return util.ParseCount(s)
}

// Bedrooms returns numBedrooms as sent, e.g. "3 Bed".
func (l *Listing) Bedrooms() (string, error) {
	if l.data.NumBedrooms == nil {
		return "", missing("numBedrooms")
	}
	return l.data.NumBedrooms.String(), nil
}

func (l *Listing) BedroomCount() (int, error) {
	s, err := l.Bedrooms()
	if err != nil {
		return 0, err
	}
	n, ok := util.ParseCount(s)
	if !ok {
		return 0, fmt.Errorf("numBedrooms %q does not start with a number", s)
	}
	return n, nil
}

// PublishTime converts the epoch-millisecond publishDate to UTC.
func (l *Listing) PublishTime() (time.Time, error) {
	if l.data.PublishDate == nil {
		return time.Time{}, missing("publishDate")
	}
	return time.UnixMilli(*l.data.PublishDate).UTC(), nil
}

// PublishDate formats publishDate as "2006-01-02 15:04:05" in UTC. A
// microsecond fraction is appended only when the timestamp has one.
func (l *Listing) PublishDate() (string, error) {
	t, err := l.PublishTime()
	if err != nil {
		return "", err
	}
	if t.Nanosecond() == 0 {
		return t.Format(publishDateLayout), nil
	}
	return t.Format(publishDateLayout + ".000000"), nil
}

func (l *Listing) Shortcode() (string, error) {
	return requiredString(l.data.DaftShortcode, "daftShortcode")
}

func (l *Listing) Sections() ([]string, error) {
	if l.data.Sections == nil {
		return nil, missing("sections")
	}
	return slices.Clone(l.data.Sections), nil
}

func (l *Listing) SaleType() (string, error) {
	return requiredString(l.data.SaleType, "saleType")
}

func (l *Listing) Images() ([]models.Image, error) {
	if l.data.Media == nil || l.data.Media.Images == nil {
		return nil, missing("media.images")
	}
	images := make([]models.Image, 0, len(l.data.Media.Images))
	for i, raw := range l.data.Media.Images {
		if isNull(raw) {
			images = append(images, nil)
			continue
		}
		var img models.Image
		if err := json.Unmarshal(raw, &img); err != nil {
			return nil, fmt.Errorf("media.images[%d]: %w", i, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// Brochure is only reported when the listing says it has one. The error is
// set only when hasBrochure is true and the brochure is not an object.
func (l *Listing) Brochure() (models.Brochure, bool, error) {
	m := l.data.Media
	if m == nil || m.HasBrochure == nil || !*m.HasBrochure || isNull(m.Brochure) {
		return nil, false, nil
	}
	var b models.Brochure
	if err := json.Unmarshal(m.Brochure, &b); err != nil {
		return nil, false, fmt.Errorf("media.brochure: %w", err)
	}
	return b, true, nil
}

func (l *Listing) TotalImages() (int, error) {
	if l.data.Media == nil || l.data.Media.TotalImages == nil {
		return 0, missing("media.totalImages")
	}
	return *l.data.Media.TotalImages, nil
}

func (l *Listing) HasVideo() (bool, error) {
	return l.mediaFlag("hasVideo", func(m *models.Media) *bool { return m.HasVideo })
}

func (l *Listing) HasVirtualTour() (bool, error) {
	return l.mediaFlag("hasVirtualTour", func(m *models.Media) *bool { return m.HasVirtualTour })
}

func (l *Listing) HasBrochure() (bool, error) {
	return l.mediaFlag("hasBrochure", func(m *models.Media) *bool { return m.HasBrochure })
}

// BER returns the Building Energy Rating, e.g. "B2".
func (l *Listing) BER() (string, error) {
	if l.data.BER == nil {
		return "", missing("ber.rating")
	}
	return requiredString(l.data.BER.Rating, "ber.rating")
}

// AsDict returns the backing payload object itself, not a copy. Callers
// must not modify it.
func (l *Listing) AsDict() map[string]any {
	return l.raw
}

func (l *Listing) mediaFlag(field string, pick func(*models.Media) *bool) (bool, error) {
	if l.data.Media == nil {
		return false, missing("media." + field)
	}
	v := pick(l.data.Media)
	if v == nil {
		return false, missing("media." + field)
	}
	return *v, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func requiredString(v *string, field string) (string, error) {
	if v == nil {
		return "", missing(field)
	}
	return *v, nil
}
