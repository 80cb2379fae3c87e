package hotels_controller

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/littletreasures/hotel-media-repo/util"
)

// HotelSummary fields are omitted only when nil. An empty value is
// written as "".
type HotelSummary struct {
	Name            *string `json:"Name,omitempty"`
	Address         *string `json:"Address,omitempty"`
	Image           *string `json:"Image,omitempty"`
	Architects      *string `json:"Architects,omitempty"`
	GeographicOrder *string `json:"GeographicOrder,omitempty"`
}

// NewSummary shapes a hotel for the JSON API. imagesBaseUrl is the public
// address of the server, without the /images path.
func NewSummary(h Hotel, imagesBaseUrl string) HotelSummary {
	s := HotelSummary{
		Name:            stringPtr(capitalize(h.Name)),
		Address:         nonEmpty(h.Address),
		GeographicOrder: nonEmpty(h.GeographicOrder),
	}
	if h.Image != "" {
		s.Image = stringPtr(util.MakeUrl(imagesBaseUrl, "images", (&url.URL{Path: h.Image}).EscapedPath()))
	}
	if h.Architects != nil {
		s.Architects = stringPtr(strings.Join(h.Architects, " | "))
	}
	return s
}

func stringPtr(s string) *string {
	return &s
}

// nonEmpty treats a blank field in the data file as absent.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func NewSummaries(hotels []Hotel, imagesBaseUrl string) []HotelSummary {
	res := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		res = append(res, NewSummary(h, imagesBaseUrl))
	}
	return res
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
