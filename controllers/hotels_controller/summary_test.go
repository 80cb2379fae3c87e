package hotels_controller

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryJson(t *testing.T) {
	s := HotelSummary{
		Name:            stringPtr("Doge's palace"),
		Address:         stringPtr("Production"),
		Architects:      stringPtr("Madhura Bhave | Phil Webb"),
		GeographicOrder: stringPtr("south"),
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name":"Doge's palace","Address":"Production","Architects":"Madhura Bhave | Phil Webb","GeographicOrder":"south"}`, string(b))
}

func TestSummaryJsonOmitsNil(t *testing.T) {
	b, err := json.Marshal(HotelSummary{Name: stringPtr("Doge's palace"), GeographicOrder: stringPtr("south")})
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"Doge's palace","GeographicOrder":"south"}`, string(b))
}

func TestSummaryJsonKeepsEmptyValues(t *testing.T) {
	s := NewSummary(Hotel{Name: "", Architects: []string{}, GeographicOrder: "east"}, "http://localhost:8080")
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"","Architects":"","GeographicOrder":"east"}`, string(b))
}

func TestNewSummary(t *testing.T) {
	h := Hotel{
		Name:            "doge's palace",
		Address:         "1 Canal Street",
		Image:           "doges palace.jpg",
		Architects:      []string{"Madhura Bhave", "Phil Webb"},
		GeographicOrder: "south",
	}
	s := NewSummary(h, "http://localhost:8080/")
	assert.Equal(t, "Doge's palace", *s.Name)
	assert.Equal(t, "1 Canal Street", *s.Address)
	assert.Equal(t, "http://localhost:8080/images/doges%20palace.jpg", *s.Image)
	assert.Equal(t, "Madhura Bhave | Phil Webb", *s.Architects)
	assert.Equal(t, "south", *s.GeographicOrder)
}

func TestNewSummaryWithoutOptionalFields(t *testing.T) {
	s := NewSummary(Hotel{Name: "n1", GeographicOrder: "east"}, "http://localhost:8080")
	assert.Equal(t, HotelSummary{Name: stringPtr("N1"), GeographicOrder: stringPtr("east")}, s)
}

func TestNewSummaries(t *testing.T) {
	assert.Equal(t, []HotelSummary{}, NewSummaries(nil, "http://localhost:8080"))
	res := NewSummaries(sampleHotels()[:2], "http://localhost:8080")
	assert.Equal(t, "N1", *res[0].Name)
	assert.Equal(t, "N2", *res[1].Name)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Élan", capitalize("élan"))
	assert.Equal(t, "Already", capitalize("Already"))
}
