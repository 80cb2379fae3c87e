package hotels_controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HotelsServiceTestSuite struct {
	suite.Suite
	data    *HotelFile
	service *HotelsService
}

func sampleHotels() []Hotel {
	return []Hotel{
		{Name: "n1", Address: "a1", Rooms: 1, Opened: "1991", Operator: "o1", Theme: "t1", GeographicOrder: "south"},
		{Name: "n2", Address: "a2", Rooms: 2, Opened: "1992", Operator: "o2", Theme: "t2", GeographicOrder: "south"},
		{Name: "n3", Address: "a3", Rooms: 3, Opened: "1993", Operator: "o3", Theme: "t3", GeographicOrder: "south"},
		{Name: "n4", Address: "a4", Rooms: 4, Opened: "1994", Operator: "o4", Theme: "t4", GeographicOrder: "east"},
		{Name: "n5", Address: "a5", Rooms: 5, Opened: "1995", Operator: "o5", Theme: "t5", GeographicOrder: "east"},
	}
}

func (s *HotelsServiceTestSuite) SetupTest() {
	s.data = &HotelFile{FileVersion: 1, Hotels: sampleHotels()}
	svc, err := NewHotelsService(s.data)
	s.Require().NoError(err)
	s.service = svc
}

func (s *HotelsServiceTestSuite) TestUnsupportedFileVersion() {
	_, err := NewHotelsService(&HotelFile{FileVersion: 2, Hotels: sampleHotels()})
	s.ErrorIs(err, common.ErrUnsupportedFileVersion)
	s.EqualError(err, "only version 1 is supported")
}

func (s *HotelsServiceTestSuite) TestAll() {
	all := s.service.All()
	s.Len(all, 5)
	s.Equal(s.data.Hotels, all)
}

func (s *HotelsServiceTestSuite) TestFindByNameEmpty() {
	_, err := s.service.FindByName("")
	s.ErrorIs(err, common.ErrInvalidName)
}

func (s *HotelsServiceTestSuite) TestFindByName() {
	h, err := s.service.FindByName("n3")
	s.Require().NoError(err)
	s.Equal(s.data.Hotels[2], *h)
}

func (s *HotelsServiceTestSuite) TestFindByNameDifferentCase() {
	h, err := s.service.FindByName("N3")
	s.Require().NoError(err)
	s.Equal(s.data.Hotels[2], *h)
}

func (s *HotelsServiceTestSuite) TestFindByNameMissing() {
	_, err := s.service.FindByName("missing")
	s.ErrorIs(err, common.ErrHotelNotFound)
}

func (s *HotelsServiceTestSuite) TestFindByGeographicOrderEmpty() {
	_, err := s.service.FindByGeographicOrder("")
	s.ErrorIs(err, common.ErrInvalidName)
}

func (s *HotelsServiceTestSuite) TestFindByGeographicOrder() {
	found, err := s.service.FindByGeographicOrder("east")
	s.Require().NoError(err)
	s.Equal([]Hotel{s.data.Hotels[3], s.data.Hotels[4]}, found)
}

func (s *HotelsServiceTestSuite) TestFindByGeographicOrderDifferentCase() {
	found, err := s.service.FindByGeographicOrder("EAsT")
	s.Require().NoError(err)
	s.Equal([]Hotel{s.data.Hotels[3], s.data.Hotels[4]}, found)
}

func (s *HotelsServiceTestSuite) TestFindByGeographicOrderMissing() {
	found, err := s.service.FindByGeographicOrder("north")
	s.Require().NoError(err)
	s.NotNil(found)
	s.Empty(found)
}

func (s *HotelsServiceTestSuite) TestResultsAreCopies() {
	all := s.service.All()
	all[0].Name = "changed"
	h, err := s.service.FindByName("n1")
	s.Require().NoError(err)
	s.Equal("n1", h.Name)
}

func TestHotelsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HotelsServiceTestSuite))
}

const sampleYaml = `
fileVersion: 1
hotels:
  - name: doge's palace
    address: 1 Canal Street
    image: doges palace.jpg
    rooms: 120
    opened: "1340"
    operator: Serenissima
    architects:
      - Madhura Bhave
      - Phil Webb
    geographicOrder: south
  - name: plain inn
    address: 2 High Street
    rooms: 4
    geographicOrder: north
`

func TestLoadService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleYaml), 0644))

	svc, err := LoadService(path)
	assert.NoError(t, err)
	all := svc.All()
	assert.Len(t, all, 2)
	assert.Equal(t, []string{"Madhura Bhave", "Phil Webb"}, all[0].Architects)
	assert.Equal(t, "1340", all[0].Opened)
	assert.Equal(t, 120, all[0].Rooms)
}

func TestLoadServiceRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("fileVersion: 2\nhotels: []\n"), 0644))

	_, err := LoadService(path)
	assert.ErrorIs(t, err, common.ErrUnsupportedFileVersion)
}

func TestLoadServiceMissingFile(t *testing.T) {
	_, err := LoadService(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseHotelFileInvalid(t *testing.T) {
	_, err := ParseHotelFile([]byte("hotels: {not: [a list"))
	assert.Error(t, err)
}
