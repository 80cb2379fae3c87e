package hotels_controller

import (
	"strings"

	"github.com/littletreasures/hotel-media-repo/common"
)

// HotelsService answers lookups over a fixed list of hotels. It is read-only
// after construction and safe for concurrent use.
type HotelsService struct {
	all               []Hotel
	byName            map[string]*Hotel
	byGeographicOrder map[string][]Hotel
}

func NewHotelsService(f *HotelFile) (*HotelsService, error) {
	if err := checkVersion(f); err != nil {
		return nil, err
	}

	all := make([]Hotel, len(f.Hotels))
	copy(all, f.Hotels)

	svc := &HotelsService{
		all:               all,
		byName:            make(map[string]*Hotel),
		byGeographicOrder: make(map[string][]Hotel),
	}
	for i := range all {
		h := &all[i]
		// later entries win on a duplicate name
		svc.byName[strings.ToLower(h.Name)] = h
		key := strings.ToLower(h.GeographicOrder)
		svc.byGeographicOrder[key] = append(svc.byGeographicOrder[key], *h)
	}
	return svc, nil
}

// All returns every hotel in file order.
func (s *HotelsService) All() []Hotel {
	res := make([]Hotel, len(s.all))
	copy(res, s.all)
	return res
}

// FindByName returns common.ErrHotelNotFound when there is no hotel with the
// name, compared without regard to case.
func (s *HotelsService) FindByName(name string) (*Hotel, error) {
	if name == "" {
		return nil, common.ErrInvalidName
	}
	h, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return nil, common.ErrHotelNotFound
	}
	c := *h
	return &c, nil
}

func (s *HotelsService) FindByGeographicOrder(geographicOrder string) ([]Hotel, error) {
	if geographicOrder == "" {
		return nil, common.ErrInvalidName
	}
	found := s.byGeographicOrder[strings.ToLower(geographicOrder)]
	res := make([]Hotel, len(found))
	copy(res, found)
	return res, nil
}
