package hotels_controller

import (
	"os"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const SupportedFileVersion = 1

type Hotel struct {
	Name            string   `yaml:"name"`
	Address         string   `yaml:"address"`
	Image           string   `yaml:"image"`
	Rooms           int      `yaml:"rooms"`
	Opened          string   `yaml:"opened"`
	Operator        string   `yaml:"operator"`
	Theme           string   `yaml:"theme"`
	Architects      []string `yaml:"architects"`
	GeographicOrder string   `yaml:"geographicOrder"`
}

type HotelFile struct {
	FileVersion int     `yaml:"fileVersion"`
	Hotels      []Hotel `yaml:"hotels"`
}

func ParseHotelFile(b []byte) (*HotelFile, error) {
	f := &HotelFile{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, errors.Wrap(err, "invalid hotel data")
	}
	return f, nil
}

func LoadHotelFile(path string) (*HotelFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading hotel data")
	}
	return ParseHotelFile(b)
}

// LoadService reads the hotel data file at path and indexes it.
func LoadService(path string) (*HotelsService, error) {
	f, err := LoadHotelFile(path)
	if err != nil {
		return nil, err
	}
	svc, err := NewHotelsService(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return svc, nil
}

func checkVersion(f *HotelFile) error {
	if f.FileVersion != SupportedFileVersion {
		return common.ErrUnsupportedFileVersion
	}
	return nil
}
