package serviceImp

import (
	"fmt"
	"strings"

	"cropadvisor/entities"
	"cropadvisor/pkg/advisory"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/crop/service"
)

type cropSvc struct{ cat *catalog.Catalog }

func NewCropService(cat *catalog.Catalog) service.CropService { return &cropSvc{cat} }

func (s *cropSvc) List() []service.CropSummary {
	crops := s.cat.All()
	out := make([]service.CropSummary, 0, len(crops))
	for _, c := range crops {
		out = append(out, service.CropSummary{Name: c.Name, Season: c.Season, WaterRequirement: c.WaterRequirement, CycleDays: c.CycleDays})
	}
	return out
}

func (s *cropSvc) Details(name string) (entities.CropProfile, error) {
	c, ok := s.cat.Lookup(name)
	if !ok {
		return entities.CropProfile{}, fmt.Errorf("%w: %q", entities.ErrCropNotFound, name)
	}
	return c, nil
}

func (s *cropSvc) AnalyzeSoil(soil entities.SoilObservation) (entities.SoilAnalysis, error) {
	if strings.TrimSpace(soil.Type) == "" && soil.PH == nil {
		return entities.SoilAnalysis{}, fmt.Errorf("%w: soil type or ph is required", entities.ErrInvalidInput)
	}
	return advisory.AnalyzeSoil(s.cat.All(), soil), nil
}
