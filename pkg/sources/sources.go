// Package sources loads the static catalog of BIP sites and narrows it by
// search profile or region.
package sources

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/models"
	"bip-scraper/pkg/utils"
)

// Catalog sections, concatenated in this order so national and regional
// authorities come before municipalities.
var sectionOrder = []string{
	"gdos",
	"rdos",
	"voivodeships",
	"miasta_na_prawach_powiatu",
	"powiaty",
	"powiaty_sample",
	"gminy_miejskie",
	"gminy_miejsko_wiejskie",
	"gminy_wiejskie",
}

// Load reads the source catalog JSON and returns all sources in catalog
// order. "powiaty_sample" is only consulted when "powiaty" is absent.
func Load(path string, log *logrus.Logger) ([]models.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", utils.ErrCatalogLoad, path, err)
	}

	var sections map[string][]models.Source
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("%w: JSON parse of %s: %w", utils.ErrCatalogLoad, path, err)
	}

	var out []models.Source
	for _, section := range sectionOrder {
		if section == "powiaty_sample" {
			if _, ok := sections["powiaty"]; ok {
				continue
			}
		}
		out = append(out, sections[section]...)
	}

	log.WithFields(logrus.Fields{"file": path, "sources": len(out)}).Info("Source catalog loaded")
	return out, nil
}
