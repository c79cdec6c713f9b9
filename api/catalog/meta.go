package catalog

import (
	"mountspa_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (cr *CatalogRoutesManager) GetCatalogMeta(w http.ResponseWriter, r *http.Request) {
	locale := cr.catalogService.NormalizeLocale(r.URL.Query().Get("locale"))
	catalog := cr.catalogService.GetCatalog(r.Context(), locale)

	minPrice, maxPrice := services.PriceRange(catalog.HotTubes)
	collections := make([]string, 0)
	seen := make(map[string]bool)
	for _, tub := range catalog.HotTubes {
		if tub.Collection != "" && !seen[tub.Collection] {
			seen[tub.Collection] = true
			collections = append(collections, tub.Collection)
		}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"priceRange": map[string]float64{
				"min": minPrice,
				"max": maxPrice,
			},
			"seatingOptions": services.SeatingOptions(catalog.HotTubes),
			"collections":    collections,
		}),
		gecho.WithMessage("success.catalogMeta.retrieved"),
		gecho.Send(),
	)
}

func (cr *CatalogRoutesManager) ListAccessories(w http.ResponseWriter, r *http.Request) {
	locale := cr.catalogService.NormalizeLocale(r.URL.Query().Get("locale"))
	catalog := cr.catalogService.GetCatalog(r.Context(), locale)

	gecho.Success(w,
		gecho.WithData(catalog.Accessories),
		gecho.WithMessage("success.accessories.retrieved"),
		gecho.Send(),
	)
}

func (cr *CatalogRoutesManager) ListServicePackages(w http.ResponseWriter, r *http.Request) {
	locale := cr.catalogService.NormalizeLocale(r.URL.Query().Get("locale"))
	catalog := cr.catalogService.GetCatalog(r.Context(), locale)

	gecho.Success(w,
		gecho.WithData(catalog.ServicePackages),
		gecho.WithMessage("success.servicePackages.retrieved"),
		gecho.Send(),
	)
}
