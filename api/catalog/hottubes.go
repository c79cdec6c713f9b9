package catalog

import (
	"mountspa_server/handling"
	"mountspa_server/lib"
	"mountspa_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (cr *CatalogRoutesManager) GetCatalog(w http.ResponseWriter, r *http.Request) {
	locale := cr.catalogService.NormalizeLocale(r.URL.Query().Get("locale"))
	catalog := cr.catalogService.GetCatalog(r.Context(), locale)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"catalog": catalog,
			"state":   cr.catalogService.State(locale),
			"locale":  locale,
		}),
		gecho.WithMessage("success.catalog.retrieved"),
		gecho.Send(),
	)
}

func (cr *CatalogRoutesManager) ListHotTubes(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseHotTubListOptions(r)
	if err != nil {
		cr.logger.Warn("Failed to parse hot tub list options", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.invalidQueryParameters"), gecho.Send())
		return
	}

	catalog := cr.catalogService.GetCatalog(r.Context(), opts.Locale)
	hottubes := catalog.HotTubes
	if opts.Collection != "" {
		hottubes = services.FilterByCollection(hottubes, opts.Collection)
	}
	switch opts.SortBy {
	case "seating":
		hottubes = services.SortBySeating(hottubes, opts.SortAscending)
	case "price":
		hottubes = services.SortByPrice(hottubes, opts.SortAscending)
	}

	gecho.Success(w,
		gecho.WithData(hottubes),
		gecho.WithMessage("success.hottubes.retrieved"),
		gecho.Send(),
	)
}

func (cr *CatalogRoutesManager) GetHotTub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	locale := cr.catalogService.NormalizeLocale(r.URL.Query().Get("locale"))

	catalog := cr.catalogService.GetCatalog(r.Context(), locale)
	for i := range catalog.HotTubes {
		if catalog.HotTubes[i].ID == id {
			hottub := catalog.HotTubes[i]
			gecho.Success(w,
				gecho.WithData(map[string]any{
					"hottub":             hottub,
					"dimensionsDisplay":  lib.FormatDimensions(hottub.Dimensions),
					"dimensionsImperial": lib.ConvertToInches(hottub.Dimensions),
				}),
				gecho.WithMessage("success.hottub.retrieved"),
				gecho.Send(),
			)
			return
		}
	}

	cr.logger.Debug("Hot tub not found", gecho.Field("id", id), gecho.Field("locale", locale))
	gecho.NotFound(w, gecho.WithMessage("error.hottub.notFound"), gecho.Send())
}
