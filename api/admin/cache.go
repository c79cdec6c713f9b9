package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// InvalidateCatalogCache drops the cached catalog so the next request
// refetches it from the upstream source. Without a locale it clears
// every cached translation.
func (ar *AdminRoutesManager) InvalidateCatalogCache(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")

	var err error
	if locale == "" {
		err = ar.catalogService.InvalidateAll()
	} else {
		err = ar.catalogService.Invalidate(ar.catalogService.NormalizeLocale(locale))
	}
	if err != nil {
		ar.logger.Error("Failed to invalidate catalog cache", gecho.Field("error", err), gecho.Field("locale", locale))
		gecho.InternalServerError(w, gecho.WithMessage("error.catalog.failedToInvalidate"), gecho.Send())
		return
	}

	ar.logger.Info("Catalog cache invalidated", gecho.Field("locale", locale))
	gecho.Success(w,
		gecho.WithMessage("success.catalog.invalidated"),
		gecho.Send(),
	)
}
