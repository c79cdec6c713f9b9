package configurator

import (
	"errors"
	"mountspa_server/lib"
	"mountspa_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (cr *ConfiguratorRoutesManager) HandleShare(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		cr.logger.Warn("Failed to extract share request", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.invalidRequestBody"), gecho.Send())
		return
	}

	if body.Configuration.HotTubID == "" {
		gecho.BadRequest(w, gecho.WithMessage("error.configurator.missingHottubId"), gecho.Send())
		return
	}

	share, err := cr.configuratorService.Share(r.Context(), body.Locale, body.Configuration)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.hottub.notFound"), gecho.Send())
			return
		}
		cr.logger.Error("Failed to build share link", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.configurator.shareFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(share),
		gecho.WithMessage("success.share.created"),
		gecho.Send(),
	)
}

func (cr *ConfiguratorRoutesManager) HandleResolveShare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	hottubID := query.Get("hottub_id")
	token := query.Get("config")
	locale := query.Get("locale")

	if hottubID == "" {
		gecho.BadRequest(w, gecho.WithMessage("error.configurator.missingHottubId"), gecho.Send())
		return
	}

	cfg, err := cr.configuratorService.Resolve(r.Context(), locale, hottubID, token)
	if err != nil {
		switch {
		case lib.IsNotFound(err):
			gecho.NotFound(w, gecho.WithMessage("error.hottub.notFound"), gecho.Send())
			return
		case errors.Is(err, lib.ErrMalformedConfigToken), errors.Is(err, lib.ErrConfigTokenMismatch):
			// A broken link still lands on the default configuration,
			// with a notice so the frontend can tell the visitor.
			gecho.Success(w,
				gecho.WithData(map[string]any{
					"configuration": cfg,
					"restored":      false,
				}),
				gecho.WithMessage("notice.share.invalidToken"),
				gecho.Send(),
			)
			return
		default:
			cr.logger.Error("Failed to resolve share token", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("error.configurator.resolveFailed"), gecho.Send())
			return
		}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"configuration": cfg,
			"restored":      token != "",
		}),
		gecho.WithMessage("success.share.resolved"),
		gecho.Send(),
	)
}
