package configurator

import (
	"mountspa_server/lib"
	"mountspa_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (cr *ConfiguratorRoutesManager) HandleQuote(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		cr.logger.Warn("Failed to extract quote request", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.invalidRequestBody"), gecho.Send())
		return
	}

	if body.Configuration.HotTubID == "" {
		gecho.BadRequest(w, gecho.WithMessage("error.configurator.missingHottubId"), gecho.Send())
		return
	}

	quote, err := cr.configuratorService.Quote(r.Context(), body.Locale, body.Configuration)
	if err != nil {
		if lib.IsNotFound(err) {
			cr.logger.Debug("Quote requested for unknown hot tub", gecho.Field("hottub_id", body.Configuration.HotTubID))
			gecho.NotFound(w, gecho.WithMessage("error.hottub.notFound"), gecho.Send())
			return
		}
		cr.logger.Error("Failed to build quote", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.configurator.quoteFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(quote),
		gecho.WithMessage("success.quote.calculated"),
		gecho.Send(),
	)
}
