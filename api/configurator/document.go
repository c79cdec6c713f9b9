package configurator

import (
	"fmt"
	"mountspa_server/lib"
	"mountspa_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (cr *ConfiguratorRoutesManager) HandleDocument(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		cr.logger.Warn("Failed to extract document request", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.invalidRequestBody"), gecho.Send())
		return
	}

	if body.Configuration.HotTubID == "" {
		gecho.BadRequest(w, gecho.WithMessage("error.configurator.missingHottubId"), gecho.Send())
		return
	}

	details, err := cr.configuratorService.BuildDocumentDetails(r.Context(), body.Locale, body.Configuration)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.hottub.notFound"), gecho.Send())
			return
		}
		cr.logger.Error("Failed to build document details", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.configurator.documentFailed"), gecho.Send())
		return
	}

	pdfBytes, err := cr.pdfService.Generate(details)
	if err != nil {
		cr.logger.Error("Failed to generate configuration document", gecho.Field("error", err), gecho.Field("model", details.ModelName))
		gecho.InternalServerError(w, gecho.WithMessage("error.configurator.documentFailed"), gecho.Send())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cr.pdfService.FileName(details.ModelName)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		cr.logger.Error("Failed to write document response", gecho.Field("error", err))
	}
}
