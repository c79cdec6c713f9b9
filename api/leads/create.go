package leads

import (
	"mountspa_server/lib"
	"mountspa_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (lr *LeadRoutesManager) HandleCreateLead(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LeadRequest](r)
	if err != nil {
		lr.logger.Warn("Failed to extract lead request", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.leads.invalidRequest"), gecho.Send())
		return
	}

	body.Name = lib.SanitizeString(body.Name, true, false)
	body.Email = lib.SanitizeString(body.Email, true, true)
	body.Phone = lib.SanitizeString(body.Phone, true, false)
	body.Message = lib.SanitizeString(body.Message, true, false)

	lead, err := lr.leadService.Create(r.Context(), body)
	if err != nil {
		lr.logger.Error("Failed to create lead", gecho.Field("error", err), gecho.Field("email", body.Email))
		gecho.InternalServerError(w, gecho.WithMessage("error.leads.failedToCreate"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"leadNumber": lead.LeadNumber,
		}),
		gecho.WithMessage("success.leads.created"),
		gecho.Send(),
	)
}
