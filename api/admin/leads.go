package admin

import (
	"mountspa_server/handling"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) ListLeads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize < 1 {
		pageSize = 25
	}

	leads, total, err := ar.leadService.List(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		_ = handling.HandleError(err, "failed to list leads", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"leads":     leads,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		}),
		gecho.WithMessage("success.leads.retrieved"),
		gecho.Send(),
	)
}
