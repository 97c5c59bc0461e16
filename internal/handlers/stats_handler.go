package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/httpresp"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
	"github.com/fsanztor01/TrimTime/internal/usecase/statistics"
)

type StatsHandler struct {
	compute *statistics.Compute
}

func NewStatsHandler(compute *statistics.Compute) *StatsHandler {
	return &StatsHandler{compute: compute}
}

// Report serves GET /admin/statistics?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both bounds are optional; an empty bound leaves that side open.
func (h *StatsHandler) Report(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	if from != "" {
		if _, err := timegrid.ParseCanonicalDate(from); err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid 'from' date, expected YYYY-MM-DD.")
			return
		}
	}
	if to != "" {
		if _, err := timegrid.ParseCanonicalDate(to); err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid 'to' date, expected YYYY-MM-DD.")
			return
		}
	}

	report, err := h.compute.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, report)
}
