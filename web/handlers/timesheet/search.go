package timesheet

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrack/fieldtrack/core"
	web "github.com/fieldtrack/fieldtrack/web/common"
)

type SearchParams struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DateFrom     string `json:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo       string `json:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	BusinessUnit string `json:"businessUnit"`
	ProjectID    string `json:"projectId"`
	Approved     *bool  `json:"approved"`
}

func (p SearchParams) filters() core.TimesheetFilters {
	return core.TimesheetFilters{
		EmployeeID:   p.EmployeeID,
		Date:         p.Date,
		DateFrom:     p.DateFrom,
		DateTo:       p.DateTo,
		BusinessUnit: p.BusinessUnit,
		ProjectID:    p.ProjectID,
		Approved:     p.Approved,
	}
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	opts := core.QueryOptions{Limit: 1000}
	if val, err := strconv.Atoi(c.Query("limit")); err == nil && val > 0 {
		opts.Limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil && val > 0 {
		opts.Offset = val
	}

	entries := ep.store.GetTimesheetEntries(params.filters(), opts)
	c.JSON(http.StatusOK, web.NewSearchResponse(entries, int64(len(entries))))
}

type TotalsParams struct {
	EmployeeID string `form:"employeeId" binding:"required"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (ep *Endpoint) DailyTotals(c *gin.Context) {
	var params TotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	totals := ep.store.CalculateDailyTotals(params.EmployeeID, params.Date)
	c.JSON(http.StatusOK, web.NewSuccessResponse(totals))
}
