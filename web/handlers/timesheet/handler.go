package timesheet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrack/fieldtrack/core"
	"github.com/fieldtrack/fieldtrack/validation"
	web "github.com/fieldtrack/fieldtrack/web/common"
)

type Endpoint struct {
	store  *core.Store
	engine *validation.Engine
}

func Register(r *gin.RouterGroup, store *core.Store, engine *validation.Engine) {
	ep := &Endpoint{store: store, engine: engine}
	r.POST("/timesheets", ep.Create)
	r.POST("/timesheets/search", ep.Search)
	r.POST("/timesheets/export", ep.Export)
	r.GET("/timesheets/totals", ep.DailyTotals)
	r.PUT("/timesheets/:id", ep.Update)
	r.DELETE("/timesheets/:id", ep.Delete)
}

// Create validates the candidate record and inserts the sanitized
// result. Validation failures come back as data with a 422; only
// persistence failures surface as errors.
func (ep *Endpoint) Create(c *gin.Context) {
	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	result := ep.engine.Validate("timesheet_entry", record)
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, web.ValidationResponse{
			Valid:    false,
			Errors:   result.Errors,
			Warnings: result.Warnings,
		})
		return
	}

	row, err := ep.store.Insert("timesheet_entries", core.EntryRow(result.Sanitized), c.GetHeader("X-Actor"))
	if err != nil {
		var constraint *core.ConstraintError
		if errors.As(err, &constraint) {
			c.JSON(http.StatusConflict, web.NewErrorResponse("An entry already exists for this employee, date and assignment"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(gin.H{
		"entry":    row,
		"warnings": result.Warnings,
	}))
}

type UpdateDTO struct {
	HoursWorked     *float64 `json:"hoursWorked,omitempty"`
	BreakHours      *float64 `json:"breakHours,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Approved        *bool    `json:"approved,omitempty"`
	ApprovedBy      *string  `json:"approvedBy,omitempty"`
	Rejected        *bool    `json:"rejected,omitempty"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	patch := map[string]any{}
	var warnings []string
	if dto.HoursWorked != nil {
		fr, _ := ep.engine.ValidateField("timesheet_entry", "hoursWorked", *dto.HoursWorked)
		if len(fr.Errors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, web.ValidationResponse{
				Valid:    false,
				Errors:   fr.Errors,
				Warnings: fr.Warnings,
			})
			return
		}
		warnings = append(warnings, fr.Warnings...)
		patch["hours_worked"] = fr.Value
	}
	if dto.BreakHours != nil {
		fr, _ := ep.engine.ValidateField("timesheet_entry", "breakHours", *dto.BreakHours)
		warnings = append(warnings, fr.Warnings...)
		patch["break_hours"] = fr.Value
	}
	if dto.Description != nil {
		patch["description"] = *dto.Description
	}
	if dto.Approved != nil {
		patch["approved"] = *dto.Approved
	}
	if dto.ApprovedBy != nil {
		patch["approved_by"] = *dto.ApprovedBy
	}
	if dto.Rejected != nil {
		patch["rejected"] = *dto.Rejected
	}
	if dto.RejectionReason != nil {
		patch["rejection_reason"] = *dto.RejectionReason
	}

	changed, err := ep.store.Update("timesheet_entries", id, patch, c.GetHeader("X-Actor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"changed":  changed,
		"warnings": warnings,
	}))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	deleted, err := ep.store.Delete("timesheet_entries", id, c.GetHeader("X-Actor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Entry not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
