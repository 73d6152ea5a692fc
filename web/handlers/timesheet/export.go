package timesheet

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/fieldtrack/fieldtrack/core"
	web "github.com/fieldtrack/fieldtrack/web/common"
)

var exportHeaders = []string{
	"Date", "Employee", "Role", "Business Unit", "Project", "Job",
	"Work Order", "Cost Code", "Work Type", "Hours", "Break", "Billable", "Approved",
}

// Export streams a search result as an xlsx workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	entries := ep.store.GetTimesheetEntries(params.filters(), core.QueryOptions{})

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Timesheets"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, entry := range entries {
		costCode := ""
		if entry.CostCode != nil {
			costCode = *entry.CostCode
		}
		values := []any{
			entry.Date, entry.Employee.Name, entry.Employee.Role,
			entry.UnitName, entry.Project.Name, entry.JobName,
			entry.WorkOrderDescription, costCode, entry.WorkTypeInfo.Name,
			entry.HoursWorked, entry.BreakHours, entry.BillableHours, entry.Approved,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(fmt.Sprintf("build workbook: %v", err)))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="timesheets.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
