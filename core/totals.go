package core

import "log"

// DailyTotals aggregates one employee's day. The premium tiers come
// from the daily total alone: whatever work type each entry was tagged
// with is advisory metadata and never enters this calculation.
type DailyTotals struct {
	EmployeeID    string  `json:"employeeId"`
	Date          string  `json:"date"`
	TotalHours    float64 `json:"totalHours"`
	BillableHours float64 `json:"billableHours"`
	BreakHours    float64 `json:"breakHours"`
	EntryCount    int64   `json:"entryCount"`
	Regular       float64 `json:"regular"`
	Overtime      float64 `json:"overtime"`
	Doubletime    float64 `json:"doubletime"`
}

// DeriveTiers splits a daily total into regular (first 8h), overtime
// (next 4h) and doubletime (everything past 12h).
func DeriveTiers(total float64) (regular, overtime, doubletime float64) {
	regular = total
	if regular > 8 {
		regular = 8
	}
	overtime = total - 8
	if overtime < 0 {
		overtime = 0
	}
	if overtime > 4 {
		overtime = 4
	}
	doubletime = total - 12
	if doubletime < 0 {
		doubletime = 0
	}
	return regular, overtime, doubletime
}

// CalculateDailyTotals sums the employee's entries for one date and
// derives the premium tiers. Failures degrade to zero totals.
func (s *Store) CalculateDailyTotals(employeeID, date string) DailyTotals {
	totals := DailyTotals{EmployeeID: employeeID, Date: date}

	db, err := s.dm.DB()
	if err != nil {
		log.Printf("calculateDailyTotals %s %s: %v", employeeID, date, err)
		return totals
	}

	var row struct {
		TotalHours    float64
		BillableHours float64
		BreakHours    float64
		EntryCount    int64
	}
	err = db.Table("timesheet_entries").
		Select(`COALESCE(SUM(hours_worked), 0) AS total_hours,
            COALESCE(SUM(billable_hours), 0) AS billable_hours,
            COALESCE(SUM(break_hours), 0) AS break_hours,
            COUNT(*) AS entry_count`).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Scan(&row).Error
	if err != nil {
		log.Printf("calculateDailyTotals %s %s: %v", employeeID, date, err)
		return totals
	}

	totals.TotalHours = row.TotalHours
	totals.BillableHours = row.BillableHours
	totals.BreakHours = row.BreakHours
	totals.EntryCount = row.EntryCount
	totals.Regular, totals.Overtime, totals.Doubletime = DeriveTiers(row.TotalHours)
	return totals
}
