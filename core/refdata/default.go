package refdata

// Default returns the built-in catalog used when no dataset file is
// supplied. Work types REGULAR/OVERTIME/DOUBLETIME are required by the
// validation engine's advisory tier checks and are always present.
func Default() *Dataset {
	return &Dataset{
		BusinessUnits: []BusinessUnit{
			{Code: "220000", Name: "Civil Construction", Active: true},
			{Code: "310000", Name: "Electrical Services", Active: true},
			{Code: "450000", Name: "Plant & Equipment", Active: true},
		},
		Employees: []Employee{
			{ID: "EMP001", Name: "James Patterson", Role: "Site Engineer", BusinessUnit: "220000", Active: true},
			{ID: "EMP002", Name: "Maria Santos", Role: "Foreman", BusinessUnit: "220000", SupervisorID: ptr("EMP001"), Active: true},
			{ID: "EMP003", Name: "David Okafor", Role: "Electrician", BusinessUnit: "310000", Active: true},
			{ID: "EMP004", Name: "Helen Carey", Role: "Plant Operator", BusinessUnit: "450000", Active: false},
		},
		Projects: []Project{
			{
				ID: "P1", Name: "Ridgeline Access Road", BusinessUnit: "220000",
				ContractType: "Time & Materials", Status: "Active",
				StartDate: "2024-01-01", EndDate: "2024-12-31",
				Jobs: []Job{
					{
						ID: "J1", Name: "Earthworks",
						WorkOrders: []WorkOrder{
							{ID: "WO1", Description: "Cut and fill chainage 0-400", CostCode: "LAB-CIV", Priority: "High", Status: "Open"},
							{ID: "WO2", Description: "Drainage culverts", CostCode: "LAB-CIV", Priority: "Medium", Status: "Open"},
						},
					},
					{
						ID: "J2", Name: "Pavement",
						WorkOrders: []WorkOrder{
							{ID: "WO3", Description: "Base course laying", CostCode: "EQP-HIRE", Priority: "Low", Status: "Open"},
						},
					},
				},
			},
			{
				ID: "P2", Name: "Substation Upgrade", BusinessUnit: "310000",
				ContractType: "Fixed Bid", Status: "On Hold",
				StartDate: "2024-03-01", EndDate: "2025-06-30",
				Jobs: []Job{
					{ID: "J3", Name: "Switchgear Replacement"},
				},
			},
		},
		CostCodes: []CostCode{
			{Code: "LAB-CIV", Description: "Civil labour", Category: "Labour", Rate: 85, Billable: true},
			{Code: "LAB-ELEC", Description: "Electrical labour", Category: "Labour", Rate: 95, Billable: true},
			{Code: "EQP-HIRE", Description: "Equipment hire", Category: "Equipment", Rate: 120, Billable: true},
			{Code: "ADMIN", Description: "Administration", Category: "Overhead", Rate: 0, Billable: false},
		},
		WorkTypes: []WorkType{
			{ID: "REGULAR", Name: "Regular Time", Multiplier: 1},
			{ID: "OVERTIME", Name: "Overtime", Multiplier: 1.5, MinHours: ptr(8.0), MaxHours: ptr(12.0)},
			{ID: "DOUBLETIME", Name: "Double Time", Multiplier: 2, MinHours: ptr(12.0)},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
