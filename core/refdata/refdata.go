// Package refdata carries the static reference catalog: business units,
// employees, the project/job/work-order tree, cost codes and work types.
// It is supplied once at seed time and afterwards serves existence
// checks only.
package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type BusinessUnit struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

type Employee struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Role         string  `yaml:"role"`
	BusinessUnit string  `yaml:"businessUnit"`
	SupervisorID *string `yaml:"supervisorId,omitempty"`
	Active       bool    `yaml:"active"`
}

type WorkOrder struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	CostCode    string `yaml:"costCode"`
	Priority    string `yaml:"priority"`
	Status      string `yaml:"status"`
}

type Job struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	WorkOrders []WorkOrder `yaml:"workOrders,omitempty"`
}

type Project struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	BusinessUnit string `yaml:"businessUnit"`
	ContractType string `yaml:"contractType"`
	Status       string `yaml:"status"`
	StartDate    string `yaml:"startDate"`
	EndDate      string `yaml:"endDate"`
	Jobs         []Job  `yaml:"jobs,omitempty"`
}

type CostCode struct {
	Code        string  `yaml:"code"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Rate        float64 `yaml:"rate"`
	Billable    bool    `yaml:"billable"`
}

type WorkType struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Multiplier float64  `yaml:"multiplier"`
	MinHours   *float64 `yaml:"minHours,omitempty"`
	MaxHours   *float64 `yaml:"maxHours,omitempty"`
}

type Dataset struct {
	BusinessUnits []BusinessUnit `yaml:"businessUnits"`
	Employees     []Employee     `yaml:"employees"`
	Projects      []Project      `yaml:"projects"`
	CostCodes     []CostCode     `yaml:"costCodes"`
	WorkTypes     []WorkType     `yaml:"workTypes"`
}

// Load reads a dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("unmarshal reference data: %w", err)
	}
	return &ds, nil
}
