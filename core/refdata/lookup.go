package refdata

// Lookup indexes a dataset for the existence checks the validation
// engine and store need. Build once, share by reference.
type Lookup struct {
	units      map[string]BusinessUnit
	employees  map[string]Employee
	projects   map[string]Project
	jobs       map[string]Job
	workOrders map[string]WorkOrder
	costCodes  map[string]CostCode
	workTypes  map[string]WorkType
}

func NewLookup(ds *Dataset) *Lookup {
	l := &Lookup{
		units:      make(map[string]BusinessUnit),
		employees:  make(map[string]Employee),
		projects:   make(map[string]Project),
		jobs:       make(map[string]Job),
		workOrders: make(map[string]WorkOrder),
		costCodes:  make(map[string]CostCode),
		workTypes:  make(map[string]WorkType),
	}
	if ds == nil {
		return l
	}
	for _, u := range ds.BusinessUnits {
		l.units[u.Code] = u
	}
	for _, e := range ds.Employees {
		l.employees[e.ID] = e
	}
	for _, p := range ds.Projects {
		l.projects[p.ID] = p
		for _, j := range p.Jobs {
			l.jobs[j.ID] = j
			for _, wo := range j.WorkOrders {
				l.workOrders[wo.ID] = wo
			}
		}
	}
	for _, cc := range ds.CostCodes {
		l.costCodes[cc.Code] = cc
	}
	for _, wt := range ds.WorkTypes {
		l.workTypes[wt.ID] = wt
	}
	return l
}

func (l *Lookup) HasBusinessUnit(code string) bool {
	_, ok := l.units[code]
	return ok
}

func (l *Lookup) HasEmployee(id string) bool {
	_, ok := l.employees[id]
	return ok
}

func (l *Lookup) Project(id string) (Project, bool) {
	p, ok := l.projects[id]
	return p, ok
}

func (l *Lookup) HasProject(id string) bool {
	_, ok := l.projects[id]
	return ok
}

func (l *Lookup) HasJob(id string) bool {
	_, ok := l.jobs[id]
	return ok
}

func (l *Lookup) HasWorkOrder(id string) bool {
	_, ok := l.workOrders[id]
	return ok
}

func (l *Lookup) CostCode(code string) (CostCode, bool) {
	cc, ok := l.costCodes[code]
	return cc, ok
}

func (l *Lookup) HasCostCode(code string) bool {
	_, ok := l.costCodes[code]
	return ok
}

func (l *Lookup) HasWorkType(id string) bool {
	_, ok := l.workTypes[id]
	return ok
}
