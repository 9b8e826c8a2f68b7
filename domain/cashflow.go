package domain

const (
	MaxCashFlows = 32
	MinFlowCount = 1
	MaxFlowCount = 9999
)

// CashFlow is one group of identical, consecutive period amounts.
type CashFlow struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// CashFlowList is CF0 followed by up to MaxCashFlows ordered groups.
type CashFlowList struct {
	CF0   float64    `json:"cf0"`
	Flows []CashFlow `json:"flows"`
}

func clampCount(count int) int {
	if count < MinFlowCount {
		return MinFlowCount
	}
	if count > MaxFlowCount {
		return MaxFlowCount
	}
	return count
}

// Add appends a group. It fails with ErrCapacity once the list is full.
func (l *CashFlowList) Add(amount float64, count int) error {
	if len(l.Flows) >= MaxCashFlows {
		return ErrCapacity
	}
	l.Flows = append(l.Flows, CashFlow{Amount: amount, Count: clampCount(count)})
	return nil
}

// Insert places a group before index, shifting later groups up.
func (l *CashFlowList) Insert(index int, amount float64, count int) error {
	if index < 0 || index > len(l.Flows) {
		return ErrInvalidInput
	}
	if len(l.Flows) >= MaxCashFlows {
		return ErrCapacity
	}
	l.Flows = append(l.Flows, CashFlow{})
	copy(l.Flows[index+1:], l.Flows[index:])
	l.Flows[index] = CashFlow{Amount: amount, Count: clampCount(count)}
	return nil
}

// Update replaces the group at index.
func (l *CashFlowList) Update(index int, amount float64, count int) error {
	if index < 0 || index >= len(l.Flows) {
		return ErrInvalidInput
	}
	l.Flows[index] = CashFlow{Amount: amount, Count: clampCount(count)}
	return nil
}

// Delete removes the group at index and shifts the rest down.
func (l *CashFlowList) Delete(index int) error {
	if index < 0 || index >= len(l.Flows) {
		return ErrInvalidInput
	}
	l.Flows = append(l.Flows[:index], l.Flows[index+1:]...)
	return nil
}

// Clear drops CF0 and every group.
func (l *CashFlowList) Clear() {
	l.CF0 = 0
	l.Flows = nil
}

// Len is the number of groups, not periods.
func (l CashFlowList) Len() int { return len(l.Flows) }

// TotalPeriods is the sum of all repeat counts.
func (l CashFlowList) TotalPeriods() int {
	total := 0
	for _, f := range l.Flows {
		total += f.Count
	}
	return total
}
