package domain

const MemorySlots = 10

// Memory is the bank of addressable registers M0-M9.
// Out-of-range indexes are ignored.
type Memory [MemorySlots]float64

func validSlot(i int) bool { return i >= 0 && i < MemorySlots }

func (m *Memory) Store(i int, v float64) {
	if validSlot(i) {
		m[i] = v
	}
}

// Recall returns 0 for an out-of-range index.
func (m *Memory) Recall(i int) float64 {
	if !validSlot(i) {
		return 0
	}
	return m[i]
}

func (m *Memory) Add(i int, v float64) {
	if validSlot(i) {
		m[i] += v
	}
}

func (m *Memory) Subtract(i int, v float64) {
	if validSlot(i) {
		m[i] -= v
	}
}

func (m *Memory) ClearOne(i int) {
	if validSlot(i) {
		m[i] = 0
	}
}

func (m *Memory) ClearAll() {
	*m = Memory{}
}

func (m *Memory) SumAll() float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum
}
