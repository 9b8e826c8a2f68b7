package domain

const MaxStatPoints = 50

// Point is one statistics entry. HasY is false for 1-variable entries.
type Point struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	HasY bool    `json:"has_y"`
}

// StatData is a bounded list of statistics entries.
type StatData struct {
	Points []Point `json:"points"`
}

func (s *StatData) add(p Point) error {
	if len(s.Points) >= MaxStatPoints {
		return ErrCapacity
	}
	s.Points = append(s.Points, p)
	return nil
}

// AddX appends a 1-variable entry.
func (s *StatData) AddX(x float64) error {
	return s.add(Point{X: x})
}

// AddXY appends a paired entry.
func (s *StatData) AddXY(x, y float64) error {
	return s.add(Point{X: x, Y: y, HasY: true})
}

// RemoveLast drops the newest entry, if any.
func (s *StatData) RemoveLast() {
	if len(s.Points) > 0 {
		s.Points = s.Points[:len(s.Points)-1]
	}
}

// Insert places p before index i.
func (s *StatData) Insert(i int, p Point) error {
	if i < 0 || i > len(s.Points) {
		return ErrInvalidInput
	}
	if len(s.Points) >= MaxStatPoints {
		return ErrCapacity
	}
	s.Points = append(s.Points, Point{})
	copy(s.Points[i+1:], s.Points[i:])
	s.Points[i] = p
	return nil
}

func (s *StatData) Update(i int, p Point) error {
	if i < 0 || i >= len(s.Points) {
		return ErrInvalidInput
	}
	s.Points[i] = p
	return nil
}

// Remove deletes entry i and shifts the rest down.
func (s *StatData) Remove(i int) error {
	if i < 0 || i >= len(s.Points) {
		return ErrInvalidInput
	}
	s.Points = append(s.Points[:i], s.Points[i+1:]...)
	return nil
}

func (s *StatData) Clear() { s.Points = nil }

func (s StatData) Len() int { return len(s.Points) }

// RegressionType is one of the four fitted families.
type RegressionType int

const (
	RegLinear RegressionType = iota
	RegLog
	RegExp
	RegPower
)

var regressionNames = [...]string{"LIN", "LOG", "EXP", "PWR"}

func (r RegressionType) String() string {
	if r < 0 || int(r) >= len(regressionNames) {
		return "?"
	}
	return regressionNames[r]
}

func ParseRegressionType(s string) (RegressionType, bool) {
	for i, name := range regressionNames {
		if name == s {
			return RegressionType(i), true
		}
	}
	return RegLinear, false
}

// OneVarStats summarizes the x values of every entry.
type OneVarStats struct {
	N      int     `json:"n"`
	SumX   float64 `json:"sum_x"`
	SumX2  float64 `json:"sum_x2"`
	MeanX  float64 `json:"mean_x"`
	Sx     float64 `json:"sx"`
	SigmaX float64 `json:"sigma_x"`
	MinX   float64 `json:"min_x"`
	MaxX   float64 `json:"max_x"`
}

// TwoVarStats summarizes the paired entries.
type TwoVarStats struct {
	N      int     `json:"n"`
	SumX   float64 `json:"sum_x"`
	SumX2  float64 `json:"sum_x2"`
	SumY   float64 `json:"sum_y"`
	SumY2  float64 `json:"sum_y2"`
	SumXY  float64 `json:"sum_xy"`
	MeanX  float64 `json:"mean_x"`
	MeanY  float64 `json:"mean_y"`
	Sx     float64 `json:"sx"`
	Sy     float64 `json:"sy"`
	SigmaX float64 `json:"sigma_x"`
	SigmaY float64 `json:"sigma_y"`
}

// Regression is y = A + B·x in the family's linearized space.
type Regression struct {
	Type RegressionType `json:"type"`
	A    float64        `json:"a"`
	B    float64        `json:"b"`
	R    float64        `json:"r"`
	RSq  float64        `json:"r_squared"`
}
