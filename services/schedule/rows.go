package schedule

// Role classifies a grid row by position.
type Role int

const (
	RoleNone Role = iota
	RoleHeader
	RoleRequestedOff
	RoleDayShift
	RoleNightShift
)

func (r Role) String() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleRequestedOff:
		return "requested_off"
	case RoleDayShift:
		return "day_shift"
	case RoleNightShift:
		return "night_shift"
	default:
		return "none"
	}
}

// IsShift reports whether rows of this role carry shifts.
func (r Role) IsShift() bool {
	return r == RoleRequestedOff || r == RoleDayShift || r == RoleNightShift
}

// RowRange tags the 0-based inclusive rows [From, To] with a role.
type RowRange struct {
	From int
	To   int
	Role Role
	Name string
}

// RowTable is an ordered classification; the first matching range wins.
type RowTable []RowRange

// DateHeaderRow is the 0-based row holding the date labels.
const DateHeaderRow = 2

// DefaultRowTable is the fixed layout of the schedule spreadsheet.
var DefaultRowTable = RowTable{
	{From: 0, To: 2, Role: RoleHeader, Name: "header"},
	{From: 4, To: 4, Role: RoleRequestedOff, Name: "requested off"},
	{From: 10, To: 10, Role: RoleDayShift, Name: "11 o'clock"},
	{From: 6, To: 15, Role: RoleDayShift, Name: "day"},
	{From: 17, To: 24, Role: RoleNightShift, Name: "night"},
}

// Classify returns the role of the 0-based row index.
func (t RowTable) Classify(index int) Role {
	if rr, ok := t.Lookup(index); ok {
		return rr.Role
	}
	return RoleNone
}

// Lookup returns the first range containing index.
func (t RowTable) Lookup(index int) (RowRange, bool) {
	for _, rr := range t {
		if index >= rr.From && index <= rr.To {
			return rr, true
		}
	}
	return RowRange{}, false
}

// ClassifyOriginal classifies a 1-based row number.
func (t RowTable) ClassifyOriginal(row int) Role {
	return t.Classify(row - 1)
}
