package calculation

type CalculationRow struct {
	ID                  string  `json:"ID"`
	FirstName           string  `json:"FirstName"`
	LastName            string  `json:"LastName"`
	Department          string  `json:"Department"`
	HourlyRate          float64 `json:"HourlyRate"`
	WorkingDays         int     `json:"WorkingDays"`
	RegularWorkingHours int     `json:"RegularWorkingHours"`
	OvertimeHours       int     `json:"OvertimeHours"`
	Earnings            float64 `json:"Earnings"`
}
