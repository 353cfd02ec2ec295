package employee

type CreateEmployeeRequest struct {
	FirstName    string  `json:"FirstName" binding:"required"`
	LastName     string  `json:"LastName" binding:"required"`
	Email        string  `json:"Email" binding:"required,email"`
	DateOfBirth  string  `json:"DateOfBirth" binding:"required"`
	HourlyRate   float64 `json:"HourlyRate" binding:"gte=0"`
	DepartmentID uint    `json:"DepartmentID" binding:"required"`
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"ID" binding:"required"`
	FirstName    string  `json:"FirstName" binding:"required"`
	LastName     string  `json:"LastName" binding:"required"`
	Email        string  `json:"Email" binding:"required,email"`
	DateOfBirth  string  `json:"DateOfBirth" binding:"required"`
	HourlyRate   float64 `json:"HourlyRate" binding:"gte=0"`
	DepartmentID uint    `json:"DepartmentID" binding:"required"`
}

type EmployeeResponse struct {
	ID           string  `json:"ID"`
	FirstName    string  `json:"FirstName"`
	LastName     string  `json:"LastName"`
	Email        string  `json:"Email"`
	DateOfBirth  string  `json:"DateOfBirth"`
	HourlyRate   float64 `json:"HourlyRate"`
	DepartmentID uint    `json:"DepartmentID"`
}
