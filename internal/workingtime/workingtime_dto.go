package workingtime

type CreateWorkingTimeRequest struct {
	Date       string `json:"Date" binding:"required"`
	StartTime  string `json:"StartTime" binding:"required"`
	EndTime    string `json:"EndTime" binding:"required"`
	EmployeeID string `json:"EmployeeID" binding:"required"`
}

type UpdateWorkingTimeRequest struct {
	ID         uint   `json:"ID" binding:"required"`
	Date       string `json:"Date" binding:"required"`
	StartTime  string `json:"StartTime" binding:"required"`
	EndTime    string `json:"EndTime" binding:"required"`
	EmployeeID string `json:"EmployeeID" binding:"required"`
}

type WorkingTimeResponse struct {
	ID         uint   `json:"ID"`
	Date       string `json:"Date"`
	StartTime  string `json:"StartTime"`
	EndTime    string `json:"EndTime"`
	EmployeeID string `json:"EmployeeID"`
}
