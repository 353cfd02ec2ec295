package department

type CreateDepartmentRequest struct {
	Name      string `json:"Name" binding:"required"`
	CompanyID uint   `json:"CompanyID" binding:"required"`
}

type UpdateDepartmentRequest struct {
	ID        uint   `json:"ID" binding:"required"`
	Name      string `json:"Name" binding:"required"`
	CompanyID uint   `json:"CompanyID" binding:"required"`
}

type DepartmentResponse struct {
	ID        uint   `json:"ID"`
	Name      string `json:"Name"`
	CompanyID uint   `json:"CompanyID"`
}
