package company

// Field names and casing mirror the legacy API; the SPA maps them 1:1.

type CreateCompanyRequest struct {
	Name      string `json:"Name" binding:"required"`
	Address   string `json:"Address" binding:"required"`
	City      string `json:"City" binding:"required"`
	Country   string `json:"Country" binding:"required"`
	Email     string `json:"Email" binding:"required,email"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

type UpdateCompanyRequest struct {
	ID        uint   `json:"ID" binding:"required"`
	Name      string `json:"Name" binding:"required"`
	Address   string `json:"Address" binding:"required"`
	City      string `json:"City" binding:"required"`
	Country   string `json:"Country" binding:"required"`
	Email     string `json:"Email" binding:"required,email"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

type CompanyResponse struct {
	ID               uint   `json:"ID"`
	Name             string `json:"Name"`
	Address          string `json:"Address"`
	City             string `json:"City"`
	Country          string `json:"Country"`
	Email            string `json:"Email"`
	CompanyManagerId string `json:"CompanyManagerId"`
	StartTime        string `json:"StartTime"`
	EndTime          string `json:"EndTime"`
}
