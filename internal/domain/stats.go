package domain

type DashboardStats struct {
	Users               int `json:"users"`
	ActiveUsers         int `json:"activeUsers"`
	Employees           int `json:"employees"`
	ActiveEmployees     int `json:"activeEmployees"`
	SimulationEmployees int `json:"simulationEmployees"`
}
