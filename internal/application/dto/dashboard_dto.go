package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Se recalcula completa en cada llamada a partir de las colecciones actuales;
// no hay contadores materializados.
type DashboardStatsDTO struct {
	TotalProducts   int                `json:"totalProducts"`
	LowStock        int                `json:"lowStock"`       // stockActual <= stockMinimo
	OutOfStock      int                `json:"outOfStock"`     // stockActual <= 0
	MovementsToday  int                `json:"movementsToday"` // fecha calendario local del servidor
	RecentMovements []MovementResponse `json:"recentMovements"` // los 5 más recientes
}
