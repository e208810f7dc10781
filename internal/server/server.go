package server

// Server groups the per-resource HTTP servers.
type Server struct {
	DashboardServer
	RecommendServer
}

func NewServer(
	dashboardServer DashboardServer,
	recommendServer RecommendServer,
) Server {
	return Server{
		DashboardServer: dashboardServer,
		RecommendServer: recommendServer,
	}
}
