package server

// Server groups the HTTP handlers of each resource.
type Server struct {
	DealServer
}

func NewServer(
	dealServer DealServer,
) Server {
	return Server{
		DealServer: dealServer,
	}
}
