package health

type Response struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages"`
}

type PingResponse struct {
	Message string `json:"message"`
}
