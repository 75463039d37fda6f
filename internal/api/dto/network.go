package dto

type ConnectionResponse struct {
	Name          string `json:"name"`
	Destination   string `json:"destination"`
	TravelSeconds int    `json:"travel_seconds"`
}

type StationResponse struct {
	Name        string               `json:"name"`
	Connections []ConnectionResponse `json:"connections"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type ItemResponse struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type PathResponse struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Found         bool     `json:"found"`
	Stations      []string `json:"stations"`
	TravelSeconds int      `json:"travel_seconds"`
}
