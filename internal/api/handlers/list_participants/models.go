package list_participants

import "github.com/m04kA/SMC-RideSlotService/internal/domain"

// ParticipantResponse HTTP response model
type ParticipantResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Rating  float64 `json:"rating"`
	Trips   int     `json:"trips"`
}

// FromDomain конвертирует справочник в HTTP response
func FromDomain(participants []domain.Participant) []ParticipantResponse {
	resp := make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		resp = append(resp, ParticipantResponse{
			ID:      p.ID,
			Name:    p.Name,
			Contact: p.Contact,
			Rating:  p.Rating,
			Trips:   p.Trips,
		})
	}
	return resp
}
