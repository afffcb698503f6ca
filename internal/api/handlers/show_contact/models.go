package show_contact

// ShowContactRequest HTTP request model
// Либо participantId из справочника, либо пара slotId + index
type ShowContactRequest struct {
	ParticipantID string `json:"participantId,omitempty"`
	SlotID        *int   `json:"slotId,omitempty"`
	Index         *int   `json:"index,omitempty"`
}

func (r *ShowContactRequest) bySlot() bool {
	return r.SlotID != nil && r.Index != nil
}
