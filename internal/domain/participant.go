package domain

import "sort"

// Participant a person occupying one seat in a slot
type Participant struct {
	ID      string
	Name    string
	Contact string // masked phone number
	Rating  float64
	Trips   int
}

// Initial first letter of the name, used as avatar
func (p Participant) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return ""
}

// CurrentViewer participant appended on every booking made from the page
func CurrentViewer() Participant {
	return Participant{
		ID:      "current-user",
		Name:    "You",
		Contact: "+91 99999-XXXXX",
		Rating:  4.0,
		Trips:   5,
	}
}

var directory = map[string]Participant{
	"user1": {ID: "user1", Name: "John D.", Contact: "+91 98765-XXXXX", Rating: 4.5, Trips: 12},
	"user2": {ID: "user2", Name: "Sarah M.", Contact: "+91 87654-XXXXX", Rating: 4.8, Trips: 25},
	"user3": {ID: "user3", Name: "Raj K.", Contact: "+91 76543-XXXXX", Rating: 4.2, Trips: 8},
}

// DirectoryParticipant returns a participant of the static demo directory.
// Directory entries are only shown in the contact modal, never added to slots.
func DirectoryParticipant(id string) (Participant, bool) {
	p, ok := directory[id]
	return p, ok
}

// Directory returns the demo directory sorted by id
func Directory() []Participant {
	result := make([]Participant, 0, len(directory))
	for _, p := range directory {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
