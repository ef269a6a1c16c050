package types

import "slices"

// Service is one bookable offering of a sitter. Names are unique per sitter.
type Service struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
}

type Review struct {
	Author  string  `json:"author"`
	Avatar  string  `json:"avatar,omitempty"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
	Text    string  `json:"text"`
	PetType string  `json:"petType,omitempty"`
}

// Sitter is one catalog entry. Records are immutable for the session,
// the engine never writes to them.
type Sitter struct {
	Id                string    `json:"id"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	Rating            float64   `json:"rating"`
	Reviews           int       `json:"reviews"`
	Price             float64   `json:"price"`
	Specialties       []string  `json:"specialties"`
	Image             string    `json:"image,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Experience        int       `json:"experience"`
	Verified          bool      `json:"verified"`
	ResponseTime      string    `json:"responseTime,omitempty"`
	CompletedBookings int       `json:"completedBookings,omitempty"`
	Services          []Service `json:"services,omitempty"`
	Gallery           []string  `json:"gallery,omitempty"`
	ReviewsList       []Review  `json:"reviewsList,omitempty"`
}

func (s *Sitter) HasSpecialty(value string) bool {
	return slices.Contains(s.Specialties, value)
}

func (s *Sitter) HasService(name string) bool {
	return slices.ContainsFunc(s.Services, func(sv Service) bool {
		return sv.Name == name
	})
}

func (s *Sitter) ServiceNames() []string {
	names := make([]string, len(s.Services))
	for i, sv := range s.Services {
		names[i] = sv.Name
	}
	return names
}
