package types

// MockSitters returns a small fixture catalog used by engine tests.
// Six sitters in six distinct cities, four verified, prices
// {15,18,12,20,14,16}.
func MockSitters() []Sitter {
	return []Sitter{
		{
			Id: "s1", Name: "María García", Location: "Madrid",
			Rating: 4.9, Reviews: 124, Price: 15, Experience: 6, Verified: true,
			Specialties: []string{"Perros", "Gatos"},
			Bio:         "Cuidadora profesional con experiencia en perros grandes.",
			Services: []Service{
				{Name: "Paseo", Price: 12, Unit: "hora"},
				{Name: "Alojamiento", Price: 25, Unit: "noche"},
			},
		},
		{
			Id: "s2", Name: "Laura Fernández", Location: "Barcelona",
			Rating: 4.8, Reviews: 98, Price: 18, Experience: 4, Verified: true,
			Specialties: []string{"Perros", "Aves"},
			Bio:         "Amante de los animales, especializada en aves exóticas.",
			Services: []Service{
				{Name: "Paseo", Price: 14, Unit: "hora"},
				{Name: "Visita a domicilio", Price: 18, Unit: "visita"},
			},
		},
		{
			Id: "s3", Name: "Ana Martínez", Location: "Valencia",
			Rating: 5.0, Reviews: 67, Price: 12, Experience: 3, Verified: false,
			Specialties: []string{"Gatos", "Conejos"},
			Bio:         "Los gatos asustadizos se relajan conmigo enseguida.",
			Services: []Service{
				{Name: "Visita a domicilio", Price: 12, Unit: "visita"},
			},
		},
		{
			Id: "s4", Name: "Sofía López", Location: "Sevilla",
			Rating: 4.7, Reviews: 203, Price: 20, Experience: 10, Verified: true,
			Specialties: []string{"Perros", "Gatos", "Reptiles"},
			Bio:         "Una década cuidando de todo tipo de mascotas en Sevilla.",
			Services: []Service{
				{Name: "Alojamiento", Price: 30, Unit: "noche"},
				{Name: "Guardería de día", Price: 20, Unit: "día"},
			},
		},
		{
			Id: "s5", Name: "Carmen Ruiz", Location: "Bilbao",
			Rating: 4.9, Reviews: 56, Price: 14, Experience: 8, Verified: false,
			Specialties: []string{"Perros"},
			Bio:         "Adiestradora canina, paseos con mucho ejercicio.",
			Services: []Service{
				{Name: "Paseo", Price: 14, Unit: "hora"},
			},
		},
		{
			Id: "s6", Name: "Elena Torres", Location: "Málaga",
			Rating: 4.6, Reviews: 89, Price: 16, Experience: 5, Verified: true,
			Specialties: []string{"Gatos", "Perros"},
			Bio:         "Cuidado a domicilio en Málaga capital.",
			Services: []Service{
				{Name: "Visita a domicilio", Price: 15, Unit: "visita"},
				{Name: "Guardería de día", Price: 16, Unit: "día"},
			},
		},
	}
}
