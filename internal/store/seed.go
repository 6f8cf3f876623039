package store

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffdeck/internal/model"
)

// SeedUsers generates n plausible employee records deterministically from
// the given seed. The first few records reuse a fixed demo roster so fresh
// installs always have familiar names to play with.
func SeedUsers(n int, seed int64) []model.User {
	rng := rand.New(rand.NewSource(seed))
	out := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, randomUser(rng, i))
	}
	return out
}

var demoFirstNames = []string{"Nicolas", "Monica", "Amanda", "Nelson", "Julio"}

var firstNamesMale = []string{
	"Nicolas", "Nelson", "Julio", "Andre", "Bruno", "Carlos", "Diego", "Felipe",
	"Gustavo", "Hugo", "Ivan", "Joao", "Lucas", "Marco", "Oscar", "Pedro",
	"Rafael", "Sergio", "Thiago", "Victor",
}

var firstNamesFemale = []string{
	"Monica", "Amanda", "Beatriz", "Camila", "Daniela", "Elena", "Fernanda",
	"Gabriela", "Helena", "Isabel", "Julia", "Larissa", "Mariana", "Natalia",
	"Olivia", "Paula", "Renata", "Sofia", "Teresa", "Valeria",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Costa", "Pereira", "Almeida",
	"Ferreira", "Rodrigues", "Gomes", "Martins", "Rocha", "Ribeiro", "Torres",
	"Vargas", "Mendoza", "Navarro", "Castillo", "Reyes", "Ortega",
}

var jobTitles = []string{
	"Software Engineer", "Senior Software Engineer", "Product Manager",
	"Data Analyst", "HR Specialist", "Recruiter", "Office Manager",
	"Accountant", "Marketing Coordinator", "Sales Representative",
	"Customer Support Agent", "QA Engineer", "DevOps Engineer",
	"UX Designer", "Technical Writer",
}

// cityCountries keeps city and country coherent in generated records.
var cityCountries = []struct{ city, country string }{
	{"Santiago", "Chile"},
	{"Valparaiso", "Chile"},
	{"Sao Paulo", "Brazil"},
	{"Rio de Janeiro", "Brazil"},
	{"Curitiba", "Brazil"},
	{"Madrid", "Spain"},
	{"Barcelona", "Spain"},
	{"Buenos Aires", "Argentina"},
	{"Cordoba", "Argentina"},
	{"Lima", "Peru"},
	{"Bogota", "Colombia"},
	{"Medellin", "Colombia"},
	{"Mexico City", "Mexico"},
	{"Guadalajara", "Mexico"},
	{"Lisbon", "Portugal"},
	{"Porto", "Portugal"},
	{"Berlin", "Germany"},
	{"Munich", "Germany"},
	{"Paris", "France"},
	{"Amsterdam", "Netherlands"},
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Rd", "Cedar Ln", "Pine St", "Elm Dr",
	"Park Blvd", "River Rd", "Hill St", "Lake Ave",
}

func randomUser(rng *rand.Rand, i int) model.User {
	gender := model.GenderMale
	if rng.Intn(2) == 1 {
		gender = model.GenderFemale
	}

	var first string
	if i < len(demoFirstNames) {
		first = demoFirstNames[i]
		// keep gender consistent with the fixed demo names
		if first == "Monica" || first == "Amanda" {
			gender = model.GenderFemale
		} else {
			gender = model.GenderMale
		}
	} else if gender == model.GenderMale {
		first = firstNamesMale[rng.Intn(len(firstNamesMale))]
	} else {
		first = firstNamesFemale[rng.Intn(len(firstNamesFemale))]
	}
	last := lastNames[rng.Intn(len(lastNames))]
	loc := cityCountries[rng.Intn(len(cityCountries))]

	u := model.User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Gender:    gender,
		BirthDate: randomBirthDate(rng),
		JobTitle:  jobTitles[rng.Intn(len(jobTitles))],
		Email:     randomEmail(rng, first, last),
		City:      loc.city,
		Country:   loc.country,
	}
	// optional fields are occasionally absent, like real HR data
	if rng.Float64() < 0.9 {
		u.Phone = randomPhone(rng)
	}
	if rng.Float64() < 0.85 {
		u.Address = fmt.Sprintf("%d %s", rng.Intn(9900)+100, streetNames[rng.Intn(len(streetNames))])
	}
	return u
}

func randomBirthDate(rng *rand.Rand) time.Time {
	// ages roughly 21 to 64
	year := 1962 + rng.Intn(44)
	month := time.Month(rng.Intn(12) + 1)
	day := rng.Intn(28) + 1
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func randomEmail(rng *rand.Rand, first, last string) string {
	domains := []string{"example.com", "mail.example.org", "corp.example.net"}
	return fmt.Sprintf("%s.%s@%s",
		strings.ToLower(first), strings.ToLower(last), domains[rng.Intn(len(domains))])
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+%d %d%d%d %d%d%d-%d%d%d%d",
		rng.Intn(98)+1,
		rng.Intn(10), rng.Intn(10), rng.Intn(10),
		rng.Intn(10), rng.Intn(10), rng.Intn(10),
		rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10))
}

// LoadUsers reads a JSON array of users from a seed file.
func LoadUsers(path string) ([]model.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i := range users {
		if users[i].ID == "" {
			users[i].ID = uuid.NewString()
		}
	}
	return users, nil
}

// SaveUsers writes users as an indented JSON array, the format LoadUsers
// reads back.
func SaveUsers(path string, users []model.User) error {
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
