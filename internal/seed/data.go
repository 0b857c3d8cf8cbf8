package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/medbridge360/backend/internal/domain/entities"
)

// namespace anchors the deterministic IDs of the seed catalog so the
// in-memory variant, the database seeder, and the search indexer all
// agree on identity across restarts.
var namespace = uuid.MustParse("8e7f2a44-9c1d-4b6a-b1f0-3d5e9a2c7f10")

// HospitalID returns the stable catalog ID for a seed hospital name.
func HospitalID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

func treatmentID(hospitalName, treatmentName string) string {
	return uuid.NewSHA1(namespace, []byte(hospitalName+"/"+treatmentName)).String()
}

type seedTreatment struct {
	name       string
	base       float64
	surgery    float64
	medication float64
	stay       float64
	days       int
}

type seedHospital struct {
	name            string
	city            string
	state           string
	country         string
	rating          float64
	lat, lon        float64
	specializations []string
	image           string
	description     string
	treatments      []seedTreatment
}

var catalog = []seedHospital{
	{
		name: "Apollo Hospitals", city: "Chennai", state: "Tamil Nadu", country: "India",
		rating: 4.8, lat: 13.0827, lon: 80.2707,
		specializations: []string{"Cardiology", "Neurology", "Orthopedics", "Oncology"},
		image:           "https://images.unsplash.com/photo-1586773860418-d37222d8fce3?w=800&q=80",
		description:     "One of Asia's largest integrated healthcare groups, delivering care across 70+ specialties with dedicated international patient services.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 8000, 12000, 2000, 3000, 14},
			{"Knee Replacement", 5000, 7000, 1500, 2000, 10},
			{"Cancer Treatment", 15000, 20000, 8000, 5000, 30},
			{"Liver Transplant", 25000, 35000, 10000, 8000, 45},
		},
	},
	{
		name: "Fortis Memorial Research Institute", city: "Gurugram", state: "Haryana", country: "India",
		rating: 4.7, lat: 28.4595, lon: 77.0266,
		specializations: []string{"Cardiology", "Nephrology", "Orthopedics"},
		image:           "https://images.unsplash.com/photo-1516549655169-df83a0774514?w=800&q=80",
		description:     "A 1000-bed quaternary care hospital, JCI accredited, offering over 55 specialties.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 7500, 11000, 1800, 2800, 12},
			{"Kidney Transplant", 18000, 25000, 7000, 6000, 30},
			{"Spine Surgery", 9000, 14000, 3000, 3500, 15},
			{"Bone Marrow Transplant", 30000, 40000, 12000, 10000, 60},
		},
	},
	{
		name: "Medanta - The Medicity", city: "Gurugram", state: "Haryana", country: "India",
		rating: 4.9, lat: 28.4506, lon: 77.0392,
		specializations: []string{"Cardiology", "Oncology", "Orthopedics", "Robotic Surgery"},
		image:           "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
		description:     "A 1,500-bed multi-super-speciality institute combining clinical research, education, and internationally trained specialists.",
		treatments: []seedTreatment{
			{"Heart Surgery", 9000, 15000, 2500, 3500, 14},
			{"Cancer Treatment", 12000, 18000, 7000, 4500, 28},
			{"Knee Replacement", 4800, 6500, 1200, 1800, 8},
			{"Robotic Surgery", 11000, 16000, 3000, 4000, 12},
		},
	},
	{
		name: "Max Super Speciality Hospital", city: "New Delhi", state: "Delhi", country: "India",
		rating: 4.6, lat: 28.6139, lon: 77.2090,
		specializations: []string{"Cardiology", "Orthopedics", "Neurosurgery"},
		image:           "https://images.unsplash.com/photo-1538108149393-fbbd81895907?w=800&q=80",
		description:     "World-class medical care across 35+ specialties through a network of highly qualified professionals.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 6500, 10000, 1600, 2500, 11},
			{"Hip Replacement", 5500, 8000, 1400, 2200, 10},
			{"Spine Surgery", 8500, 13000, 2800, 3200, 14},
			{"Neurosurgery", 14000, 20000, 5000, 5000, 20},
		},
	},
	{
		name: "AIIMS New Delhi", city: "New Delhi", state: "Delhi", country: "India",
		rating: 4.5, lat: 28.5672, lon: 77.2100,
		specializations: []string{"Cardiology", "Oncology", "Neurology"},
		image:           "https://images.unsplash.com/photo-1551076805-e1869033e561?w=800&q=80",
		description:     "India's premier government medical institute, offering subsidized tertiary care and the most affordable major procedures in the catalog.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 3000, 4500, 800, 1200, 15},
			{"Cancer Treatment", 8000, 10000, 4000, 2500, 35},
			{"Knee Replacement", 2500, 3500, 700, 1000, 12},
		},
	},
	{
		name: "Narayana Health City", city: "Bangalore", state: "Karnataka", country: "India",
		rating: 4.7, lat: 12.9716, lon: 77.5946,
		specializations: []string{"Cardiology", "Cardiothoracic Surgery", "Oncology"},
		image:           "https://images.unsplash.com/photo-1512678080530-7760d81faba6?w=800&q=80",
		description:     "A high-volume cardiac care campus known for affordable, high-quality surgery at scale.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 5500, 8000, 1200, 2000, 12},
			{"Heart Valve Replacement", 6500, 9500, 1500, 2200, 14},
			{"Cancer Treatment", 11000, 15000, 5000, 3500, 28},
		},
	},
	{
		name: "Bumrungrad International Hospital", city: "Bangkok", state: "", country: "Thailand",
		rating: 4.9, lat: 13.7563, lon: 100.5018,
		specializations: []string{"Cardiology", "Gastroenterology", "Plastic Surgery", "Checkup"},
		image:           "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
		description:     "Southeast Asia's flagship international hospital, serving over a million patients a year from 190 countries.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 12000, 16000, 3000, 4000, 12},
			{"Gastric Bypass", 9000, 12000, 2000, 3000, 8},
			{"Full Health Checkup", 1500, 0, 300, 200, 2},
		},
	},
	{
		name: "Mount Elizabeth Hospital", city: "Singapore", state: "", country: "Singapore",
		rating: 4.9, lat: 1.3521, lon: 103.8198,
		specializations: []string{"Cardiology", "Neurology", "Oncology", "Transplants"},
		image:           "https://images.unsplash.com/photo-1516549655169-df83a0774514?w=800&q=80",
		description:     "A premium private hospital with a long record in complex cardiac and transplant surgery.",
		treatments: []seedTreatment{
			{"Cardiac Bypass Surgery", 20000, 28000, 5000, 7000, 12},
			{"Liver Transplant", 60000, 90000, 20000, 15000, 40},
			{"Cancer Treatment", 30000, 40000, 15000, 10000, 30},
		},
	},
	{
		name: "Acibadem Healthcare Group", city: "Istanbul", state: "", country: "Turkey",
		rating: 4.7, lat: 41.0082, lon: 28.9784,
		specializations: []string{"Oncology", "Hair Transplant", "Plastic Surgery", "IVF"},
		image:           "https://images.unsplash.com/photo-1538108149393-fbbd81895907?w=800&q=80",
		description:     "Turkey's largest private healthcare group, a leading destination for aesthetic and fertility procedures.",
		treatments: []seedTreatment{
			{"Hair Transplant", 1500, 2500, 300, 400, 3},
			{"IVF Cycle", 3000, 4000, 1500, 500, 14},
			{"Cancer Treatment", 10000, 14000, 5000, 3000, 25},
		},
	},
}

// Hospitals builds the seed catalog. IDs are deterministic so repeated
// loads agree; CreatedAt uses the provided clock to keep catalog order
// stable.
func Hospitals(now time.Time) []*entities.Hospital {
	hospitals := make([]*entities.Hospital, 0, len(catalog))
	for i, sh := range catalog {
		id := HospitalID(sh.name)
		h := &entities.Hospital{
			ID:                    id,
			Name:                  sh.name,
			City:                  sh.city,
			State:                 sh.state,
			Country:               sh.country,
			Rating:                sh.rating,
			Location:              &entities.Location{Latitude: sh.lat, Longitude: sh.lon},
			Specializations:       sh.specializations,
			InternationalPatients: true,
			ImageURL:              sh.image,
			Description:           sh.description,
			CreatedAt:             now.Add(time.Duration(i) * time.Second),
			UpdatedAt:             now.Add(time.Duration(i) * time.Second),
		}
		for _, st := range sh.treatments {
			h.Treatments = append(h.Treatments, entities.Treatment{
				ID:             treatmentID(sh.name, st.name),
				HospitalID:     id,
				Name:           st.name,
				BaseCost:       st.base,
				SurgeryCost:    st.surgery,
				MedicationCost: st.medication,
				StayCost:       st.stay,
				DurationDays:   st.days,
				CreatedAt:      h.CreatedAt,
				UpdatedAt:      h.CreatedAt,
			})
		}
		hospitals = append(hospitals, h)
	}
	return hospitals
}
