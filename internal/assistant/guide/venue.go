package guide

// VenueInfo describes the venue for the "about" conversation paths.
type VenueInfo struct {
	About    string
	Services []string
	Features []string
	Contact  string
}

// Venue returns the static venue description.
func Venue() VenueInfo {
	return VenueInfo{
		About: "Merkaba is a premier event venue and entertainment space dedicated to creating unforgettable experiences. We host concerts, parties, corporate events, and special occasions.",
		Services: []string{
			"Event Hosting & Management",
			"Premium Bar & Catering",
			"Live Entertainment",
			"Private Event Spaces",
			"Corporate Functions",
			"Wedding Celebrations",
		},
		Features: []string{
			"State-of-the-art sound and lighting",
			"Multiple event spaces",
			"Professional event coordination",
			"Premium bar service",
			"Custom catering options",
			"On-site support staff",
		},
		Contact: "Our team is here to make your experience exceptional. Use the service request button for immediate assistance!",
	}
}
