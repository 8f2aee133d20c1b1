package airport

import (
	"strings"

	"flightplanner/internal/planner"
)

// Directory is the static airport reference table. Records never change at
// runtime, so lookups need no locking.
type Directory struct {
	airports []planner.Airport
}

func NewDirectory() *Directory {
	return &Directory{airports: majorAirports}
}

// Search filters by a case-insensitive substring of name, city or code, and
// optionally by exact country.
func (d *Directory) Search(term, country string) []planner.Airport {
	results := make([]planner.Airport, 0, len(d.airports))

	term = strings.ToLower(term)
	for _, a := range d.airports {
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.City), term) &&
			!strings.Contains(strings.ToLower(a.Code), term) {
			continue
		}
		if country != "" && !strings.EqualFold(a.Country, country) {
			continue
		}
		results = append(results, a)
	}

	return results
}

func (d *Directory) ByCode(code string) (planner.Airport, bool) {
	for _, a := range d.airports {
		if strings.EqualFold(a.Code, code) {
			return a, true
		}
	}
	return planner.Airport{}, false
}

func (d *Directory) ByCountry(country string) []planner.Airport {
	return d.Search("", country)
}

var majorAirports = []planner.Airport{
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Address: "JFK Airport, Queens, NY 11430, USA"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA", Address: "LAX Airport, Los Angeles, CA 90045, USA"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA", Address: "ORD Airport, Chicago, IL 60666, USA"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA", Address: "ATL Airport, Atlanta, GA 30320, USA"},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "USA", Address: "DFW Airport, Dallas, TX 75261, USA"},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "USA", Address: "DEN Airport, Denver, CO 80249, USA"},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA", Address: "SFO Airport, San Francisco, CA 94128, USA"},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "USA", Address: "SEA Airport, Seattle, WA 98158, USA"},
	{Code: "LAS", Name: "McCarran International Airport", City: "Las Vegas", Country: "USA", Address: "LAS Airport, Las Vegas, NV 89119, USA"},
	{Code: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "USA", Address: "MCO Airport, Orlando, FL 32827, USA"},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "USA", Address: "MIA Airport, Miami, FL 33126, USA"},
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "USA", Address: "BOS Airport, Boston, MA 02128, USA"},
	{Code: "PHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "USA", Address: "PHX Airport, Phoenix, AZ 85034, USA"},
	{Code: "IAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "USA", Address: "IAH Airport, Houston, TX 77032, USA"},
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK", Address: "Heathrow Airport, London TW6, UK"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Address: "CDG Airport, 95700 Roissy-en-France, France"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Address: "Frankfurt Airport, 60547 Frankfurt am Main, Germany"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Address: "Schiphol Airport, 1118 CP Schiphol, Netherlands"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Address: "Narita Airport, Chiba 282-0004, Japan"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Address: "Incheon Airport, Jung-gu, Incheon, South Korea"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Address: "Changi Airport, Singapore 819663"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Address: "Hong Kong International Airport, Hong Kong"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE", Address: "Dubai International Airport, Dubai, UAE"},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Address: "Toronto Pearson Airport, Mississauga, ON L5P 1B2, Canada"},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Address: "Vancouver Airport, Richmond, BC V7B 0A1, Canada"},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Address: "Sydney Airport, Mascot NSW 2020, Australia"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Address: "Melbourne Airport, Tullamarine VIC 3045, Australia"},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Address: "IGI Airport, New Delhi, Delhi 110037, India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Address: "Mumbai Airport, Andheri East, Mumbai, Maharashtra 400099, India"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India", Address: "Bangalore Airport, Devanahalli, Karnataka 560300, India"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India", Address: "Chennai Airport, Meenambakkam, Chennai, Tamil Nadu 600027, India"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India", Address: "Hyderabad Airport, Shamshabad, Telangana 501218, India"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India", Address: "Kolkata Airport, Dum Dum, West Bengal 700052, India"},
	{Code: "GOI", Name: "Goa International Airport", City: "Goa", Country: "India", Address: "Goa Airport, Dabolim, Goa 403801, India"},
	{Code: "COK", Name: "Cochin International Airport", City: "Kochi", Country: "India", Address: "Cochin Airport, Nedumbassery, Kerala 683111, India"},
}
