package schema

import "encoding/xml"

// TextNode is an element whose presence matters as much as its text. A nil
// *TextNode means the element is absent from the document, which is not the
// same thing as an element with empty character data.
type TextNode struct {
	Value string `xml:",chardata"`
}

// AvailabilityDocument is the parsed availability request tree. The root
// element name is not checked; any tree with these children satisfies the
// contract.
type AvailabilityDocument struct {
	XMLName       xml.Name
	Source        Source        `xml:"source"`
	OptionsQuota  *TextNode     `xml:"optionsQuota"`
	SearchType    *TextNode     `xml:"SearchType"`
	Configuration Configuration `xml:"Configuration"`
	StartDate     *TextNode     `xml:"StartDate"`
	EndDate       *TextNode     `xml:"EndDate"`
	Currency      *TextNode     `xml:"Currency"`
	Nationality   *TextNode     `xml:"Nationality"`
	Markets       *TextNode     `xml:"Markets"`
	Rooms         []RoomRequest `xml:"Paxes"`
}

type Source struct {
	LanguageCode *TextNode `xml:"languageCode"`
}

type Configuration struct {
	Parameters Parameters `xml:"Parameters"`
}

type Parameters struct {
	Parameter Parameter `xml:"Parameter"`
}

// Parameter carries the caller credentials as attributes.
type Parameter struct {
	Username  string `xml:"username,attr"`
	Password  string `xml:"password,attr"`
	CompanyID string `xml:"CompanyID,attr"`
}

// RoomRequest is one Paxes group: the guests requested for a single room.
type RoomRequest struct {
	Guests []GuestRequest `xml:"pax"`
}

// GuestRequest keeps the age as raw text; classification happens in the
// occupancy validator.
type GuestRequest struct {
	Age string `xml:"age,attr"`
}
