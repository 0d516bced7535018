package ticketmaster

// EventsResponse is the paginated response of the events search
// endpoint. The listing itself sits under the "_embedded" key and is
// absent entirely when the page has no matches.
type EventsResponse struct {
	Embedded *EmbeddedEvents `json:"_embedded,omitempty"`
	Links    *Links          `json:"_links,omitempty"`
	Page     Page            `json:"page"`
}

// EventList returns the embedded events, or nil when the response has
// none. A 200 response with zero matches is valid.
func (r *EventsResponse) EventList() []Event {
	if r == nil || r.Embedded == nil {
		return nil
	}
	return r.Embedded.Events
}

// EmbeddedEvents wraps the event listing.
type EmbeddedEvents struct {
	Events []Event `json:"events"`
}

// Event is one event as returned by the provider.
type Event struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
	Locale string `json:"locale,omitempty"`
	Test   bool   `json:"test"`

	Images          []Image          `json:"images,omitempty"`
	Sales           *Sales           `json:"sales,omitempty"`
	Dates           Dates            `json:"dates"`
	Classifications []Classification `json:"classifications,omitempty"`
	Promoter        *Promoter        `json:"promoter,omitempty"`
	Promoters       []Promoter       `json:"promoters,omitempty"`

	Embedded *EventEmbedded `json:"_embedded,omitempty"`
}

// Image is one promotional image variant.
type Image struct {
	Ratio    string `json:"ratio,omitempty"`
	URL      string `json:"url,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Sales holds public and presale windows.
type Sales struct {
	Public   PublicSales `json:"public"`
	Presales []Presale   `json:"presales,omitempty"`
}

// PublicSales is the general-public sale window.
type PublicSales struct {
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	StartTBD      bool   `json:"startTBD"`
	StartTBA      bool   `json:"startTBA"`
}

// Presale is one named presale window.
type Presale struct {
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	Name          string `json:"name"`
}

// Dates holds the event's start information and status.
type Dates struct {
	Start    EventStart `json:"start"`
	Timezone string     `json:"timezone,omitempty"`
	Status   Status     `json:"status"`
}

// EventStart carries the start date, the optional start time of day,
// and the provider's to-be-announced flags.
type EventStart struct {
	LocalDate      string `json:"localDate"`
	LocalTime      string `json:"localTime,omitempty"`
	DateTime       string `json:"dateTime,omitempty"`
	DateTBD        bool   `json:"dateTBD"`
	DateTBA        bool   `json:"dateTBA"`
	TimeTBA        bool   `json:"timeTBA"`
	NoSpecificTime bool   `json:"noSpecificTime"`
}

// Status is the event's sale status.
type Status struct {
	Code string `json:"code"`
}

// Classification is the event's genre taxonomy entry.
type Classification struct {
	Primary  bool      `json:"primary"`
	Segment  Category  `json:"segment"`
	Genre    Category  `json:"genre"`
	SubGenre *Category `json:"subGenre,omitempty"`
}

// Category is one taxonomy node.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Promoter identifies an event promoter.
type Promoter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EventEmbedded holds the event's nested sub-resources.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues,omitempty"`
	Attractions []Attraction `json:"attractions,omitempty"`
}

// Venue is a venue sub-resource.
type Venue struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// Attraction is an attraction sub-resource.
type Attraction struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// Page is the pagination envelope. Only the first page is consumed;
// the totals are logged for visibility.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Links holds the pagination links.
type Links struct {
	First *Link `json:"first,omitempty"`
	Self  *Link `json:"self,omitempty"`
	Next  *Link `json:"next,omitempty"`
	Last  *Link `json:"last,omitempty"`
}

// Link is one pagination link.
type Link struct {
	Href string `json:"href,omitempty"`
}
