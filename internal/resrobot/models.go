package resrobot

// departureBoard is the body returned by /departureBoard
type departureBoard struct {
	Departures []departure `json:"Departure"`
}

type departure struct {
	Name      string         `json:"name"`
	Time      string         `json:"time"`
	Date      string         `json:"date"`
	Direction string         `json:"direction"`
	Stop      string         `json:"stop"`
	Product   *productAtStop `json:"ProductAtStop,omitempty"`
	Stops     *stops         `json:"Stops,omitempty"`
}

type productAtStop struct {
	Line          string `json:"line"`
	DisplayNumber string `json:"displayNumber"`
	CatOutL       string `json:"catOutL"`
}

type stops struct {
	Stop []stop `json:"Stop"`
}

type stop struct {
	Name     string  `json:"name"`
	ID       string  `json:"id"`
	ExtID    string  `json:"extId"`
	RouteIdx int     `json:"routeIdx"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	DepTime  string  `json:"depTime,omitempty"`
	ArrTime  string  `json:"arrTime,omitempty"`
}
