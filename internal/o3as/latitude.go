package o3as

// Location is a latitude band given by its bounds in degrees north.
type Location struct {
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
}

// LatitudeBand is a selectable band of the sidebar.
type LatitudeBand struct {
	Description string   `json:"description"`
	Value       Location `json:"value"`
	Custom      bool     `json:"custom,omitempty"`
}

// LatitudeBands lists the predefined bands; the last entry stands for a user-entered band.
var LatitudeBands = []LatitudeBand{
	{Description: "Global (90S-90N)", Value: Location{MinLat: -90, MaxLat: 90}},
	{Description: "Northern Hemisphere Polar (60N-90N)", Value: Location{MinLat: 60, MaxLat: 90}},
	{Description: "Northern Hemisphere Mid-Latitudes (35N-60N)", Value: Location{MinLat: 35, MaxLat: 60}},
	{Description: "Tropics (20S-20N)", Value: Location{MinLat: -20, MaxLat: 20}},
	{Description: "Southern Hemisphere Mid-Latitudes (35S-60S)", Value: Location{MinLat: -60, MaxLat: -35}},
	{Description: "Southern Hemisphere Polar (60S-90S)", Value: Location{MinLat: -90, MaxLat: -60}},
	{Description: "Individual latitude band", Value: Location{MinLat: -90, MaxLat: 90}, Custom: true},
}

// FindLatitudeBand returns the band matching loc. When custom is set the
// user is editing an individual band and the custom entry is returned.
func FindLatitudeBand(loc Location, custom bool) (LatitudeBand, bool) {
	if custom {
		return LatitudeBands[len(LatitudeBands)-1], true
	}
	for _, band := range LatitudeBands {
		if band.Custom {
			continue
		}
		if band.Value == loc {
			return band, true
		}
	}
	return LatitudeBand{}, false
}
