// Package analytics folds raw visit logs and section views into the
// per-article reports served to the newsroom.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

const (
	maxPeakHours = 24
	maxCountries = 10
	maxPlaces    = 20

	unknownDay   = "unknown"
	unknownPlace = "Unknown"
)

type DayVisits struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

type HourVisits struct {
	Hour   string `json:"hour"`
	Visits int    `json:"visits"`
}

type PeakHour struct {
	Hour   int `json:"hour"`
	Visits int `json:"visits"`
}

type CountryVisits struct {
	Country string `json:"country"`
	Visits  int    `json:"visits"`
}

type PlaceVisits struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Visits    int      `json:"visits"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Report is the visit summary of one article.
type Report struct {
	TotalVisits         int             `json:"totalVisits"`
	UniqueVisitors      int             `json:"uniqueVisitors"`
	VisitsByDay         []DayVisits     `json:"visitsByDay"`
	VisitsByHour        []HourVisits    `json:"visitsByHour"`
	PeakHours           []PeakHour      `json:"peakHours"`
	VisitsByCountry     []CountryVisits `json:"visitsByCountry"`
	VisitsByGeolocation []PlaceVisits   `json:"visitsByGeolocation"`
}

// counter keeps first-seen order so ties sort deterministically.
type counter[K comparable] struct {
	order []K
	n     map[K]int
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{n: map[K]int{}}
}

func (c *counter[K]) add(k K) {
	if _, ok := c.n[k]; !ok {
		c.order = append(c.order, k)
	}
	c.n[k]++
}

// distinct counts unique users per key, in first-seen order.
type distinct[K comparable] struct {
	order []K
	users map[K]map[string]struct{}
}

func newDistinct[K comparable]() *distinct[K] {
	return &distinct[K]{users: map[K]map[string]struct{}{}}
}

func (d *distinct[K]) add(k K, user string) bool {
	set, ok := d.users[k]
	if !ok {
		set = map[string]struct{}{}
		d.users[k] = set
		d.order = append(d.order, k)
	}
	set[user] = struct{}{}

	return !ok
}

type place struct {
	city, country string
}

// Aggregate builds the report for logs. Days are UTC dates; hours are
// taken in loc.
func Aggregate(logs []model.UserLog, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}

	r := Report{
		VisitsByDay:         []DayVisits{},
		VisitsByHour:        []HourVisits{},
		PeakHours:           []PeakHour{},
		VisitsByCountry:     []CountryVisits{},
		VisitsByGeolocation: []PlaceVisits{},
	}
	if len(logs) == 0 {
		return r
	}

	users := map[string]struct{}{}
	days := newCounter[string]()
	hours := newCounter[int]()
	countries := newDistinct[string]()
	places := newDistinct[place]()
	coords := map[place][2]*float64{}

	for _, l := range logs {
		users[l.UserID] = struct{}{}

		if l.Timestamp.IsZero() {
			days.add(unknownDay)
		} else {
			days.add(l.Timestamp.UTC().Format(time.DateOnly))
			hours.add(l.Timestamp.In(loc).Hour())
		}

		country := orUnknown(l.Location.Text("country_name"))
		countries.add(country, l.UserID)

		p := place{city: orUnknown(l.Location.Text("city")), country: country}
		if places.add(p, l.UserID) {
			coords[p] = [2]*float64{l.Location.Number("latitude"), l.Location.Number("longitude")}
		}
	}

	r.TotalVisits = len(logs)
	r.UniqueVisitors = len(users)

	for _, d := range days.order {
		r.VisitsByDay = append(r.VisitsByDay, DayVisits{Date: d, Visits: days.n[d]})
	}
	sort.Slice(r.VisitsByDay, func(i, j int) bool { return r.VisitsByDay[i].Date < r.VisitsByDay[j].Date })

	for _, h := range hours.order {
		r.PeakHours = append(r.PeakHours, PeakHour{Hour: h, Visits: hours.n[h]})
		r.VisitsByHour = append(r.VisitsByHour, HourVisits{Hour: fmt.Sprintf("%02d:00", h), Visits: hours.n[h]})
	}
	sort.SliceStable(r.PeakHours, func(i, j int) bool { return r.PeakHours[i].Visits > r.PeakHours[j].Visits })
	r.PeakHours = head(r.PeakHours, maxPeakHours)
	sort.Slice(r.VisitsByHour, func(i, j int) bool { return r.VisitsByHour[i].Hour < r.VisitsByHour[j].Hour })

	for _, c := range countries.order {
		r.VisitsByCountry = append(r.VisitsByCountry, CountryVisits{Country: c, Visits: len(countries.users[c])})
	}
	sort.SliceStable(r.VisitsByCountry, func(i, j int) bool { return r.VisitsByCountry[i].Visits > r.VisitsByCountry[j].Visits })
	r.VisitsByCountry = head(r.VisitsByCountry, maxCountries)

	for _, p := range places.order {
		c := coords[p]
		r.VisitsByGeolocation = append(r.VisitsByGeolocation, PlaceVisits{
			City:      p.city,
			Country:   p.country,
			Visits:    len(places.users[p]),
			Latitude:  c[0],
			Longitude: c[1],
		})
	}
	sort.SliceStable(r.VisitsByGeolocation, func(i, j int) bool {
		return r.VisitsByGeolocation[i].Visits > r.VisitsByGeolocation[j].Visits
	})
	r.VisitsByGeolocation = head(r.VisitsByGeolocation, maxPlaces)

	return r
}

// SectionStat summarizes how readers reached one heading.
type SectionStat struct {
	SectionTitle        string  `json:"sectionTitle"`
	SectionLevel        string  `json:"sectionLevel"`
	UniqueUsers         int     `json:"uniqueUsers"`
	TotalViews          int     `json:"totalViews"`
	AverageViewsPerUser float64 `json:"averageViewsPerUser"`
}

// SectionReport is the per-heading reading depth of one article.
type SectionReport struct {
	ArticleID     string        `json:"articleId"`
	TotalSections int           `json:"totalSections"`
	Sections      []SectionStat `json:"sections"`
}

type sectionKey struct {
	level, title string
}

// Sections groups views by heading, keeping the order views arrive in.
func Sections(articleID string, views []model.SectionView) SectionReport {
	var order []sectionKey
	stats := map[sectionKey]*SectionStat{}

	for _, v := range views {
		k := sectionKey{level: v.SectionLevel, title: v.SectionTitle}
		s, ok := stats[k]
		if !ok {
			s = &SectionStat{SectionTitle: v.SectionTitle, SectionLevel: v.SectionLevel}
			stats[k] = s
			order = append(order, k)
		}

		count := v.ViewCount
		if count <= 0 {
			count = 1
		}
		s.UniqueUsers++
		s.TotalViews += count
	}

	r := SectionReport{ArticleID: articleID, Sections: make([]SectionStat, 0, len(order))}
	for _, k := range order {
		s := stats[k]
		s.AverageViewsPerUser = math.Round(float64(s.TotalViews)/float64(s.UniqueUsers)*100) / 100
		r.Sections = append(r.Sections, *s)
	}
	r.TotalSections = len(r.Sections)

	return r
}

func orUnknown(s string) string {
	if s == "" {
		return unknownPlace
	}

	return s
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}

	return s
}
