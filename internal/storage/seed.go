// ABOUTME: Sample data fixtures and idempotent seeding.
// ABOUTME: Seeds ~20 rows per table; a populated database is left untouched.
package storage

import (
	"fmt"
	"time"

	"weartrack/internal/models"
)

// SeedSummary reports what Seed inserted.
type SeedSummary struct {
	Users           int
	Devices         int
	Metrics         int
	Observations    int
	Recommendations int
}

// Seeded reports whether the database already holds user data. Seeding is
// keyed off the Users table: parents are seeded before facts, so a non-empty
// Users table means a previous run completed or is underway.
func (d *DB) Seeded() (bool, error) {
	var n int64
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM Users`).Scan(&n); err != nil {
		return false, fmt.Errorf("check seeded: %w", err)
	}
	return n > 0, nil
}

// Seed populates an empty database with sample users, devices, the metric
// catalog, observations, and recommendations. Running it against a seeded
// database is a no-op and returns (nil, nil).
func (d *DB) Seed() (*SeedSummary, error) {
	seeded, err := d.Seeded()
	if err != nil {
		return nil, err
	}
	if seeded {
		return nil, nil
	}

	summary := &SeedSummary{}

	users := seedUsers()
	for _, u := range users {
		if err := d.CreateUser(u); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		summary.Users++
	}

	devices := seedDevices(users)
	for _, dev := range devices {
		if err := d.CreateDevice(dev); err != nil {
			return nil, fmt.Errorf("seed device %s: %w", dev.Name, err)
		}
		summary.Devices++
	}

	metrics := make([]*models.HealthMetric, 0, len(models.DefaultCatalog))
	for _, entry := range models.DefaultCatalog {
		m := entry
		if err := d.CreateMetric(&m); err != nil {
			return nil, fmt.Errorf("seed metric %s: %w", m.Name, err)
		}
		metrics = append(metrics, &m)
		summary.Metrics++
	}

	for _, o := range seedObservations(users, metrics, devices) {
		if err := d.CreateObservation(o); err != nil {
			return nil, fmt.Errorf("seed observation: %w", err)
		}
		summary.Observations++
	}

	for _, r := range seedRecommendations(users) {
		if err := d.CreateRecommendation(r); err != nil {
			return nil, fmt.Errorf("seed recommendation %q: %w", r.Title, err)
		}
		summary.Recommendations++
	}

	return summary, nil
}

func seedUsers() []*models.User {
	reg := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []*models.User{
		models.NewUser("Alice", "Smith", "alice.smith@example.com").WithAge(34).WithGender("female").WithRegistrationDate(reg("2023-01-12")),
		models.NewUser("Bob", "Johnson", "bob.johnson@example.com").WithAge(41).WithGender("male").WithRegistrationDate(reg("2023-01-20")),
		models.NewUser("Carol", "Williams", "carol.williams@example.com").WithAge(29).WithGender("female").WithRegistrationDate(reg("2023-02-03")),
		models.NewUser("David", "Brown", "david.brown@example.com").WithAge(52).WithGender("male").WithRegistrationDate(reg("2023-02-17")),
		models.NewUser("Emma", "Jones", "emma.jones@example.com").WithAge(26).WithGender("female").WithRegistrationDate(reg("2023-03-01")),
		models.NewUser("Frank", "Garcia", "frank.garcia@example.com").WithAge(38).WithGender("male").WithRegistrationDate(reg("2023-03-09")),
		models.NewUser("Grace", "Miller", "grace.miller@example.com").WithAge(45).WithGender("female").WithRegistrationDate(reg("2023-03-22")),
		models.NewUser("Henry", "Davis", "henry.davis@example.com").WithAge(31).WithGender("male").WithRegistrationDate(reg("2023-04-05")),
		models.NewUser("Isla", "Rodriguez", "isla.rodriguez@example.com").WithAge(27).WithGender("female").WithRegistrationDate(reg("2023-04-18")),
		models.NewUser("Jack", "Martinez", "jack.martinez@example.com").WithAge(60).WithGender("male").WithRegistrationDate(reg("2023-05-02")),
		models.NewUser("Karen", "Hernandez", "karen.hernandez@example.com").WithAge(48).WithGender("female").WithRegistrationDate(reg("2023-05-14")),
		models.NewUser("Liam", "Lopez", "liam.lopez@example.com").WithAge(22).WithGender("male").WithRegistrationDate(reg("2023-05-30")),
		models.NewUser("Mia", "Gonzalez", "mia.gonzalez@example.com").WithAge(33).WithGender("female").WithRegistrationDate(reg("2023-06-11")),
		models.NewUser("Noah", "Wilson", "noah.wilson@example.com").WithAge(36).WithGender("male").WithRegistrationDate(reg("2023-06-25")),
		models.NewUser("Olivia", "Anderson", "olivia.anderson@example.com").WithAge(39).WithGender("female").WithRegistrationDate(reg("2023-07-07")),
		models.NewUser("Peter", "Thomas", "peter.thomas@example.com").WithAge(55).WithGender("male").WithRegistrationDate(reg("2023-07-19")),
		models.NewUser("Quinn", "Taylor", "quinn.taylor@example.com").WithAge(24).WithRegistrationDate(reg("2023-08-01")),
		models.NewUser("Rosa", "Moore", "rosa.moore@example.com").WithAge(42).WithGender("female").WithRegistrationDate(reg("2023-08-15")),
		models.NewUser("Sam", "Jackson", "sam.jackson@example.com").WithAge(30).WithGender("male").WithRegistrationDate(reg("2023-08-28")),
		models.NewUser("Tara", "White", "tara.white@example.com").WithAge(35).WithGender("female").WithRegistrationDate(reg("2023-09-10")),
	}
}

func seedDevices(users []*models.User) []*models.Device {
	specs := []struct {
		model string
		name  string
	}{
		{"FitBit Charge 5", "Alice's Charge 5"},
		{"Apple Watch Series 9", "Bob's Apple Watch"},
		{"Garmin Forerunner 265", "Carol's Forerunner"},
		{"Samsung Galaxy Watch 6", "David's Galaxy Watch"},
		{"WHOOP 4.0", "Emma's WHOOP"},
		{"Oura Ring Gen 3", "Frank's Oura Ring"},
		{"Polar Vantage V3", "Grace's Polar"},
		{"Xiaomi Smart Band 8", "Henry's Smart Band"},
		{"Amazfit GTR 4", "Isla's Amazfit"},
		{"Google Pixel Watch 2", "Jack's Pixel Watch"},
		{"Garmin Venu 3", "Karen's Venu"},
		{"Fitbit Sense 2", "Liam's Sense"},
		{"Huawei Watch GT 4", "Mia's Watch GT"},
		{"Coros Pace 3", "Noah's Pace"},
		{"Suunto Race", "Olivia's Suunto"},
		{"Withings ScanWatch 2", "Peter's ScanWatch"},
		{"Apple Watch Ultra 2", "Quinn's Watch Ultra"},
		{"Garmin Fenix 7", "Rosa's Fenix"},
		{"Polar Ignite 3", "Sam's Ignite"},
		{"Amazfit Band 7", "Tara's Band"},
	}

	devices := make([]*models.Device, 0, len(specs))
	for i, s := range specs {
		dev := models.NewDevice(s.model, s.name)
		if i < len(users) {
			dev.WithOwner(users[i].ID)
		}
		devices = append(devices, dev)
	}
	return devices
}

// seedObservations builds a couple of days of data points. Each user gets a
// heart-rate reading from their own device plus a handful of other metrics
// spread across the catalog.
func seedObservations(users []*models.User, metrics []*models.HealthMetric, devices []*models.Device) []*models.Observation {
	byName := make(map[string]*models.HealthMetric, len(metrics))
	for _, m := range metrics {
		byName[m.Name] = m
	}

	base, _ := time.Parse(time.RFC3339, "2024-03-01T07:00:00Z")
	heartRates := []float64{
		75.5, 68.0, 72.3, 81.9, 64.4, 70.1, 77.8, 66.2, 73.5, 69.9,
		80.2, 62.7, 71.4, 74.8, 67.3, 76.6, 65.1, 79.0, 70.7, 72.9,
	}
	steps := []float64{
		8234, 10492, 6120, 12803, 9541, 7310, 11208, 5894, 10034, 8770,
	}
	sleep := []float64{7.5, 6.8, 8.1, 5.9, 7.2, 6.4, 7.9, 8.3, 6.1, 7.0}

	var out []*models.Observation
	for i, u := range users {
		dev := devices[i]
		ts := base.Add(time.Duration(i) * time.Hour)
		out = append(out, models.NewObservation(u.ID, byName["Heart Rate"].ID, dev.ID, heartRates[i]).WithTimestamp(ts))
	}
	for i := 0; i < len(steps); i++ {
		u, dev := users[i], devices[i]
		ts := base.Add(24*time.Hour + time.Duration(i)*time.Hour)
		out = append(out, models.NewObservation(u.ID, byName["Steps"].ID, dev.ID, steps[i]).WithTimestamp(ts))
	}
	for i := 0; i < len(sleep); i++ {
		u, dev := users[i+10], devices[i+10]
		ts := base.Add(48*time.Hour + time.Duration(i)*time.Hour)
		out = append(out, models.NewObservation(u.ID, byName["Sleep Duration"].ID, dev.ID, sleep[i]).WithTimestamp(ts))
	}
	return out
}

func seedRecommendations(users []*models.User) []*models.Recommendation {
	texts := []struct {
		title string
		desc  string
	}{
		{"Increase daily steps", "Your average is below 8,000 steps. Try a 20-minute walk after lunch."},
		{"Improve sleep schedule", "Bedtime varies by over two hours. A consistent schedule improves recovery."},
		{"Stay hydrated", "Logged hydration is under 1.5L per day. Aim for at least 2L."},
		{"Add strength training", "Two resistance sessions per week support healthy ageing."},
		{"Monitor resting heart rate", "Resting heart rate crept up this month. Consider lighter training weeks."},
		{"Take recovery days", "Seven consecutive high-strain days recorded. Schedule a rest day."},
		{"Morning sunlight", "Ten minutes of morning light helps anchor your sleep rhythm."},
		{"Reduce evening screen time", "Late screen use correlates with your shorter deep-sleep phases."},
		{"Check blood pressure weekly", "Readings trend high-normal. Track weekly and share with your doctor."},
		{"Warm up before runs", "Sudden heart-rate spikes at run start. Add a 5-minute warm-up."},
		{"Breathing exercises", "High stress scores in the afternoon. Try box breathing at 3pm."},
		{"Increase protein intake", "Recovery metrics lag after workouts. Review protein at breakfast."},
		{"Watch caffeine after noon", "Late caffeine correlates with your elevated night heart rate."},
		{"Try interval training", "VO2 max has plateaued. One interval session per week can help."},
		{"Stretch daily", "Short mobility breaks reduce stiffness flagged in your notes."},
		{"Climb more stairs", "Floors-climbed is trending down. Take stairs for trips under four floors."},
		{"Track meals on weekends", "Weekend logging gaps hide calorie trends."},
		{"Mind your SpO2 dips", "Occasional overnight dips recorded. Mention this at your next checkup."},
		{"Cool bedroom", "Skin temperature suggests your bedroom runs warm. 18°C sleeps best."},
		{"Celebrate streaks", "You hit your step goal 12 days straight. Keep the streak alive."},
	}

	recs := make([]*models.Recommendation, 0, len(texts))
	for i, t := range texts {
		u := users[i%len(users)]
		recs = append(recs, models.NewRecommendation(u.ID, t.title).WithDescription(t.desc))
	}
	return recs
}
