// Command seed-projects generates randomized volunteer projects and
// submits them to a running instance. Useful for exercising the
// recommendation and feed endpoints against a populated catalog.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/awaisio/rabtah/internal/domain/model"
	"github.com/awaisio/rabtah/pkg/logger"
	"github.com/google/uuid"
)

// Default configuration constants.
const (
	defaultNumProjects = 200
	defaultTimeout     = 30 * time.Second
	defaultBatchSize   = 50

	// Submission dates are spread over this many days so that part of
	// the batch lands inside the trending window and part outside it.
	submissionSpreadDays = 14

	maxParticipants      = 30
	maxExpectedVolunteer = 50
	maxPeopleImpacted    = 5000
	maxProjectSpanDays   = 90
)

var cities = []string{
	"Karachi", "Lahore", "Islamabad", "Peshawar", "Quetta",
	"Multan", "Faisalabad", "Hyderabad", "Rawalpindi", "Sialkot",
}

var categories = []string{
	"environment", "education", "health", "community", "animal welfare",
	"disaster relief", "arts and culture",
}

var skills = []string{
	"teaching", "first aid", "cooking", "event planning", "fundraising",
	"social media", "carpentry", "gardening", "translation", "driving",
	"photography", "counseling", "logistics",
}

var activities = []string{
	"Tree Planting Drive", "Literacy Workshop", "Blood Donation Camp",
	"Beach Cleanup", "Food Distribution", "Free Medical Camp",
	"Animal Shelter Support", "Flood Relief Collection", "Mural Painting",
	"Elderly Care Visit",
}

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9090", "Base URL of the service")
		numProjects = flag.Int("count", defaultNumProjects, "Number of projects to generate and submit")
		batchSize   = flag.Int("batch", defaultBatchSize, "Projects per upsert request")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed for reproducible batches")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rng := rand.New(rand.NewSource(*seed))
	projects := generate(rng, *numProjects)

	client := &http.Client{Timeout: *timeout}
	submitted := 0
	for start := 0; start < len(projects); start += *batchSize {
		end := start + *batchSize
		if end > len(projects) {
			end = len(projects)
		}
		if err := submit(ctx, client, *baseURL, projects[start:end]); err != nil {
			log.Error(ctx, "batch submission failed",
				logger.Int("offset", start),
				logger.Error(err),
			)
			return
		}
		submitted += end - start
	}

	log.Info(ctx, "seeding complete",
		logger.Int("projects", submitted),
		logger.String("url", *baseURL),
	)
}

// generate produces count randomized projects with engagement numbers
// and dates suitable for every ranking strategy.
func generate(rng *rand.Rand, count int) []model.Project {
	now := time.Now().UTC()
	projects := make([]model.Project, count)
	for i := range projects {
		city := cities[rng.Intn(len(cities))]
		activity := activities[rng.Intn(len(activities))]

		start := now.AddDate(0, 0, rng.Intn(maxProjectSpanDays))
		end := start.AddDate(0, 0, 1+rng.Intn(maxProjectSpanDays))
		submitted := now.Add(-time.Duration(rng.Intn(submissionSpreadDays*24)) * time.Hour)

		projects[i] = model.Project{
			ID:                 uuid.NewString(),
			Title:              fmt.Sprintf("%s in %s", activity, city),
			Description:        fmt.Sprintf("Join the %s effort in %s.", activity, city),
			Category:           categories[rng.Intn(len(categories))],
			Location:           city,
			RequiredSkills:     pick(rng, skills, 1+rng.Intn(3)),
			PreferredSkills:    pick(rng, skills, rng.Intn(3)),
			StartDate:          model.DateString(start.Format("2006-01-02")),
			EndDate:            model.DateString(end.Format("2006-01-02")),
			SubmittedAt:        model.DateAt(submitted),
			ParticipantIDs:     participantIDs(rng.Intn(maxParticipants)),
			ExpectedVolunteers: 1 + rng.Intn(maxExpectedVolunteer),
			PeopleImpacted:     rng.Intn(maxPeopleImpacted),
		}
	}
	return projects
}

func pick(rng *rand.Rand, pool []string, n int) []string {
	if n <= 0 {
		return nil
	}
	perm := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

func participantIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return ids
}

func submit(ctx context.Context, client *http.Client, baseURL string, batch []model.Project) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/projects", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("submit batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
