package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	service "github.com/awaisio/rabtah/internal/app"
	"github.com/awaisio/rabtah/internal/domain/match"
	"github.com/awaisio/rabtah/internal/domain/model"
	"github.com/awaisio/rabtah/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.MaxResultLimit(), ShouldEqual, 100)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithMaxResultLimit(50),
			service.WithDefaultFeedLimit(8),
			service.WithDefaultRecommendLimit(3),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
			So(svc.MaxResultLimit(), ShouldEqual, 50)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping should mark it stopped", func() {
				svc.Stop()
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_CatalogOperations(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When upserting a new project", func() {
			created, err := svc.UpsertProject(ctx, model.Project{ID: "p1", Title: "Tree planting"})

			Convey("Then it should report creation", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeTrue)
			})

			Convey("And upserting again should report replacement", func() {
				created, err := svc.UpsertProject(ctx, model.Project{ID: "p1", Title: "Tree planting v2"})
				So(err, ShouldBeNil)
				So(created, ShouldBeFalse)
			})

			Convey("And the project should be retrievable", func() {
				got, err := svc.Project(ctx, "p1")
				So(err, ShouldBeNil)
				So(got.Title, ShouldEqual, "Tree planting")
			})

			Convey("And removing it should make it unreachable", func() {
				So(svc.RemoveProject(ctx, "p1"), ShouldBeNil)
				_, err := svc.Project(ctx, "p1")
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When upserting a project without an id", func() {
			_, err := svc.UpsertProject(ctx, model.Project{Title: "No id"})

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When removing an unknown project", func() {
			err := svc.RemoveProject(ctx, "ghost")

			Convey("Then it should report not found", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestService_SeededCatalog(t *testing.T) {
	Convey("Given a service seeded with initial projects", t, func() {
		ctx := context.Background()
		seed := []model.Project{
			{ID: "p1", Title: "A"},
			{ID: "p2", Title: "B"},
		}
		svc := service.New(service.WithInitialProjects(seed))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then the seed should be visible in stats", func() {
			stats := svc.GetStats()
			So(stats["catalogSize"], ShouldEqual, 2)
		})

		Convey("And seeded projects should be retrievable", func() {
			got, err := svc.Project(ctx, "p2")
			So(err, ShouldBeNil)
			So(got.Title, ShouldEqual, "B")
		})
	})
}

func TestService_Recommendations(t *testing.T) {
	Convey("Given a started service with a scored catalog", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDefaultRecommendLimit(3))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		for i := 0; i < 6; i++ {
			_, err := svc.UpsertProject(ctx, model.Project{
				ID:       fmt.Sprintf("p%d", i),
				Title:    fmt.Sprintf("Project %d", i),
				Location: "Karachi",
			})
			So(err, ShouldBeNil)
		}

		Convey("When requesting recommendations without a limit", func() {
			result := svc.Recommendations(ctx, match.Options{Location: "Karachi"})

			Convey("Then the default limit should apply", func() {
				So(len(result), ShouldEqual, 3)
			})

			Convey("And every match should carry a score and reasons", func() {
				for _, r := range result {
					So(r.Score, ShouldBeGreaterThan, 0)
					So(len(r.Reasons), ShouldBeGreaterThan, 0)
				}
			})
		})

		Convey("When requesting recommendations with an explicit limit", func() {
			result := svc.Recommendations(ctx, match.Options{Location: "Karachi", Limit: 2})
			So(len(result), ShouldEqual, 2)
		})

		Convey("When nothing matches", func() {
			result := svc.Recommendations(ctx, match.Options{Location: "Reykjavik"})
			So(result, ShouldBeEmpty)
		})
	})
}

func TestService_Similar(t *testing.T) {
	Convey("Given a started service with related projects", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		projects := []model.Project{
			{ID: "ref", Category: "environment", Location: "Karachi"},
			{ID: "twin", Category: "environment", Location: "Karachi"},
			{ID: "far", Category: "education", Location: "Oslo"},
		}
		for _, p := range projects {
			_, err := svc.UpsertProject(ctx, p)
			So(err, ShouldBeNil)
		}

		Convey("When asking for projects similar to a known one", func() {
			result, err := svc.Similar(ctx, "ref", 5)

			Convey("Then the closest match should come first", func() {
				So(err, ShouldBeNil)
				So(len(result), ShouldBeGreaterThan, 0)
				So(result[0].ID, ShouldEqual, "twin")
			})

			Convey("And the reference itself should be excluded", func() {
				for _, p := range result {
					So(p.ID, ShouldNotEqual, "ref")
				}
			})
		})

		Convey("When the reference does not exist", func() {
			_, err := svc.Similar(ctx, "ghost", 5)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestService_Feed(t *testing.T) {
	Convey("Given a started service with a frozen clock", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		svc := service.New(
			service.WithClock(func() time.Time { return now }),
			service.WithDefaultFeedLimit(4),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		projects := []model.Project{
			{ID: "local", Location: "Karachi", ExpectedVolunteers: 10},
			{ID: "fresh", Location: "Oslo", SubmittedAt: model.DateAt(now.Add(-24 * time.Hour)), ExpectedVolunteers: 5},
			{ID: "stale", Location: "Oslo", SubmittedAt: model.DateAt(now.Add(-30 * 24 * time.Hour)), ExpectedVolunteers: 50},
			{ID: "busy", Location: "Lahore", ParticipantIDs: []string{"u1", "u2", "u3"}},
		}
		for _, p := range projects {
			_, err := svc.UpsertProject(ctx, p)
			So(err, ShouldBeNil)
		}

		Convey("When building a feed for a located profile", func() {
			result := svc.Feed(ctx, match.Options{Location: "Karachi"})

			Convey("Then no project should appear twice", func() {
				seen := make(map[string]bool)
				for _, p := range result {
					So(seen[p.ID], ShouldBeFalse)
					seen[p.ID] = true
				}
			})

			Convey("And the default limit should bound the feed", func() {
				So(len(result), ShouldBeLessThanOrEqualTo, 4)
			})
		})

		Convey("When the profile has no location", func() {
			result := svc.Feed(ctx, match.Options{Skills: []string{"logistics"}})

			Convey("Then the feed should still be populated from browse strategies", func() {
				So(len(result), ShouldBeGreaterThan, 0)
			})
		})
	})
}
