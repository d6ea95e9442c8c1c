package main // Entry point package

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/AyushTomarOG/besturf/internal/catalog"
	"github.com/AyushTomarOG/besturf/internal/config"
	"github.com/AyushTomarOG/besturf/internal/database"
	"github.com/AyushTomarOG/besturf/internal/handler"
	"github.com/AyushTomarOG/besturf/internal/logger"
	"github.com/AyushTomarOG/besturf/internal/model"
	"github.com/AyushTomarOG/besturf/internal/payment"
	"github.com/AyushTomarOG/besturf/internal/queue"
	"github.com/AyushTomarOG/besturf/internal/repository"
	"github.com/AyushTomarOG/besturf/internal/router"
	"github.com/AyushTomarOG/besturf/internal/seed"
	queue_publisher "github.com/AyushTomarOG/besturf/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Setup(os.Getenv("LOG_LEVEL"))

	// Catalog: load once from MySQL when configured, otherwise fall back to
	// the embedded seed so the demo runs with zero infrastructure.
	store := catalog.New()
	if err := store.Load(loadVenues(cfg)); err != nil {
		logrus.WithError(err).Fatal("catalog load failed")
	}
	logrus.WithField("venues", store.Len()).Info("catalog loaded")

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; booking log, cache and rate limiting disabled")
	}

	provider := payment.DemoProvider{MinINR: cfg.PaymentMinINR, MaxINR: cfg.PaymentMaxINR}
	th := handler.NewTurfHandler(store, cfg.DefaultRadiusKm)
	bh := handler.NewBookingHandler(store, provider, repository.NewBookingRepo(rdb),
		queue_publisher.PublishBookingConfirmed)

	// Confirmation log consumer; keeps reconnecting on its own.
	go queue.StartBookingConsumer()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, th, bh, rdb)

	addr := ":" + cfg.Port
	logrus.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}

// loadVenues returns the venue records the catalog is populated with. MySQL
// is authoritative when reachable; any failure degrades to the seed data
// with a warning rather than refusing to start.
func loadVenues(cfg config.Config) []model.VenueRecord {
	if cfg.DBHost == "" || cfg.DBUser == "" {
		logrus.Info("no database configured; using embedded seed catalog")
		return seed.Venues()
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Warn("database unreachable; using embedded seed catalog")
		return seed.Venues()
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	venues, err := repository.NewVenueRepo(db).LoadAll(ctx)
	if err != nil {
		logrus.WithError(err).Warn("venue query failed; using embedded seed catalog")
		return seed.Venues()
	}
	if len(venues) == 0 {
		logrus.Warn("database holds no venues; using embedded seed catalog")
		return seed.Venues()
	}
	return venues
}
