package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/blogem/iris/models"
)

// SeedService interface defines demo data seeding
type SeedService interface {
	SeedDemo(ctx context.Context) (int, error)
	SeedGenerated(ctx context.Context) (int, error)
}

// seedService implements SeedService on top of the resource store
type seedService struct {
	store  ResourceStore
	logger *slog.Logger

	// rngMu guards rng, which is not safe for concurrent use
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSeedService creates a seeder. rng drives the synthetic generator.
func NewSeedService(store ResourceStore, rng *rand.Rand, logger *slog.Logger) SeedService {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(timeNow().UnixNano()), 0))
	}
	return &seedService{store: store, rng: rng, logger: logger}
}

// SeedDemo inserts the fixed demo records when the store is empty
func (s *seedService) SeedDemo(ctx context.Context) (int, error) {
	if len(s.store.List(ctx)) > 0 {
		return 0, nil
	}

	records, err := s.store.CreateBatch(ctx, DemoRecords())
	if err != nil {
		return len(records), fmt.Errorf("failed to seed demo records: %w", err)
	}

	s.logger.Info("seeded demo records", "count", len(records))
	return len(records), nil
}

// SeedGenerated inserts twelve months of synthetic data
func (s *seedService) SeedGenerated(ctx context.Context) (int, error) {
	s.rngMu.Lock()
	inputs := GenerateSampleData(s.rng, timeNow())
	s.rngMu.Unlock()

	records, err := s.store.CreateBatch(ctx, inputs)
	if err != nil {
		return len(records), fmt.Errorf("failed to seed generated records: %w", err)
	}

	s.logger.Info("seeded generated records", "count", len(records))
	return len(records), nil
}

// DemoRecords returns the fixed demonstration measurements
func DemoRecords() []models.ResourceInput {
	return []models.ResourceInput{
		{Type: models.ResourceWater, Value: 250, Date: "2024-07-20", Description: "Consumo residencial diário"},
		{Type: models.ResourceEnergy, Value: 15.5, Date: "2024-07-20", Description: "Consumo energético do escritório"},
		{Type: models.ResourceGas, Value: 2.3, Date: "2024-07-19", Description: "Gás natural - cozinha"},
		{Type: models.ResourceWaste, Value: 5.2, Date: "2024-07-18", Description: "Resíduos orgânicos"},
		{Type: models.ResourceCompost, Value: 3.1, Date: "2024-07-17", Description: "Composto gerado no jardim"},
		{Type: models.ResourceWater, Value: 280, Date: "2024-07-15", Description: "Consumo elevado - lavagem de roupas"},
		{Type: models.ResourceEnergy, Value: 18.2, Date: "2024-07-14", Description: "Uso intenso de ar condicionado"},
	}
}

// season classifies a month for the southern hemisphere
type season int

const (
	midSeason season = iota
	winter           // Jun-Sep
	summer           // Dec-Mar
)

func seasonOf(month time.Month) season {
	switch {
	case month >= time.June && month <= time.September:
		return winter
	case month >= time.December || month <= time.March:
		return summer
	default:
		return midSeason
	}
}

// GenerateSampleData synthesizes twelve months of seasonal records ending with now's month, newest first
func GenerateSampleData(rng *rand.Rand, now time.Time) []models.ResourceInput {
	var data []models.ResourceInput

	for offset := 11; offset >= 0; offset-- {
		month := models.MonthStart(now).AddDate(0, -offset, 0)
		s := seasonOf(month.Month())
		recordsPerMonth := rng.IntN(8) + 5

		for i := 0; i < recordsPerMonth; i++ {
			date := randomDate(rng, month, now)

			waterVariation, energyVariation, gasVariation := 1.0, 1.0, 0.8
			waterNote, energyNote, gasNote := "(meia estação)", "(normal)", "(cozinha)"
			switch s {
			case winter:
				waterVariation, energyVariation, gasVariation = 0.8, 0.7, 1.5
				waterNote, energyNote, gasNote = "(inverno)", "(aquecimento)", "(aquecimento)"
			case summer:
				waterVariation, energyVariation = 1.3, 1.4
				waterNote, energyNote = "(verão)", "(ar condicionado)"
			}

			data = append(data,
				models.ResourceInput{
					Type:        models.ResourceWater,
					Value:       round2(12 * waterVariation * (0.8 + rng.Float64()*0.4)),
					Date:        date,
					Description: "Consumo residencial " + waterNote,
				},
				models.ResourceInput{
					Type:        models.ResourceEnergy,
					Value:       math.Round(280 * energyVariation * (0.7 + rng.Float64()*0.6)),
					Date:        date,
					Description: "Consumo energético " + energyNote,
				},
				models.ResourceInput{
					Type:        models.ResourceGas,
					Value:       round2(15 * gasVariation * (0.6 + rng.Float64()*0.8)),
					Date:        date,
					Description: "Gás natural " + gasNote,
				},
			)

			// Not every day has waste or compost
			if rng.Float64() > 0.3 {
				data = append(data, models.ResourceInput{
					Type:        models.ResourceWaste,
					Value:       round2(3 + rng.Float64()*8),
					Date:        date,
					Description: "Resíduos domésticos",
				})
			}
			if rng.Float64() > 0.5 {
				data = append(data, models.ResourceInput{
					Type:        models.ResourceCompost,
					Value:       round2(1 + rng.Float64()*4),
					Date:        date,
					Description: "Composto orgânico",
				})
			}
		}
	}

	sortNewestFirst(data)
	return data
}

// GenerateSampleDataForResource synthesizes six records per month of one type for monthsBack months
func GenerateSampleDataForResource(rng *rand.Rand, now time.Time, resourceType models.ResourceType, monthsBack int) []models.ResourceInput {
	if monthsBack <= 0 {
		monthsBack = 6
	}

	var data []models.ResourceInput
	for offset := monthsBack - 1; offset >= 0; offset-- {
		month := models.MonthStart(now).AddDate(0, -offset, 0)

		for i := 0; i < 6; i++ {
			input := models.ResourceInput{Type: resourceType, Date: randomDate(rng, month, now)}
			switch resourceType {
			case models.ResourceWater:
				input.Value = round2(8 + rng.Float64()*7)
				input.Description = "Consumo de água residencial"
			case models.ResourceEnergy:
				input.Value = math.Round(150 + rng.Float64()*250)
				input.Description = "Consumo de energia elétrica"
			case models.ResourceGas:
				input.Value = round2(8 + rng.Float64()*17)
				input.Description = "Consumo de gás natural"
			case models.ResourceWaste:
				input.Value = round2(2 + rng.Float64()*8)
				input.Description = "Resíduos domésticos"
			case models.ResourceCompost:
				input.Value = round2(1 + rng.Float64()*4)
				input.Description = "Composto orgânico"
			}
			data = append(data, input)
		}
	}

	sortNewestFirst(data)
	return data
}

// randomDate picks a day of month, never later than now
func randomDate(rng *rand.Rand, month time.Time, now time.Time) string {
	daysInMonth := month.AddDate(0, 1, -1).Day()
	date := models.FormatDate(month.AddDate(0, 0, rng.IntN(daysInMonth)))
	if today := models.FormatDate(now); date > today {
		return today
	}
	return date
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortNewestFirst(data []models.ResourceInput) {
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Date > data[j].Date
	})
}
