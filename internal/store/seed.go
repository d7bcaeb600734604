package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tereverde/tereverde-go/internal/auth"
	"github.com/tereverde/tereverde-go/internal/model"
)

// SeedAdminEmail and SeedAdminPassword are the demo admin credentials.
// Change the password after the first login on a real deployment.
const (
	SeedAdminName     = "Administrador"
	SeedAdminEmail    = "admin@teste.com"
	SeedAdminPassword = "admin123"
)

type seedPark struct {
	name        string
	description string
	parkType    string
	location    string
}

type seedTrail struct {
	park              string
	name              string
	difficulty        string
	durationEstimated string
	description       string
	isOpen            bool
}

type seedEvent struct {
	park        string
	title       string
	description string
	start       time.Duration
	end         time.Duration
}

type seedPeriod struct {
	park       string
	seasonName string
	openTime   string
	closeTime  string
	startDate  time.Time
	endDate    time.Time
}

type seedBiodiversityItem struct {
	park        string
	name        string
	itemType    string
	description string
}

// Seed inserts the demo data set: one admin user, three parks and their
// trails, events, availability periods and biodiversity items. Every record
// is looked up by its natural key first, so running Seed repeatedly does not
// duplicate rows.
func (q *Queries) Seed(ctx context.Context, logger *slog.Logger) error {
	now := time.Now().UTC()
	year := now.Year()

	if err := q.seedAdmin(ctx, logger, now); err != nil {
		return err
	}

	parks := []seedPark{
		{
			name:        "Parque Nacional da Serra dos Órgãos",
			description: "Famoso pelos seus picos e trilhas como a Travessia Petrópolis-Teresópolis.",
			parkType:    model.ParkTypeNational,
			location:    "Teresópolis / Petrópolis / Guapimirim",
		},
		{
			name:        "Parque Estadual dos Três Picos",
			description: "Maior parque estadual do RJ, destaque para o Pico Maior.",
			parkType:    model.ParkTypeState,
			location:    "Teresópolis / Nova Friburgo / Cachoeiras de Macacu",
		},
		{
			name:        "Parque Natural Municipal Montanhas de Teresópolis",
			description: "Unidade municipal com belas paisagens e biodiversidade.",
			parkType:    model.ParkTypeMunicipal,
			location:    "Teresópolis",
		},
	}

	nameToPark := make(map[string]Park, len(parks))
	for _, p := range parks {
		park, err := q.GetParkByName(ctx, p.name)
		if errors.Is(err, sql.ErrNoRows) {
			park, err = q.CreatePark(ctx, CreateParkParams{
				Name:        p.name,
				Description: p.description,
				Type:        p.parkType,
				Location:    p.location,
				CreatedAt:   now,
			})
			if err == nil {
				logger.Info("seeded park", "name", park.Name)
			}
		}
		if err != nil {
			return fmt.Errorf("seed park %q: %w", p.name, err)
		}
		nameToPark[p.name] = park
	}

	trails := []seedTrail{
		{
			park:              "Parque Nacional da Serra dos Órgãos",
			name:              "Trilha da Pedra do Sino",
			difficulty:        model.DifficultyHard,
			durationEstimated: "6-8h",
			description:       "Uma das trilhas mais famosas, com vista incrível no cume.",
			isOpen:            true,
		},
		{
			park:              "Parque Nacional da Serra dos Órgãos",
			name:              "Trilha Suspensa",
			difficulty:        model.DifficultyEasy,
			durationEstimated: "1-2h",
			description:       "Trilha adaptada, excelente para iniciantes e famílias.",
			isOpen:            true,
		},
		{
			park:              "Parque Estadual dos Três Picos",
			name:              "Acesso ao Pico Maior (base)",
			difficulty:        model.DifficultyModerate,
			durationEstimated: "3-4h",
			description:       "Acesso até a base, com belas vistas e campos de altitude.",
			isOpen:            true,
		},
		{
			park:              "Parque Natural Municipal Montanhas de Teresópolis",
			name:              "Trilha da Vargem Grande",
			difficulty:        model.DifficultyModerate,
			durationEstimated: "2-3h",
			description:       "Vegetação exuberante e riachos no caminho.",
			isOpen:            true,
		},
	}

	for _, t := range trails {
		park, ok := nameToPark[t.park]
		if !ok {
			continue
		}
		_, err := q.GetTrailByParkAndName(ctx, GetTrailByParkAndNameParams{ParkID: park.ID, Name: t.name})
		if errors.Is(err, sql.ErrNoRows) {
			_, err = q.CreateTrail(ctx, CreateTrailParams{
				ParkID:            park.ID,
				Name:              t.name,
				Difficulty:        t.difficulty,
				DurationEstimated: t.durationEstimated,
				Description:       t.description,
				IsOpen:            t.isOpen,
			})
			if err == nil {
				logger.Info("seeded trail", "name", t.name, "park", t.park)
			}
		}
		if err != nil {
			return fmt.Errorf("seed trail %q: %w", t.name, err)
		}
	}

	events := []seedEvent{
		{
			park:        "Parque Nacional da Serra dos Órgãos",
			title:       "Caminhada ao nascer do sol",
			description: "Atividade guiada para apreciar o nascer do sol na Pedra do Sino.",
			start:       7*24*time.Hour + 6*time.Hour,
			end:         7*24*time.Hour + 12*time.Hour,
		},
		{
			park:        "Parque Estadual dos Três Picos",
			title:       "Mutirão de limpeza",
			description: "Ação voluntária de limpeza de trilhas.",
			start:       14*24*time.Hour + 9*time.Hour,
			end:         14*24*time.Hour + 13*time.Hour,
		},
	}

	for _, e := range events {
		park, ok := nameToPark[e.park]
		if !ok {
			continue
		}
		_, err := q.GetEventByParkAndTitle(ctx, GetEventByParkAndTitleParams{ParkID: park.ID, Title: e.title})
		if errors.Is(err, sql.ErrNoRows) {
			_, err = q.CreateEvent(ctx, CreateEventParams{
				ParkID:        park.ID,
				Title:         e.title,
				Description:   e.description,
				StartDatetime: now.Add(e.start),
				EndDatetime:   now.Add(e.end),
				IsActive:      true,
			})
			if err == nil {
				logger.Info("seeded event", "title", e.title, "park", e.park)
			}
		}
		if err != nil {
			return fmt.Errorf("seed event %q: %w", e.title, err)
		}
	}

	periods := []seedPeriod{
		{
			park:       "Parque Nacional da Serra dos Órgãos",
			seasonName: "Alta Temporada Verão",
			openTime:   "08:00",
			closeTime:  "17:00",
			startDate:  time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC),
			endDate:    time.Date(year+1, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			park:       "Parque Estadual dos Três Picos",
			seasonName: "Baixa Temporada",
			openTime:   "08:00",
			closeTime:  "16:00",
			startDate:  time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC),
			endDate:    time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, p := range periods {
		park, ok := nameToPark[p.park]
		if !ok {
			continue
		}
		_, err := q.GetAvailabilityPeriodByParkAndSeason(ctx, GetAvailabilityPeriodByParkAndSeasonParams{
			ParkID:     park.ID,
			SeasonName: p.seasonName,
		})
		if errors.Is(err, sql.ErrNoRows) {
			_, err = q.CreateAvailabilityPeriod(ctx, CreateAvailabilityPeriodParams{
				ParkID:     park.ID,
				SeasonName: p.seasonName,
				OpenTime:   p.openTime,
				CloseTime:  p.closeTime,
				StartDate:  p.startDate,
				EndDate:    p.endDate,
			})
			if err == nil {
				logger.Info("seeded availability period", "season", p.seasonName, "park", p.park)
			}
		}
		if err != nil {
			return fmt.Errorf("seed availability period %q: %w", p.seasonName, err)
		}
	}

	biodiversity := []seedBiodiversityItem{
		{
			park:        "Parque Nacional da Serra dos Órgãos",
			name:        "Muriqui",
			itemType:    model.BiodiversityFauna,
			description: "Maior primata das Américas, ameaçado de extinção.",
		},
		{
			park:        "Parque Nacional da Serra dos Órgãos",
			name:        "Bromélia-imperial",
			itemType:    model.BiodiversityFlora,
			description: "Bromélia de grande porte típica dos costões rochosos.",
		},
		{
			park:        "Parque Estadual dos Três Picos",
			name:        "Tucano-de-bico-verde",
			itemType:    model.BiodiversityFauna,
			description: "Ave frugívora comum nas matas de altitude.",
		},
	}

	for _, b := range biodiversity {
		park, ok := nameToPark[b.park]
		if !ok {
			continue
		}
		_, err := q.GetBiodiversityItemByParkAndName(ctx, GetBiodiversityItemByParkAndNameParams{ParkID: park.ID, Name: b.name})
		if errors.Is(err, sql.ErrNoRows) {
			_, err = q.CreateBiodiversityItem(ctx, CreateBiodiversityItemParams{
				ParkID:      park.ID,
				Name:        b.name,
				Type:        b.itemType,
				Description: b.description,
			})
			if err == nil {
				logger.Info("seeded biodiversity item", "name", b.name, "park", b.park)
			}
		}
		if err != nil {
			return fmt.Errorf("seed biodiversity item %q: %w", b.name, err)
		}
	}

	return nil
}

func (q *Queries) seedAdmin(ctx context.Context, logger *slog.Logger, now time.Time) error {
	_, err := q.GetAdminUserByEmail(ctx, SeedAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("seed admin user: %w", err)
	}
	hash, err := auth.HashPassword(SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}
	_, err = q.CreateAdminUser(ctx, CreateAdminUserParams{
		Name:         SeedAdminName,
		Email:        SeedAdminEmail,
		PasswordHash: hash,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	logger.Info("seeded admin user", "email", SeedAdminEmail)
	return nil
}
