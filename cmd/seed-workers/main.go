package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/database"
	"github.com/shramik/admin-backend/internal/logger"
	"github.com/shramik/admin-backend/internal/model"
	"github.com/shramik/admin-backend/internal/repository"
	"github.com/shramik/admin-backend/internal/service"
)

func main() {
	count := flag.Int("n", 50, "Number of workers to seed")
	password := flag.String("password", "shramik123", "Password for every seeded worker")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	workerRepo := repository.NewWorkerRepository(pool)
	workerService := service.NewWorkerService(workerRepo, service.NewBcryptHasher(cfg.BcryptCost), nil, log)

	fmt.Printf("=== Seeding %d Workers ===\n", *count)

	names := [][2]string{
		{"Ramesh", "Kumar"}, {"Sunita", "Devi"}, {"Mahesh", "Yadav"}, {"Pooja", "Sharma"}, {"Suresh", "Patel"},
		{"Anita", "Verma"}, {"Rajesh", "Singh"}, {"Kavita", "Gupta"}, {"Dinesh", "Chauhan"}, {"Geeta", "Mishra"},
		{"Vikram", "Thakur"}, {"Lakshmi", "Nair"}, {"Arjun", "Reddy"}, {"Meena", "Joshi"}, {"Prakash", "Pandey"},
		{"Rekha", "Tiwari"}, {"Sanjay", "Dubey"}, {"Usha", "Rao"}, {"Manoj", "Saxena"}, {"Neha", "Agarwal"},
	}

	successCount := 0
	for i := 0; i < *count; i++ {
		name := names[i%len(names)]
		req := &model.CreateWorkerRequest{
			FirstName:   name[0],
			LastName:    name[1],
			PhoneNumber: fmt.Sprintf("+9190000%05d", i+1),
			Password:    *password,
		}
		// Every fifth worker is a supervisor.
		if i%5 == 4 {
			req.Role = model.RoleSupervisor
		}

		if _, err := workerService.Create(ctx, req); err != nil {
			if errors.Is(err, service.ErrConflict) {
				fmt.Printf("Skipping %s: phone already registered\n", req.PhoneNumber)
				continue
			}
			fmt.Printf("Error creating worker %s %s (%s): %v\n", req.FirstName, req.LastName, req.PhoneNumber, err)
			continue
		}
		successCount++
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d workers...\n", i+1)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d workers.\n", successCount, *count)
}
