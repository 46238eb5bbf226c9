//go:build datagen_users
// +build datagen_users

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"usernetwork/src/domain/entities"
	"usernetwork/src/helper/env"
	"usernetwork/src/infra/postgres"
	"usernetwork/src/repositories"

	"github.com/go-faker/faker/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ferramenta de carga: popula users e connection_requests para testes de
// volume. Roda fora do binário do servidor, atrás da build tag datagen_users.

var (
	genders = []string{"male", "female", "other"}
	skills  = []string{"go", "postgres", "redis", "kafka", "react", "node", "python", "terraform", "kubernetes", "rust"}
)

func newSQLClient() (*pgxpool.Pool, error) {
	dbHost := env.MustGetString("DB_WRITE_HOST")
	dbPort := env.GetString("DB_WRITE_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := 100
	return postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	numUsers := flag.Int("users", 10000, "Número de usuários a serem criados.")
	edgesPerUser := flag.Int("edges-per-user", 5, "Média de connection requests por usuário.")
	numWorkers := flag.Int("workers", 8, "Workers de insert concorrentes.")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := newSQLClient()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	userChan := make(chan entities.User, (*numWorkers)*100)
	userIDs := make([]int64, 0, *numUsers)

	var idsMutex sync.Mutex
	var totalProcessed, totalErrors int64
	startTime := time.Now()

	// Métricas a cada 2 segundos
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				processed := atomic.LoadInt64(&totalProcessed)
				errors := atomic.LoadInt64(&totalErrors)
				elapsed := time.Since(startTime)
				rate := float64(processed) / elapsed.Seconds()

				fmt.Printf("Processed: %d | Errors: %d | Rate: %.1f/s | Elapsed: %v\n",
					processed, errors, rate, elapsed.Round(time.Second))
			}
		}
	}()

	userRepository := repositories.NewUserRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for user := range userChan {
				if insertErr := userRepository.CreateUser(ctx, &user); insertErr != nil {
					atomic.AddInt64(&totalErrors, 1)
					continue
				}
				atomic.AddInt64(&totalProcessed, 1)
				idsMutex.Lock()
				userIDs = append(userIDs, user.ID)
				idsMutex.Unlock()
			}
		}()
	}

	for i := 0; i < *numUsers; i++ {
		userChan <- generateUser()
	}
	close(userChan)
	wg.Wait()

	fmt.Printf("Users done: %d inserted, %d errors\n", atomic.LoadInt64(&totalProcessed), atomic.LoadInt64(&totalErrors))

	insertEdges(ctx, db, userIDs, (*numUsers)*(*edgesPerUser))

	fmt.Printf("Finished in %v\n", time.Since(startTime).Round(time.Second))
}

func generateUser() entities.User {
	userSkills := make([]string, 0, 3)
	for _, idx := range rand.Perm(len(skills))[:rand.Intn(3)+1] {
		userSkills = append(userSkills, skills[idx])
	}

	firstName := faker.FirstName()
	lastName := faker.LastName()

	return entities.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     fmt.Sprintf("%s.%s.%s@example.com", strings.ToLower(firstName), strings.ToLower(lastName), faker.Word()),
		Age:       rand.Intn(42) + 18,
		Gender:    genders[rand.Intn(len(genders))],
		PhotoURL:  fmt.Sprintf("https://picsum.photos/seed/%s/200", faker.Username()),
		About:     faker.Sentence(),
		Skills:    userSkills,
	}
}

// insertEdges sorteia pares e deixa o índice único do par descartar repetidos.
func insertEdges(ctx context.Context, db *pgxpool.Pool, userIDs []int64, target int) {
	if len(userIDs) < 2 {
		return
	}

	statuses := []entities.RequestStatus{
		entities.StatusInterested,
		entities.StatusIgnored,
		entities.StatusAccepted,
		entities.StatusRejected,
	}

	var inserted, skipped int64
	for i := 0; i < target; i++ {
		from := userIDs[rand.Intn(len(userIDs))]
		to := userIDs[rand.Intn(len(userIDs))]
		if from == to {
			continue
		}

		tag, err := db.Exec(ctx, `
			INSERT INTO connection_requests (from_user_id, to_user_id, status)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING`,
			from, to, statuses[rand.Intn(len(statuses))],
		)
		if err != nil {
			skipped++
			continue
		}
		if tag.RowsAffected() == 0 {
			skipped++
			continue
		}
		inserted++
	}

	fmt.Printf("Edges done: %d inserted, %d skipped\n", inserted, skipped)
}
