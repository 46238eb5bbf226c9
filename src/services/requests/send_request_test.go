package requests_test

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
	"usernetwork/src/helper/env"
	"usernetwork/src/infra/postgres"
	"usernetwork/src/infra/redis"
	"usernetwork/src/repositories"
	"usernetwork/src/services/requests"
	"usernetwork/src/test_artefacts/comparer"
	"usernetwork/src/test_artefacts/stubs"
	"usernetwork/src/test_artefacts/test_seeder"
)

var _ = Describe("SendRequest", func() {
	var (
		readWriteClient             *postgres.ReadWriteClient
		redisClient                 *redis.RedisClient
		testSeeder                  test_seeder.TestSeeder
		relationshipQueryRepository *repositories.RelationshipQueryRepository
		cachedConnectionsRepository *repositories.CachedConnectionsRepository
		relationshipWriteRepository *repositories.RelationshipWriteRepository
		userRepository              *repositories.UserRepository
		eventPublisherStub          *stubs.EventPublisherStub
		requestService              *requests.RequestService
		ctx                         context.Context
		err                         error
	)

	dbReadHost := env.MustGetString("TEST_DB_READ_HOST")
	dbWriteHost := env.MustGetString("TEST_DB_WRITE_HOST")
	dbReadPort := env.GetString("TEST_DB_READ_PORT", "5432")
	dbWritePort := env.GetString("TEST_DB_WRITE_PORT", "5432")
	dbname := env.MustGetString("TEST_DB_NAME")
	dbUser := env.MustGetString("TEST_DB_USER")
	dbPassword := env.MustGetString("TEST_DB_PASSWORD")
	maxConnections := env.GetInt("TEST_DB_MAX_POOL_CONNECTIONS", 25)

	// Redis config (opcional para testes)
	redisAddrs := env.GetString("TEST_REDIS_HOSTS", "")
	redisPoolSize := env.GetInt("TEST_REDIS_POOL_SIZE", 10)
	redisTTL := env.GetInt("TEST_REDIS_TTL_SECONDS", 1)

	BeforeEach(func() {
		ctx = context.Background()

		// Conexão com o banco de teste
		readWriteClient, err = postgres.NewReadWriteClient(dbReadHost, dbWriteHost, dbReadPort, dbWritePort, dbname, dbUser, dbPassword, maxConnections)
		if err != nil {
			panic(err)
		}

		redisClient = redis.NewRedisClient(redisAddrs, redisPoolSize, time.Duration(redisTTL)*time.Second).WithPrefix("test:")

		// Setup dos componentes
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		relationshipQueryRepository = repositories.NewRelationshipQueryRepository(readWriteClient.GetReadPool())
		cachedConnectionsRepository = repositories.NewCachedConnectionsRepository(relationshipQueryRepository, redisClient)
		relationshipWriteRepository = repositories.NewRelationshipWriteRepository(readWriteClient.GetWritePool(), cachedConnectionsRepository)
		userRepository = repositories.NewUserRepository(readWriteClient.GetReadPool())
		eventPublisherStub = stubs.NewEventPublisherStub()
		requestService = requests.NewRequestService(logger, relationshipWriteRepository, relationshipQueryRepository, userRepository, eventPublisherStub)
		testSeeder = test_seeder.New(readWriteClient.GetWritePool())

		// Limpar dados
		testSeeder.TruncateTables(ctx)
		redisClient.FlushByPrefix(ctx)
	})

	AfterEach(func() {
		if readWriteClient.GetReadPool() != nil {
			readWriteClient.GetReadPool().Close()
		}

		if readWriteClient.GetWritePool() != nil {
			readWriteClient.GetWritePool().Close()
		}
	})

	Context("when creating a new request", func() {
		When("the sender expresses interest in another user", func() {
			It("persists an interested edge and emits the created event", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				target := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)
				testSeeder.InsertUser(ctx, &target)

				// ACT
				created, err := requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusInterested)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(BeNumerically(">", 0))
				Expect(created.FromUserID).To(Equal(sender.ID))
				Expect(created.ToUserID).To(Equal(target.ID))
				Expect(created.Status).To(Equal(entities.StatusInterested))

				stored, found, err := relationshipQueryRepository.FindEdge(ctx, target.ID, sender.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(cmp.Diff(created, stored, comparer.TimeWithinTolerance(1000))).To(BeEmpty())

				published := eventPublisherStub.Published()
				Expect(published).To(HaveLen(1))
				Expect(published[0].EventType).To(Equal(domain.EventConnectionRequestCreated))
				Expect(published[0].Data.FromUserID).To(Equal(sender.ID))
				Expect(published[0].Data.ToUserID).To(Equal(target.ID))
				Expect(published[0].Data.Status).To(Equal(entities.StatusInterested))
			})
		})

		When("the sender ignores another user", func() {
			It("persists an ignored edge", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				target := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)
				testSeeder.InsertUser(ctx, &target)

				// ACT
				created, err := requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusIgnored)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Status).To(Equal(entities.StatusIgnored))
			})
		})
	})

	Context("when the request is invalid", func() {
		When("the status is a decision status", func() {
			It("rejects the request without touching storage", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				target := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)
				testSeeder.InsertUser(ctx, &target)

				// ACT
				_, err := requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusAccepted)

				// ASSERT
				Expect(err).To(MatchError(domain.ErrInvalidAction))

				count, countErr := testSeeder.CountConnectionRequests(ctx)
				Expect(countErr).NotTo(HaveOccurred())
				Expect(count).To(Equal(0))
				Expect(eventPublisherStub.Published()).To(BeEmpty())
			})
		})

		When("the sender targets themselves", func() {
			It("returns a self connection error", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)

				// ACT
				_, err := requestService.SendRequest(ctx, sender.ID, sender.ID, entities.StatusInterested)

				// ASSERT
				Expect(err).To(MatchError(domain.ErrSelfConnection))
			})
		})

		When("the target user does not exist", func() {
			It("returns a user not found error", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)

				// ACT
				_, err := requestService.SendRequest(ctx, sender.ID, sender.ID+1000, entities.StatusInterested)

				// ASSERT
				Expect(err).To(MatchError(domain.ErrUserNotFound))
				Expect(eventPublisherStub.Published()).To(BeEmpty())
			})
		})
	})

	Context("when an edge already exists between the pair", func() {
		When("the same sender retries", func() {
			It("returns a duplicate relationship error and keeps the original edge", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				target := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)
				testSeeder.InsertUser(ctx, &target)

				first, err := requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusInterested)
				Expect(err).NotTo(HaveOccurred())

				// ACT
				_, err = requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusIgnored)

				// ASSERT
				Expect(err).To(MatchError(domain.ErrDuplicateRelationship))

				edges, selectErr := testSeeder.SelectConnectionRequestsByPair(ctx, sender.ID, target.ID)
				Expect(selectErr).NotTo(HaveOccurred())
				Expect(edges).To(HaveLen(1))
				Expect(edges[0].ID).To(Equal(first.ID))
				Expect(edges[0].Status).To(Equal(entities.StatusInterested))
			})
		})

		When("the counterpart sends in the opposite direction", func() {
			It("returns a duplicate relationship error", func() {
				// ARRANGE
				sender := stubs.NewUserStub().Get()
				target := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &sender)
				testSeeder.InsertUser(ctx, &target)

				_, err := requestService.SendRequest(ctx, sender.ID, target.ID, entities.StatusInterested)
				Expect(err).NotTo(HaveOccurred())

				// ACT
				_, err = requestService.SendRequest(ctx, target.ID, sender.ID, entities.StatusInterested)

				// ASSERT
				Expect(err).To(MatchError(domain.ErrDuplicateRelationship))

				count, countErr := testSeeder.CountConnectionRequests(ctx)
				Expect(countErr).NotTo(HaveOccurred())
				Expect(count).To(Equal(1))
			})
		})

		When("both directions race concurrently", func() {
			It("persists exactly one edge for the pair", func() {
				// ARRANGE
				userA := stubs.NewUserStub().Get()
				userB := stubs.NewUserStub().Get()
				testSeeder.InsertUser(ctx, &userA)
				testSeeder.InsertUser(ctx, &userB)

				// ACT
				var wg sync.WaitGroup
				errs := make([]error, 2)
				start := make(chan struct{})

				wg.Add(2)
				go func() {
					defer wg.Done()
					<-start
					_, errs[0] = requestService.SendRequest(ctx, userA.ID, userB.ID, entities.StatusInterested)
				}()
				go func() {
					defer wg.Done()
					<-start
					_, errs[1] = requestService.SendRequest(ctx, userB.ID, userA.ID, entities.StatusIgnored)
				}()
				close(start)
				wg.Wait()

				// ASSERT
				succeeded := 0
				for _, callErr := range errs {
					if callErr == nil {
						succeeded++
					} else {
						Expect(callErr).To(MatchError(domain.ErrDuplicateRelationship))
					}
				}
				Expect(succeeded).To(Equal(1))

				count, countErr := testSeeder.CountConnectionRequests(ctx)
				Expect(countErr).NotTo(HaveOccurred())
				Expect(count).To(Equal(1))
			})
		})
	})
})
