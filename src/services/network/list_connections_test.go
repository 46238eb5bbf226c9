package network_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/go-cmp/cmp"

	"usernetwork/src/domain/entities"
	"usernetwork/src/helper/env"
	"usernetwork/src/infra/postgres"
	"usernetwork/src/infra/redis"
	"usernetwork/src/repositories"
	"usernetwork/src/services/network"
	"usernetwork/src/test_artefacts/stubs"
	"usernetwork/src/test_artefacts/test_seeder"
)

var _ = Describe("ListConnections", func() {
	var (
		readWriteClient             *postgres.ReadWriteClient
		redisClient                 *redis.RedisClient
		testSeeder                  test_seeder.TestSeeder
		relationshipQueryRepository *repositories.RelationshipQueryRepository
		cachedConnectionsRepository *repositories.CachedConnectionsRepository
		relationshipWriteRepository *repositories.RelationshipWriteRepository
		userRepository              *repositories.UserRepository
		networkService              *network.NetworkService
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
		relationshipQueryRepository = repositories.NewRelationshipQueryRepository(readWriteClient.GetReadPool())
		cachedConnectionsRepository = repositories.NewCachedConnectionsRepository(relationshipQueryRepository, redisClient)
		relationshipWriteRepository = repositories.NewRelationshipWriteRepository(readWriteClient.GetWritePool(), cachedConnectionsRepository)
		userRepository = repositories.NewUserRepository(readWriteClient.GetReadPool())
		networkService = network.NewNetworkService(cachedConnectionsRepository, relationshipQueryRepository, userRepository)
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

	seedUsers := func(n int) []entities.User {
		users := make([]entities.User, n)
		for i := range users {
			users[i] = stubs.NewUserStub().Get()
			testSeeder.InsertUser(ctx, &users[i])
		}
		return users
	}

	seedEdge := func(fromUserID, toUserID int64, status entities.RequestStatus) entities.ConnectionRequest {
		edge := stubs.NewConnectionRequestStub().
			WithFromUserID(fromUserID).
			WithToUserID(toUserID).
			WithStatus(status).
			Get()
		testSeeder.InsertConnectionRequest(ctx, &edge)
		return edge
	}

	Context("when the user has no accepted edges", func() {
		When("no edges exist at all", func() {
			It("returns an empty list", func() {
				// ARRANGE
				users := seedUsers(1)

				// ACT
				connections, err := networkService.ListConnections(ctx, users[0].ID)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(connections).To(BeEmpty())
			})
		})

		When("only pending, ignored and rejected edges exist", func() {
			It("returns an empty list", func() {
				// ARRANGE
				users := seedUsers(4)
				seedEdge(users[0].ID, users[1].ID, entities.StatusInterested)
				seedEdge(users[0].ID, users[2].ID, entities.StatusIgnored)
				seedEdge(users[3].ID, users[0].ID, entities.StatusRejected)

				// ACT
				connections, err := networkService.ListConnections(ctx, users[0].ID)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(connections).To(BeEmpty())
			})
		})
	})

	Context("when the user has accepted edges", func() {
		It("lists the counterpart profiles regardless of edge direction", func() {
			// ARRANGE
			users := seedUsers(4)
			seedEdge(users[0].ID, users[1].ID, entities.StatusAccepted)
			seedEdge(users[2].ID, users[0].ID, entities.StatusAccepted)
			seedEdge(users[0].ID, users[3].ID, entities.StatusInterested)

			// ACT
			connections, err := networkService.ListConnections(ctx, users[0].ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(connections).To(HaveLen(2))

			byID := map[int64]entities.PublicProfile{}
			for _, profile := range connections {
				Expect(profile.ID).NotTo(Equal(users[0].ID))
				byID[profile.ID] = profile
			}

			Expect(byID).To(HaveKey(users[1].ID))
			Expect(byID).To(HaveKey(users[2].ID))
			Expect(cmp.Diff(users[1].PublicProjection(), byID[users[1].ID])).To(BeEmpty())
			Expect(cmp.Diff(users[2].PublicProjection(), byID[users[2].ID])).To(BeEmpty())
		})

		It("lists each party in the other party's connections exactly once", func() {
			// ARRANGE
			users := seedUsers(2)
			seedEdge(users[0].ID, users[1].ID, entities.StatusAccepted)

			// ACT
			first, err := networkService.ListConnections(ctx, users[0].ID)
			Expect(err).NotTo(HaveOccurred())
			second, err := networkService.ListConnections(ctx, users[1].ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(HaveLen(1))
			Expect(first[0].ID).To(Equal(users[1].ID))
			Expect(second).To(HaveLen(1))
			Expect(second[0].ID).To(Equal(users[0].ID))
		})
	})

	Context("when a cached projection goes stale", func() {
		It("invalidates both endpoints after a review", func() {
			// ARRANGE
			users := seedUsers(2)
			seedEdge(users[0].ID, users[1].ID, entities.StatusInterested)

			// Aquecer o cache dos dois lados com a projeção vazia.
			connections, err := networkService.ListConnections(ctx, users[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(connections).To(BeEmpty())

			connections, err = networkService.ListConnections(ctx, users[1].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(connections).To(BeEmpty())

			// ACT
			_, err = relationshipWriteRepository.UpdateStatus(ctx, users[0].ID, users[1].ID, entities.StatusAccepted)
			Expect(err).NotTo(HaveOccurred())

			// ASSERT: a invalidação roda em background.
			Eventually(func() []entities.PublicProfile {
				profiles, listErr := networkService.ListConnections(ctx, users[1].ID)
				Expect(listErr).NotTo(HaveOccurred())
				return profiles
			}, 5*time.Second, 100*time.Millisecond).Should(HaveLen(1))

			Eventually(func() []entities.PublicProfile {
				profiles, listErr := networkService.ListConnections(ctx, users[0].ID)
				Expect(listErr).NotTo(HaveOccurred())
				return profiles
			}, 5*time.Second, 100*time.Millisecond).Should(HaveLen(1))
		})
	})
})
