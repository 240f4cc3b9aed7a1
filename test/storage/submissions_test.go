package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/storage"
	"github.com/Xalpha19/chaitravm/test"
)

func TestSubmissions(t *testing.T) {
	suite.Run(t, new(SubmissionsSuite))
}

type SubmissionsSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.SubmissionsStorage
}

func (suite *SubmissionsSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewSubmissionsStorage(postgresDB)
	}
}

func (suite *SubmissionsSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *SubmissionsSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *SubmissionsSuite) TestGetSubmission_OK() {
	ctx := context.Background()
	submissionID, _ := uuid.Parse("d290f1ee-6c54-4b01-90e6-d701748f0851")
	sub, err := suite.storage.GetSubmission(ctx, submissionID)

	suite.NoError(err)
	suite.Assert().Equal("Jane", sub.FirstName)
	suite.Assert().Equal("Acme Ltd", sub.Company)
	suite.Assert().Equal("203.0.113.7", sub.SourceIP)
}

func (suite *SubmissionsSuite) TestGetSubmission_NullCompany() {
	ctx := context.Background()
	submissionID, _ := uuid.Parse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	sub, err := suite.storage.GetSubmission(ctx, submissionID)

	suite.NoError(err)
	suite.Assert().Equal("", sub.Company)
	suite.Assert().Equal("unknown", sub.SourceIP)
}

func (suite *SubmissionsSuite) TestStoreSubmission_AssignsIDAndRoundTrips() {
	ctx := context.Background()
	stored, err := suite.storage.StoreSubmission(ctx, &domain.ContactSubmission{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.net",
		Subject:           "Compliance review",
		Message:           "We need a review of our ISO 27001 controls ahead of the annual audit.",
		VerificationToken: "tok-live-123",
		SourceIP:          "198.51.100.20",
		UserAgent:         "Mozilla/5.0",
	})

	suite.Require().NoError(err)
	suite.Assert().NotEqual(uuid.Nil, stored.ID)
	suite.Assert().False(stored.CreatedAt.IsZero())

	fetched, err := suite.storage.GetSubmission(ctx, stored.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Ada", fetched.FirstName)
	suite.Assert().Equal("", fetched.Company, "blank company is stored as NULL")
	suite.Assert().Equal("tok-live-123", fetched.VerificationToken)
}
