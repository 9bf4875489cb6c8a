package testutil

import (
	"context"

	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/repository/memory"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds the repositories a test suite works against
type Stores struct {
	RentalRepo *memory.RentalStore
}

// BaseServiceTestSuite wires fresh in-memory dependencies for every test
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	stores     Stores
	logger     *logger.Logger
	config     *config.Configuration
	calculator *pricing.Calculator
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.WithValue(context.Background(), types.CtxSessionID, "session_test")
	s.stores = Stores{RentalRepo: memory.NewRentalStore()}
	s.logger = logger.NewNopLogger()
	s.config = config.GetDefaultConfig()
	s.calculator = pricing.NewCalculator()
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores = Stores{}
}

func (s *BaseServiceTestSuite) GetContext() context.Context { return s.ctx }

func (s *BaseServiceTestSuite) GetStores() Stores { return s.stores }

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger { return s.logger }

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration { return s.config }

func (s *BaseServiceTestSuite) GetCalculator() *pricing.Calculator { return s.calculator }
