package testutil

import (
	"context"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/config"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/cost"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/pdf"
	"github.com/AbdoTarek2211/Cost-Management/internal/repository/memory"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/AbdoTarek2211/Cost-Management/internal/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	CostRepo    cost.Repository
	InvoiceRepo invoice.Repository
	PaymentRepo payment.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	stores       Stores
	logger       *logger.Logger
	config       *config.Configuration
	now          time.Time
	pdfGenerator pdf.ReceiptGenerator
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.WithValue(context.Background(), types.CtxRequestID, uuid.NewString())
	s.stores = Stores{
		CostRepo:    memory.NewCostStore(),
		InvoiceRepo: memory.NewInvoiceStore(),
		PaymentRepo: memory.NewPaymentStore(),
	}
	s.pdfGenerator = pdf.NewReceiptGenerator()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.CostRepo.(*memory.CostStore).Clear()
	s.stores.InvoiceRepo.(*memory.InvoiceStore).Clear()
	s.stores.PaymentRepo.(*memory.PaymentStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the test stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetNow returns the suite's current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetPDFGenerator returns the receipt generator under test
func (s *BaseServiceTestSuite) GetPDFGenerator() pdf.ReceiptGenerator {
	return s.pdfGenerator
}
