package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portssvc "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/core/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo, suite.mockUserRepo)
}

// --- CreateEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateEmployeeRequest{UserID: userID, HourlyWage: decimal.NewFromInt(1500)}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(employee domain.Employee) bool {
		return employee.UserID == userID &&
			employee.HourlyWage.Equal(decimal.NewFromInt(1500)) &&
			employee.IsActive &&
			employee.CreatedBy == creatorUserID
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(employee.EmployeeID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NegativeWage() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{UserID: uuid.NewString(), HourlyWage: decimal.NewFromInt(-1)}

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DeactivatedUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateEmployeeRequest{UserID: userID, HourlyWage: decimal.NewFromInt(1000)}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, IsActive: false}, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UserAlreadyHasProfile() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateEmployeeRequest{UserID: userID, HourlyWage: decimal.NewFromInt(1000)}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByUserID", ctx, userID).Return(&domain.Employee{EmployeeID: uuid.NewString(), UserID: userID}, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

// --- UpdateEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ChangesWage() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	newWage := decimal.NewFromFloat(1750.50)
	existing := &domain.Employee{EmployeeID: employeeID, HourlyWage: decimal.NewFromInt(1500), IsActive: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(employee domain.Employee) bool {
		return employee.HourlyWage.Equal(newWage)
	})).Return(nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, dto.UpdateEmployeeRequest{HourlyWage: &newWage}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(employee.HourlyWage.Equal(newWage))
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NegativeWage() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	newWage := decimal.NewFromInt(-10)
	existing := &domain.Employee{EmployeeID: employeeID, HourlyWage: decimal.NewFromInt(1500)}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, dto.UpdateEmployeeRequest{HourlyWage: &newWage}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

// --- Lifecycle Tests ---

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_Deactivate() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	requestingUserID := uuid.NewString()
	existing := &domain.Employee{EmployeeID: employeeID, IsActive: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("SetEmployeeActive", ctx, employeeID, false, mock.AnythingOfType("time.Time"), requestingUserID).Return(nil).Once()

	employee, err := suite.service.SetEmployeeActive(ctx, employeeID, false, requestingUserID)

	suite.Require().NoError(err)
	suite.False(employee.IsActive)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("MarkEmployeeDeleted", ctx, employeeID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, employeeID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
