//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/handler/api"
	reqdto "meeting-room-approval/internal/handler/dto/request"
	resdto "meeting-room-approval/internal/handler/dto/response"
	"meeting-room-approval/internal/handler/middleware"
	"meeting-room-approval/internal/handler/validation"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"
	"meeting-room-approval/tests/common/builder"
	"meeting-room-approval/tests/common/httptest"
	commandsmock "meeting-room-approval/tests/mock/commands"
	queriesmock "meeting-room-approval/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/users")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/bulk-delete", h.BulkDelete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestList() {
	admin := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.ID = 1
		b.Username = "admin"
		b.Role = "admin"
	}).BuildReadModel()
	member := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = 2 }).BuildReadModel()

	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.UserView{admin, member}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

	var response []resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("admin", response[0].Role)
	s.Equal("budi", response[1].Username)
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("error: 404 for an unknown user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, user.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/8", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("error: 400 for id zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	s.Run("success: promotes a user", func() {
		role := "head_ga"
		promoted := builder.NewUserBuilder().WithRole(role).BuildReadModel()
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), commands.UserPatchInput{Role: &role}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(promoted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1", reqdto.UpdateUserRequest{Role: &role}, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(role, response.Role)
	})

	s.Run("error: 400 for an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1", map[string]any{"role": "superuser"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(user.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1", map[string]any{"email": "taken@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already exists")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: deactivates one user", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), int64(4)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/4", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: bulk deactivation reports the count", func() {
		s.mockCommands.EXPECT().DeactivateMany(gomock.Any(), []int64{4, 5}).Return(int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/bulk-delete", reqdto.BulkDeleteRequest{IDs: []int64{4, 5}}, "")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.Deactivated)
	})
}
