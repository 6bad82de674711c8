//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/handler/api"
	reqdto "meeting-room-approval/internal/handler/dto/request"
	resdto "meeting-room-approval/internal/handler/dto/response"
	"meeting-room-approval/internal/handler/middleware"
	"meeting-room-approval/internal/handler/validation"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"
	"meeting-room-approval/tests/common/httptest"
	"meeting-room-approval/tests/common/testutil"
	commandsmock "meeting-room-approval/tests/mock/commands"
	queriesmock "meeting-room-approval/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRegistryCommands
	mockQueries  *queriesmock.MockRegistryQueries
}

func (s *RegistryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRegistryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRegistryQueries(s.mockCtrl)
	h := api.NewRegistryHandler(s.mockCommands, s.mockQueries)

	rooms := s.router.Group("/rooms")
	rooms.GET("", h.ListRooms)
	rooms.GET("/:id", h.GetRoom)
	rooms.POST("", h.CreateRoom)
	rooms.PATCH("/:id", h.UpdateRoom)
	rooms.DELETE("/:id", h.Deactivate(registry.KindRoom))
	rooms.POST("/bulk-delete", h.BulkDeactivate(registry.KindRoom))

	for _, kind := range []registry.Kind{registry.KindFacility, registry.KindDepartment} {
		g := s.router.Group("/" + kind.Plural())
		g.GET("", h.ListEntries(kind))
		g.GET("/:id", h.GetEntry(kind))
		g.POST("", h.CreateEntry(kind))
		g.PATCH("/:id", h.UpdateEntry(kind))
		g.DELETE("/:id", h.Deactivate(kind))
		g.POST("/bulk-delete", h.BulkDeactivate(kind))
	}
	s.router.GET("/options", h.Options)
}

func (s *RegistryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistryHandlerTestSuite))
}

var registryNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func roomView(id int64, name string, facilities ...queries.FacilityRef) *queries.RoomView {
	return &queries.RoomView{
		ID:         id,
		Name:       name,
		Capacity:   10,
		Location:   "Floor 2",
		IsActive:   true,
		Facilities: facilities,
		CreatedAt:  registryNow,
		UpdatedAt:  registryNow,
	}
}

func entryView(id int64, name string) *queries.EntryView {
	return &queries.EntryView{ID: id, Name: name, IsActive: true, CreatedAt: registryNow, UpdatedAt: registryNow}
}

func (s *RegistryHandlerTestSuite) TestRooms() {
	s.Run("success: list flattens facilities into ids and names", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).Return([]*queries.RoomView{
			roomView(1, "Room A", queries.FacilityRef{ID: 3, Name: "Projector"}, queries.FacilityRef{ID: 4, Name: "TV"}),
			roomView(2, "Room B"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal([]int64{3, 4}, response[0].FacilityIDs)
		s.Equal([]string{"Projector", "TV"}, response[0].FacilityNames)
		s.Empty(response[1].FacilityIDs)
	})

	s.Run("success: create returns 201 with the stored room", func() {
		body := reqdto.CreateRoomRequest{Name: "Room C", Capacity: 6, FacilityIDs: []int64{3}}
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), body.ToInput()).Return(int64(9), nil).Times(1)
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), int64(9)).
			Return(roomView(9, "Room C", queries.FacilityRef{ID: 3, Name: "Projector"}), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		want := resdto.RoomResponse{
			ID:            9,
			Name:          "Room C",
			Capacity:      10,
			Location:      "Floor 2",
			IsActive:      true,
			FacilityIDs:   []int64{3},
			FacilityNames: []string{"Projector"},
			CreatedAt:     registryNow,
			UpdatedAt:     registryNow,
		}
		if diff := cmp.Diff(want, response); diff != "" {
			s.T().Errorf("room mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		base := reqdto.CreateRoomRequest{Name: "Room C", Capacity: 6}
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("r", 101))},
			{name: "zero capacity", mutate: testutil.Field("capacity", 0)},
			{name: "non-positive facility id", mutate: testutil.Field("facilityIds", []int64{0})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", testutil.DtoMap(s.T(), base, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 when the name is taken", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(int64(0), registry.ErrRoomNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqdto.CreateRoomRequest{Name: "Room A", Capacity: 4}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room name already exists")
	})

	s.Run("success: update with an empty facility list clears facilities", func() {
		empty := []int64{}
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), int64(1), commands.RoomPatchInput{FacilityIDs: &empty}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), int64(1)).Return(roomView(1, "Room A"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rooms/1", map[string]any{"facilityIds": []int64{}}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for a missing room", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), int64(77)).Return(nil, registry.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/77", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

func (s *RegistryHandlerTestSuite) TestEntries() {
	s.Run("success: facility and department routes bind their kind", func() {
		s.mockQueries.EXPECT().ListEntries(gomock.Any(), registry.KindFacility).Return([]*queries.EntryView{entryView(1, "Projector")}, nil).Times(1)
		s.mockQueries.EXPECT().ListEntries(gomock.Any(), registry.KindDepartment).Return([]*queries.EntryView{entryView(1, "Finance"), entryView(2, "HR")}, nil).Times(1)

		var facilities, departments []resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/facilities", nil, ""), http.StatusOK, &facilities)
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/departments", nil, ""), http.StatusOK, &departments)

		s.Len(facilities, 1)
		s.Len(departments, 2)
		s.Equal("HR", departments[1].Name)
	})

	s.Run("success: create department", func() {
		body := reqdto.CreateEntryRequest{Name: "Legal", Description: "Contracts"}
		s.mockCommands.EXPECT().CreateEntry(gomock.Any(), registry.KindDepartment, body.ToInput()).Return(int64(4), nil).Times(1)
		s.mockQueries.EXPECT().GetEntry(gomock.Any(), registry.KindDepartment, int64(4)).Return(entryView(4, "Legal"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments", body, "")

		var response resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(4), response.ID)
	})

	s.Run("success: update facility", func() {
		name := "Smart TV"
		s.mockCommands.EXPECT().UpdateEntry(gomock.Any(), registry.KindFacility, int64(2), commands.EntryPatchInput{Name: &name}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetEntry(gomock.Any(), registry.KindFacility, int64(2)).Return(entryView(2, name), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/facilities/2", map[string]any{"name": name}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 deactivating an unknown facility", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), registry.KindFacility, int64(5)).Return(registry.ErrFacilityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/facilities/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "facility not found")
	})
}

func (s *RegistryHandlerTestSuite) TestBulkDeactivate() {
	s.Run("success: reports the number deactivated", func() {
		s.mockCommands.EXPECT().DeactivateMany(gomock.Any(), registry.KindRoom, []int64{1, 2, 3}).Return(int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/bulk-delete", reqdto.BulkDeleteRequest{IDs: []int64{1, 2, 3}}, "")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.Deactivated)
	})

	s.Run("error: 400 for an empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments/bulk-delete", map[string]any{"ids": []int64{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *RegistryHandlerTestSuite) TestOptions() {
	s.mockQueries.EXPECT().Options(gomock.Any()).Return(&queries.OptionsView{
		Rooms:       []*queries.RoomView{roomView(1, "Room A")},
		Facilities:  []*queries.EntryView{entryView(1, "Projector")},
		Departments: []*queries.EntryView{entryView(1, "Finance")},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/options", nil, "")

	var response resdto.OptionsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Rooms, 1)
	s.Len(response.Facilities, 1)
	s.Equal("Finance", response.Departments[0].Name)
}
