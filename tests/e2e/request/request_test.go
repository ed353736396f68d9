//go:build e2e

package request_test

import (
	"net/http"
	"testing"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/tests/common/httptest"
	"gearshare/tests/e2e"
	"gearshare/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/api/requests"

type requestSuite struct {
	e2e.SharedSuite

	requester helper.Account
	owner     helper.Account
}

func TestRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(requestSuite))
}

func (s *requestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.requester = helper.RegisterAccount(t, s.Router, "requester@example.com", "Requester")
	s.owner = helper.RegisterAccount(t, s.Router, "owner@example.com", "Owner")
}

func (s *requestSuite) listRequests(account helper.Account, path string) []resdto.GearRequestResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, account.Token)
	require.Equal(t, http.StatusOK, w.Code, "list requests failed: %s", w.Body.String())

	var res []resdto.GearRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *requestSuite) TestCreateAndAnswer() {
	s.Run("answering item shows up under the request", func() {
		t := s.T()

		requestID := helper.CreateGearRequest(t, s.Router, s.requester, "Need a ladder for the weekend")

		available := true
		reqBody := reqdto.CreateItemRequest{
			Name:        "Ladder",
			Description: "Three meter ladder",
			Available:   &available,
			RequestID:   &requestID,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/items", reqBody, s.owner.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+requestID.String(), nil, s.requester.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var view resdto.GearRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Len(t, view.Items, 1)
		require.Equal(t, created.ID, view.Items[0].ID)
		require.Equal(t, "Ladder", view.Items[0].Name)

		item := s.getItem(s.owner, created.ID)
		require.NotNil(t, item.RequestID)
		require.Equal(t, requestID, *item.RequestID)
	})

	s.Run("item pointing at an unknown request is refused", func() {
		t := s.T()

		unknown := uuid.New()
		available := true
		reqBody := reqdto.CreateItemRequest{
			Name:        "Ladder",
			Description: "Three meter ladder",
			Available:   &available,
			RequestID:   &unknown,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/items", reqBody, s.owner.Token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("blank description is refused", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
			reqdto.CreateGearRequestRequest{Description: "   "}, s.requester.Token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *requestSuite) TestListing() {
	s.Run("own listing is oldest first, others newest first", func() {
		t := s.T()

		first := helper.CreateGearRequest(t, s.Router, s.requester, "Need a ladder")
		second := helper.CreateGearRequest(t, s.Router, s.requester, "Need a drill")
		helper.CreateGearRequest(t, s.Router, s.owner, "Need a tent")

		own := s.listRequests(s.requester, requestsURL)
		require.Len(t, own, 2)
		require.Equal(t, first, own[0].ID)
		require.Equal(t, second, own[1].ID)

		others := s.listRequests(s.owner, requestsURL+"/all")
		require.Len(t, others, 2)
		require.Equal(t, second, others[0].ID, "newest first")
		require.Equal(t, first, others[1].ID)
	})

	s.Run("paging caps the others listing", func() {
		t := s.T()

		helper.CreateGearRequest(t, s.Router, s.requester, "Need a ladder")
		helper.CreateGearRequest(t, s.Router, s.requester, "Need a drill")
		helper.CreateGearRequest(t, s.Router, s.requester, "Need a tent")

		page := s.listRequests(s.owner, requestsURL+"/all?from=1&size=1")
		require.Len(t, page, 1)
		require.Equal(t, "Need a drill", page[0].Description)
	})

	s.Run("unknown request id is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+uuid.NewString(), nil, s.requester.Token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *requestSuite) getItem(account helper.Account, itemID uuid.UUID) *resdto.ItemResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/items/"+itemID.String(), nil, account.Token)
	require.Equal(t, http.StatusOK, w.Code, "get item failed: %s", w.Body.String())

	var res resdto.ItemResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}
