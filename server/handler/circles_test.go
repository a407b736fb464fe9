package handler

import (
	"net/http"
	"testing"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCreateCircle(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, "POST", "/api/circles", gin.H{
		"name":        "  tennis club ",
		"description": "weekly matches",
		"tags":        []string{"sports", "outdoor"},
	}, 0)
	require.Equal(t, http.StatusCreated, w.Code)

	var circle model.Circle
	decodeBody(t, w, &circle)
	require.NotZero(t, circle.Id)
	// name is trimmed before storage
	require.Equal(t, "tennis club", circle.Name)
	require.EqualValues(t, 0, circle.Followers)
	require.JSONEq(t, `["sports","outdoor"]`, string(circle.Tags))
}

func TestCreateCircleBlankName(t *testing.T) {
	router, db := newTestServer(t)

	w := doRequest(t, router, "POST", "/api/circles", gin.H{"name": "   "}, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.EqualValues(t, 0, countRows(t, db, &model.Circle{}))
}

func TestCreateCircleDuplicateName(t *testing.T) {
	router, db := newTestServer(t)
	createTestCircle(t, db, "chess club")

	w := doRequest(t, router, "POST", "/api/circles", gin.H{"name": "chess club"}, 0)
	require.Equal(t, http.StatusConflict, w.Code)
	require.EqualValues(t, 1, countRows(t, db, &model.Circle{}))
}

func TestGetCircleDerivedFollowers(t *testing.T) {
	router, db := newTestServer(t)
	circle := createTestCircle(t, db, "art club")
	u1 := createTestUser(t, db, "painter")
	u2 := createTestUser(t, db, "sculptor")
	createTestFollowed(t, db, u1.Id, circle.Id)
	createTestFollowed(t, db, u2.Id, circle.Id)

	w := doRequest(t, router, "GET", "/api/circles/"+itoa(circle.Id), nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Circle
	decodeBody(t, w, &got)
	require.EqualValues(t, 2, got.Followers)

	// the count tracks membership rows, there is no stored counter to drift
	require.NoError(t, db.Where("user_id = ?", u1.Id).Delete(&model.Followed{}).Error)
	w = doRequest(t, router, "GET", "/api/circles/"+itoa(circle.Id), nil, 0)
	decodeBody(t, w, &got)
	require.EqualValues(t, 1, got.Followers)
}

func TestListCirclesBounded(t *testing.T) {
	router, db := newTestServer(t)
	createTestCircle(t, db, "alpha")
	createTestCircle(t, db, "beta")
	createTestCircle(t, db, "gamma")

	w := doRequest(t, router, "GET", "/api/circles?size=2", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	var circles []model.Circle
	decodeBody(t, w, &circles)
	require.Len(t, circles, 2)

	w = doRequest(t, router, "GET", "/api/circles?size=0", nil, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCirclePartial(t *testing.T) {
	router, db := newTestServer(t)
	circle := createTestCircle(t, db, "book club")

	w := doRequest(t, router, "PUT", "/api/circles/"+itoa(circle.Id), gin.H{
		"description": "monthly reads",
	}, 0)
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.Circle
	require.NoError(t, db.First(&stored, circle.Id).Error)
	require.Equal(t, "book club", stored.Name)
	require.NotNil(t, stored.Description)
	require.Equal(t, "monthly reads", *stored.Description)
}

func TestUpdateCircleConflict(t *testing.T) {
	router, db := newTestServer(t)
	createTestCircle(t, db, "first")
	circle := createTestCircle(t, db, "second")

	w := doRequest(t, router, "PUT", "/api/circles/"+itoa(circle.Id), gin.H{"name": "first"}, 0)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCircle(t *testing.T) {
	router, db := newTestServer(t)
	circle := createTestCircle(t, db, "doomed club")

	w := doRequest(t, router, "DELETE", "/api/circles/"+itoa(circle.Id), nil, 0)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "DELETE", "/api/circles/999", nil, 0)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.EqualValues(t, 0, countRows(t, db, &model.Circle{}))
}
