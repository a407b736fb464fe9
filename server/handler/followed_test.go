package handler

import (
	"net/http"
	"testing"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCreateFollowed(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "joiner")
	circle := createTestCircle(t, db, "joinable club")

	// client supplied user_id is overwritten with the acting identity
	w := doRequest(t, router, "POST", "/api/followed", gin.H{
		"user_id":   9999,
		"circle_id": circle.Id,
		"date":      "2026-02-01",
	}, user.Id)
	require.Equal(t, http.StatusCreated, w.Code)

	var followed model.Followed
	decodeBody(t, w, &followed)
	require.Equal(t, user.Id, followed.UserId)
	require.Equal(t, circle.Id, followed.CircleId)
}

func TestCreateFollowedTwice(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "eager")
	circle := createTestCircle(t, db, "popular club")

	w := doRequest(t, router, "POST", "/api/followed", gin.H{"circle_id": circle.Id}, user.Id)
	require.Equal(t, http.StatusCreated, w.Code)

	// second attempt conflicts and only one row exists
	w = doRequest(t, router, "POST", "/api/followed", gin.H{"circle_id": circle.Id}, user.Id)
	require.Equal(t, http.StatusConflict, w.Code)
	require.EqualValues(t, 1, countRows(t, db, &model.Followed{}))
}

func TestCreateFollowedMissingCircle(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "lost")

	w := doRequest(t, router, "POST", "/api/followed", gin.H{"circle_id": 999}, user.Id)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.EqualValues(t, 0, countRows(t, db, &model.Followed{}))
}

func TestCreateFollowedNoIdentity(t *testing.T) {
	router, db := newTestServer(t)
	circle := createTestCircle(t, db, "guarded club")

	w := doRequest(t, router, "POST", "/api/followed", gin.H{"circle_id": circle.Id}, 0)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListFollowedModes(t *testing.T) {
	router, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	circle := createTestCircle(t, db, "shared club")
	other := createTestCircle(t, db, "other club")
	createTestFollowed(t, db, alice.Id, circle.Id)
	createTestFollowed(t, db, bob.Id, circle.Id)
	createTestFollowed(t, db, bob.Id, other.Id)

	// all memberships, newest first
	w := doRequest(t, router, "GET", "/api/followed", nil, alice.Id)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.Followed
	decodeBody(t, w, &rows)
	require.Len(t, rows, 3)
	require.Equal(t, bob.Id, rows[0].UserId)

	// caller's own memberships only
	w = doRequest(t, router, "GET", "/api/followed/current_user", nil, bob.Id)
	decodeBody(t, w, &rows)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, bob.Id, row.UserId)
	}
}

func TestDeleteFollowed(t *testing.T) {
	router, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	circle := createTestCircle(t, db, "leavable club")
	createTestFollowed(t, db, alice.Id, circle.Id)

	// only the row's own user can remove their membership
	w := doRequest(t, router, "DELETE", "/api/followed/"+itoa(circle.Id), nil, bob.Id)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.EqualValues(t, 1, countRows(t, db, &model.Followed{}))

	w = doRequest(t, router, "DELETE", "/api/followed/"+itoa(circle.Id), nil, alice.Id)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.EqualValues(t, 0, countRows(t, db, &model.Followed{}))
}
