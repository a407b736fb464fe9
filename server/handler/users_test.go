package handler

import (
	"net/http"
	"testing"

	"github.com/circlehub/circlehub/model"
	"github.com/circlehub/circlehub/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	router, db := newTestServer(t)

	w := doRequest(t, router, "POST", "/api/user", gin.H{
		"name":       "alice",
		"email":      "alice@example.com",
		"login_id":   "alice_login",
		"login_pass": "plaintext_pw",
	}, 0)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp["id"])
	require.Equal(t, "alice", resp["name"])
	require.NotContains(t, resp, "login_pass")

	// Stored value must be the hash, never the plaintext.
	var stored model.User
	require.NoError(t, db.First(&stored, uint(resp["id"].(float64))).Error)
	require.NotEqual(t, "plaintext_pw", stored.LoginPass)
	require.True(t, utils.CheckPassword(stored.LoginPass, "plaintext_pw"))
}

func TestCreateUserValidation(t *testing.T) {
	router, db := newTestServer(t)

	// malformed email
	w := doRequest(t, router, "POST", "/api/user", gin.H{
		"name":       "bob",
		"email":      "not-an-email",
		"login_id":   "bob_login",
		"login_pass": "plaintext_pw",
	}, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// login_id too short
	w = doRequest(t, router, "POST", "/api/user", gin.H{
		"name":       "bob",
		"email":      "bob@example.com",
		"login_id":   "bob",
		"login_pass": "plaintext_pw",
	}, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.EqualValues(t, 0, countRows(t, db, &model.User{}))
}

func TestCreateUserDuplicate(t *testing.T) {
	router, db := newTestServer(t)
	createTestUser(t, db, "carol")

	w := doRequest(t, router, "POST", "/api/user", gin.H{
		"name":       "other carol",
		"email":      "carol@example.com",
		"login_id":   "other_carol",
		"login_pass": "plaintext_pw",
	}, 0)
	require.Equal(t, http.StatusConflict, w.Code)
	require.EqualValues(t, 1, countRows(t, db, &model.User{}))
}

func TestListUsers(t *testing.T) {
	router, db := newTestServer(t)
	createTestUser(t, db, "anna")
	createTestUser(t, db, "bert")
	createTestUser(t, db, "cleo")

	// default sort is id descending
	w := doRequest(t, router, "GET", "/api/user", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.User
	decodeBody(t, w, &users)
	require.Len(t, users, 3)
	require.Equal(t, "cleo", users[0].Name)

	// bounded result size
	w = doRequest(t, router, "GET", "/api/user?size=2", nil, 0)
	decodeBody(t, w, &users)
	require.Len(t, users, 2)

	// size beyond the maximum is rejected
	w = doRequest(t, router, "GET", "/api/user?size=101", nil, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// case-insensitive keyword search against name/email/login_id
	w = doRequest(t, router, "GET", "/api/user?search=BERT", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &users)
	require.Len(t, users, 1)
	require.Equal(t, "bert", users[0].Name)

	// explicit ascending sort by name
	w = doRequest(t, router, "GET", "/api/user?sort=name", nil, 0)
	decodeBody(t, w, &users)
	require.Equal(t, []string{"anna", "bert", "cleo"},
		[]string{users[0].Name, users[1].Name, users[2].Name})

	// unknown sort key falls back to id
	w = doRequest(t, router, "GET", "/api/user?sort=unknown", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &users)
	require.Equal(t, "anna", users[0].Name)
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	w := doRequest(t, router, "GET", "/api/user/999", nil, 0)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserPartial(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "dora")
	oldHash := user.LoginPass

	w := doRequest(t, router, "PUT", "/api/user/"+itoa(user.Id), gin.H{
		"name": "dora renamed",
	}, 0)
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.User
	require.NoError(t, db.First(&stored, user.Id).Error)
	require.Equal(t, "dora renamed", stored.Name)
	// untouched fields survive a partial update
	require.Equal(t, "dora@example.com", stored.Email)
	require.Equal(t, oldHash, stored.LoginPass)

	// a supplied login_pass is stored hashed, never as plaintext
	w = doRequest(t, router, "PUT", "/api/user/"+itoa(user.Id), gin.H{
		"login_pass": "new_plaintext",
	}, 0)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&stored, user.Id).Error)
	require.NotEqual(t, "new_plaintext", stored.LoginPass)
	require.NotEqual(t, oldHash, stored.LoginPass)
	require.True(t, utils.CheckPassword(stored.LoginPass, "new_plaintext"))
}

func TestUpdateUserConflictAndNotFound(t *testing.T) {
	router, db := newTestServer(t)
	createTestUser(t, db, "erin")
	user := createTestUser(t, db, "fred")

	w := doRequest(t, router, "PUT", "/api/user/"+itoa(user.Id), gin.H{
		"email": "erin@example.com",
	}, 0)
	require.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, "PUT", "/api/user/999", gin.H{"name": "nobody"}, 0)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "gene")

	w := doRequest(t, router, "DELETE", "/api/user/"+itoa(user.Id), nil, 0)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.EqualValues(t, 0, countRows(t, db, &model.User{}))

	// deleting a missing row is a 404 and changes nothing
	w = doRequest(t, router, "DELETE", "/api/user/"+itoa(user.Id), nil, 0)
	require.Equal(t, http.StatusNotFound, w.Code)
}
