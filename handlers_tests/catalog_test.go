package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteBody struct {
	Id            string           `json:"_id"`
	UserId        string           `json:"userId"`
	DestinationId *destinationBody `json:"destinationId"`
	AddedAt       string           `json:"addedAt"`
}

type activityBody struct {
	Id            string `json:"_id"`
	UserId        string `json:"userId"`
	Type          string `json:"type"`
	Content       string `json:"content"`
	DestinationId string `json:"destinationId"`
}

func TestDestinations(t *testing.T) {
	app, _ := newTestApp(t, nil)

	code, raw := call(t, app, Test{method: http.MethodGet, route: "/api/destinations"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "[]", string(raw))

	goa := createDestination(t, app, "Goa")
	assert.Len(t, goa.Id, 24)
	assert.Equal(t, 4.5, goa.Rating)

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/api/destinations"})
	require.Equal(t, http.StatusOK, code)
	var list []destinationBody
	decode(t, raw, &list)
	assert.Equal(t, []destinationBody{goa}, list)

	tests := []Test{
		{
			description:  "missing name",
			bodyinput:    map[string]interface{}{"type": "beach"},
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "rating out of range",
			bodyinput:    map[string]interface{}{"name": "Nowhere", "rating": 9},
			expectedCode: http.StatusBadRequest,
		}}
	for _, test := range tests {
		test.method = http.MethodPost
		test.route = "/destinations"
		code, raw := call(t, app, test)
		assert.Equalf(t, test.expectedCode, code, "%s: %s", test.description, raw)
	}
}

func TestFavorites(t *testing.T) {
	app, _ := newTestApp(t, nil)
	user := signup(t, app, "a")
	goa := createDestination(t, app, "Goa")

	add := Test{method: http.MethodPost, route: "/favorites",
		bodyinput: map[string]string{"userId": user.User.Id, "destinationId": goa.Id}}

	code, raw := call(t, app, add)
	require.Equalf(t, http.StatusCreated, code, "%s", raw)
	var created struct {
		Message  string `json:"message"`
		Favorite struct {
			DestinationId string `json:"destinationId"`
		} `json:"favorite"`
	}
	decode(t, raw, &created)
	assert.Equal(t, "Favorite added!", created.Message)
	assert.Equal(t, goa.Id, created.Favorite.DestinationId)

	code, _ = call(t, app, add)
	assert.Equal(t, http.StatusConflict, code, "same pair twice is rejected")

	code, _ = call(t, app, Test{method: http.MethodPost, route: "/favorites",
		bodyinput: map[string]string{"userId": user.User.Id, "destinationId": "65a000000000000000000000"}})
	assert.Equal(t, http.StatusNotFound, code)

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/favorites/" + user.User.Id})
	require.Equal(t, http.StatusOK, code)
	var favorites []favoriteBody
	decode(t, raw, &favorites)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].DestinationId)
	assert.Equal(t, goa, *favorites[0].DestinationId)

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/favorites/bogus"})
	assert.Equal(t, http.StatusBadRequest, code)
	var failure errorBody
	decode(t, raw, &failure)
	assert.Equal(t, "error", failure.Status)
}

func TestActivities(t *testing.T) {
	app, _ := newTestApp(t, nil)
	user := signup(t, app, "a")
	goa := createDestination(t, app, "Goa")

	code, raw := call(t, app, Test{method: http.MethodPost, route: "/activities",
		bodyinput: map[string]string{"userId": user.User.Id, "type": "visit", "content": "Looked at Goa", "destinationId": goa.Id}})
	require.Equalf(t, http.StatusCreated, code, "%s", raw)

	code, _ = call(t, app, Test{method: http.MethodPost, route: "/activities",
		bodyinput: map[string]string{"userId": user.User.Id, "content": "no type"}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, app, Test{method: http.MethodPost, route: "/favorites",
		bodyinput: map[string]string{"userId": user.User.Id, "destinationId": goa.Id}})
	require.Equal(t, http.StatusCreated, code)

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/activities/" + user.User.Id})
	require.Equal(t, http.StatusOK, code)
	var activities []activityBody
	decode(t, raw, &activities)
	require.Len(t, activities, 2)

	types := []string{activities[0].Type, activities[1].Type}
	assert.ElementsMatch(t, []string{"visit", "favorite"}, types)
	for _, activity := range activities {
		assert.Equal(t, goa.Id, activity.DestinationId)
	}

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/activities/65a000000000000000000000"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "[]", string(raw))
}

func TestImages(t *testing.T) {
	app, _ := newTestApp(t, nil)
	user := signup(t, app, "a")

	uploads := []map[string]interface{}{
		{"url": "https://cdn.example/goa.jpg", "category": "destination", "tags": []string{"beach"}, "uploadedBy": user.User.Id},
		{"url": "https://cdn.example/sky.jpg", "category": "background"},
	}
	for _, upload := range uploads {
		code, raw := call(t, app, Test{method: http.MethodPost, route: "/images", bodyinput: upload})
		require.Equalf(t, http.StatusCreated, code, "%s", raw)
	}

	code, _ := call(t, app, Test{method: http.MethodPost, route: "/images",
		bodyinput: map[string]interface{}{"category": "background"}})
	assert.Equal(t, http.StatusBadRequest, code)

	var all []map[string]interface{}
	code, raw := call(t, app, Test{method: http.MethodGet, route: "/images"})
	require.Equal(t, http.StatusOK, code)
	decode(t, raw, &all)
	assert.Len(t, all, 2)

	var backgrounds []map[string]interface{}
	code, raw = call(t, app, Test{method: http.MethodGet, route: "/images?category=background"})
	require.Equal(t, http.StatusOK, code)
	decode(t, raw, &backgrounds)
	require.Len(t, backgrounds, 1)
	assert.Equal(t, "https://cdn.example/sky.jpg", backgrounds[0]["url"])
	assert.Equal(t, []interface{}{}, backgrounds[0]["tags"])
}

func TestPages(t *testing.T) {
	app, _ := newTestApp(t, nil)

	code, raw := call(t, app, Test{method: http.MethodPost, route: "/pages",
		bodyinput: map[string]string{"slug": "About", "title": "About us", "content": "<p>hi</p>"}})
	require.Equalf(t, http.StatusCreated, code, "%s", raw)

	tests := []Test{
		{description: "duplicate slug", method: http.MethodPost, route: "/pages",
			bodyinput: map[string]string{"slug": "about"}, expectedCode: http.StatusConflict},
		{description: "blank slug", method: http.MethodPost, route: "/pages",
			bodyinput: map[string]string{"slug": " "}, expectedCode: http.StatusBadRequest},
		{description: "get by slug", method: http.MethodGet, route: "/pages/about", expectedCode: http.StatusOK},
		{description: "unknown slug", method: http.MethodGet, route: "/pages/contact", expectedCode: http.StatusNotFound},
		{description: "list", method: http.MethodGet, route: "/pages", expectedCode: http.StatusOK},
	}
	for _, test := range tests {
		code, raw := call(t, app, test)
		assert.Equalf(t, test.expectedCode, code, "%s: %s", test.description, raw)
	}

	code, raw = call(t, app, Test{method: http.MethodGet, route: "/pages/about"})
	require.Equal(t, http.StatusOK, code)
	var page map[string]interface{}
	decode(t, raw, &page)
	assert.Equal(t, "about", page["slug"])
	assert.Equal(t, "<p>hi</p>", page["content"])
}
