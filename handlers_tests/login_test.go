package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupResponse(t *testing.T) {
	app, _ := newTestApp(t, nil)

	out := signup(t, app, "a")

	assert.Equal(t, "User registered!", out.Message)
	assert.Len(t, out.User.Id, 24)
	assert.Equal(t, "a", out.User.Username)
	assert.Equal(t, "a@x.com", out.User.Email)
	assert.NotEmpty(t, out.Token)

	code, raw := call(t, app, Test{method: http.MethodPost, route: "/login",
		bodyinput: map[string]string{"username": "a", "password": "p"}})
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(raw), "password")
}

func TestSignupAndLogin(t *testing.T) {
	fields := func(username, email string) map[string]string {
		return map[string]string{
			"username": username,
			"email":    email,
			"phone":    "1",
			"address":  "addr",
			"password": "p",
		}
	}

	tests := []Test{
		{
			description:  "user signup",
			method:       http.MethodPost,
			route:        "/signup",
			bodyinput:    fields("a", "a@x.com"),
			expectedCode: http.StatusCreated,
		},
		{
			description:  "duplicate username",
			method:       http.MethodPost,
			route:        "/signup",
			bodyinput:    fields("a", "other@x.com"),
			expectedCode: http.StatusConflict,
		},
		{
			description:  "duplicate email",
			method:       http.MethodPost,
			route:        "/signup",
			bodyinput:    fields("b", "a@x.com"),
			expectedCode: http.StatusConflict,
		},
		{
			description:  "missing address",
			method:       http.MethodPost,
			route:        "/signup",
			bodyinput:    map[string]string{"username": "c", "email": "c@x.com", "phone": "1", "password": "p"},
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "malformed body",
			method:       http.MethodPost,
			route:        "/signup",
			bodyinput:    []byte("{\"username\":"),
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "user login",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    map[string]string{"username": "a", "password": "p"},
			expectedCode: http.StatusOK,
		},
		{
			description:  "wrong password",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    map[string]string{"username": "a", "password": "nope"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			description:  "unknown user",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    map[string]string{"username": "ghost", "password": "p"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			description:  "login anonymous",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    map[string]string{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			description:  "login empty body",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    []byte(""),
			expectedCode: http.StatusUnauthorized,
		},
		{
			description:  "login body not json",
			method:       http.MethodPost,
			route:        "/login",
			bodyinput:    []byte("username=a&password=p"),
			expectedCode: http.StatusUnauthorized,
		}}

	app, _ := newTestApp(t, nil)

	for _, test := range tests {
		code, raw := call(t, app, test)
		assert.Equalf(t, test.expectedCode, code, "%s: %s", test.description, raw)
	}
}

func TestSignupMissingFieldMessage(t *testing.T) {
	app, _ := newTestApp(t, nil)

	code, raw := call(t, app, Test{method: http.MethodPost, route: "/signup",
		bodyinput: map[string]string{"username": "a"}})
	require.Equal(t, http.StatusBadRequest, code)

	var out errorBody
	decode(t, raw, &out)
	assert.Equal(t, "error", out.Status)
	assert.True(t, strings.Contains(out.Data, "email is required"), out.Data)
}

func TestUpdateUser(t *testing.T) {
	app, _ := newTestApp(t, nil)
	user := signup(t, app, "a")
	signup(t, app, "b")

	code, raw := call(t, app, Test{method: http.MethodPut, route: "/api/users/" + user.User.Id,
		bodyinput: map[string]string{"phone": "555", "password": "changed"}})
	require.Equalf(t, http.StatusOK, code, "%s", raw)

	var updated userBody
	decode(t, raw, &updated)
	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, "addr", updated.Address)
	assert.NotContains(t, string(raw), "password")

	code, _ = call(t, app, Test{method: http.MethodPost, route: "/login",
		bodyinput: map[string]string{"username": "a", "password": "changed"}})
	assert.Equal(t, http.StatusOK, code)

	tests := []Test{
		{
			description:  "unknown id",
			route:        "/api/users/65a000000000000000000000",
			bodyinput:    map[string]string{"phone": "1"},
			expectedCode: http.StatusNotFound,
		},
		{
			description:  "malformed id",
			route:        "/api/users/42",
			bodyinput:    map[string]string{"phone": "1"},
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "taken username",
			route:        "/api/users/" + user.User.Id,
			bodyinput:    map[string]string{"username": "b"},
			expectedCode: http.StatusConflict,
		},
		{
			description:  "invalid email",
			route:        "/api/users/" + user.User.Id,
			bodyinput:    map[string]string{"email": "not-an-email"},
			expectedCode: http.StatusBadRequest,
		}}

	for _, test := range tests {
		test.method = http.MethodPut
		code, raw := call(t, app, test)
		assert.Equalf(t, test.expectedCode, code, "%s: %s", test.description, raw)
	}
}
