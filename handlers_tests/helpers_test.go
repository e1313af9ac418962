package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"tourism-webapp/config"
	"tourism-webapp/database/memstore"
	"tourism-webapp/handlers"
	"tourism-webapp/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type Test struct {
	description  string
	method       string
	route        string
	bodyinput    interface{}
	token        string
	expectedCode int
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "3000", CORSOrigins: "*"},
		Store:  config.StoreConfig{Driver: config.DriverMemory, OpTimeout: 5 * time.Second},
		Auth:   config.AuthConfig{SigningKey: "test-sign", TokenTTL: time.Hour},
	}
}

func newTestApp(t *testing.T, mutate func(*config.Config)) (*fiber.App, *memstore.Store) {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	store := memstore.New()
	h := handlers.New(handlers.Deps{
		Stores:   store.Stores(),
		Store:    store,
		Config:   cfg,
		HashCost: bcrypt.MinCost,
	})
	return router.NewApp(h, cfg), store
}

// call sends one request and returns the status code and raw body.
func call(t *testing.T, app *fiber.App, test Test) (int, []byte) {
	t.Helper()

	var body io.Reader
	switch in := test.bodyinput.(type) {
	case nil:
	case []byte:
		body = bytes.NewBuffer(in)
	default:
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(test.method, test.route, body)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if test.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+test.token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out interface{}) {
	t.Helper()
	require.NoErrorf(t, json.Unmarshal(raw, out), "body: %s", raw)
}

type userBody struct {
	Id       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type authBody struct {
	Message string   `json:"message"`
	User    userBody `json:"user"`
	Token   string   `json:"token"`
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func signup(t *testing.T, app *fiber.App, username string) authBody {
	t.Helper()
	code, raw := call(t, app, Test{
		method: http.MethodPost,
		route:  "/signup",
		bodyinput: map[string]string{
			"username": username,
			"email":    username + "@x.com",
			"phone":    "1",
			"address":  "addr",
			"password": "p",
		},
	})
	require.Equalf(t, http.StatusCreated, code, "signup: %s", raw)

	var out authBody
	decode(t, raw, &out)
	return out
}

type destinationBody struct {
	Id          string  `json:"_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"imageUrl"`
}

func createDestination(t *testing.T, app *fiber.App, name string) destinationBody {
	t.Helper()
	code, raw := call(t, app, Test{
		method:    http.MethodPost,
		route:     "/destinations",
		bodyinput: map[string]interface{}{"name": name, "type": "beach", "rating": 4.5},
	})
	require.Equalf(t, http.StatusCreated, code, "create destination: %s", raw)

	var out struct {
		Destination destinationBody `json:"destination"`
	}
	decode(t, raw, &out)
	return out.Destination
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
