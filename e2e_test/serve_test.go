//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/theorydex/cmd"
	"github.com/jsphweid/theorydex/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter())
	exitVal := m.Run()
	server.Close()
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body interface{}) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// spell a chord, then hand its notes back to be named
func TestChordRoundTripE2E(t *testing.T) {
	resp := post(t, "/chord", model.ChordRequestBody{Text: "A minor Seventh/G"})
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var spelled model.NotesResponse
	if err := json.Unmarshal(respBody, &spelled); err != nil {
		panic(err.Error())
	}
	assert.Equal("A Minor Seventh, 3rd Inversion", spelled.Name)

	var notes []string
	for _, n := range spelled.Notes {
		notes = append(notes, n.Pitch)
	}
	assert.Equal([]string{"G", "A", "C", "E"}, notes)

	resp = post(t, "/identify", model.IdentifyRequestBody{Notes: notes})
	respBody, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(200, resp.StatusCode)

	var identified model.IdentifyResponse
	if err := json.Unmarshal(respBody, &identified); err != nil {
		panic(err.Error())
	}
	assert.Equal(model.IdentifyResponse{
		Name:      "A Minor Seventh, 3rd Inversion",
		Root:      "A",
		Quality:   "Minor",
		Number:    "Seventh",
		Inversion: 3,
	}, identified)
}

func TestUnknownChordE2E(t *testing.T) {
	resp := post(t, "/identify", model.IdentifyRequestBody{Notes: []string{"C", "C#", "D"}})
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	var res model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.NotEmpty(res.Error)
}
