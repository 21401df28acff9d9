package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nathanieltooley/pokeroster/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuJson = `{
	"id": 25,
	"name": "pikachu",
	"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
	"stats": [
		{"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": ""}},
		{"base_stat": 90, "effort": 2, "stat": {"name": "speed", "url": ""}}
	],
	"abilities": [
		{"ability": {"name": "static", "url": "%[1]s/ability/9/"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "lightning-rod", "url": "%[1]s/ability/31/"}, "is_hidden": true, "slot": 3}
	],
	"moves": [
		{"move": {"name": "thunderbolt", "url": "%[1]s/move/85/"}, "version_group_details": [
			{"level_learned_at": 0, "move_learn_method": {"name": "machine", "url": ""}, "version_group": {"name": "scarlet-violet", "url": ""}}
		]},
		{"move": {"name": "pay-day", "url": "%[1]s/move/6/"}, "version_group_details": [
			{"level_learned_at": 0, "move_learn_method": {"name": "machine", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
		]}
	]
}`

const thunderWaveJson = `{
	"id": 86,
	"name": "thunder-wave",
	"power": null,
	"pp": 20,
	"priority": 0,
	"accuracy": 90,
	"damage_class": {"name": "status", "url": ""},
	"meta": {"ailment": {"name": "paralysis", "url": ""}, "ailment_chance": 0, "min_hits": null},
	"stat_changes": [],
	"target": {"name": "selected-pokemon", "url": ""},
	"type": {"name": "electric", "url": ""}
}`

type fakeApi struct {
	server *httptest.Server
	hits   atomic.Int32
}

func newFakeApi(t *testing.T) *fakeApi {
	t.Helper()

	api := &fakeApi{}
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		switch strings.TrimPrefix(r.URL.Path, "/pokemon/") {
		case "25", "pikachu":
			fmt.Fprintf(w, pikachuJson, api.server.URL)
		case "missingno":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/move/86/", func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		fmt.Fprint(w, thunderWaveJson)
	})
	mux.HandleFunc("/ability/9/", func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		fmt.Fprint(w, `{"id": 9, "name": "static", "effect_entries": [], "effect_changes": []}`)
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func newTestClient(t *testing.T, api *fakeApi, store cache.Store) *HTTPClient {
	t.Helper()

	client, err := New(Config{BaseURL: api.server.URL + "/", Cache: store})
	require.NoError(t, err)

	return client
}

func TestGetPokemon(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	pokemon, err := client.GetPokemon(context.Background(), "25")
	require.NoError(t, err)

	assert.Equal(t, 25, pokemon.Id)
	assert.Equal(t, "pikachu", pokemon.Name)
	assert.Len(t, pokemon.Abilities, 2)
	assert.True(t, pokemon.Abilities[1].IsHidden)
	assert.Equal(t, "electric", pokemon.Types[0].Type.Name)
	assert.True(t, pokemon.Moves[0].LearnableIn("scarlet-violet"))
	assert.False(t, pokemon.Moves[1].LearnableIn("scarlet-violet"))
}

func TestGetPokemonNormalizesName(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	pokemon, err := client.GetPokemon(context.Background(), "  PIKACHU ")
	require.NoError(t, err)
	assert.Equal(t, 25, pokemon.Id)
}

func TestGetPokemonNotFound(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	_, err := client.GetPokemon(context.Background(), "zzz999")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)

	_, err = client.GetPokemon(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerErrorIsUnavailable(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	_, err := client.GetPokemon(context.Background(), "missingno")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)
	api.server.Close()

	_, err := client.GetMove(context.Background(), api.server.URL+"/move/86/")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetMoveKeepsNulls(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	move, err := client.GetMove(context.Background(), api.server.URL+"/move/86/")
	require.NoError(t, err)

	assert.Nil(t, move.Power)
	require.NotNil(t, move.Accuracy)
	assert.Equal(t, 90, *move.Accuracy)
	assert.Equal(t, "status", move.DamageClass.Name)
	assert.JSONEq(t, `{"ailment": {"name": "paralysis", "url": ""}, "ailment_chance": 0, "min_hits": null}`, string(move.Meta))
	assert.JSONEq(t, `[]`, string(move.StatChanges))
}

func TestResponsesAreCached(t *testing.T) {
	api := newFakeApi(t)
	store := cache.NewMemory()
	client := newTestClient(t, api, store)

	abilityUrl := api.server.URL + "/ability/9/"
	for range 3 {
		ability, err := client.GetAbility(context.Background(), abilityUrl)
		require.NoError(t, err)
		assert.Equal(t, "static", ability.Name)
	}

	assert.Equal(t, int32(1), api.hits.Load())
	assert.Equal(t, 1, store.Len())
}

func TestFailuresAreNotCached(t *testing.T) {
	api := newFakeApi(t)
	store := cache.NewMemory()
	client := newTestClient(t, api, store)

	for range 2 {
		_, err := client.GetPokemon(context.Background(), "zzz999")
		assert.ErrorIs(t, err, ErrNotFound)
	}

	assert.Equal(t, int32(2), api.hits.Load())
	assert.Equal(t, 0, store.Len())
}

func TestFollowNamedResource(t *testing.T) {
	api := newFakeApi(t)
	client := newTestClient(t, api, nil)

	pokemon, err := client.GetPokemon(context.Background(), "pikachu")
	require.NoError(t, err)

	ability, err := FollowNamedResource[Ability](context.Background(), client, pokemon.Abilities[0].Ability)
	require.NoError(t, err)
	assert.Equal(t, 9, ability.Id)
}
