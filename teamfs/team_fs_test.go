package teamfs

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathanieltooley/pokeroster/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() roster.Roster {
	evs := roster.NewStatBlock()
	evs[roster.STAT_SPATTACK] = 252
	evs[roster.STAT_SPEED] = 252
	evs[roster.STAT_HP] = 4

	return roster.Roster{
		{
			Id:     25,
			Name:   "pikachu",
			Types:  []string{"electric"},
			Stats:  roster.FilledStatBlock(50),
			Nature: roster.NATURE_TIMID,
			Evs:    evs,
			Ivs:    roster.FilledStatBlock(roster.MAX_IV),
			Level:  50,
			Moves: []roster.Move{
				{Id: 86, Name: "thunder-wave", Meta: json.RawMessage(`null`), StatChanges: json.RawMessage(`[]`)},
			},
			Ability: roster.Ability{Id: 9, Name: "static", EffectEntries: []roster.EffectEntry{}, EffectChanges: []roster.EffectChange{}},
		},
	}
}

func TestSaveTeamWritesIndentedArray(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "teams")

	require.NoError(t, SaveTeam(dir, "electric", testRoster()))

	contents, err := os.ReadFile(filepath.Join(dir, "electric.json"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(contents), "[\n  {\n    \"id\": 25,"), "expected 2 space indentation, got:\n%s", contents)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(contents, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "pikachu", decoded[0]["name"])
	assert.NotContains(t, decoded[0], "item")

	moves := decoded[0]["moves"].([]any)
	assert.Nil(t, moves[0].(map[string]any)["power"])
}

func TestSaveTeamOverwrites(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, SaveTeam(dir, "team", testRoster()))
	require.NoError(t, SaveTeam(dir, "team", roster.Roster{}))

	team, err := LoadTeam(dir, "team")
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestSaveTeamRejectsBadNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "  ", "../escape", `a\b`, ".hidden"} {
		assert.ErrorIs(t, SaveTeam(dir, name, testRoster()), ErrInvalidTeamName, name)
	}
}

func TestSaveTeamFilesystemError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	assert.Error(t, SaveTeam(blocker, "team", testRoster()))
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error {
	return f.closeErr
}

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	file := &failingCloser{closeErr: diskFull}

	err := writeAndClose(file, []byte("[]"))
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, "[]", file.String())

	require.NoError(t, writeAndClose(&failingCloser{}, []byte("[]")))
}

func TestLoadTeamRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveTeam(dir, "electric", testRoster()))

	team, err := LoadTeam(dir, "electric")
	require.NoError(t, err)
	require.Len(t, team, 1)

	assert.Equal(t, "pikachu", team[0].Name)
	assert.Equal(t, roster.NATURE_TIMID, team[0].Nature)
	assert.Equal(t, roster.MAX_TOTAL_EV, team[0].Evs.Total())
}

func TestLoadMissingTeam(t *testing.T) {
	_, err := LoadTeam(t.TempDir(), "nothing")
	assert.ErrorIs(t, err, ErrNoSuchTeam)
}

func TestListTeams(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveTeam(dir, "zeta", testRoster()))
	require.NoError(t, SaveTeam(dir, "alpha", testRoster()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.json"), 0750))

	names, err := ListTeams(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	missing, err := ListTeams(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLoadTeamMapSkipsBrokenTeams(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveTeam(dir, "good", testRoster()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	teams, err := LoadTeamMap(dir)
	require.NoError(t, err)

	assert.Len(t, teams, 1)
	assert.Contains(t, teams, "good")
}
