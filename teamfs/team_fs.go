package teamfs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nathanieltooley/pokeroster/roster"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoSuchTeam      = errors.New("no such team exists")
	ErrInvalidTeamName = errors.New("invalid team name")
)

const teamFileExt = ".json"

type SavedTeams map[string]roster.Roster

func ValidateTeamName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidTeamName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidTeamName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidTeamName, name)
	}

	return nil
}

func TeamPath(dir string, name string) string {
	return filepath.Join(dir, name+teamFileExt)
}

// SaveTeam writes team to <dir>/<name>.json, replacing whatever was there
func SaveTeam(dir string, name string, team roster.Roster) error {
	if err := ValidateTeamName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	if team == nil {
		team = roster.Roster{}
	}

	teamJson, err := json.MarshalIndent(team, "", "  ")
	if err != nil {
		return err
	}

	teamFile, err := os.Create(TeamPath(dir, name))
	if err != nil {
		return err
	}

	if err := writeAndClose(teamFile, teamJson); err != nil {
		return fmt.Errorf("writing %s: %w", teamFile.Name(), err)
	}

	log.Info().Str("team", name).Int("size", len(team)).Str("path", teamFile.Name()).Msg("saved team")
	return nil
}

// writeAndClose writes data and reports a failed close as a failed save
func writeAndClose(w io.WriteCloser, data []byte) (err error) {
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = w.Write(data)
	return err
}

func LoadTeam(dir string, name string) (roster.Roster, error) {
	if err := ValidateTeamName(name); err != nil {
		return nil, err
	}

	teamBytes, err := os.ReadFile(TeamPath(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchTeam, name)
		}

		return nil, err
	}

	var team roster.Roster
	if err := json.Unmarshal(teamBytes, &team); err != nil {
		return nil, fmt.Errorf("reading team %s: %w", name, err)
	}

	return team, nil
}

// ListTeams returns the names of saved teams in dir, sorted. A missing dir has no teams.
func ListTeams(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}

		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), teamFileExt)
		if entry.IsDir() || !ok || ValidateTeamName(name) != nil {
			continue
		}

		names = append(names, name)
	}

	slices.Sort(names)
	return names, nil
}

// LoadTeamMap loads every team in dir. Documents that can't be read are logged and left out.
func LoadTeamMap(dir string) (SavedTeams, error) {
	names, err := ListTeams(dir)
	if err != nil {
		return nil, err
	}

	teams := make(SavedTeams, len(names))
	for _, name := range names {
		team, err := LoadTeam(dir, name)
		if err != nil {
			log.Warn().Err(err).Str("team", name).Msg("skipping unreadable team")
			continue
		}

		teams[name] = team
	}

	return teams, nil
}
