package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

const (
	EventsSuffix  = "- Events.csv"
	PlayersSuffix = "- Players.csv"
	LogoExt       = ".jpg"
)

// Config points the repository at the season's flat files.
type Config struct {
	EventsDir  string
	PlayersDir string
	LogosDir   string
}

// Repository reads match tables from "<id>- Events.csv", "<id>- Players.csv"
// and "<team>.jpg" files. Every call goes back to disk.
type Repository struct {
	cfg Config
}

var _ match.Repository = (*Repository)(nil)

func NewRepository(cfg Config) *Repository {
	return &Repository{cfg: cfg}
}

// ListMatches derives match IDs from the events directory. The suffix is cut
// verbatim so that ID+suffix names the file again.
func (r *Repository) ListMatches(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.cfg.EventsDir)
	if err != nil {
		return nil, ioErrorf(err, "list matches in %s", r.cfg.EventsDir)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := matchID(entry.Name())
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *Repository) LoadEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodeEvents(filepath.Join(r.cfg.EventsDir, matchID+EventsSuffix))
}

func (r *Repository) LoadPlayers(ctx context.Context, matchID string) ([]match.PlayerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodePlayers(filepath.Join(r.cfg.PlayersDir, matchID+PlayersSuffix))
}

// LoadLogo returns the team's image bytes, or ok=false when no asset exists.
func (r *Repository) LoadLogo(ctx context.Context, team string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if r.cfg.LogosDir == "" || team == "" || strings.ContainsAny(team, `/\`) {
		return nil, false, nil
	}

	path := filepath.Join(r.cfg.LogosDir, team+LogoExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, ioErrorf(err, "read logo %s", path)
	}
	return data, true, nil
}

func matchID(name string) (string, bool) {
	for _, suffix := range []string{EventsSuffix, PlayersSuffix} {
		if strings.HasSuffix(name, suffix) {
			id := strings.TrimSuffix(name, suffix)
			return id, strings.TrimSpace(id) != ""
		}
	}
	return "", false
}

// readTable opens a CSV file and hands each data record to fn together with
// its header and 1-based line number.
func readTable(path string, required []string, fn func(h header, line int, cells []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return ioErrorf(err, "open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return parseErrorf("%s: empty file", path)
		}
		return parseErrorf("%s: read header: %v", path, err)
	}
	h := newHeader(first)
	if err := h.require(path, required); err != nil {
		return err
	}

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return parseErrorf("%s: line %d: %v", path, perr.Line, perr.Err)
			}
			return ioErrorf(err, "read %s", path)
		}
		line, _ := reader.FieldPos(0)
		if err := fn(h, line, cells); err != nil {
			return err
		}
	}
}
